package mcp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/courtlistener-mcp/internal/analysis"
	"github.com/roivaz/courtlistener-mcp/internal/logging"
	"github.com/roivaz/courtlistener-mcp/internal/mcp/tools"
	"github.com/roivaz/courtlistener-mcp/internal/research"
)

const (
	serverName    = "courtlistener"
	serverVersion = "1.0.0"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	log := cfg.Logger.WithName("mcp")
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithToolHandlerMiddleware(logCalls(log)),
		server.WithRecovery(),
	)

	defs := toolDefinitions()
	for _, name := range research.ToolNames {
		adapter, ok := cfg.ToolAdapters[name]
		if !ok {
			continue
		}
		mcpServer.AddTool(defs[name], adapter.ToolAdapter)
	}

	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate("greeting://{name}", "greeting",
			mcp.WithTemplateDescription("Return a greeting for the given name"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		greeting,
	)

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: NewRouter(httpServer, cfg.EndpointPath),
	}
}

// ServeStdio serves MCP over stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}

func identifierDescription(what string) string {
	return what + ": an opinion id (e.g. 108713), a CourtListener URL, or a case name (e.g. 'Roe v. Wade')"
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

func limitOption() mcp.ToolOption {
	return mcp.WithNumber("limit",
		mcp.Description(fmt.Sprintf("Maximum number of results to return (default: %d)", research.DefaultLimit)),
		mcp.Min(1),
	)
}

func toolDefinitions() map[string]mcp.Tool {
	return map[string]mcp.Tool{
		"search_cases": mcp.NewTool("search_cases",
			mcp.WithDescription("Search case law opinions with the CourtListener v4 search API. Supports boolean full-text queries and filters by court, filing date, citation count and judge."),
			mcp.WithString("query", mcp.Description("Full-text search query (supports AND, OR, NOT and quoted phrases)")),
			mcp.WithString("case_name", mcp.Description("Case name to search for")),
			mcp.WithString("court", mcp.Description("Court identifier (scotus, ca1-ca11, cadc, cafc, ...)")),
			mcp.WithString("date_filed_after", mcp.Description("Only cases filed on or after this date (YYYY-MM-DD)")),
			mcp.WithString("date_filed_before", mcp.Description("Only cases filed on or before this date (YYYY-MM-DD)")),
			mcp.WithNumber("cited_gt", mcp.Description("Only cases cited more than this many times"), mcp.Min(0)),
			mcp.WithString("judge", mcp.Description("Judge name")),
			mcp.WithString("highlight", mcp.Description("Highlight matching terms in snippets"), mcp.Enum("on", "off"), mcp.DefaultString("on")),
			limitOption(),
		),
		"lookup_citation": mcp.NewTool("lookup_citation",
			mcp.WithDescription("Find the case(s) a legal citation refers to, such as '410 U.S. 113'."),
			mcp.WithString("citation", mcp.Required(), mcp.Description("Citation text containing '<volume> <reporter> <page>', e.g. '410 U.S. 113' or '347 U.S. 483 (1954)'")),
		),
		"search_dockets": mcp.NewTool("search_dockets",
			mcp.WithDescription("Search court dockets (case filings) by case name, docket number, court, nature of suit and filing date."),
			mcp.WithString("case_name", mcp.Description("Case name (substring match)")),
			mcp.WithString("docket_number", mcp.Description("Docket number (substring match)")),
			mcp.WithString("court", mcp.Description("Court identifier")),
			mcp.WithString("nature_of_suit", mcp.Description("Nature of suit (substring match)")),
			mcp.WithString("date_filed_after", mcp.Description("Filed on or after this date (YYYY-MM-DD)")),
			mcp.WithString("date_filed_before", mcp.Description("Filed on or before this date (YYYY-MM-DD)")),
			limitOption(),
		),
		"get_opinion_by_id": mcp.NewTool("get_opinion_by_id",
			mcp.WithDescription("Get details of one opinion by its id, optionally with the beginning of its text."),
			mcp.WithNumber("opinion_id", mcp.Required(), mcp.Description("CourtListener opinion id"), mcp.Min(1)),
			mcp.WithString("include_text", mcp.Description(fmt.Sprintf("Include the first %d characters of the opinion text", research.OpinionPreviewLength)), mcp.Enum("no", "yes"), mcp.DefaultString("no")),
		),
		"search_courts": mcp.NewTool("search_courts",
			mcp.WithDescription("Search courts by name and jurisdiction to discover court identifiers."),
			mcp.WithString("name", mcp.Description("Court name (substring match)")),
			mcp.WithString("jurisdiction", mcp.Description("Jurisdiction code (F federal appellate, FD federal district, S state supreme, ...)")),
			limitOption(),
		),
		"search_people": mcp.NewTool("search_people",
			mcp.WithDescription("Search judges and other people in the CourtListener judicial database."),
			mcp.WithString("name", mcp.Description("Full name (substring match)")),
			mcp.WithString("court", mcp.Description("Court identifier of a position held")),
			mcp.WithString("position_type", mcp.Description("Position type (e.g. jud, c-jud, ass-jus)")),
			limitOption(),
		),
		"search_with_pagination": mcp.NewTool("search_with_pagination",
			mcp.WithDescription("Walk several result pages of a search. Returns all items and a cursor to continue from."),
			mcp.WithString("search_type", mcp.Description("What to search"), mcp.Enum(string(research.SearchOpinions), string(research.SearchDockets), string(research.SearchCourts), string(research.SearchPeople)), mcp.DefaultString(string(research.SearchOpinions))),
			mcp.WithString("query", mcp.Description("Search text")),
			mcp.WithString("cursor", mcp.Description("Cursor returned by a previous call")),
			mcp.WithNumber("max_pages", mcp.Description(fmt.Sprintf("Pages to fetch, 1 to 10 (default: %d)", research.DefaultMaxPages)), mcp.Min(1), mcp.Max(10)),
		),
		"get_case_summary": mcp.NewTool("get_case_summary",
			mcp.WithDescription("Summarize a case by extracting the passages of its opinion text that match a fixed template."),
			mcp.WithString("case_identifier", mcp.Required(), mcp.Description(identifierDescription("Case to summarize"))),
			mcp.WithString("summary_type", mcp.Enum(enumValues(analysis.SummaryTypes)...), mcp.DefaultString(string(analysis.SummaryOverview))),
			mcp.WithNumber("max_text_length", mcp.Description(fmt.Sprintf("Characters of opinion text to analyze (default: %d)", research.DefaultMaxTextLength)), mcp.Min(1)),
		),
		"compare_cases": mcp.NewTool("compare_cases",
			mcp.WithDescription("Compare two cases side by side and report shared citations and whether either cites the other."),
			mcp.WithString("case1_identifier", mcp.Required(), mcp.Description(identifierDescription("First case"))),
			mcp.WithString("case2_identifier", mcp.Required(), mcp.Description(identifierDescription("Second case"))),
			mcp.WithString("comparison_focus", mcp.Enum(enumValues(analysis.ComparisonFoci)...), mcp.DefaultString(string(analysis.FocusHoldings))),
		),
		"extract_case_citations": mcp.NewTool("extract_case_citations",
			mcp.WithDescription("List the citations found in a case's opinion text, grouped by type."),
			mcp.WithString("case_identifier", mcp.Required(), mcp.Description(identifierDescription("Case to scan"))),
			mcp.WithString("citation_type", mcp.Enum(enumValues(analysis.CitationTypes)...), mcp.DefaultString(string(analysis.CitationsAll))),
		),
		"analyze_case_impact": mcp.NewTool("analyze_case_impact",
			mcp.WithDescription("Assess how widely a case has been cited, using its citation count and the opinions that cite it."),
			mcp.WithString("case_identifier", mcp.Required(), mcp.Description(identifierDescription("Case to assess"))),
			mcp.WithString("analysis_depth", mcp.Enum(enumValues(analysis.AnalysisDepths)...), mcp.DefaultString(string(analysis.DepthComprehensive))),
		),
		"api_status": mcp.NewTool("api_status",
			mcp.WithDescription("Check the CourtListener API token and connectivity, and list common court codes and rate limits."),
		),
	}
}

func greeting(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	name := ""
	switch v := req.Params.Arguments["name"].(type) {
	case string:
		name = v
	case []string:
		name = strings.Join(v, ",")
	}
	if name == "" {
		name = strings.TrimPrefix(req.Params.URI, "greeting://")
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Hello, %s! Ready to research legal cases with CourtListener API v4.", name),
		},
	}, nil
}

// logCalls tags every tool call with a call_id and logs its outcome.
func logCalls(log logging.Logger) server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			l := log.WithValues("call_id", uuid.NewString(), "tool", req.Params.Name)
			l.Debug("tool call", "arguments", req.GetArguments())
			start := time.Now()

			res, err := next(ctx, req)
			elapsed := time.Since(start)
			switch {
			case err != nil:
				l.Error(err, "tool call failed", "elapsed", elapsed)
			case res != nil && res.IsError:
				l.Info("tool call returned an error", "kind", tools.ErrorKind(res), "elapsed", elapsed)
			default:
				l.Info("tool call completed", "elapsed", elapsed)
			}
			return res, err
		}
	}
}
