package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/research"
)

type CaseSummarizer interface {
	GetCaseSummary(ctx context.Context, req research.CaseSummaryRequest) (research.CaseSummaryResult, error)
}

type CaseSummaryHandler struct{ Service CaseSummarizer }

func (h *CaseSummaryHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	identifier := stringArg(args, "case_identifier")
	if identifier == "" {
		return errorResult(courtlistener.Validationf("case_identifier parameter is required")), nil
	}
	maxText, err := intArg(args, "max_text_length", research.DefaultMaxTextLength)
	if err != nil {
		return failure(err), nil
	}
	res, err := h.Service.GetCaseSummary(ctx, research.CaseSummaryRequest{
		Identifier:    identifier,
		SummaryType:   stringArg(args, "summary_type"),
		MaxTextLength: maxText,
	})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatSummary(res)), nil
}

type CaseComparer interface {
	CompareCases(ctx context.Context, req research.CompareRequest) (research.CompareResult, error)
}

type CompareCasesHandler struct{ Service CaseComparer }

// ToolAdapter reports every failure as an error result: a comparison with
// one side missing is not a usable answer.
func (h *CompareCasesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	case1, case2 := stringArg(args, "case1_identifier"), stringArg(args, "case2_identifier")
	if case1 == "" || case2 == "" {
		return errorResult(courtlistener.Validationf("case1_identifier and case2_identifier are required")), nil
	}
	res, err := h.Service.CompareCases(ctx, research.CompareRequest{
		Case1: case1,
		Case2: case2,
		Focus: stringArg(args, "comparison_focus"),
	})
	if err != nil {
		return errorResult(err), nil
	}
	return success(res, formatComparison(res)), nil
}

type CitationExtractor interface {
	ExtractCaseCitations(ctx context.Context, req research.ExtractCitationsRequest) (research.CitationsResult, error)
}

type ExtractCitationsHandler struct{ Service CitationExtractor }

func (h *ExtractCitationsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	identifier := stringArg(args, "case_identifier")
	if identifier == "" {
		return errorResult(courtlistener.Validationf("case_identifier parameter is required")), nil
	}
	res, err := h.Service.ExtractCaseCitations(ctx, research.ExtractCitationsRequest{
		Identifier:   identifier,
		CitationType: stringArg(args, "citation_type"),
	})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatCitations(res)), nil
}

type ImpactAnalyzer interface {
	AnalyzeCaseImpact(ctx context.Context, req research.ImpactRequest) (research.ImpactResult, error)
}

type ImpactHandler struct{ Service ImpactAnalyzer }

func (h *ImpactHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	identifier := stringArg(args, "case_identifier")
	if identifier == "" {
		return errorResult(courtlistener.Validationf("case_identifier parameter is required")), nil
	}
	res, err := h.Service.AnalyzeCaseImpact(ctx, research.ImpactRequest{
		Identifier: identifier,
		Depth:      stringArg(args, "analysis_depth"),
	})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatImpact(res)), nil
}
