package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/courtlistener-mcp/internal/config"
	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/logging"
	"github.com/roivaz/courtlistener-mcp/internal/mcp/tools"
	"github.com/roivaz/courtlistener-mcp/internal/research"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
	EndpointPath string
	Logger       logging.Logger
}

// NewClient builds the CourtListener client from the loaded configuration.
// A missing token is not an error here; it surfaces on the first tool call.
func NewClient(log logging.Logger) (*courtlistener.Client, error) {
	timeout, err := config.RequestTimeout()
	if err != nil {
		return nil, err
	}
	backoff, err := config.RetryBackoff()
	if err != nil {
		return nil, err
	}
	client, err := courtlistener.NewClient(courtlistener.Config{
		BaseURL:     config.BaseURL(),
		SiteURL:     config.SiteURL(),
		Token:       config.APIToken(),
		Timeout:     timeout,
		MaxAttempts: config.MaxAttempts(),
		Backoff:     backoff,
		Logger:      log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create CourtListener client: %w", err)
	}
	return client, nil
}

// NewConfig registers every tool against service.
func NewConfig(service *research.Service, log logging.Logger) Config {
	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"search_cases":           &tools.SearchCasesHandler{Service: service},
			"lookup_citation":        &tools.LookupCitationHandler{Service: service},
			"search_dockets":         &tools.SearchDocketsHandler{Service: service},
			"get_opinion_by_id":      &tools.GetOpinionHandler{Service: service},
			"search_courts":          &tools.SearchCourtsHandler{Service: service},
			"search_people":          &tools.SearchPeopleHandler{Service: service},
			"search_with_pagination": &tools.PaginationHandler{Service: service},
			"get_case_summary":       &tools.CaseSummaryHandler{Service: service},
			"compare_cases":          &tools.CompareCasesHandler{Service: service},
			"extract_case_citations": &tools.ExtractCitationsHandler{Service: service},
			"analyze_case_impact":    &tools.ImpactHandler{Service: service},
			"api_status":             &tools.APIStatusHandler{Service: service},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath(config.EndpointPath()),
			server.WithStateLess(true),
		},
		EndpointPath: config.EndpointPath(),
		Logger:       log,
	}
}

// DefaultConfig wires the server from viper-backed configuration.
func DefaultConfig() (Config, error) {
	log := logging.New(logging.NewZapLogger(config.LogLevel()))
	client, err := NewClient(log)
	if err != nil {
		return Config{}, err
	}
	return NewConfig(research.NewService(client, log), log), nil
}
