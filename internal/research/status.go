package research

import (
	"context"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

// ToolNames lists the tools served on top of this package, in registration order.
var ToolNames = []string{
	"search_cases", "lookup_citation", "search_dockets", "get_opinion_by_id",
	"search_courts", "search_people", "search_with_pagination",
	"get_case_summary", "compare_cases", "extract_case_citations", "analyze_case_impact",
	"api_status",
}

type CourtCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

var CommonCourts = []CourtCode{
	{"scotus", "Supreme Court of the United States"},
	{"ca1-ca11", "Circuit Courts of Appeals (1st-11th)"},
	{"cadc", "D.C. Circuit Court of Appeals"},
	{"cafc", "Federal Circuit Court of Appeals"},
	{"fd", "Federal District Courts"},
	{"fb", "Federal Bankruptcy Courts"},
}

var RateLimits = []string{
	"General API: 5,000 queries/hour",
	"Citation Lookup: 60 citations/minute",
	"Maintenance: Thursdays 21:00-23:59 PT",
}

type StatusResult struct {
	Connected    bool        `json:"connected"`
	BaseURL      string      `json:"base_url"`
	ProbeCourt   string      `json:"probe_court"`
	Tools        []string    `json:"tools"`
	CommonCourts []CourtCode `json:"common_courts"`
	RateLimits   []string    `json:"rate_limits"`
}

// APIStatus checks the token and connectivity with one small request for the
// Supreme Court's court record.
func (s *Service) APIStatus(ctx context.Context) (StatusResult, error) {
	_, courts, err := s.api.Courts(ctx, courtlistener.CourtParams{ID: "scotus", Fields: courtlistener.Fields("id", "full_name")})
	if err != nil {
		return StatusResult{}, err
	}
	out := StatusResult{
		Connected:    true,
		BaseURL:      s.api.BaseURL(),
		Tools:        ToolNames,
		CommonCourts: CommonCourts,
		RateLimits:   RateLimits,
	}
	if len(courts) > 0 {
		out.ProbeCourt = courts[0].FullName
	}
	return out, nil
}
