package research

import (
	"github.com/roivaz/courtlistener-mcp/internal/analysis"
)

// CaseSummary is the compact form of a case used by search-style results.
type CaseSummary struct {
	CaseName      string   `json:"case_name"`
	Court         string   `json:"court,omitempty"`
	CourtID       string   `json:"court_id,omitempty"`
	DateFiled     string   `json:"date_filed,omitempty"`
	DocketNumber  string   `json:"docket_number,omitempty"`
	Status        string   `json:"status,omitempty"`
	CitationCount int      `json:"citation_count"`
	Citations     []string `json:"citations,omitempty"`
	Snippet       string   `json:"snippet,omitempty"`
	URL           string   `json:"url,omitempty"`
	ClusterID     int      `json:"cluster_id,omitempty"`
	OpinionID     int      `json:"opinion_id,omitempty"`
}

type SearchCasesResult struct {
	Count      int           `json:"count"`
	Returned   int           `json:"returned"`
	Cases      []CaseSummary `json:"cases"`
	NextCursor string        `json:"next_cursor,omitempty"`
	// Omitted counts hits on this page cut off by limit. next_cursor starts
	// after the page, so they are only reachable with a larger limit.
	Omitted int `json:"omitted,omitempty"`
}

type CitationResult struct {
	Citation   string        `json:"citation"`
	Normalized []string      `json:"normalized_citations,omitempty"`
	Cases      []CaseSummary `json:"cases"`
}

type DocketSummary struct {
	ID           int    `json:"id"`
	CaseName     string `json:"case_name"`
	DocketNumber string `json:"docket_number,omitempty"`
	Court        string `json:"court,omitempty"`
	DateFiled    string `json:"date_filed,omitempty"`
	NatureOfSuit string `json:"nature_of_suit,omitempty"`
	URL          string `json:"url,omitempty"`
}

type DocketsResult struct {
	Count      int             `json:"count"`
	Returned   int             `json:"returned"`
	Dockets    []DocketSummary `json:"dockets"`
	NextCursor string          `json:"next_cursor,omitempty"`
	// Omitted counts hits on this page cut off by limit. next_cursor starts
	// after the page, so they are only reachable with a larger limit.
	Omitted int `json:"omitted,omitempty"`
}

type CourtSummary struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	ShortName    string `json:"short_name,omitempty"`
	Citation     string `json:"citation_string,omitempty"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
	InUse        bool   `json:"in_use"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Website      string `json:"website,omitempty"`
}

type CourtsResult struct {
	Count      int            `json:"count"`
	Returned   int            `json:"returned"`
	Courts     []CourtSummary `json:"courts"`
	NextCursor string         `json:"next_cursor,omitempty"`
	// Omitted counts hits on this page cut off by limit. next_cursor starts
	// after the page, so they are only reachable with a larger limit.
	Omitted int `json:"omitted,omitempty"`
}

type PositionSummary struct {
	Court           string `json:"court,omitempty"`
	PositionType    string `json:"position_type,omitempty"`
	DateStart       string `json:"date_start,omitempty"`
	DateTermination string `json:"date_termination,omitempty"`
}

type PersonSummary struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Positions []PositionSummary `json:"positions,omitempty"`
	URL       string            `json:"url,omitempty"`
}

type PeopleResult struct {
	Count      int             `json:"count"`
	Returned   int             `json:"returned"`
	People     []PersonSummary `json:"people"`
	NextCursor string          `json:"next_cursor,omitempty"`
	// Omitted counts hits on this page cut off by limit. next_cursor starts
	// after the page, so they are only reachable with a larger limit.
	Omitted int `json:"omitted,omitempty"`
}

type PaginationResult struct {
	SearchType string `json:"search_type"`
	Pages      int    `json:"pages"`
	Count      int    `json:"count"`
	Returned   int    `json:"returned"`
	// Items holds []CaseSummary, []DocketSummary, []CourtSummary or []PersonSummary.
	Items      any    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
	Warning    string `json:"warning,omitempty"`
}

type OpinionResult struct {
	OpinionID          int    `json:"opinion_id"`
	ClusterID          int    `json:"cluster_id,omitempty"`
	CaseName           string `json:"case_name,omitempty"`
	DateFiled          string `json:"date_filed,omitempty"`
	Author             string `json:"author,omitempty"`
	Type               string `json:"type,omitempty"`
	CitationCount      int    `json:"citation_count"`
	PrecedentialStatus string `json:"precedential_status,omitempty"`
	DownloadURL        string `json:"download_url,omitempty"`
	URL                string `json:"url,omitempty"`
	Text               string `json:"text,omitempty"`
	TextLength         int    `json:"text_length,omitempty"`
}

// CaseInfo is the metadata header shared by the case-analysis results.
type CaseInfo struct {
	CaseName      string   `json:"case_name"`
	Court         string   `json:"court,omitempty"`
	DateFiled     string   `json:"date_filed,omitempty"`
	DocketNumber  string   `json:"docket_number,omitempty"`
	Author        string   `json:"author,omitempty"`
	CitationCount int      `json:"citation_count"`
	Citations     []string `json:"citations,omitempty"`
	OpinionID     int      `json:"opinion_id"`
	ClusterID     int      `json:"cluster_id,omitempty"`
	URL           string   `json:"url,omitempty"`
}

func caseInfo(d analysis.Document) CaseInfo {
	return CaseInfo{
		CaseName:      d.CaseName,
		Court:         d.Court,
		DateFiled:     d.DateFiled,
		DocketNumber:  d.DocketNumber,
		Author:        d.Author,
		CitationCount: d.CitationCount,
		Citations:     d.Citations,
		OpinionID:     d.OpinionID,
		ClusterID:     d.ClusterID,
		URL:           d.URL,
	}
}

type SummarySection struct {
	Title    string   `json:"title"`
	Passages []string `json:"passages"`
}

type TextStats struct {
	Characters      int  `json:"characters"`
	Sentences       int  `json:"sentences"`
	Chunks          int  `json:"chunks"`
	EstimatedTokens int  `json:"estimated_tokens"`
	Truncated       bool `json:"truncated"`
}

type CaseSummaryResult struct {
	Case        CaseInfo         `json:"case"`
	SummaryType string           `json:"summary_type"`
	Sections    []SummarySection `json:"sections"`
	Stats       TextStats        `json:"stats"`
}

type ComparisonRow struct {
	Label string `json:"label"`
	Case1 string `json:"case1"`
	Case2 string `json:"case2"`
}

type CompareResult struct {
	Focus           string          `json:"comparison_focus"`
	Case1           CaseInfo        `json:"case1"`
	Case2           CaseInfo        `json:"case2"`
	Rows            []ComparisonRow `json:"rows"`
	Case1Passages   SummarySection  `json:"case1_passages"`
	Case2Passages   SummarySection  `json:"case2_passages"`
	SharedCitations []string        `json:"shared_citations"`
	Case1CitesCase2 bool            `json:"case1_cites_case2"`
	Case2CitesCase1 bool            `json:"case2_cites_case1"`
}

type CitationEntry struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type CitationGroup struct {
	Type      string          `json:"type"`
	Label     string          `json:"label"`
	Citations []CitationEntry `json:"citations"`
}

type CitationsResult struct {
	Case         CaseInfo        `json:"case"`
	CitationType string          `json:"citation_type"`
	Total        int             `json:"total"`
	Groups       []CitationGroup `json:"groups"`
}

type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type CitingCase struct {
	CaseName  string `json:"case_name"`
	Court     string `json:"court,omitempty"`
	DateFiled string `json:"date_filed,omitempty"`
	URL       string `json:"url,omitempty"`
}

type ImpactResult struct {
	Case               CaseInfo     `json:"case"`
	AnalysisDepth      string       `json:"analysis_depth"`
	Impact             string       `json:"impact"`
	CitationCount      int          `json:"citation_count"`
	CitingOpinions     int          `json:"citing_opinions"`
	MostRecentCitation string       `json:"most_recent_citation,omitempty"`
	Trend              string       `json:"trend"`
	ByYear             []YearCount  `json:"by_year,omitempty"`
	RecentCiting       []CitingCase `json:"recent_citing,omitempty"`
}
