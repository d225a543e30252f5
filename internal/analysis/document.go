package analysis

// Document is one resolved case together with the opinion text under analysis.
type Document struct {
	OpinionID     int
	ClusterID     int
	CaseName      string
	Court         string
	DateFiled     string
	DocketNumber  string
	Author        string
	Status        string
	CitationCount int
	// Citations are the case's own reporter citations, e.g. "410 U.S. 113".
	Citations []string
	URL       string
	Text      string
	Truncated bool
}
