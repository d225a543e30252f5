package analysis

import (
	"regexp"
	"sort"
	"strings"
)

type SummaryType string

const (
	SummaryOverview      SummaryType = "overview"
	SummaryLegalAnalysis SummaryType = "legal_analysis"
	SummaryKeyHoldings   SummaryType = "key_holdings"
	SummaryTimeline      SummaryType = "timeline"
)

var SummaryTypes = []SummaryType{SummaryOverview, SummaryLegalAnalysis, SummaryKeyHoldings, SummaryTimeline}

func ParseSummaryType(s string) (SummaryType, error) {
	return parseEnum(s, SummaryOverview, SummaryTypes)
}

// extractor picks passages for one summary section.
type extractor struct {
	title   string
	markers []string
	// lead takes the first N sentences instead of matching markers.
	lead int
	// citations lists the top cited precedents instead of sentences.
	citations bool
	// dated picks sentences that mention a date.
	dated bool
	limit int
}

var (
	issueMarkers       = []string{"question presented", "the question", "the issue", "we granted certiorari", "we must decide", "whether"}
	holdingMarkers     = []string{"we hold", "we conclude", "held that", "we therefore hold", "our holding", "we agree", "we disagree"}
	reasoningMarkers   = []string{"because", "therefore", "it follows", "for these reasons", "we reason", "in light of", "accordingly"}
	dispositionMarkers = []string{"affirmed", "reversed", "remanded", "vacated", "dismissed", "judgment of the", "it is so ordered"}
	proceduralMarkers  = []string{"district court", "court of appeals", "appellate", "on appeal", "petition", "certiorari", "trial court", "below"}
	standardMarkers    = []string{"standard", "test", "scrutiny", "de novo", "abuse of discretion", "clearly erroneous", "burden"}
	separateMarkers    = []string{"concurring", "dissenting", "concur", "dissent"}
	secondaryMarkers   = []string{"we also", "we further", "additionally", "moreover", "in addition"}
	ruleMarkers        = []string{"must", "may not", "requires", "prohibits", "is entitled", "shall"}
	factMarkers        = []string{"petitioner", "respondent", "plaintiff", "defendant", "appellant", "appellee", "filed", "alleged", "arrested", "convicted", "sued"}
)

var summaryTemplates = map[SummaryType][]extractor{
	SummaryOverview: {
		{title: "Case Overview", lead: 3},
		{title: "Legal Issues", markers: issueMarkers, limit: 3},
		{title: "Holding", markers: holdingMarkers, limit: 3},
		{title: "Reasoning", markers: reasoningMarkers, limit: 3},
		{title: "Disposition", markers: dispositionMarkers, limit: 2},
	},
	SummaryLegalAnalysis: {
		{title: "Procedural Posture", markers: proceduralMarkers, limit: 3},
		{title: "Legal Standards Applied", markers: standardMarkers, limit: 3},
		{title: "Precedents Relied On", citations: true, limit: 10},
		{title: "Majority Reasoning", markers: reasoningMarkers, limit: 4},
		{title: "Concurring and Dissenting Opinions", markers: separateMarkers, limit: 3},
		{title: "Disposition", markers: dispositionMarkers, limit: 2},
	},
	SummaryKeyHoldings: {
		{title: "Primary Holding", markers: holdingMarkers, limit: 2},
		{title: "Secondary Holdings", markers: secondaryMarkers, limit: 3},
		{title: "Rules Stated", markers: ruleMarkers, limit: 4},
		{title: "Disposition", markers: dispositionMarkers, limit: 2},
	},
	SummaryTimeline: {
		{title: "Dated Events", dated: true, limit: 12},
		{title: "Procedural History", markers: proceduralMarkers, limit: 4},
		{title: "Disposition", markers: dispositionMarkers, limit: 2},
	},
}

var datePattern = regexp.MustCompile(`\b(?:(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan\.|Feb\.|Mar\.|Apr\.|Aug\.|Sept?\.|Oct\.|Nov\.|Dec\.)\s+(?:\d{1,2},?\s+)?\d{4}|(?:in|In|on|On|since|Since|by|By|until)\s+(?:1[7-9]|20)\d{2})\b`)

// Section is one titled block of extracted passages.
type Section struct {
	Title    string
	Passages []string
}

type TextStats struct {
	Characters      int
	Sentences       int
	Chunks          int
	EstimatedTokens int
	Truncated       bool
}

type Summary struct {
	Type     SummaryType
	Sections []Section
	Stats    TextStats
}

// Summarize fills the fixed template for typ from doc.Text.
func Summarize(doc Document, typ SummaryType) Summary {
	text := doc.Text
	sentences := splitSentences(text)
	chunks := newChunker(defaultChunkSize, defaultChunkOverlap).Split(text)

	out := Summary{
		Type: typ,
		Stats: TextStats{
			Characters:      len([]rune(text)),
			Sentences:       len(sentences),
			Chunks:          len(chunks),
			EstimatedTokens: EstimateTokens(text),
			Truncated:       doc.Truncated,
		},
	}
	for _, ex := range summaryTemplates[typ] {
		out.Sections = append(out.Sections, Section{Title: ex.title, Passages: ex.extract(text, sentences)})
	}
	return out
}

func (ex extractor) extract(text string, sentences []string) []string {
	switch {
	case ex.lead > 0:
		return firstN(sentences, ex.lead)
	case ex.citations:
		return topCitations(ExtractCitations(text, CitationsPrecedents), ex.limit)
	case ex.dated:
		return datedSentences(sentences, ex.limit)
	default:
		return matchSentences(sentences, ex.markers, ex.limit)
	}
}

// matchSentences returns up to limit sentences containing any marker, in text order.
func matchSentences(sentences []string, markers []string, limit int) []string {
	var out []string
	for _, s := range sentences {
		if len(out) == limit {
			break
		}
		lower := strings.ToLower(s)
		for _, m := range markers {
			if containsWord(lower, m) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// containsWord matches marker on word boundaries so "test" does not hit "testimony".
func containsWord(lower, marker string) bool {
	for idx := 0; ; {
		i := strings.Index(lower[idx:], marker)
		if i < 0 {
			return false
		}
		start, end := idx+i, idx+i+len(marker)
		if (start == 0 || !isWordByte(lower[start-1])) && (end == len(lower) || !isWordByte(lower[end])) {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

func datedSentences(sentences []string, limit int) []string {
	var out []string
	for _, s := range sentences {
		if len(out) == limit {
			break
		}
		if datePattern.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}

func topCitations(set CitationSet, limit int) []string {
	cites := append([]Citation(nil), set.Citations...)
	// Most cited first; ties keep first-occurrence order.
	sort.SliceStable(cites, func(i, j int) bool { return cites[i].Count > cites[j].Count })
	var out []string
	for _, c := range cites {
		if len(out) == limit {
			break
		}
		if c.Count > 1 {
			out = append(out, c.Text+" ("+formatCount(c.Count, "mention", "mentions")+")")
		} else {
			out = append(out, c.Text)
		}
	}
	return out
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
