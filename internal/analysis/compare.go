package analysis

import (
	"strconv"
	"strings"
)

type ComparisonFocus string

const (
	FocusHoldings  ComparisonFocus = "holdings"
	FocusReasoning ComparisonFocus = "reasoning"
	FocusFacts     ComparisonFocus = "facts"
	FocusOutcomes  ComparisonFocus = "outcomes"
)

var ComparisonFoci = []ComparisonFocus{FocusHoldings, FocusReasoning, FocusFacts, FocusOutcomes}

func ParseComparisonFocus(s string) (ComparisonFocus, error) {
	return parseEnum(s, FocusHoldings, ComparisonFoci)
}

var focusTemplates = map[ComparisonFocus]extractor{
	FocusHoldings:  {title: "Holdings", markers: holdingMarkers, limit: 3},
	FocusReasoning: {title: "Reasoning", markers: reasoningMarkers, limit: 4},
	FocusFacts:     {title: "Facts", markers: factMarkers, limit: 4},
	FocusOutcomes:  {title: "Outcomes", markers: dispositionMarkers, limit: 3},
}

// Row is one metadata line of the side-by-side table.
type Row struct {
	Label string
	A     string
	B     string
}

type Comparison struct {
	Focus           ComparisonFocus
	Rows            []Row
	A               Section
	B               Section
	SharedCitations []string
	// ACitesB is true when case A's text cites case B, and vice versa.
	ACitesB bool
	BCitesA bool
}

// Compare lines up two cases along focus.
func Compare(a, b Document, focus ComparisonFocus) Comparison {
	ex := focusTemplates[focus]
	citesA := ExtractCitations(a.Text, CitationsAll)
	citesB := ExtractCitations(b.Text, CitationsAll)

	cmp := Comparison{
		Focus: focus,
		Rows: []Row{
			{Label: "Case", A: a.CaseName, B: b.CaseName},
			{Label: "Court", A: a.Court, B: b.Court},
			{Label: "Date filed", A: a.DateFiled, B: b.DateFiled},
			{Label: "Author", A: a.Author, B: b.Author},
			{Label: "Citations", A: strings.Join(a.Citations, "; "), B: strings.Join(b.Citations, "; ")},
			{Label: "Cited by", A: strconv.Itoa(a.CitationCount), B: strconv.Itoa(b.CitationCount)},
			{Label: "Opinion ID", A: strconv.Itoa(a.OpinionID), B: strconv.Itoa(b.OpinionID)},
		},
		A:       Section{Title: ex.title, Passages: ex.extract(a.Text, splitSentences(a.Text))},
		B:       Section{Title: ex.title, Passages: ex.extract(b.Text, splitSentences(b.Text))},
		ACitesB: cites(citesA, a.Text, b),
		BCitesA: cites(citesB, b.Text, a),
	}

	other := map[string]bool{}
	for _, c := range citesB.Citations {
		other[citationKey(c.Text)] = true
	}
	for _, c := range citesA.Citations {
		if other[citationKey(c.Text)] {
			cmp.SharedCitations = append(cmp.SharedCitations, c.Text)
		}
	}
	return cmp
}

// cites reports whether text (with its extracted citations) refers to target
// by one of target's reporter citations or by its case name.
func cites(set CitationSet, text string, target Document) bool {
	for _, c := range target.Citations {
		if set.Contains(c) {
			return true
		}
	}
	name := strings.TrimSpace(target.CaseName)
	if len(name) < 6 || !strings.Contains(name, " v. ") {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(name))
}
