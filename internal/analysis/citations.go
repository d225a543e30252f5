package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// CitationType selects which citation families extract_case_citations reports.
type CitationType string

const (
	CitationsAll            CitationType = "all"
	CitationsPrecedents     CitationType = "precedents"
	CitationsStatutes       CitationType = "statutes"
	CitationsRegulations    CitationType = "regulations"
	CitationsConstitutional CitationType = "constitutional"
)

var CitationTypes = []CitationType{CitationsAll, CitationsPrecedents, CitationsStatutes, CitationsRegulations, CitationsConstitutional}

func ParseCitationType(s string) (CitationType, error) {
	return parseEnum(s, CitationsAll, CitationTypes)
}

// Reporter abbreviations, longest variants first so alternation prefers them.
const reporters = `U\.\s?S\.|S\.\s?Ct\.|L\.\s?Ed\.\s?2d|L\.\s?Ed\.|` +
	`F\.\s?Supp\.\s?3d|F\.\s?Supp\.\s?2d|F\.\s?Supp\.|F\.\s?App'x|F\.\s?4th|F\.\s?3d|F\.\s?2d|F\.|` +
	`B\.\s?R\.|A\.\s?3d|A\.\s?2d|A\.|P\.\s?3d|P\.\s?2d|P\.|` +
	`N\.\s?E\.\s?3d|N\.\s?E\.\s?2d|N\.\s?E\.|N\.\s?W\.\s?2d|N\.\s?W\.|` +
	`S\.\s?E\.\s?2d|S\.\s?E\.|S\.\s?W\.\s?3d|S\.\s?W\.\s?2d|S\.\s?W\.|` +
	`So\.\s?3d|So\.\s?2d|So\.|Cal\.\s?Rptr\.\s?3d|Cal\.\s?Rptr\.\s?2d|Cal\.\s?Rptr\.|` +
	`Cal\.\s?(?:App\.\s?)?(?:5th|4th|3d|2d)|N\.\s?Y\.\s?S\.\s?3d|N\.\s?Y\.\s?S\.\s?2d|N\.\s?Y\.\s?(?:3d|2d)|` +
	`Wall\.|Wheat\.|Pet\.|How\.|Dall\.|Cranch|Black`

// Early Supreme Court volumes carry the nominative reporter in parentheses: 5 U.S. (1 Cranch) 137.
const parallelReporter = `\(\d{1,3}\s+(?:Cranch|Wheat\.|Pet\.|How\.|Dall\.|Wall\.|Black)\)`

const amendments = `First|Second|Third|Fourth|Fifth|Sixth|Seventh|Eighth|Ninth|Tenth|Eleventh|Twelfth|` +
	`Thirteenth|Fourteenth|Fifteenth|Sixteenth|Seventeenth|Eighteenth|Nineteenth|Twentieth|` +
	`Twenty-First|Twenty-Second|Twenty-Third|Twenty-Fourth|Twenty-Fifth|Twenty-Sixth|Twenty-Seventh`

type citationPattern struct {
	kind CitationType
	re   *regexp.Regexp
}

var citationPatterns = []citationPattern{
	{CitationsPrecedents, regexp.MustCompile(`\b\d{1,4}\s+(?:` + reporters + `)(?:\s+` + parallelReporter + `)?\s+\d{1,5}\b`)},
	{CitationsStatutes, regexp.MustCompile(`\b\d{1,3}\s+U\.\s?S\.\s?C\.(?:\s?A\.)?\s*(?:§§?\s*)?\d+[a-z]?(?:-\d+)?(?:\([0-9A-Za-z]{1,4}\))*`)},
	{CitationsStatutes, regexp.MustCompile(`\b\d{1,3}\s+Stat\.\s+\d+`)},
	{CitationsRegulations, regexp.MustCompile(`\b\d{1,3}\s+C\.\s?F\.\s?R\.\s*(?:§§?\s*)?\d+(?:\.\d+)*(?:\([0-9A-Za-z]{1,4}\))*`)},
	{CitationsRegulations, regexp.MustCompile(`\b\d{1,3}\s+Fed\.\s?Reg\.\s+\d+`)},
	{CitationsConstitutional, regexp.MustCompile(`U\.\s?S\.\s+Const\.,?\s*(?:[Aa]rt\.\s*[IVX]+(?:,\s*§\s*\d+)?(?:,\s*cl\.\s*\d+)?|[Aa]mend\.\s*[IVXL]+(?:,\s*§\s*\d+)?|[Aa]mdt\.\s*\d+(?:,\s*§\s*\d+)?|[Pp]mbl\.)`)},
	{CitationsConstitutional, regexp.MustCompile(`\b(?:` + amendments + `)\s+Amendment\b`)},
}

// Citation is one distinct citation and where it first appears.
type Citation struct {
	Text   string
	Type   CitationType
	Offset int
	Count  int
}

type CitationSet struct {
	Citations []Citation
}

// ExtractCitations finds citation-formatted substrings in text. Results are
// de-duplicated and ordered by first occurrence.
func ExtractCitations(text string, want CitationType) CitationSet {
	index := map[string]int{}
	var found []Citation
	for _, p := range citationPatterns {
		if want != CitationsAll && want != p.kind {
			continue
		}
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			norm := normalizeCitation(text[loc[0]:loc[1]])
			key := citationKey(norm)
			if i, ok := index[key]; ok {
				found[i].Count++
				if loc[0] < found[i].Offset {
					found[i].Offset = loc[0]
				}
				continue
			}
			index[key] = len(found)
			found = append(found, Citation{Text: norm, Type: p.kind, Offset: loc[0], Count: 1})
		}
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].Offset < found[j].Offset })
	return CitationSet{Citations: found}
}

func normalizeCitation(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// citationKey identifies a citation regardless of spacing and case, so
// "410 U. S. 113" and "410 U.S. 113" are the same citation.
func citationKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// caseCitation finds a reporter citation anywhere in free text. A slip
// citation whose page is not yet assigned ("576 U.S. ___") counts.
var caseCitation = regexp.MustCompile(`\b\d{1,4}\s+(?:` + reporters + `)(?:\s+` + parallelReporter + `)?\s+(?:\d{1,5}\b|_+)`)

// ContainsCaseCitation reports whether text holds at least one reporter citation.
func ContainsCaseCitation(text string) bool {
	return caseCitation.MatchString(text)
}

// Texts lists the citation strings in order.
func (s CitationSet) Texts() []string {
	out := make([]string, 0, len(s.Citations))
	for _, c := range s.Citations {
		out = append(out, c.Text)
	}
	return out
}

// ByType groups the set, keeping first-occurrence order inside each group.
func (s CitationSet) ByType() map[CitationType][]Citation {
	out := map[CitationType][]Citation{}
	for _, c := range s.Citations {
		out[c.Type] = append(out[c.Type], c)
	}
	return out
}

// Contains reports whether any citation in the set matches citation, ignoring spacing and case.
func (s CitationSet) Contains(citation string) bool {
	want := citationKey(citation)
	for _, c := range s.Citations {
		if citationKey(c.Text) == want {
			return true
		}
	}
	return false
}

func (t CitationType) String() string { return string(t) }

func (t CitationType) Label() string {
	switch t {
	case CitationsPrecedents:
		return "Case law"
	case CitationsStatutes:
		return "Statutes"
	case CitationsRegulations:
		return "Regulations"
	case CitationsConstitutional:
		return "Constitutional provisions"
	default:
		return fmt.Sprintf("%s citations", title(string(t)))
	}
}
