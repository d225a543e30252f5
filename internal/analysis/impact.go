package analysis

import (
	"sort"
	"strconv"
	"time"
)

type AnalysisDepth string

const (
	DepthBasic         AnalysisDepth = "basic"
	DepthComprehensive AnalysisDepth = "comprehensive"
)

var AnalysisDepths = []AnalysisDepth{DepthBasic, DepthComprehensive}

func ParseAnalysisDepth(s string) (AnalysisDepth, error) {
	return parseEnum(s, DepthComprehensive, AnalysisDepths)
}

// CitingCase is one later opinion that cites the case under analysis.
type CitingCase struct {
	CaseName  string
	Court     string
	DateFiled string
	URL       string
}

type ImpactInput struct {
	// CitationCount is the cluster's citation_count as reported upstream.
	CitationCount int
	// CitingTotal is the total hit count of the citing-opinions search.
	CitingTotal int
	// Citing is the returned page of citing opinions, newest first.
	Citing []CitingCase
}

type YearCount struct {
	Year  int
	Count int
}

type Impact struct {
	Depth         AnalysisDepth
	Label         string
	CitationCount int
	CitingTotal   int
	MostRecent    string
	Trend         string
	ByYear        []YearCount
	Recent        []CitingCase
}

const recentLimit = 10

// AssessImpact labels a case's reach from the counts CourtListener already reports.
func AssessImpact(in ImpactInput, depth AnalysisDepth, now time.Time) Impact {
	reach := max(in.CitationCount, in.CitingTotal)
	out := Impact{
		Depth:         depth,
		Label:         impactLabel(reach),
		CitationCount: in.CitationCount,
		CitingTotal:   in.CitingTotal,
	}

	years := map[int]int{}
	latest := ""
	for _, c := range in.Citing {
		if c.DateFiled > latest {
			latest = c.DateFiled
		}
		if y := yearOf(c.DateFiled); y > 0 {
			years[y]++
		}
	}
	out.MostRecent = latest
	for y, n := range years {
		out.ByYear = append(out.ByYear, YearCount{Year: y, Count: n})
	}
	sort.Slice(out.ByYear, func(i, j int) bool { return out.ByYear[i].Year > out.ByYear[j].Year })
	out.Trend = trend(reach, yearOf(latest), now.Year())

	if depth == DepthComprehensive {
		out.Recent = firstNCiting(in.Citing, recentLimit)
	}
	return out
}

func impactLabel(reach int) string {
	switch {
	case reach == 0:
		return "No recorded citations"
	case reach < 10:
		return "Limited"
	case reach < 50:
		return "Moderate"
	case reach < 250:
		return "Significant"
	default:
		return "Landmark"
	}
}

func trend(reach, latestYear, currentYear int) string {
	switch {
	case reach == 0 || latestYear == 0:
		return "No citing opinions found"
	case currentYear-latestYear <= 2:
		return "Actively cited (most recent citation within the last two years)"
	case currentYear-latestYear <= 10:
		return "Cited within the last decade, but not recently"
	default:
		return "No citations in over a decade"
	}
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	y, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return y
}

func firstNCiting(c []CitingCase, n int) []CitingCase {
	if len(c) <= n {
		return c
	}
	return c[:n]
}
