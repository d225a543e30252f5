package tools

import (
	"fmt"
	"strings"

	"github.com/roivaz/courtlistener-mcp/internal/analysis"
	"github.com/roivaz/courtlistener-mcp/internal/research"
)

const rule = "============================================================"

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func moreResults(b *strings.Builder, cursor string, omitted int) {
	if omitted > 0 {
		fmt.Fprintf(b, "%d more result(s) on this page were cut off by limit; repeat the search with a larger limit to see them.\n", omitted)
	}
	if cursor != "" {
		fmt.Fprintf(b, "More results available after this page. Continue with search_with_pagination using cursor %q.\n", cursor)
	}
}

func formatCases(res research.SearchCasesResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d cases (showing %d):\n\n", res.Count, res.Returned)
	for i, c := range res.Cases {
		writeCase(&b, i+1, c)
	}
	moreResults(&b, res.NextCursor, res.Omitted)
	return b.String()
}

func writeCase(b *strings.Builder, n int, c research.CaseSummary) {
	fmt.Fprintf(b, "%d. %s\n", n, orDefault(c.CaseName, "Unknown Case"))
	fmt.Fprintf(b, "   Court: %s\n", orDefault(c.Court, "Unknown Court"))
	fmt.Fprintf(b, "   Date: %s\n", orDefault(c.DateFiled, "Unknown Date"))
	fmt.Fprintf(b, "   Docket: %s\n", orDefault(c.DocketNumber, "N/A"))
	fmt.Fprintf(b, "   Cited by: %d\n", c.CitationCount)
	if len(c.Citations) > 0 {
		fmt.Fprintf(b, "   Citations: %s\n", strings.Join(c.Citations, "; "))
	}
	if c.Status != "" {
		fmt.Fprintf(b, "   Status: %s\n", c.Status)
	}
	if c.URL != "" {
		fmt.Fprintf(b, "   URL: %s\n", c.URL)
	}
	if c.Snippet != "" {
		fmt.Fprintf(b, "   Snippet: %s\n", c.Snippet)
	}
	b.WriteString("\n")
}

func formatCitation(res research.CitationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Citation %s matched %d case(s)", res.Citation, len(res.Cases))
	if len(res.Normalized) > 0 {
		fmt.Fprintf(&b, " (normalized: %s)", strings.Join(res.Normalized, ", "))
	}
	b.WriteString(":\n\n")
	for i, c := range res.Cases {
		writeCase(&b, i+1, c)
	}
	return b.String()
}

func formatDockets(res research.DocketsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d dockets (showing %d):\n\n", res.Count, res.Returned)
	for i, d := range res.Dockets {
		writeDocket(&b, i+1, d)
	}
	moreResults(&b, res.NextCursor, res.Omitted)
	return b.String()
}

func writeDocket(b *strings.Builder, n int, d research.DocketSummary) {
	fmt.Fprintf(b, "%d. %s\n", n, orDefault(d.CaseName, "Unknown Case"))
	fmt.Fprintf(b, "   Docket: %s\n", orDefault(d.DocketNumber, "N/A"))
	fmt.Fprintf(b, "   Court: %s\n", orDefault(d.Court, "Unknown"))
	fmt.Fprintf(b, "   Date Filed: %s\n", orDefault(d.DateFiled, "Unknown"))
	fmt.Fprintf(b, "   Nature of Suit: %s\n", orDefault(d.NatureOfSuit, "N/A"))
	if d.URL != "" {
		fmt.Fprintf(b, "   URL: %s\n", d.URL)
	}
	b.WriteString("\n")
}

func formatCourts(res research.CourtsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d courts (showing %d):\n\n", res.Count, res.Returned)
	for i, c := range res.Courts {
		writeCourt(&b, i+1, c)
	}
	moreResults(&b, res.NextCursor, res.Omitted)
	return b.String()
}

func writeCourt(b *strings.Builder, n int, c research.CourtSummary) {
	fmt.Fprintf(b, "%d. %s (%s)\n", n, orDefault(c.FullName, "Unknown Court"), c.ID)
	if c.Citation != "" {
		fmt.Fprintf(b, "   Citation: %s\n", c.Citation)
	}
	fmt.Fprintf(b, "   Jurisdiction: %s\n", orDefault(c.Jurisdiction, "N/A"))
	fmt.Fprintf(b, "   In use: %t\n", c.InUse)
	if c.StartDate != "" || c.EndDate != "" {
		fmt.Fprintf(b, "   Active: %s to %s\n", orDefault(c.StartDate, "?"), orDefault(c.EndDate, "present"))
	}
	if c.Website != "" {
		fmt.Fprintf(b, "   Website: %s\n", c.Website)
	}
	b.WriteString("\n")
}

func formatPeople(res research.PeopleResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d people (showing %d):\n\n", res.Count, res.Returned)
	for i, p := range res.People {
		writePerson(&b, i+1, p)
	}
	moreResults(&b, res.NextCursor, res.Omitted)
	return b.String()
}

func writePerson(b *strings.Builder, n int, p research.PersonSummary) {
	fmt.Fprintf(b, "%d. %s\n", n, orDefault(p.Name, "Unknown"))
	for _, pos := range p.Positions {
		fmt.Fprintf(b, "   - %s, %s (%s to %s)\n",
			orDefault(pos.PositionType, "Position"), orDefault(pos.Court, "unknown court"),
			orDefault(pos.DateStart, "?"), orDefault(pos.DateTermination, "present"))
	}
	if p.URL != "" {
		fmt.Fprintf(b, "   URL: %s\n", p.URL)
	}
	b.WriteString("\n")
}

func formatPagination(res research.PaginationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Retrieved %d %s across %d page(s) (%d total):\n\n", res.Returned, res.SearchType, res.Pages, res.Count)
	switch items := res.Items.(type) {
	case []research.CaseSummary:
		for i, c := range items {
			writeCase(&b, i+1, c)
		}
	case []research.DocketSummary:
		for i, d := range items {
			writeDocket(&b, i+1, d)
		}
	case []research.CourtSummary:
		for i, c := range items {
			writeCourt(&b, i+1, c)
		}
	case []research.PersonSummary:
		for i, p := range items {
			writePerson(&b, i+1, p)
		}
	}
	if res.Warning != "" {
		fmt.Fprintf(&b, "Warning: %s\n", res.Warning)
	}
	if res.NextCursor != "" {
		fmt.Fprintf(&b, "Next cursor: %s\n", res.NextCursor)
	}
	return b.String()
}

func formatOpinion(res research.OpinionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "OPINION DETAILS (ID: %d)\n", res.OpinionID)
	fmt.Fprintf(&b, "Case: %s\n", orDefault(res.CaseName, "Unknown"))
	fmt.Fprintf(&b, "Date Filed: %s\n", orDefault(res.DateFiled, "Unknown"))
	fmt.Fprintf(&b, "Author: %s\n", orDefault(res.Author, "Unknown"))
	fmt.Fprintf(&b, "Type: %s\n", orDefault(res.Type, "Unknown"))
	fmt.Fprintf(&b, "Cited by: %d\n", res.CitationCount)
	fmt.Fprintf(&b, "Precedential Status: %s\n", orDefault(res.PrecedentialStatus, "Unknown"))
	if res.DownloadURL != "" {
		fmt.Fprintf(&b, "PDF Download: %s\n", res.DownloadURL)
	}
	if res.Text != "" {
		fmt.Fprintf(&b, "\nOpinion Text (first %d of %d characters):\n%s\n\n", research.OpinionPreviewLength, res.TextLength, res.Text)
	}
	if res.URL != "" {
		fmt.Fprintf(&b, "Full URL: %s\n", res.URL)
	}
	return b.String()
}

func writeCaseInfo(b *strings.Builder, c research.CaseInfo) {
	fmt.Fprintf(b, "Case: %s\n", orDefault(c.CaseName, "Unknown"))
	fmt.Fprintf(b, "Court: %s\n", orDefault(c.Court, "Unknown"))
	fmt.Fprintf(b, "Date: %s\n", orDefault(c.DateFiled, "Unknown"))
	if c.DocketNumber != "" {
		fmt.Fprintf(b, "Docket: %s\n", c.DocketNumber)
	}
	fmt.Fprintf(b, "Author: %s\n", orDefault(c.Author, "Unknown"))
	if len(c.Citations) > 0 {
		fmt.Fprintf(b, "Citations: %s\n", strings.Join(c.Citations, "; "))
	}
	fmt.Fprintf(b, "Cited by: %d\n", c.CitationCount)
	fmt.Fprintf(b, "Opinion ID: %d\n", c.OpinionID)
	if c.URL != "" {
		fmt.Fprintf(b, "Full Case: %s\n", c.URL)
	}
}

func writeSection(b *strings.Builder, s research.SummarySection) {
	fmt.Fprintf(b, "\n%s\n", strings.ToUpper(s.Title))
	if len(s.Passages) == 0 {
		b.WriteString("  (no matching passages found)\n")
		return
	}
	for _, p := range s.Passages {
		fmt.Fprintf(b, "  - %s\n", p)
	}
}

func formatSummary(res research.CaseSummaryResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE SUMMARY (%s)\n%s\n", analysis.Title(res.SummaryType), rule)
	writeCaseInfo(&b, res.Case)
	fmt.Fprintf(&b, "Text analyzed: %d characters, %d sentences, about %d tokens", res.Stats.Characters, res.Stats.Sentences, res.Stats.EstimatedTokens)
	if res.Stats.Truncated {
		b.WriteString(" (truncated)")
	}
	fmt.Fprintf(&b, "\n%s\n", rule)
	for _, s := range res.Sections {
		writeSection(&b, s)
	}
	return b.String()
}

func formatComparison(res research.CompareResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE COMPARISON (%s)\n%s\n", analysis.Title(res.Focus), rule)
	width := 0
	for _, r := range res.Rows {
		width = max(width, len(r.Label))
	}
	for _, r := range res.Rows {
		fmt.Fprintf(&b, "%-*s  | %s\n%-*s  | %s\n", width, r.Label, r.Case1, width, "", r.Case2)
	}
	fmt.Fprintf(&b, "%s\n", rule)

	b.WriteString("\nCASE 1: " + res.Case1.CaseName)
	writeSection(&b, res.Case1Passages)
	b.WriteString("\nCASE 2: " + res.Case2.CaseName)
	writeSection(&b, res.Case2Passages)

	b.WriteString("\nRELATIONSHIP\n")
	fmt.Fprintf(&b, "  Case 1 cites case 2: %t\n", res.Case1CitesCase2)
	fmt.Fprintf(&b, "  Case 2 cites case 1: %t\n", res.Case2CitesCase1)
	if len(res.SharedCitations) > 0 {
		fmt.Fprintf(&b, "  Shared citations: %s\n", strings.Join(res.SharedCitations, "; "))
	} else {
		b.WriteString("  Shared citations: none\n")
	}
	return b.String()
}

func formatCitations(res research.CitationsResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CITATIONS IN %s (%s)\n%s\n", strings.ToUpper(orDefault(res.Case.CaseName, "case")), res.CitationType, rule)
	if res.Total == 0 {
		b.WriteString("No citations of the requested type were found in the opinion text.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%d distinct citation(s)\n", res.Total)
	for _, g := range res.Groups {
		fmt.Fprintf(&b, "\n%s (%d)\n", g.Label, len(g.Citations))
		for _, c := range g.Citations {
			if c.Count > 1 {
				fmt.Fprintf(&b, "  - %s (x%d)\n", c.Text, c.Count)
			} else {
				fmt.Fprintf(&b, "  - %s\n", c.Text)
			}
		}
	}
	return b.String()
}

func formatImpact(res research.ImpactResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE IMPACT (%s)\n%s\n", analysis.Title(res.AnalysisDepth), rule)
	writeCaseInfo(&b, res.Case)
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Impact: %s\n", res.Impact)
	fmt.Fprintf(&b, "Citation count: %d\n", res.CitationCount)
	fmt.Fprintf(&b, "Citing opinions found: %d\n", res.CitingOpinions)
	if res.MostRecentCitation != "" {
		fmt.Fprintf(&b, "Most recent citation: %s\n", res.MostRecentCitation)
	}
	fmt.Fprintf(&b, "Trend: %s\n", res.Trend)
	if len(res.ByYear) > 0 {
		b.WriteString("\nCiting opinions by year (latest page):\n")
		for _, y := range res.ByYear {
			fmt.Fprintf(&b, "  %d: %d\n", y.Year, y.Count)
		}
	}
	if len(res.RecentCiting) > 0 {
		b.WriteString("\nRecent citing cases:\n")
		for _, c := range res.RecentCiting {
			fmt.Fprintf(&b, "  - %s (%s, %s)\n", orDefault(c.CaseName, "Unknown"), orDefault(c.Court, "?"), orDefault(c.DateFiled, "?"))
		}
	}
	return b.String()
}
