package research

import (
	"context"

	"github.com/roivaz/courtlistener-mcp/internal/analysis"
)

type CaseSummaryRequest struct {
	Identifier    string
	SummaryType   string
	MaxTextLength int
}

func (s *Service) GetCaseSummary(ctx context.Context, req CaseSummaryRequest) (CaseSummaryResult, error) {
	typ, err := analysis.ParseSummaryType(req.SummaryType)
	if err != nil {
		return CaseSummaryResult{}, err
	}
	if err := positive("max_text_length", req.MaxTextLength); err != nil {
		return CaseSummaryResult{}, err
	}

	doc, err := s.loadCase(ctx, req.Identifier, loadOptions{text: true, maxText: req.MaxTextLength})
	if err != nil {
		return CaseSummaryResult{}, err
	}
	sum := analysis.Summarize(doc, typ)

	out := CaseSummaryResult{
		Case:        caseInfo(doc),
		SummaryType: string(typ),
		Stats: TextStats{
			Characters:      sum.Stats.Characters,
			Sentences:       sum.Stats.Sentences,
			Chunks:          sum.Stats.Chunks,
			EstimatedTokens: sum.Stats.EstimatedTokens,
			Truncated:       sum.Stats.Truncated,
		},
	}
	for _, sec := range sum.Sections {
		out.Sections = append(out.Sections, section(sec))
	}
	return out, nil
}

type CompareRequest struct {
	Case1 string
	Case2 string
	Focus string
}

// CompareCases resolves both identifiers one after the other. A failure on
// either side fails the call with that side's error, labelled by argument name.
func (s *Service) CompareCases(ctx context.Context, req CompareRequest) (CompareResult, error) {
	focus, err := analysis.ParseComparisonFocus(req.Focus)
	if err != nil {
		return CompareResult{}, err
	}

	opts := loadOptions{text: true, maxText: CompareTextLength}
	a, err := s.loadCase(ctx, req.Case1, opts)
	if err != nil {
		return CompareResult{}, labelled(err, "case1_identifier "+quote(req.Case1))
	}
	b, err := s.loadCase(ctx, req.Case2, opts)
	if err != nil {
		return CompareResult{}, labelled(err, "case2_identifier "+quote(req.Case2))
	}

	cmp := analysis.Compare(a, b, focus)
	out := CompareResult{
		Focus:           string(focus),
		Case1:           caseInfo(a),
		Case2:           caseInfo(b),
		Case1Passages:   section(cmp.A),
		Case2Passages:   section(cmp.B),
		SharedCitations: cmp.SharedCitations,
		Case1CitesCase2: cmp.ACitesB,
		Case2CitesCase1: cmp.BCitesA,
	}
	if out.SharedCitations == nil {
		out.SharedCitations = []string{}
	}
	for _, r := range cmp.Rows {
		out.Rows = append(out.Rows, ComparisonRow{Label: r.Label, Case1: r.A, Case2: r.B})
	}
	return out, nil
}

type ExtractCitationsRequest struct {
	Identifier   string
	CitationType string
}

// ExtractCaseCitations scans the full opinion text, not a truncated prefix.
func (s *Service) ExtractCaseCitations(ctx context.Context, req ExtractCitationsRequest) (CitationsResult, error) {
	typ, err := analysis.ParseCitationType(req.CitationType)
	if err != nil {
		return CitationsResult{}, err
	}
	doc, err := s.loadCase(ctx, req.Identifier, loadOptions{text: true})
	if err != nil {
		return CitationsResult{}, err
	}

	set := analysis.ExtractCitations(doc.Text, typ)
	out := CitationsResult{
		Case:         caseInfo(doc),
		CitationType: string(typ),
		Total:        len(set.Citations),
		Groups:       []CitationGroup{},
	}
	grouped := set.ByType()
	for _, t := range analysis.CitationTypes {
		cites := grouped[t]
		if len(cites) == 0 {
			continue
		}
		g := CitationGroup{Type: string(t), Label: t.Label()}
		for _, c := range cites {
			g.Citations = append(g.Citations, CitationEntry{Text: c.Text, Count: c.Count})
		}
		out.Groups = append(out.Groups, g)
	}
	return out, nil
}

type ImpactRequest struct {
	Identifier string
	Depth      string
}

// AnalyzeCaseImpact combines the cluster's citation count with one search
// for opinions citing the case.
func (s *Service) AnalyzeCaseImpact(ctx context.Context, req ImpactRequest) (ImpactResult, error) {
	depth, err := analysis.ParseAnalysisDepth(req.Depth)
	if err != nil {
		return ImpactResult{}, err
	}
	doc, err := s.loadCase(ctx, req.Identifier, loadOptions{})
	if err != nil {
		return ImpactResult{}, err
	}

	page, hits, err := s.api.CitingOpinions(ctx, doc.OpinionID)
	if err != nil {
		return ImpactResult{}, err
	}
	in := analysis.ImpactInput{CitationCount: doc.CitationCount, CitingTotal: page.Count}
	for _, h := range hits {
		in.Citing = append(in.Citing, analysis.CitingCase{
			CaseName:  h.CaseName,
			Court:     h.Court,
			DateFiled: h.DateFiled,
			URL:       s.api.SiteURL(h.AbsoluteURL),
		})
	}
	impact := analysis.AssessImpact(in, depth, s.now())

	out := ImpactResult{
		Case:               caseInfo(doc),
		AnalysisDepth:      string(depth),
		Impact:             impact.Label,
		CitationCount:      impact.CitationCount,
		CitingOpinions:     impact.CitingTotal,
		MostRecentCitation: impact.MostRecent,
		Trend:              impact.Trend,
	}
	for _, y := range impact.ByYear {
		out.ByYear = append(out.ByYear, YearCount{Year: y.Year, Count: y.Count})
	}
	for _, c := range impact.Recent {
		out.RecentCiting = append(out.RecentCiting, CitingCase{CaseName: c.CaseName, Court: c.Court, DateFiled: c.DateFiled, URL: c.URL})
	}
	return out, nil
}

func section(s analysis.Section) SummarySection {
	passages := s.Passages
	if passages == nil {
		passages = []string{}
	}
	return SummarySection{Title: s.Title, Passages: passages}
}

func quote(s string) string {
	return "\"" + s + "\""
}
