package research

import (
	"context"
	"strings"

	"github.com/roivaz/courtlistener-mcp/internal/analysis"
	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

type SearchCasesRequest struct {
	Query       string
	CaseName    string
	Court       string
	FiledAfter  string
	FiledBefore string
	CitedGT     *int
	Judge       string
	Highlight   string
	Limit       int
}

// SearchCases runs one opinion search and returns up to Limit hits.
func (s *Service) SearchCases(ctx context.Context, req SearchCasesRequest) (SearchCasesResult, error) {
	limit, err := validateLimit(req.Limit)
	if err != nil {
		return SearchCasesResult{}, err
	}
	if err := validateDateRange("date_filed_after", req.FiledAfter, "date_filed_before", req.FiledBefore); err != nil {
		return SearchCasesResult{}, err
	}
	if req.CitedGT != nil && *req.CitedGT < 0 {
		return SearchCasesResult{}, courtlistener.Validationf("cited_gt must be a non-negative integer, got %d", *req.CitedGT)
	}
	highlight, err := validateHighlight(req.Highlight)
	if err != nil {
		return SearchCasesResult{}, err
	}

	page, hits, err := s.api.SearchOpinions(ctx, courtlistener.SearchParams{
		Query:       strings.TrimSpace(req.Query),
		CaseName:    strings.TrimSpace(req.CaseName),
		Court:       strings.TrimSpace(req.Court),
		FiledAfter:  req.FiledAfter,
		FiledBefore: req.FiledBefore,
		CitedGT:     req.CitedGT,
		Judge:       strings.TrimSpace(req.Judge),
		Highlight:   highlight,
	})
	if err != nil {
		return SearchCasesResult{}, err
	}
	if len(hits) == 0 {
		return SearchCasesResult{}, courtlistener.NotFoundf("no cases matched the search")
	}

	out := SearchCasesResult{Count: page.Count, NextCursor: page.NextCursor()}
	for _, h := range take(hits, limit) {
		out.Cases = append(out.Cases, s.caseFromHit(h))
	}
	out.Returned = len(out.Cases)
	out.Omitted = len(hits) - out.Returned
	return out, nil
}

func (s *Service) caseFromHit(h courtlistener.CaseHit) CaseSummary {
	return CaseSummary{
		CaseName:      h.CaseName,
		Court:         h.Court,
		CourtID:       h.CourtID,
		DateFiled:     h.DateFiled,
		DocketNumber:  h.DocketNumber,
		Status:        h.Status,
		CitationCount: h.CiteCount,
		Citations:     h.Citations,
		Snippet:       analysis.HighlightsToMarkdown(h.Snippet),
		URL:           s.api.SiteURL(h.AbsoluteURL),
		ClusterID:     h.ClusterID,
		OpinionID:     h.OpinionID,
	}
}

// LookupCitation resolves citation text such as "410 U.S. 113", "347 U.S. 483 (1954)"
// or "410 U.S. 113, 153". The whole text goes upstream, which parses it; locally it
// only has to contain one reporter citation.
func (s *Service) LookupCitation(ctx context.Context, citation string) (CitationResult, error) {
	citation = strings.Join(strings.Fields(citation), " ")
	if !analysis.ContainsCaseCitation(citation) {
		return CitationResult{}, courtlistener.Validationf("citation must contain \"<volume> <reporter> <page>\", e.g. \"410 U.S. 113\"; got %q", citation)
	}

	matches, err := s.api.LookupCitation(ctx, citation)
	if err != nil {
		return CitationResult{}, err
	}

	out := CitationResult{Citation: citation}
	for _, m := range matches {
		out.Normalized = append(out.Normalized, m.Normalized...)
		for _, c := range m.Clusters {
			cs, err := s.caseFromCluster(ctx, c)
			if err != nil {
				return CitationResult{}, err
			}
			out.Cases = append(out.Cases, cs)
		}
	}
	if len(out.Cases) == 0 {
		msg := "citation " + citation + " not found"
		for _, m := range matches {
			if m.ErrorMessage != "" {
				msg += ": " + m.ErrorMessage
				break
			}
		}
		return CitationResult{}, courtlistener.NotFoundf("%s", msg)
	}
	return out, nil
}

// caseFromCluster fills court and docket number from the cluster's docket,
// which citation lookups only link to.
func (s *Service) caseFromCluster(ctx context.Context, c courtlistener.Cluster) (CaseSummary, error) {
	cs := CaseSummary{
		CaseName:      c.CaseName,
		Court:         c.Court,
		DateFiled:     c.DateFiled,
		DocketNumber:  c.DocketNumber,
		Status:        c.PrecedentialStatus,
		CitationCount: c.CitationCount,
		Citations:     c.Citations,
		URL:           s.api.SiteURL(c.AbsoluteURL),
		ClusterID:     c.ID,
	}
	if len(c.SubOpinionIDs) > 0 {
		cs.OpinionID = c.SubOpinionIDs[0]
	}
	if (cs.Court != "" && cs.DocketNumber != "") || c.DocketID == 0 {
		return cs, nil
	}
	d, err := s.api.Docket(ctx, c.DocketID, docketLookup...)
	if err != nil {
		if courtlistener.IsKind(err, courtlistener.KindNotFound) {
			return cs, nil
		}
		return CaseSummary{}, err
	}
	cs.Court = firstNonEmpty(cs.Court, d.Court)
	cs.DocketNumber = firstNonEmpty(cs.DocketNumber, d.DocketNumber)
	return cs, nil
}

type SearchDocketsRequest struct {
	CaseName     string
	DocketNumber string
	Court        string
	NatureOfSuit string
	FiledAfter   string
	FiledBefore  string
	Limit        int
}

func (s *Service) SearchDockets(ctx context.Context, req SearchDocketsRequest) (DocketsResult, error) {
	limit, err := validateLimit(req.Limit)
	if err != nil {
		return DocketsResult{}, err
	}
	if err := validateDateRange("date_filed_after", req.FiledAfter, "date_filed_before", req.FiledBefore); err != nil {
		return DocketsResult{}, err
	}

	page, dockets, err := s.api.Dockets(ctx, courtlistener.DocketParams{
		CaseName:     strings.TrimSpace(req.CaseName),
		DocketNumber: strings.TrimSpace(req.DocketNumber),
		Court:        strings.TrimSpace(req.Court),
		NatureOfSuit: strings.TrimSpace(req.NatureOfSuit),
		FiledAfter:   req.FiledAfter,
		FiledBefore:  req.FiledBefore,
	})
	if err != nil {
		return DocketsResult{}, err
	}
	if len(dockets) == 0 {
		return DocketsResult{}, courtlistener.NotFoundf("no dockets matched the search")
	}

	out := DocketsResult{Count: page.Count, NextCursor: page.NextCursor()}
	for _, d := range take(dockets, limit) {
		out.Dockets = append(out.Dockets, s.docketSummary(d))
	}
	out.Returned = len(out.Dockets)
	out.Omitted = len(dockets) - out.Returned
	return out, nil
}

func (s *Service) docketSummary(d courtlistener.Docket) DocketSummary {
	return DocketSummary{
		ID:           d.ID,
		CaseName:     d.CaseName,
		DocketNumber: d.DocketNumber,
		Court:        d.Court,
		DateFiled:    d.DateFiled,
		NatureOfSuit: d.NatureOfSuit,
		URL:          s.api.SiteURL(d.AbsoluteURL),
	}
}

type SearchCourtsRequest struct {
	Name         string
	Jurisdiction string
	Limit        int
}

func (s *Service) SearchCourts(ctx context.Context, req SearchCourtsRequest) (CourtsResult, error) {
	limit, err := validateLimit(req.Limit)
	if err != nil {
		return CourtsResult{}, err
	}
	page, courts, err := s.api.Courts(ctx, courtlistener.CourtParams{
		Name:         strings.TrimSpace(req.Name),
		Jurisdiction: strings.TrimSpace(req.Jurisdiction),
	})
	if err != nil {
		return CourtsResult{}, err
	}
	if len(courts) == 0 {
		return CourtsResult{}, courtlistener.NotFoundf("no courts matched the search")
	}

	out := CourtsResult{Count: page.Count, NextCursor: page.NextCursor()}
	for _, c := range take(courts, limit) {
		out.Courts = append(out.Courts, courtSummary(c))
	}
	out.Returned = len(out.Courts)
	out.Omitted = len(courts) - out.Returned
	return out, nil
}

func courtSummary(c courtlistener.Court) CourtSummary {
	return CourtSummary{
		ID:           c.ID,
		FullName:     c.FullName,
		ShortName:    c.ShortName,
		Citation:     c.Citation,
		Jurisdiction: c.Jurisdiction,
		InUse:        c.InUse,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		Website:      c.URL,
	}
}

type SearchPeopleRequest struct {
	Name         string
	Court        string
	PositionType string
	Limit        int
}

func (s *Service) SearchPeople(ctx context.Context, req SearchPeopleRequest) (PeopleResult, error) {
	limit, err := validateLimit(req.Limit)
	if err != nil {
		return PeopleResult{}, err
	}
	page, people, err := s.api.People(ctx, courtlistener.PeopleParams{
		Name:         strings.TrimSpace(req.Name),
		Court:        strings.TrimSpace(req.Court),
		PositionType: strings.TrimSpace(req.PositionType),
	})
	if err != nil {
		return PeopleResult{}, err
	}
	if len(people) == 0 {
		return PeopleResult{}, courtlistener.NotFoundf("no people matched the search")
	}

	out := PeopleResult{Count: page.Count, NextCursor: page.NextCursor()}
	for _, p := range take(people, limit) {
		out.People = append(out.People, s.personSummary(p))
	}
	out.Returned = len(out.People)
	out.Omitted = len(people) - out.Returned
	return out, nil
}

const maxPositions = 3

func (s *Service) personSummary(p courtlistener.Person) PersonSummary {
	ps := PersonSummary{ID: p.ID, Name: p.Name, URL: s.api.SiteURL(p.AbsoluteURL)}
	for _, pos := range take(p.Positions, maxPositions) {
		ps.Positions = append(ps.Positions, PositionSummary{
			Court:           pos.Court,
			PositionType:    pos.PositionType,
			DateStart:       pos.DateStart,
			DateTermination: pos.DateTermination,
		})
	}
	return ps
}
