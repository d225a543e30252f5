package research

import (
	"context"
	"fmt"

	"github.com/roivaz/courtlistener-mcp/internal/analysis"
	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

var (
	opinionMetaFields = []string{"id", "cluster", "author_str", "type", "download_url", "absolute_url"}
	opinionTextFields = []string{"plain_text", "html_with_citations", "html", "html_lawbox", "html_columbia", "xml_harvard", "html_anon_2020"}
	clusterFields     = []string{"id", "case_name", "case_name_short", "date_filed", "precedential_status", "citation_count", "citations", "judges", "docket", "docket_id", "sub_opinions", "absolute_url"}
	docketLookup      = []string{"id", "court", "court_id", "docket_number"}
)

// loadOptions controls how much of a case loadCase fetches.
type loadOptions struct {
	text    bool
	maxText int
}

// loadCase resolves raw and fetches the opinion, its cluster and, when the
// court is still unknown, the docket. With opts.text the opinion text is
// flattened to plain text and truncated.
func (s *Service) loadCase(ctx context.Context, raw string, opts loadOptions) (analysis.Document, error) {
	ref, err := s.resolver.ParseAndResolve(ctx, raw)
	if err != nil {
		return analysis.Document{}, err
	}

	var cluster *courtlistener.Cluster
	opinionID := ref.OpinionID
	if opinionID == 0 {
		c, err := s.api.Cluster(ctx, ref.ClusterID, clusterFields...)
		if err != nil {
			return analysis.Document{}, err
		}
		if len(c.SubOpinionIDs) == 0 {
			return analysis.Document{}, courtlistener.NotFoundf("case %q (cluster %d) has no opinions", raw, c.ID)
		}
		cluster = &c
		opinionID = c.SubOpinionIDs[0]
	}

	fields := opinionMetaFields
	if opts.text {
		fields = append(append([]string{}, opinionMetaFields...), opinionTextFields...)
	}
	op, err := s.api.Opinion(ctx, opinionID, fields...)
	if err != nil {
		return analysis.Document{}, err
	}

	if cluster == nil {
		switch {
		case op.Cluster != nil:
			cluster = op.Cluster
		case op.ClusterID != 0:
			c, err := s.api.Cluster(ctx, op.ClusterID, clusterFields...)
			if err != nil {
				return analysis.Document{}, err
			}
			cluster = &c
		default:
			return analysis.Document{}, &courtlistener.Error{Kind: courtlistener.KindUpstreamFormat, Message: "opinion response carries no cluster reference"}
		}
	}

	doc := analysis.Document{
		OpinionID:     op.ID,
		ClusterID:     cluster.ID,
		CaseName:      cluster.CaseName,
		Court:         cluster.Court,
		DateFiled:     cluster.DateFiled,
		DocketNumber:  cluster.DocketNumber,
		Author:        op.Author,
		Status:        cluster.PrecedentialStatus,
		CitationCount: cluster.CitationCount,
		Citations:     cluster.Citations,
		URL:           s.api.SiteURL(firstNonEmpty(cluster.AbsoluteURL, op.AbsoluteURL)),
	}
	if ref.Hit != nil {
		doc.Court = firstNonEmpty(ref.Hit.Court, ref.Hit.CourtID, doc.Court)
		doc.DocketNumber = firstNonEmpty(doc.DocketNumber, ref.Hit.DocketNumber)
	}
	if (doc.Court == "" || doc.DocketNumber == "") && cluster.DocketID != 0 {
		d, err := s.api.Docket(ctx, cluster.DocketID, docketLookup...)
		switch {
		case err == nil:
			doc.Court = firstNonEmpty(doc.Court, d.Court)
			doc.DocketNumber = firstNonEmpty(doc.DocketNumber, d.DocketNumber)
		case courtlistener.IsKind(err, courtlistener.KindNotFound):
			s.log.Debug("docket not found", "docket_id", cluster.DocketID)
		default:
			return analysis.Document{}, err
		}
	}

	if !opts.text {
		return doc, nil
	}

	text, isHTML := op.Text()
	if isHTML {
		text = analysis.HTMLToText(text)
	} else {
		text = analysis.NormalizeSpace(text)
	}
	if text == "" {
		return analysis.Document{}, courtlistener.NotFoundf("no text available for %s (opinion %d); the case may only have a PDF version", displayName(doc), doc.OpinionID)
	}
	doc.Text, doc.Truncated = analysis.Truncate(text, opts.maxText)
	return doc, nil
}

// labelled prefixes err's message with which argument produced it, keeping its kind.
func labelled(err error, label string) error {
	typed, ok := courtlistener.AsError(err)
	if !ok {
		return fmt.Errorf("%s: %w", label, err)
	}
	out := *typed
	out.Message = label + ": " + typed.Message
	return &out
}

func displayName(d analysis.Document) string {
	if d.CaseName != "" {
		return d.CaseName
	}
	return "this case"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
