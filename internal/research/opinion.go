package research

import (
	"context"

	"github.com/roivaz/courtlistener-mcp/internal/analysis"
	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

type GetOpinionRequest struct {
	OpinionID   int
	IncludeText bool
}

// GetOpinion returns one opinion's details, optionally with the first
// OpinionPreviewLength characters of its text.
func (s *Service) GetOpinion(ctx context.Context, req GetOpinionRequest) (OpinionResult, error) {
	if err := positive("opinion_id", req.OpinionID); err != nil {
		return OpinionResult{}, err
	}
	fields := opinionMetaFields
	if req.IncludeText {
		fields = append(append([]string{}, opinionMetaFields...), opinionTextFields...)
	}
	op, err := s.api.Opinion(ctx, req.OpinionID, fields...)
	if err != nil {
		return OpinionResult{}, err
	}

	out := OpinionResult{
		OpinionID:   op.ID,
		ClusterID:   op.ClusterID,
		Author:      op.Author,
		Type:        op.Type,
		DownloadURL: op.DownloadURL,
		URL:         s.api.SiteURL(op.AbsoluteURL),
	}

	cluster := op.Cluster
	if cluster == nil && op.ClusterID != 0 {
		c, err := s.api.Cluster(ctx, op.ClusterID, clusterFields...)
		switch {
		case err == nil:
			cluster = &c
		case courtlistener.IsKind(err, courtlistener.KindNotFound):
			s.log.Debug("cluster not found for opinion", "opinion_id", op.ID, "cluster_id", op.ClusterID)
		default:
			return OpinionResult{}, err
		}
	}
	if cluster != nil {
		out.CaseName = cluster.CaseName
		out.DateFiled = cluster.DateFiled
		out.CitationCount = cluster.CitationCount
		out.PrecedentialStatus = cluster.PrecedentialStatus
		if out.URL == "" {
			out.URL = s.api.SiteURL(cluster.AbsoluteURL)
		}
	}

	if req.IncludeText {
		text, isHTML := op.Text()
		if isHTML {
			text = analysis.HTMLToText(text)
		}
		out.TextLength = len([]rune(text))
		out.Text = analysis.Preview(text, OpinionPreviewLength)
	}
	return out, nil
}
