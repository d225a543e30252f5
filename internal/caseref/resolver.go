package caseref

import (
	"context"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/logging"
)

// Searcher is the slice of the API client needed for name resolution.
type Searcher interface {
	SearchOpinions(ctx context.Context, params courtlistener.SearchParams) (courtlistener.Page, []courtlistener.CaseHit, error)
}

// Ref is a resolved case. OpinionID may be 0 when only the cluster is known
// (site URLs); the fetcher then takes the cluster's first sub-opinion.
type Ref struct {
	OpinionID int
	ClusterID int
	// Hit is the search result a name resolved to, if any.
	Hit *courtlistener.CaseHit
}

type Resolver struct {
	search Searcher
	log    logging.Logger
}

func NewResolver(search Searcher, log logging.Logger) *Resolver {
	return &Resolver{search: search, log: log.WithName("caseref")}
}

func (r *Resolver) Resolve(ctx context.Context, id Identifier) (Ref, error) {
	switch id.Kind {
	case KindID, KindURL:
		return Ref{OpinionID: id.OpinionID, ClusterID: id.ClusterID}, nil
	case KindName:
		return r.resolveName(ctx, id.Name)
	default:
		return Ref{}, courtlistener.Validationf("unsupported identifier kind %s", id.Kind)
	}
}

// ParseAndResolve is Parse followed by Resolve.
func (r *Resolver) ParseAndResolve(ctx context.Context, raw string) (Ref, error) {
	id, err := Parse(raw)
	if err != nil {
		return Ref{}, err
	}
	return r.Resolve(ctx, id)
}

func (r *Resolver) resolveName(ctx context.Context, name string) (Ref, error) {
	params := courtlistener.SearchParams{CaseName: name}
	if LooksLikeCitation(name) {
		params = courtlistener.SearchParams{Citation: name}
	}
	_, hits, err := r.search.SearchOpinions(ctx, params)
	if err != nil {
		return Ref{}, err
	}
	if len(hits) == 0 {
		return Ref{}, courtlistener.NotFoundf("no cases found for %q", name)
	}

	top := hits[0]
	r.log.Debug("resolved case name", "name", name, "cluster_id", top.ClusterID, "opinion_id", top.OpinionID, "candidates", len(hits))
	if top.ClusterID == 0 && top.OpinionID == 0 {
		return Ref{}, courtlistener.NotFoundf("top search result for %q carries no opinion id", name)
	}
	return Ref{OpinionID: top.OpinionID, ClusterID: top.ClusterID, Hit: &top}, nil
}
