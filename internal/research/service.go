// Package research implements the legal-research operations behind the MCP
// tools on top of the CourtListener client.
package research

import (
	"context"
	"time"

	"github.com/roivaz/courtlistener-mcp/internal/caseref"
	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/logging"
)

// API is the subset of *courtlistener.Client the service depends on.
type API interface {
	SearchOpinions(ctx context.Context, params courtlistener.SearchParams) (courtlistener.Page, []courtlistener.CaseHit, error)
	CitingOpinions(ctx context.Context, opinionID int) (courtlistener.Page, []courtlistener.CaseHit, error)
	LookupCitation(ctx context.Context, text string) ([]courtlistener.CitationMatch, error)
	Dockets(ctx context.Context, params courtlistener.DocketParams) (courtlistener.Page, []courtlistener.Docket, error)
	Courts(ctx context.Context, params courtlistener.CourtParams) (courtlistener.Page, []courtlistener.Court, error)
	People(ctx context.Context, params courtlistener.PeopleParams) (courtlistener.Page, []courtlistener.Person, error)
	Opinion(ctx context.Context, id int, fields ...string) (courtlistener.Opinion, error)
	Cluster(ctx context.Context, id int, fields ...string) (courtlistener.Cluster, error)
	Docket(ctx context.Context, id int, fields ...string) (courtlistener.Docket, error)
	Paginate(ctx context.Context, path string, params any, cursor string, maxPages int) (courtlistener.PageSet, error)
	SiteURL(path string) string
	BaseURL() string
}

type Service struct {
	api      API
	resolver *caseref.Resolver
	log      logging.Logger
	now      func() time.Time
}

func NewService(api API, log logging.Logger) *Service {
	log = log.WithName("research")
	return &Service{
		api:      api,
		resolver: caseref.NewResolver(api, log),
		log:      log,
		now:      time.Now,
	}
}
