package research

import (
	"context"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

type SearchType string

const (
	SearchOpinions SearchType = "opinions"
	SearchDockets  SearchType = "dockets"
	SearchCourts   SearchType = "courts"
	SearchPeople   SearchType = "people"
)

type PaginationRequest struct {
	SearchType string
	Query      string
	Cursor     string
	MaxPages   int
}

// paginatedEndpoint maps a search type to its listing path and the filter the query goes into.
func paginatedEndpoint(t SearchType, query string) (string, url.Values, bool) {
	values := url.Values{}
	set := func(key string) {
		if query != "" {
			values.Set(key, query)
		}
	}
	switch t {
	case SearchOpinions:
		values.Set("type", courtlistener.SearchTypeOpinions)
		set("q")
		return "search/", values, true
	case SearchDockets:
		set("case_name__icontains")
		values.Set("fields", courtlistener.Fields(courtlistener.DocketFields...))
		return "dockets/", values, true
	case SearchCourts:
		set("full_name__icontains")
		values.Set("fields", courtlistener.Fields(courtlistener.CourtFields...))
		return "courts/", values, true
	case SearchPeople:
		set("name_full__icontains")
		values.Set("fields", courtlistener.Fields(courtlistener.PeopleFields...))
		return "people/", values, true
	}
	return "", nil, false
}

// SearchWithPagination walks up to MaxPages pages starting at Cursor. No
// state is kept; the returned next_cursor continues the walk.
func (s *Service) SearchWithPagination(ctx context.Context, req PaginationRequest) (PaginationResult, error) {
	typ := SearchType(strings.ToLower(strings.TrimSpace(req.SearchType)))
	path, params, ok := paginatedEndpoint(typ, strings.TrimSpace(req.Query))
	if !ok {
		return PaginationResult{}, courtlistener.Validationf("search_type must be one of opinions, dockets, courts, people; got %q", req.SearchType)
	}
	maxPages, err := validateMaxPages(req.MaxPages)
	if err != nil {
		return PaginationResult{}, err
	}

	set, err := s.api.Paginate(ctx, path, params, strings.TrimSpace(req.Cursor), maxPages)
	if err != nil {
		return PaginationResult{}, err
	}
	if len(set.Items) == 0 {
		return PaginationResult{}, courtlistener.NotFoundf("no %s found", typ)
	}
	if set.Warning != "" {
		s.log.Info("pagination stopped early", "search_type", typ, "pages", set.Pages, "warning", set.Warning)
	}

	items, n := s.reshape(typ, set.Items)
	return PaginationResult{
		SearchType: string(typ),
		Pages:      set.Pages,
		Count:      set.Count,
		Returned:   n,
		Items:      items,
		NextCursor: set.NextCursor,
		Warning:    set.Warning,
	}, nil
}

func (s *Service) reshape(t SearchType, raw []gjson.Result) (any, int) {
	switch t {
	case SearchOpinions:
		out := make([]CaseSummary, 0, len(raw))
		for _, r := range raw {
			out = append(out, s.caseFromHit(courtlistener.CaseHitFromResult(r)))
		}
		return out, len(out)
	case SearchDockets:
		out := make([]DocketSummary, 0, len(raw))
		for _, r := range raw {
			out = append(out, s.docketSummary(courtlistener.DocketFromResult(r)))
		}
		return out, len(out)
	case SearchCourts:
		out := make([]CourtSummary, 0, len(raw))
		for _, r := range raw {
			out = append(out, courtSummary(courtlistener.CourtFromResult(r)))
		}
		return out, len(out)
	default:
		out := make([]PersonSummary, 0, len(raw))
		for _, r := range raw {
			out = append(out, s.personSummary(courtlistener.PersonFromResult(r)))
		}
		return out, len(out)
	}
}
