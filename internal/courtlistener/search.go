package courtlistener

import (
	"context"
	"fmt"
)

// SearchOpinions runs a case-law search (type=o unless the params say otherwise).
func (c *Client) SearchOpinions(ctx context.Context, params SearchParams) (Page, []CaseHit, error) {
	if params.Type == "" {
		params.Type = SearchTypeOpinions
	}
	raw, err := c.Get(ctx, "search/", params)
	if err != nil {
		return Page{}, nil, err
	}
	page, err := parsePage(raw, "search")
	if err != nil {
		return Page{}, nil, err
	}
	hits := make([]CaseHit, 0, len(page.Results))
	for _, r := range page.Results {
		hits = append(hits, CaseHitFromResult(r))
	}
	return page, hits, nil
}

// CitingOpinions searches for opinions that cite opinionID, newest first.
func (c *Client) CitingOpinions(ctx context.Context, opinionID int) (Page, []CaseHit, error) {
	if opinionID <= 0 {
		return Page{}, nil, Validationf("opinion id must be positive, got %d", opinionID)
	}
	return c.SearchOpinions(ctx, SearchParams{
		Query:   fmt.Sprintf("cites:(%d)", opinionID),
		OrderBy: "dateFiled desc",
	})
}
