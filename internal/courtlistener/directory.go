package courtlistener

import (
	"context"
)

var (
	DocketFields = []string{"id", "case_name", "docket_number", "court", "court_id", "date_filed", "date_argued", "nature_of_suit", "absolute_url"}
	CourtFields  = []string{"id", "full_name", "short_name", "citation_string", "jurisdiction", "in_use", "start_date", "end_date", "url"}
	PeopleFields = []string{"id", "name_full", "name_first", "name_middle", "name_last", "name_suffix", "date_dob", "absolute_url", "positions"}
)

func (c *Client) Dockets(ctx context.Context, params DocketParams) (Page, []Docket, error) {
	if params.Fields == "" {
		params.Fields = Fields(DocketFields...)
	}
	page, err := c.list(ctx, "dockets/", params)
	if err != nil {
		return Page{}, nil, err
	}
	out := make([]Docket, 0, len(page.Results))
	for _, r := range page.Results {
		out = append(out, DocketFromResult(r))
	}
	return page, out, nil
}

func (c *Client) Courts(ctx context.Context, params CourtParams) (Page, []Court, error) {
	if params.Fields == "" {
		params.Fields = Fields(CourtFields...)
	}
	page, err := c.list(ctx, "courts/", params)
	if err != nil {
		return Page{}, nil, err
	}
	out := make([]Court, 0, len(page.Results))
	for _, r := range page.Results {
		out = append(out, CourtFromResult(r))
	}
	return page, out, nil
}

func (c *Client) People(ctx context.Context, params PeopleParams) (Page, []Person, error) {
	if params.Fields == "" {
		params.Fields = Fields(PeopleFields...)
	}
	page, err := c.list(ctx, "people/", params)
	if err != nil {
		return Page{}, nil, err
	}
	out := make([]Person, 0, len(page.Results))
	for _, r := range page.Results {
		out = append(out, PersonFromResult(r))
	}
	return page, out, nil
}

func (c *Client) list(ctx context.Context, path string, params any) (Page, error) {
	raw, err := c.Get(ctx, path, params)
	if err != nil {
		return Page{}, err
	}
	return parsePage(raw, path)
}
