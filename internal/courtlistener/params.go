package courtlistener

import (
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// SearchTypeOpinions is the v4 search type for case law.
const SearchTypeOpinions = "o"

// SearchParams is the query for GET search/. Unset fields are omitted from the URL.
type SearchParams struct {
	Type        string `url:"type,omitempty"`
	Query       string `url:"q,omitempty"`
	CaseName    string `url:"case_name,omitempty"`
	Citation    string `url:"citation,omitempty"`
	Court       string `url:"court,omitempty"`
	FiledAfter  string `url:"filed_after,omitempty"`
	FiledBefore string `url:"filed_before,omitempty"`
	CitedGT     *int   `url:"cited_gt,omitempty"`
	Judge       string `url:"judge,omitempty"`
	Highlight   string `url:"highlight,omitempty"`
	OrderBy     string `url:"order_by,omitempty"`
	Cursor      string `url:"cursor,omitempty"`
}

// DocketParams is the query for GET dockets/.
type DocketParams struct {
	CaseName     string `url:"case_name__icontains,omitempty"`
	DocketNumber string `url:"docket_number__icontains,omitempty"`
	Court        string `url:"court,omitempty"`
	NatureOfSuit string `url:"nature_of_suit__icontains,omitempty"`
	FiledAfter   string `url:"date_filed__gte,omitempty"`
	FiledBefore  string `url:"date_filed__lte,omitempty"`
	Fields       string `url:"fields,omitempty"`
	Cursor       string `url:"cursor,omitempty"`
}

// CourtParams is the query for GET courts/.
type CourtParams struct {
	ID           string `url:"id,omitempty"`
	Name         string `url:"full_name__icontains,omitempty"`
	Jurisdiction string `url:"jurisdiction,omitempty"`
	Fields       string `url:"fields,omitempty"`
	Cursor       string `url:"cursor,omitempty"`
}

// PeopleParams is the query for GET people/.
type PeopleParams struct {
	Name         string `url:"name_full__icontains,omitempty"`
	Court        string `url:"positions__court,omitempty"`
	PositionType string `url:"positions__position_type,omitempty"`
	Fields       string `url:"fields,omitempty"`
	Cursor       string `url:"cursor,omitempty"`
}

type fieldParams struct {
	Fields string `url:"fields,omitempty"`
}

// Fields joins a field projection the way the API expects it.
func Fields(names ...string) string {
	return strings.Join(names, ",")
}

// EncodeParams turns a tagged params struct into query values.
func EncodeParams(params any) (url.Values, error) {
	if params == nil {
		return url.Values{}, nil
	}
	if v, ok := params.(url.Values); ok {
		return v, nil
	}
	values, err := query.Values(params)
	if err != nil {
		return nil, Validationf("invalid query parameters: %v", err)
	}
	return values, nil
}

// CursorFromNext extracts the opaque cursor token from a "next" page URL.
func CursorFromNext(next string) string {
	if next == "" {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return u.Query().Get("cursor")
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
