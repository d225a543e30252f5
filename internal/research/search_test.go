package research

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

func intPtr(n int) *int { return &n }

func TestSearchCasesValidatesBeforeNetwork(t *testing.T) {
	cases := []struct {
		name string
		req  SearchCasesRequest
		want string
	}{
		{"zero limit", SearchCasesRequest{Query: "privacy", Limit: 0}, "limit"},
		{"negative limit", SearchCasesRequest{Query: "privacy", Limit: -1}, "limit"},
		{"bad date", SearchCasesRequest{Limit: 5, FiledAfter: "01/02/2020"}, "date_filed_after"},
		{"inverted range", SearchCasesRequest{Limit: 5, FiledAfter: "2021-01-01", FiledBefore: "2020-01-01"}, "is after"},
		{"negative cited_gt", SearchCasesRequest{Limit: 5, CitedGT: intPtr(-2)}, "cited_gt"},
		{"bad highlight", SearchCasesRequest{Limit: 5, Highlight: "maybe"}, "highlight"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{}
			_, err := newTestService(api).SearchCases(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, courtlistener.IsKind(err, courtlistener.KindValidation))
			assert.Contains(t, err.Error(), tc.want)
			assert.Empty(t, api.calls)
		})
	}
}

func TestSearchCasesTruncatesToLimit(t *testing.T) {
	api := &fakeAPI{hits: []courtlistener.CaseHit{
		{CaseName: "A v. B", ClusterID: 1, Snippet: "<mark>privacy</mark> right", AbsoluteURL: "/opinion/1/a-v-b/"},
		{CaseName: "C v. D", ClusterID: 2},
		{CaseName: "E v. F", ClusterID: 3},
	}}
	res, err := newTestService(api).SearchCases(context.Background(), SearchCasesRequest{Query: " privacy ", CitedGT: intPtr(0), Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 2, res.Returned)
	assert.Equal(t, 1, res.Omitted)
	require.Len(t, res.Cases, 2)
	assert.Equal(t, "**privacy** right", res.Cases[0].Snippet)
	assert.Equal(t, "https://www.courtlistener.com/opinion/1/a-v-b/", res.Cases[0].URL)

	require.Len(t, api.searchParams, 1)
	assert.Equal(t, "privacy", api.searchParams[0].Query)
	assert.Equal(t, "on", api.searchParams[0].Highlight)
	require.NotNil(t, api.searchParams[0].CitedGT)
	assert.Equal(t, 0, *api.searchParams[0].CitedGT)
}

func TestSearchCasesNoResultsIsNotFound(t *testing.T) {
	_, err := newTestService(&fakeAPI{}).SearchCases(context.Background(), SearchCasesRequest{Query: "zzz", Limit: 5})
	assert.True(t, courtlistener.IsKind(err, courtlistener.KindNotFound))
}

func TestLookupCitation(t *testing.T) {
	t.Run("rejects malformed input without calling the API", func(t *testing.T) {
		api := &fakeAPI{}
		_, err := newTestService(api).LookupCitation(context.Background(), "Roe v. Wade")
		assert.True(t, courtlistener.IsKind(err, courtlistener.KindValidation))
		assert.Empty(t, api.calls)
	})

	t.Run("forwards everyday citation forms unchanged", func(t *testing.T) {
		for _, text := range []string{
			"347 U.S. 483 (1954)",
			"410 U.S. 113, 153",
			"5 U.S. (1 Cranch) 137",
			"576 U.S. ___",
			"Brown v. Board of Education, 347 U.S. 483",
		} {
			api := &fakeAPI{}
			_, err := newTestService(api).LookupCitation(context.Background(), text)
			assert.False(t, courtlistener.IsKind(err, courtlistener.KindValidation), text)
			assert.Equal(t, []string{"citation-lookup " + text}, api.calls, text)
		}
	})

	t.Run("enriches clusters from their docket", func(t *testing.T) {
		api := roeAndDoe()
		api.matches = []courtlistener.CitationMatch{{
			Citation:   "410 U.S. 113",
			Normalized: []string{"410 U.S. 113"},
			Status:     200,
			Clusters:   []courtlistener.Cluster{api.clusters[10]},
		}}
		res, err := newTestService(api).LookupCitation(context.Background(), "410  U.S.   113")
		require.NoError(t, err)

		assert.Equal(t, "410 U.S. 113", res.Citation)
		require.Len(t, res.Cases, 1)
		assert.Equal(t, "Roe v. Wade", res.Cases[0].CaseName)
		assert.Equal(t, "scotus", res.Cases[0].Court)
		assert.Equal(t, "70-18", res.Cases[0].DocketNumber)
		assert.Equal(t, 1, res.Cases[0].OpinionID)
		assert.Equal(t, []string{"citation-lookup 410 U.S. 113", "docket 100"}, api.calls)
	})

	t.Run("no clusters is not found with the upstream message", func(t *testing.T) {
		api := &fakeAPI{matches: []courtlistener.CitationMatch{{Citation: "1 U.S. 1", Status: 404, ErrorMessage: "Citation not found"}}}
		_, err := newTestService(api).LookupCitation(context.Background(), "1 U.S. 1")
		assert.True(t, courtlistener.IsKind(err, courtlistener.KindNotFound))
		assert.Contains(t, err.Error(), "Citation not found")
	})
}

func TestSearchDocketsValidatesDates(t *testing.T) {
	api := &fakeAPI{}
	_, err := newTestService(api).SearchDockets(context.Background(), SearchDocketsRequest{Limit: 5, FiledBefore: "2020-13-01"})
	assert.True(t, courtlistener.IsKind(err, courtlistener.KindValidation))
	assert.Empty(t, api.calls)
}

func TestSearchCourtsAndPeopleEmpty(t *testing.T) {
	s := newTestService(&fakeAPI{})
	_, err := s.SearchCourts(context.Background(), SearchCourtsRequest{Name: "nowhere", Limit: 5})
	assert.True(t, courtlistener.IsKind(err, courtlistener.KindNotFound))
	_, err = s.SearchPeople(context.Background(), SearchPeopleRequest{Name: "nobody", Limit: 5})
	assert.True(t, courtlistener.IsKind(err, courtlistener.KindNotFound))
}

func TestSearchWithPagination(t *testing.T) {
	t.Run("validates before network", func(t *testing.T) {
		for _, req := range []PaginationRequest{
			{SearchType: "opinions", Query: "x", MaxPages: 0},
			{SearchType: "opinions", Query: "x", MaxPages: courtlistener.MaxPages + 1},
			{SearchType: "statutes", Query: "x", MaxPages: 1},
		} {
			api := &fakeAPI{}
			_, err := newTestService(api).SearchWithPagination(context.Background(), req)
			assert.True(t, courtlistener.IsKind(err, courtlistener.KindValidation), "%+v", req)
			assert.Empty(t, api.calls)
		}
	})

	t.Run("reshapes courts and passes the cursor through", func(t *testing.T) {
		api := &fakeAPI{pageSet: courtlistener.PageSet{
			Items: []gjson.Result{
				gjson.Parse(`{"id":"scotus","full_name":"Supreme Court of the United States","in_use":true}`),
				gjson.Parse(`{"id":"ca9","full_name":"Court of Appeals for the Ninth Circuit","in_use":true}`),
			},
			Count:      2,
			Pages:      1,
			NextCursor: "abc",
			Warning:    "stopped after page 1: rate limited",
		}}
		res, err := newTestService(api).SearchWithPagination(context.Background(), PaginationRequest{SearchType: "Courts", Query: "court", Cursor: "xyz", MaxPages: 2})
		require.NoError(t, err)

		assert.Equal(t, "courts", res.SearchType)
		assert.Equal(t, 2, res.Returned)
		assert.Equal(t, "abc", res.NextCursor)
		assert.NotEmpty(t, res.Warning)
		courts, ok := res.Items.([]CourtSummary)
		require.True(t, ok)
		assert.Equal(t, "scotus", courts[0].ID)
		assert.Equal(t, []string{`courts/ cursor="xyz" max=2`}, api.paginated)
	})

	t.Run("empty walk is not found", func(t *testing.T) {
		_, err := newTestService(&fakeAPI{}).SearchWithPagination(context.Background(), PaginationRequest{SearchType: "people", Query: "x", MaxPages: 1})
		assert.True(t, courtlistener.IsKind(err, courtlistener.KindNotFound))
	})
}

func TestPaginatedEndpoint(t *testing.T) {
	path, params, ok := paginatedEndpoint(SearchOpinions, "privacy")
	require.True(t, ok)
	assert.Equal(t, "search/", path)
	assert.Equal(t, "o", params.Get("type"))
	assert.Equal(t, "privacy", params.Get("q"))

	path, params, ok = paginatedEndpoint(SearchDockets, "")
	require.True(t, ok)
	assert.Equal(t, "dockets/", path)
	assert.False(t, params.Has("case_name__icontains"))
	assert.NotEmpty(t, params.Get("fields"))
}

func TestGetOpinion(t *testing.T) {
	t.Run("rejects non-positive ids", func(t *testing.T) {
		api := &fakeAPI{}
		_, err := newTestService(api).GetOpinion(context.Background(), GetOpinionRequest{OpinionID: 0})
		assert.True(t, courtlistener.IsKind(err, courtlistener.KindValidation))
		assert.Empty(t, api.calls)
	})

	t.Run("strips html and enriches from the cluster", func(t *testing.T) {
		res, err := newTestService(roeAndDoe()).GetOpinion(context.Background(), GetOpinionRequest{OpinionID: 2, IncludeText: true})
		require.NoError(t, err)
		assert.Equal(t, "Doe v. Bolton", res.CaseName)
		assert.Equal(t, 900, res.CitationCount)
		assert.NotContains(t, res.Text, "<p>")
		assert.Contains(t, res.Text, "Georgia requirements")
	})

	t.Run("missing opinion is not found", func(t *testing.T) {
		_, err := newTestService(roeAndDoe()).GetOpinion(context.Background(), GetOpinionRequest{OpinionID: 99})
		assert.True(t, courtlistener.IsKind(err, courtlistener.KindNotFound))
	})
}
