package research

import (
	"context"
	"fmt"
	"time"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/logging"
)

// fakeAPI serves canned records and counts every call, so tests can assert
// that validation failures never reach the network.
type fakeAPI struct {
	hits     []courtlistener.CaseHit
	citing   []courtlistener.CaseHit
	opinions map[int]courtlistener.Opinion
	clusters map[int]courtlistener.Cluster
	dockets  map[int]courtlistener.Docket
	matches  []courtlistener.CitationMatch
	pageSet  courtlistener.PageSet
	err      error

	calls        []string
	searchParams []courtlistener.SearchParams
	citingFor    []int
	paginated    []string
}

func (f *fakeAPI) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeAPI) SearchOpinions(_ context.Context, p courtlistener.SearchParams) (courtlistener.Page, []courtlistener.CaseHit, error) {
	f.record("search")
	f.searchParams = append(f.searchParams, p)
	if f.err != nil {
		return courtlistener.Page{}, nil, f.err
	}
	return courtlistener.Page{Count: len(f.hits)}, f.hits, nil
}

func (f *fakeAPI) CitingOpinions(_ context.Context, id int) (courtlistener.Page, []courtlistener.CaseHit, error) {
	f.record("citing %d", id)
	f.citingFor = append(f.citingFor, id)
	return courtlistener.Page{Count: len(f.citing)}, f.citing, nil
}

func (f *fakeAPI) LookupCitation(_ context.Context, text string) ([]courtlistener.CitationMatch, error) {
	f.record("citation-lookup %s", text)
	return f.matches, f.err
}

func (f *fakeAPI) Dockets(context.Context, courtlistener.DocketParams) (courtlistener.Page, []courtlistener.Docket, error) {
	f.record("dockets")
	var out []courtlistener.Docket
	for _, d := range f.dockets {
		out = append(out, d)
	}
	return courtlistener.Page{Count: len(out)}, out, f.err
}

func (f *fakeAPI) Courts(context.Context, courtlistener.CourtParams) (courtlistener.Page, []courtlistener.Court, error) {
	f.record("courts")
	return courtlistener.Page{}, nil, f.err
}

func (f *fakeAPI) People(context.Context, courtlistener.PeopleParams) (courtlistener.Page, []courtlistener.Person, error) {
	f.record("people")
	return courtlistener.Page{}, nil, f.err
}

func (f *fakeAPI) Opinion(_ context.Context, id int, _ ...string) (courtlistener.Opinion, error) {
	f.record("opinion %d", id)
	op, ok := f.opinions[id]
	if !ok {
		return courtlistener.Opinion{}, courtlistener.NotFoundf("opinion %d not found", id)
	}
	return op, nil
}

func (f *fakeAPI) Cluster(_ context.Context, id int, _ ...string) (courtlistener.Cluster, error) {
	f.record("cluster %d", id)
	c, ok := f.clusters[id]
	if !ok {
		return courtlistener.Cluster{}, courtlistener.NotFoundf("cluster %d not found", id)
	}
	return c, nil
}

func (f *fakeAPI) Docket(_ context.Context, id int, _ ...string) (courtlistener.Docket, error) {
	f.record("docket %d", id)
	d, ok := f.dockets[id]
	if !ok {
		return courtlistener.Docket{}, courtlistener.NotFoundf("docket %d not found", id)
	}
	return d, nil
}

func (f *fakeAPI) Paginate(_ context.Context, path string, _ any, cursor string, maxPages int) (courtlistener.PageSet, error) {
	f.record("paginate %s", path)
	f.paginated = append(f.paginated, fmt.Sprintf("%s cursor=%q max=%d", path, cursor, maxPages))
	return f.pageSet, f.err
}

func (f *fakeAPI) SiteURL(path string) string {
	if path == "" {
		return ""
	}
	return "https://www.courtlistener.com" + path
}

func (f *fakeAPI) BaseURL() string { return "https://www.courtlistener.com/api/rest/v4/" }

func newTestService(api *fakeAPI) *Service {
	s := NewService(api, logging.Discard())
	s.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return s
}

const roeText = `MR. JUSTICE BLACKMUN delivered the opinion of the Court. Jane Roe instituted this action in March 1970. ` +
	`We hold that the right of personal privacy includes the abortion decision. See Griswold v. Connecticut, 381 U.S. 479 (1965). ` +
	`The judgment of the District Court is affirmed in part and reversed in part.`

const doeText = `MR. JUSTICE BLACKMUN delivered the opinion of the Court. In Roe v. Wade, 410 U.S. 113, we decided the companion case. ` +
	`We conclude that the Georgia requirements are unconstitutional. See also Griswold v. Connecticut, 381 U.S. 479. ` +
	`The judgment is modified and affirmed.`

// roeAndDoe wires two cases: Roe (opinion 1, cluster 10, docket 100) and
// Doe (opinion 2, cluster 20, docket 200).
func roeAndDoe() *fakeAPI {
	return &fakeAPI{
		opinions: map[int]courtlistener.Opinion{
			1: {ID: 1, ClusterID: 10, Author: "Blackmun", PlainText: roeText, AbsoluteURL: "/opinion/10/roe-v-wade/"},
			2: {ID: 2, ClusterID: 20, Author: "Blackmun", HTML: "<p>" + doeText + "</p>"},
		},
		clusters: map[int]courtlistener.Cluster{
			10: {ID: 10, CaseName: "Roe v. Wade", DateFiled: "1973-01-22", CitationCount: 4000, Citations: []string{"410 U.S. 113"}, DocketID: 100, SubOpinionIDs: []int{1}, AbsoluteURL: "/opinion/10/roe-v-wade/"},
			20: {ID: 20, CaseName: "Doe v. Bolton", DateFiled: "1973-01-22", CitationCount: 900, Citations: []string{"410 U.S. 179"}, DocketID: 200, SubOpinionIDs: []int{2}},
		},
		dockets: map[int]courtlistener.Docket{
			100: {ID: 100, Court: "scotus", DocketNumber: "70-18"},
			200: {ID: 200, Court: "scotus", DocketNumber: "70-40"},
		},
	}
}
