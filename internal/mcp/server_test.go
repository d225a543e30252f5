package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/logging"
	"github.com/roivaz/courtlistener-mcp/internal/research"
)

type upstream struct {
	calls atomic.Int32

	mu       sync.Mutex
	requests []*http.Request
}

func (u *upstream) seen() []*http.Request {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]*http.Request(nil), u.requests...)
}

func newTestServer(t *testing.T, token string, handler http.HandlerFunc) (*Server, *upstream) {
	t.Helper()
	up := &upstream{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		up.calls.Add(1)
		up.mu.Lock()
		up.requests = append(up.requests, r)
		up.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(ts.Close)

	client, err := courtlistener.NewClient(courtlistener.Config{
		BaseURL:     ts.URL + "/api/rest/v4/",
		Token:       token,
		Timeout:     2 * time.Second,
		MaxAttempts: 1,
		Logger:      logging.Discard(),
	})
	require.NoError(t, err)

	log := logging.Discard()
	cfg := NewConfig(research.NewService(client, log), log)
	return New(cfg), up
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func call(t *testing.T, s *Server, method string, params any) gjson.Result {
	t.Helper()
	p, err := json.Marshal(params)
	require.NoError(t, err)
	msg := fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":%q,"params":%s}`, method, p)
	resp := s.MCP.HandleMessage(context.Background(), []byte(msg))
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	return gjson.ParseBytes(out)
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) gjson.Result {
	t.Helper()
	res := call(t, s, "tools/call", map[string]any{"name": name, "arguments": args})
	require.False(t, res.Get("error").Exists(), res.Raw)
	return res.Get("result")
}

const searchBody = `{"count":42,"next":"https://www.courtlistener.com/api/rest/v4/search/?cursor=abc&type=o","previous":null,"results":[
	{"caseName":"Roe v. Wade","court":"Supreme Court of the United States","court_id":"scotus","dateFiled":"1973-01-22T00:00:00-08:00","docketNumber":"70-18","citeCount":4000,"citation":["410 U.S. 113"],"cluster_id":108713,"absolute_url":"/opinion/108713/roe-v-wade/","opinions":[{"id":108713,"snippet":"the <mark>privacy</mark> right"}]},
	{"caseName":"Doe v. Bolton","court":"Supreme Court of the United States","cluster_id":108714,"opinions":[{"id":108714}]}
]}`

func TestListTools(t *testing.T) {
	s, _ := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, 200, "{}") })
	res := call(t, s, "tools/list", map[string]any{})

	var names []string
	for _, tool := range res.Get("result.tools").Array() {
		names = append(names, tool.Get("name").String())
	}
	assert.ElementsMatch(t, research.ToolNames, names)

	caseID := res.Get(`result.tools.#(name=="compare_cases").inputSchema.required`).Array()
	assert.Len(t, caseID, 2)
}

func TestSearchCasesTool(t *testing.T) {
	s, up := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, searchBody)
	})
	res := callTool(t, s, "search_cases", map[string]any{"query": "privacy", "cited_gt": "0", "limit": "1"})

	assert.False(t, res.Get("isError").Bool())
	assert.Equal(t, int64(42), res.Get("structuredContent.count").Int())
	assert.Equal(t, int64(1), res.Get("structuredContent.returned").Int())
	assert.Equal(t, "abc", res.Get("structuredContent.next_cursor").String())
	assert.Equal(t, "the **privacy** right", res.Get("structuredContent.cases.0.snippet").String())
	assert.Equal(t, "1973-01-22", res.Get("structuredContent.cases.0.date_filed").String())
	text := res.Get("content.0.text").String()
	assert.Contains(t, text, "Found 42 cases (showing 1)")
	assert.Contains(t, text, "More results available")
	assert.Equal(t, int64(1), res.Get("structuredContent.omitted").Int())
	assert.Contains(t, text, "1 more result(s) on this page were cut off by limit")

	reqs := up.seen()
	require.Len(t, reqs, 1)
	r := reqs[0]
	assert.Equal(t, "Token tok", r.Header.Get("Authorization"))
	assert.Equal(t, "/api/rest/v4/search/", r.URL.Path)
	q := r.URL.Query()
	assert.Equal(t, "o", q.Get("type"))
	assert.Equal(t, "privacy", q.Get("q"))
	assert.Equal(t, "0", q.Get("cited_gt"))
	assert.False(t, q.Has("court"))
	assert.False(t, q.Has("judge"))
}

func TestValidationErrorsNeverReachUpstream(t *testing.T) {
	s, up := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, 200, searchBody) })

	for _, tc := range []struct {
		tool string
		args map[string]any
	}{
		{"search_cases", map[string]any{"query": "x", "limit": 0}},
		{"search_cases", map[string]any{"query": "x", "limit": "-1"}},
		{"search_cases", map[string]any{"query": "x", "limit": "ten"}},
		{"search_cases", map[string]any{"date_filed_after": "2020-02-30"}},
		{"search_dockets", map[string]any{"date_filed_after": "2021-01-01", "date_filed_before": "2020-01-01"}},
		{"lookup_citation", map[string]any{"citation": "not a citation"}},
		{"search_with_pagination", map[string]any{"query": "x", "max_pages": 11}},
		{"get_case_summary", map[string]any{"case_identifier": "1", "summary_type": "poem"}},
		{"get_opinion_by_id", map[string]any{"opinion_id": "abc"}},
		{"compare_cases", map[string]any{"case1_identifier": "1"}},
	} {
		res := callTool(t, s, tc.tool, tc.args)
		assert.True(t, res.Get("isError").Bool(), "%s %v", tc.tool, tc.args)
		assert.Equal(t, "validation", res.Get("structuredContent.error.kind").String(), "%s %v", tc.tool, tc.args)
	}
	assert.Zero(t, up.calls.Load())
}

func TestMissingTokenIsAuthenticationError(t *testing.T) {
	s, up := newTestServer(t, "", func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, 200, searchBody) })
	res := callTool(t, s, "search_cases", map[string]any{"query": "privacy"})

	assert.True(t, res.Get("isError").Bool())
	assert.Equal(t, "authentication", res.Get("structuredContent.error.kind").String())
	assert.Contains(t, res.Get("content.0.text").String(), "COURTLISTENER_API_TOKEN")
	assert.Zero(t, up.calls.Load())
}

func TestRateLimitCarriesRetryAfter(t *testing.T) {
	s, up := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "30")
		writeJSON(w, http.StatusTooManyRequests, `{"detail":"Request was throttled."}`)
	})
	res := callTool(t, s, "search_cases", map[string]any{"query": "privacy"})

	assert.True(t, res.Get("isError").Bool())
	assert.Equal(t, "rate_limit", res.Get("structuredContent.error.kind").String())
	assert.Equal(t, int64(30), res.Get("structuredContent.error.retry_after_seconds").Int())
	assert.Equal(t, int32(1), up.calls.Load())
}

func TestPaginationRateLimitOnLaterPage(t *testing.T) {
	s, up := newTestServer(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cursor") == "p2" {
			w.Header().Set("Retry-After", "90")
			writeJSON(w, http.StatusTooManyRequests, `{"detail":"Request was throttled."}`)
			return
		}
		writeJSON(w, 200, `{"count":3,"next":"https://www.courtlistener.com/api/rest/v4/courts/?cursor=p2","results":[{"id":"scotus"},{"id":"ca9"}]}`)
	})
	res := callTool(t, s, "search_with_pagination", map[string]any{"search_type": "courts", "max_pages": 3})

	assert.True(t, res.Get("isError").Bool())
	assert.Equal(t, "rate_limit", res.Get("structuredContent.error.kind").String())
	assert.Equal(t, int64(90), res.Get("structuredContent.error.retry_after_seconds").Int())
	assert.Equal(t, int32(2), up.calls.Load())
}

func TestEmptyResultIsNotFoundNotError(t *testing.T) {
	s, _ := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, `{"count":0,"next":null,"previous":null,"results":[]}`)
	})
	res := callTool(t, s, "search_cases", map[string]any{"query": "zzzz"})

	assert.False(t, res.Get("isError").Bool())
	assert.False(t, res.Get("structuredContent.found").Bool())
	assert.True(t, res.Get("structuredContent.found").Exists())
}

func TestFailedCallDoesNotAffectNextCall(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	s, _ := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		if fail.Swap(false) {
			writeJSON(w, http.StatusUnauthorized, `{"detail":"Invalid token."}`)
			return
		}
		writeJSON(w, 200, searchBody)
	})

	res := callTool(t, s, "search_cases", map[string]any{"query": "privacy"})
	assert.Equal(t, "authentication", res.Get("structuredContent.error.kind").String())

	res = callTool(t, s, "search_cases", map[string]any{"query": "privacy"})
	assert.False(t, res.Get("isError").Bool())
	assert.Equal(t, int64(2), res.Get("structuredContent.returned").Int())
}

func TestCompareCasesNamesFailingSide(t *testing.T) {
	s, _ := newTestServer(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/opinions/1/"):
			writeJSON(w, 200, `{"id":1,"cluster":"https://www.courtlistener.com/api/rest/v4/clusters/10/","plain_text":"We hold that the statute is valid. Affirmed."}`)
		case strings.HasSuffix(r.URL.Path, "/clusters/10/"):
			writeJSON(w, 200, `{"id":10,"case_name":"A v. B","docket":"https://www.courtlistener.com/api/rest/v4/dockets/100/"}`)
		case strings.HasSuffix(r.URL.Path, "/dockets/100/"):
			writeJSON(w, 200, `{"id":100,"court_id":"scotus","docket_number":"1"}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"detail":"No Opinion matches the given query."}`)
		}
	})
	res := callTool(t, s, "compare_cases", map[string]any{"case1_identifier": "1", "case2_identifier": "2"})

	assert.True(t, res.Get("isError").Bool())
	assert.Equal(t, "not_found", res.Get("structuredContent.error.kind").String())
	assert.Contains(t, res.Get("structuredContent.error.message").String(), "case2_identifier")
}

func TestGreetingResource(t *testing.T) {
	s, _ := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, 200, "{}") })
	res := call(t, s, "resources/read", map[string]any{"uri": "greeting://Ada"})
	assert.Equal(t, "Hello, Ada! Ready to research legal cases with CourtListener API v4.", res.Get("result.contents.0.text").String())
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, 200, "{}") })
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestAPIStatusTool(t *testing.T) {
	s, up := newTestServer(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, `{"count":1,"next":null,"results":[{"id":"scotus","full_name":"Supreme Court of the United States"}]}`)
	})
	res := callTool(t, s, "api_status", map[string]any{})

	assert.False(t, res.Get("isError").Bool())
	assert.True(t, res.Get("structuredContent.connected").Bool())
	assert.Equal(t, "Supreme Court of the United States", res.Get("structuredContent.probe_court").String())
	assert.Len(t, res.Get("structuredContent.tools").Array(), len(research.ToolNames))
	assert.Contains(t, res.Get("content.0.text").String(), "Status: Connected")

	reqs := up.seen()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/rest/v4/courts/", reqs[0].URL.Path)
	assert.Equal(t, "scotus", reqs[0].URL.Query().Get("id"))
}
