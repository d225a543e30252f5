package courtlistener

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedCourts(t *testing.T) (*Client, *testUpstream, *[]string) {
	var cursors []string
	var c *Client
	var up *testUpstream
	c, up = newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cursor := r.URL.Query().Get("cursor")
		cursors = append(cursors, cursor)
		switch cursor {
		case "":
			writeJSON(w, http.StatusOK, fmt.Sprintf(`{"count":3,"next":"%s/api/rest/v4/courts/?cursor=p2&full_name__icontains=court","results":[{"id":"a"},{"id":"b"}]}`, up.server.URL))
		case "p2":
			writeJSON(w, http.StatusOK, `{"count":3,"next":null,"results":[{"id":"c"}]}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"detail":"Invalid cursor"}`)
		}
	})
	return c, up, &cursors
}

func TestPaginateFollowsNext(t *testing.T) {
	c, _, cursors := pagedCourts(t)

	set, err := c.Paginate(context.Background(), "courts/", CourtParams{Name: "court"}, "", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Pages)
	assert.Equal(t, 3, set.Count)
	assert.Len(t, set.Items, 3)
	assert.Empty(t, set.NextCursor)
	assert.Equal(t, []string{"", "p2"}, *cursors)
}

func TestPaginateStopsAtMaxPages(t *testing.T) {
	c, _, _ := pagedCourts(t)

	set, err := c.Paginate(context.Background(), "courts/", CourtParams{Name: "court"}, "", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Pages)
	assert.Equal(t, "p2", set.NextCursor)

	next, err := c.Paginate(context.Background(), "courts/", CourtParams{Name: "court"}, set.NextCursor, 1)
	require.NoError(t, err)
	assert.Equal(t, "c", next.Items[0].Get("id").String())
	assert.Empty(t, next.NextCursor)
}

func pagedWithFailure(t *testing.T, fail func(w http.ResponseWriter)) *Client {
	var up *testUpstream
	c, up := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cursor") == "p2" {
			fail(w)
			return
		}
		writeJSON(w, http.StatusOK, fmt.Sprintf(`{"count":3,"next":"%s/api/rest/v4/courts/?cursor=p2","results":[{"id":"a"},{"id":"b"}]}`, up.server.URL))
	})
	return c
}

func TestPaginateRateLimitOnLaterPageIsAnError(t *testing.T) {
	c := pagedWithFailure(t, func(w http.ResponseWriter) {
		w.Header().Set("Retry-After", "90")
		writeJSON(w, http.StatusTooManyRequests, `{"detail":"Request was throttled."}`)
	})

	set, err := c.Paginate(context.Background(), "courts/", nil, "", 3)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindRateLimit))
	e, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, e.RetryAfter)
	assert.Empty(t, set.Items)
}

func TestPaginateAuthFailureOnLaterPageIsAnError(t *testing.T) {
	c := pagedWithFailure(t, func(w http.ResponseWriter) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Invalid token."}`)
	})

	_, err := c.Paginate(context.Background(), "courts/", nil, "", 3)
	assert.True(t, IsKind(err, KindAuthentication))
}

func TestPaginateTransientFailureKeepsEarlierPages(t *testing.T) {
	c := pagedWithFailure(t, func(w http.ResponseWriter) {
		writeJSON(w, http.StatusBadGateway, `{"detail":"bad gateway"}`)
	})

	set, err := c.Paginate(context.Background(), "courts/", nil, "", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, set.Pages)
	assert.Len(t, set.Items, 2)
	assert.Equal(t, "p2", set.NextCursor)
	assert.NotEmpty(t, set.Warning)
}

func TestPaginateInvalidCursor(t *testing.T) {
	c, _, _ := pagedCourts(t)
	_, err := c.Paginate(context.Background(), "courts/", nil, "bogus", 2)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestPaginateRejectsMaxPages(t *testing.T) {
	c, up, _ := pagedCourts(t)
	for _, n := range []int{0, -1, 11} {
		_, err := c.Paginate(context.Background(), "courts/", nil, "", n)
		assert.True(t, IsKind(err, KindValidation), "max_pages=%d", n)
	}
	assert.Zero(t, up.calls.Load())
}

func TestCursorFromNext(t *testing.T) {
	assert.Equal(t, "cD0xMjM", CursorFromNext("https://www.courtlistener.com/api/rest/v4/search/?cursor=cD0xMjM&q=privacy"))
	assert.Empty(t, CursorFromNext(""))
	assert.Empty(t, CursorFromNext("https://www.courtlistener.com/api/rest/v4/search/?page=2"))
}
