package courtlistener

import (
	"context"

	"github.com/tidwall/gjson"
)

const MaxPages = 10

// PageSet is the result of walking several pages of one listing.
type PageSet struct {
	Items      []gjson.Result
	Count      int
	Pages      int
	NextCursor string
	// Warning is set when a later page failed transiently and the walk stopped early.
	Warning string
}

// Paginate fetches up to maxPages pages of path starting at cursor, following
// each page's next link. Nothing is remembered between calls; the returned
// NextCursor is all a caller needs to continue.
func (c *Client) Paginate(ctx context.Context, path string, params any, cursor string, maxPages int) (PageSet, error) {
	if maxPages < 1 || maxPages > MaxPages {
		return PageSet{}, Validationf("max_pages must be between 1 and %d, got %d", MaxPages, maxPages)
	}
	values, err := EncodeParams(params)
	if err != nil {
		return PageSet{}, err
	}

	var set PageSet
	for set.Pages < maxPages {
		query := cloneValues(values)
		if cursor != "" {
			query.Set("cursor", cursor)
		}
		page, err := c.list(ctx, path, query)
		if err != nil {
			// Rate limits, auth failures and the like surface as errors even
			// mid-walk; only a transient failure keeps the pages already read.
			if set.Pages == 0 || !retryable(err) {
				return PageSet{}, err
			}
			// The caller can resume from the last good cursor.
			c.log.Debug("pagination stopped early", "path", path, "pages", set.Pages, "error", err.Error())
			set.NextCursor = cursor
			set.Warning = err.Error()
			return set, nil
		}
		set.Pages++
		set.Count = page.Count
		set.Items = append(set.Items, page.Results...)
		cursor = page.NextCursor()
		if cursor == "" {
			break
		}
	}
	set.NextCursor = cursor
	return set, nil
}

func retryable(err error) bool {
	e, ok := AsError(err)
	return ok && e.Retryable()
}
