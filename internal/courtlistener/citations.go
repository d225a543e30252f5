package courtlistener

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// LookupCitation resolves free text containing citations via POST citation-lookup/.
// The upstream allows 60 citations per minute; that limit is reported, not enforced.
func (c *Client) LookupCitation(ctx context.Context, text string) ([]CitationMatch, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, Validationf("citation text is required")
	}
	raw, err := c.PostForm(ctx, "citation-lookup/", url.Values{"text": {text}})
	if err != nil {
		return nil, err
	}
	if !raw.IsArray() {
		return nil, formatErrorf(nil, "unexpected citation-lookup response: expected an array")
	}

	var matches []CitationMatch
	for _, r := range raw.Array() {
		m := citationMatchFromResult(r)
		if m.Status == http.StatusTooManyRequests {
			return nil, rateLimitError(m.Status, 0, "citation lookup: "+m.ErrorMessage)
		}
		matches = append(matches, m)
	}
	return matches, nil
}
