package courtlistener

import (
	"context"
	"fmt"
	"strings"
)

// Opinion fetches one opinion. fields, when given, limits the payload.
func (c *Client) Opinion(ctx context.Context, id int, fields ...string) (Opinion, error) {
	if id <= 0 {
		return Opinion{}, Validationf("opinion id must be positive, got %d", id)
	}
	raw, err := c.Get(ctx, fmt.Sprintf("opinions/%d/", id), fieldParams{Fields: Fields(fields...)})
	if err != nil {
		return Opinion{}, notFoundAs(err, "opinion %d not found", id)
	}
	return OpinionFromResult(raw)
}

func (c *Client) Cluster(ctx context.Context, id int, fields ...string) (Cluster, error) {
	if id <= 0 {
		return Cluster{}, Validationf("cluster id must be positive, got %d", id)
	}
	raw, err := c.Get(ctx, fmt.Sprintf("clusters/%d/", id), fieldParams{Fields: Fields(fields...)})
	if err != nil {
		return Cluster{}, notFoundAs(err, "cluster %d not found", id)
	}
	if !raw.IsObject() || !raw.Get("id").Exists() {
		return Cluster{}, formatErrorf(nil, "unexpected cluster response: missing id")
	}
	return ClusterFromResult(raw), nil
}

func (c *Client) Docket(ctx context.Context, id int, fields ...string) (Docket, error) {
	if id <= 0 {
		return Docket{}, Validationf("docket id must be positive, got %d", id)
	}
	raw, err := c.Get(ctx, fmt.Sprintf("dockets/%d/", id), fieldParams{Fields: Fields(fields...)})
	if err != nil {
		return Docket{}, notFoundAs(err, "docket %d not found", id)
	}
	if !raw.IsObject() {
		return Docket{}, formatErrorf(nil, "unexpected docket response")
	}
	return DocketFromResult(raw), nil
}

// notFoundAs replaces the generic 404 message with one naming the resource.
func notFoundAs(err error, format string, args ...any) error {
	if typed, ok := AsError(err); ok && typed.Kind == KindNotFound {
		return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...), StatusCode: typed.StatusCode}
	}
	return err
}

// Text returns the best available opinion text: plain_text, else an HTML flavour.
// The bool reports whether the text is HTML that still needs stripping.
func (o Opinion) Text() (string, bool) {
	if strings.TrimSpace(o.PlainText) != "" {
		return o.PlainText, false
	}
	if o.HTML != "" {
		return o.HTML, true
	}
	return "", false
}
