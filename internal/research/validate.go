package research

import (
	"strings"
	"time"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

const (
	DefaultLimit         = 20
	DefaultMaxTextLength = 10000
	CompareTextLength    = 8000
	DefaultMaxPages      = 3
	OpinionPreviewLength = 2000

	dateLayout = "2006-01-02"
)

func validateLimit(limit int) (int, error) {
	if limit < 1 {
		return 0, courtlistener.Validationf("limit must be a positive integer, got %d", limit)
	}
	return limit, nil
}

func validateDateRange(afterField, after, beforeField, before string) error {
	var from, to time.Time
	var err error
	if after != "" {
		if from, err = time.Parse(dateLayout, after); err != nil {
			return courtlistener.Validationf("%s must be a date in YYYY-MM-DD format, got %q", afterField, after)
		}
	}
	if before != "" {
		if to, err = time.Parse(dateLayout, before); err != nil {
			return courtlistener.Validationf("%s must be a date in YYYY-MM-DD format, got %q", beforeField, before)
		}
	}
	if after != "" && before != "" && from.After(to) {
		return courtlistener.Validationf("%s (%s) is after %s (%s)", afterField, after, beforeField, before)
	}
	return nil
}

func validateHighlight(h string) (string, error) {
	switch h = strings.ToLower(strings.TrimSpace(h)); h {
	case "":
		return "on", nil
	case "on", "off":
		return h, nil
	default:
		return "", courtlistener.Validationf("highlight must be \"on\" or \"off\", got %q", h)
	}
}

func validateMaxPages(n int) (int, error) {
	if n < 1 || n > courtlistener.MaxPages {
		return 0, courtlistener.Validationf("max_pages must be between 1 and %d, got %d", courtlistener.MaxPages, n)
	}
	return n, nil
}

func positive(field string, n int) error {
	if n < 1 {
		return courtlistener.Validationf("%s must be a positive integer, got %d", field, n)
	}
	return nil
}

func take[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
