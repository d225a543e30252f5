package analysis

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

func parseEnum[T ~string](raw string, fallback T, allowed []T) (T, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return fallback, nil
	}
	for _, a := range allowed {
		if string(a) == s {
			return a, nil
		}
	}
	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, string(a))
	}
	return fallback, courtlistener.Validationf("invalid value %q: must be one of %s", raw, strings.Join(names, ", "))
}

// title renders an enum value such as "legal_analysis" as "Legal Analysis".
func title(s string) string {
	// A Caser is stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// Title is the display form of an enum value.
func Title[T ~string](v T) string { return title(string(v)) }

func formatCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
