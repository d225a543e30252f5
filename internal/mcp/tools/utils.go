package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

// Arguments reach the handlers as decoded JSON, so numbers arrive as
// float64. Numeric strings are accepted too since many hosts send every
// argument as a string.

func stringArg(args map[string]any, key string) string {
	switch v := args[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// intArg returns def when key is absent or empty.
func intArg(args map[string]any, key string, def int) (int, error) {
	n, set, err := parseInt(args, key)
	if err != nil || !set {
		return def, err
	}
	return n, nil
}

// optionalIntArg distinguishes an absent value (nil) from an explicit 0.
func optionalIntArg(args map[string]any, key string) (*int, error) {
	n, set, err := parseInt(args, key)
	if err != nil || !set {
		return nil, err
	}
	return &n, nil
}

func parseInt(args map[string]any, key string) (int, bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false, courtlistener.Validationf("%s must be an integer, got %v", key, v)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, false, courtlistener.Validationf("%s must be an integer, got %q", key, v.String())
		}
		return n, true, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false, courtlistener.Validationf("%s must be an integer, got %q", key, v)
		}
		return n, true, nil
	default:
		return 0, false, courtlistener.Validationf("%s must be an integer", key)
	}
}

// yesNoArg accepts booleans and the strings yes/no/true/false.
func yesNoArg(args map[string]any, key string) (bool, error) {
	switch v := args[key].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "no", "false":
			return false, nil
		case "yes", "true":
			return true, nil
		}
		return false, courtlistener.Validationf("%s must be \"yes\" or \"no\", got %q", key, v)
	default:
		return false, courtlistener.Validationf("%s must be \"yes\" or \"no\"", key)
	}
}
