package courtlistener

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Kind classifies failures at the tool-call boundary.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindAuthentication   Kind = "authentication"
	KindRateLimit        Kind = "rate_limit"
	KindNotFound         Kind = "not_found"
	KindTransientNetwork Kind = "transient_network"
	KindTimeout          Kind = "timeout"
	KindUpstreamFormat   Kind = "upstream_format"
)

const authRemediation = "Set COURTLISTENER_API_TOKEN to a valid CourtListener API token " +
	"(create one at https://www.courtlistener.com/help/api/rest/ after signing in)."

// Error is the typed failure returned by the client and the layers above it.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	// RetryAfter is only set for KindRateLimit, and only when the upstream sent a hint.
	RetryAfter time.Duration
	Cause      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.StatusCode)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Cause }

// Retryable reports whether the bounded retry loop may try the request again.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransientNetwork || e.Kind == KindTimeout
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func formatErrorf(cause error, format string, args ...any) *Error {
	return &Error{Kind: KindUpstreamFormat, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func authenticationError(status int, detail string) *Error {
	msg := "Authentication failed. " + authRemediation
	if detail != "" {
		msg = fmt.Sprintf("Authentication failed: %s. %s", detail, authRemediation)
	}
	return &Error{Kind: KindAuthentication, Message: msg, StatusCode: status}
}

func missingTokenError() *Error {
	return &Error{Kind: KindAuthentication, Message: "No CourtListener API token configured. " + authRemediation}
}

func rateLimitError(status int, retryAfter time.Duration, scope string) *Error {
	msg := "Rate limit exceeded (5,000 requests/hour for the API, 60 citations/minute for citation lookup)"
	if scope != "" {
		msg = "Rate limit exceeded for " + scope
	}
	if retryAfter > 0 {
		msg = fmt.Sprintf("%s; retry after %s", msg, retryAfter)
	}
	return &Error{Kind: KindRateLimit, Message: msg, StatusCode: status, RetryAfter: retryAfter}
}

// AsError extracts the typed error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the kind of err, or "" when err is not a typed error.
func KindOf(err error) Kind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// errorFromResponse maps a non-2xx upstream response to the error taxonomy.
func errorFromResponse(resp *http.Response, body []byte, now time.Time) *Error {
	detail := upstreamDetail(body)
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return authenticationError(resp.StatusCode, detail)
	case resp.StatusCode == http.StatusTooManyRequests:
		return rateLimitError(resp.StatusCode, parseRetryAfter(resp.Header.Get("Retry-After"), now), "")
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Message: "Not found or invalid cursor", StatusCode: resp.StatusCode}
	case resp.StatusCode >= 500:
		return &Error{Kind: KindTransientNetwork, Message: "CourtListener returned a server error", StatusCode: resp.StatusCode}
	default:
		msg := "CourtListener rejected the request"
		if detail != "" {
			msg += ": " + detail
		}
		return &Error{Kind: KindValidation, Message: msg, StatusCode: resp.StatusCode}
	}
}

func upstreamDetail(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	parsed := gjson.ParseBytes(body)
	for _, path := range []string{"detail", "error", "error_message"} {
		if v := parsed.Get(path); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// parseRetryAfter accepts both forms allowed by RFC 9110: delay-seconds and an HTTP date.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}
