package tools

import (
	"context"
	"errors"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
)

const kindInternal = "internal"

type ErrorBody struct {
	Kind              string `json:"kind"`
	Message           string `json:"message"`
	RetryAfterSeconds *int   `json:"retry_after_seconds,omitempty"`
}

type ErrorPayload struct {
	Error ErrorBody `json:"error"`
}

type NotFoundPayload struct {
	Found   bool   `json:"found"`
	Message string `json:"message"`
}

func success(payload any, text string) *mcp.CallToolResult {
	return mcp.NewToolResultStructured(payload, text)
}

// failure maps err onto a tool result. NotFound is an ordinary answer and
// comes back as a successful result with found=false.
func failure(err error) *mcp.CallToolResult {
	if courtlistener.IsKind(err, courtlistener.KindNotFound) {
		msg := err.Error()
		return mcp.NewToolResultStructured(NotFoundPayload{Found: false, Message: msg}, "No results found: "+msg)
	}
	return errorResult(err)
}

// errorResult always marks the result as an error, NotFound included.
func errorResult(err error) *mcp.CallToolResult {
	body := ErrorBody{Kind: kindInternal, Message: err.Error()}
	if typed, ok := courtlistener.AsError(err); ok {
		body.Kind = string(typed.Kind)
		if typed.RetryAfter > 0 {
			secs := int(math.Ceil(typed.RetryAfter.Seconds()))
			body.RetryAfterSeconds = &secs
		}
	} else if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		body.Kind = string(courtlistener.KindTimeout)
	}

	res := mcp.NewToolResultStructured(ErrorPayload{Error: body}, errorText(body))
	res.IsError = true
	return res
}

func errorText(b ErrorBody) string {
	switch courtlistener.Kind(b.Kind) {
	case courtlistener.KindValidation:
		return "Invalid request: " + b.Message
	case courtlistener.KindAuthentication:
		return "Authentication error: " + b.Message
	case courtlistener.KindRateLimit:
		return "Rate limited by CourtListener: " + b.Message
	case courtlistener.KindNotFound:
		return "Not found: " + b.Message
	case courtlistener.KindTransientNetwork, courtlistener.KindTimeout:
		return "CourtListener is unavailable: " + b.Message
	case courtlistener.KindUpstreamFormat:
		return "Unexpected response from CourtListener: " + b.Message
	default:
		return "Error: " + b.Message
	}
}

// ErrorKind reports the error kind carried by res, or "" for a successful result.
func ErrorKind(res *mcp.CallToolResult) string {
	if res == nil || !res.IsError {
		return ""
	}
	if p, ok := res.StructuredContent.(ErrorPayload); ok {
		return p.Error.Kind
	}
	return kindInternal
}
