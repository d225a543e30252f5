package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/courtlistener-mcp/internal/research"
)

type StatusChecker interface {
	APIStatus(ctx context.Context) (research.StatusResult, error)
}

type APIStatusHandler struct{ Service StatusChecker }

func (h *APIStatusHandler) ToolAdapter(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, err := h.Service.APIStatus(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return success(res, FormatStatus(res)), nil
}

// FormatStatus renders a successful status check. cmd/apistatus prints the same text.
func FormatStatus(res research.StatusResult) string {
	var b strings.Builder
	b.WriteString("CourtListener API v4 Status: Connected\n\n")
	b.WriteString("Authentication: valid token\n")
	fmt.Fprintf(&b, "Base URL: %s\n", res.BaseURL)
	if res.ProbeCourt != "" {
		fmt.Fprintf(&b, "Probe: %s\n", res.ProbeCourt)
	}
	fmt.Fprintf(&b, "Available tools: %s\n", strings.Join(res.Tools, ", "))
	b.WriteString("\nCommon court codes:\n")
	for _, c := range res.CommonCourts {
		fmt.Fprintf(&b, "  %-9s %s\n", c.Code, c.Description)
	}
	b.WriteString("\nRate limits:\n")
	for _, l := range res.RateLimits {
		fmt.Fprintf(&b, "  %s\n", l)
	}
	return b.String()
}
