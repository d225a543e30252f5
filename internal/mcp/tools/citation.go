package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/research"
)

type CitationLookup interface {
	LookupCitation(ctx context.Context, citation string) (research.CitationResult, error)
}

type LookupCitationHandler struct{ Service CitationLookup }

func (h *LookupCitationHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	citation := stringArg(req.GetArguments(), "citation")
	if citation == "" {
		return errorResult(courtlistener.Validationf("citation parameter is required")), nil
	}
	res, err := h.Service.LookupCitation(ctx, citation)
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatCitation(res)), nil
}
