package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/courtlistener-mcp/internal/courtlistener"
	"github.com/roivaz/courtlistener-mcp/internal/research"
)

type OpinionGetter interface {
	GetOpinion(ctx context.Context, req research.GetOpinionRequest) (research.OpinionResult, error)
}

type GetOpinionHandler struct{ Service OpinionGetter }

func (h *GetOpinionHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, err := intArg(args, "opinion_id", 0)
	if err != nil {
		return failure(err), nil
	}
	if id == 0 {
		return failure(courtlistener.Validationf("opinion_id is required")), nil
	}
	includeText, err := yesNoArg(args, "include_text")
	if err != nil {
		return failure(err), nil
	}

	res, err := h.Service.GetOpinion(ctx, research.GetOpinionRequest{OpinionID: id, IncludeText: includeText})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatOpinion(res)), nil
}
