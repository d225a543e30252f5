package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/courtlistener-mcp/internal/research"
)

type CaseSearcher interface {
	SearchCases(ctx context.Context, req research.SearchCasesRequest) (research.SearchCasesResult, error)
}

type SearchCasesHandler struct{ Service CaseSearcher }

func (h *SearchCasesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	limit, err := intArg(args, "limit", research.DefaultLimit)
	if err != nil {
		return failure(err), nil
	}
	citedGT, err := optionalIntArg(args, "cited_gt")
	if err != nil {
		return failure(err), nil
	}

	res, err := h.Service.SearchCases(ctx, research.SearchCasesRequest{
		Query:       stringArg(args, "query"),
		CaseName:    stringArg(args, "case_name"),
		Court:       stringArg(args, "court"),
		FiledAfter:  stringArg(args, "date_filed_after"),
		FiledBefore: stringArg(args, "date_filed_before"),
		CitedGT:     citedGT,
		Judge:       stringArg(args, "judge"),
		Highlight:   stringArg(args, "highlight"),
		Limit:       limit,
	})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatCases(res)), nil
}

type DocketSearcher interface {
	SearchDockets(ctx context.Context, req research.SearchDocketsRequest) (research.DocketsResult, error)
}

type SearchDocketsHandler struct{ Service DocketSearcher }

func (h *SearchDocketsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	limit, err := intArg(args, "limit", research.DefaultLimit)
	if err != nil {
		return failure(err), nil
	}
	res, err := h.Service.SearchDockets(ctx, research.SearchDocketsRequest{
		CaseName:     stringArg(args, "case_name"),
		DocketNumber: stringArg(args, "docket_number"),
		Court:        stringArg(args, "court"),
		NatureOfSuit: stringArg(args, "nature_of_suit"),
		FiledAfter:   stringArg(args, "date_filed_after"),
		FiledBefore:  stringArg(args, "date_filed_before"),
		Limit:        limit,
	})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatDockets(res)), nil
}

type CourtSearcher interface {
	SearchCourts(ctx context.Context, req research.SearchCourtsRequest) (research.CourtsResult, error)
}

type SearchCourtsHandler struct{ Service CourtSearcher }

func (h *SearchCourtsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	limit, err := intArg(args, "limit", research.DefaultLimit)
	if err != nil {
		return failure(err), nil
	}
	res, err := h.Service.SearchCourts(ctx, research.SearchCourtsRequest{
		Name:         stringArg(args, "name"),
		Jurisdiction: stringArg(args, "jurisdiction"),
		Limit:        limit,
	})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatCourts(res)), nil
}

type PeopleSearcher interface {
	SearchPeople(ctx context.Context, req research.SearchPeopleRequest) (research.PeopleResult, error)
}

type SearchPeopleHandler struct{ Service PeopleSearcher }

func (h *SearchPeopleHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	limit, err := intArg(args, "limit", research.DefaultLimit)
	if err != nil {
		return failure(err), nil
	}
	res, err := h.Service.SearchPeople(ctx, research.SearchPeopleRequest{
		Name:         stringArg(args, "name"),
		Court:        stringArg(args, "court"),
		PositionType: stringArg(args, "position_type"),
		Limit:        limit,
	})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatPeople(res)), nil
}

type Paginator interface {
	SearchWithPagination(ctx context.Context, req research.PaginationRequest) (research.PaginationResult, error)
}

type PaginationHandler struct{ Service Paginator }

func (h *PaginationHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	maxPages, err := intArg(args, "max_pages", research.DefaultMaxPages)
	if err != nil {
		return failure(err), nil
	}
	searchType := stringArg(args, "search_type")
	if searchType == "" {
		searchType = string(research.SearchOpinions)
	}
	res, err := h.Service.SearchWithPagination(ctx, research.PaginationRequest{
		SearchType: searchType,
		Query:      stringArg(args, "query"),
		Cursor:     stringArg(args, "cursor"),
		MaxPages:   maxPages,
	})
	if err != nil {
		return failure(err), nil
	}
	return success(res, formatPagination(res)), nil
}
