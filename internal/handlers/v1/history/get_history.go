package history

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// GetHistoryInput is the Huma input for reading a history page.
type GetHistoryInput struct {
	SessionKey string `header:"X-Session-Key" default:"default" doc:"Client session"`
	Page       int    `query:"page" doc:"Page to show; out of range pages are clamped, omitted keeps the current page"`
}

// GetHistoryHandler handles GET /v1/history.
type GetHistoryHandler struct {
	HistoryService historyService
}

func NewGetHistoryHandler(svc historyService) *GetHistoryHandler {
	return &GetHistoryHandler{HistoryService: svc}
}

func (h *GetHistoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-history",
		Method:      http.MethodGet,
		Path:        "/v1/history",
		Summary:     "Get history page",
		Description: "Returns a page of the selected card's history, loading it on first use.",
		Tags:        []string{"History"},
	}, h.handle)
}

func (h *GetHistoryHandler) handle(ctx context.Context, input *GetHistoryInput) (*PageOutput, error) {
	view, err := h.HistoryService.Page(ctx, input.SessionKey, input.Page)
	return respond(ctx, view, err)
}
