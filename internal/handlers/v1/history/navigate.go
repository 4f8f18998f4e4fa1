package history

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RefreshHandler handles POST /v1/history/refresh.
type RefreshHandler struct {
	HistoryService historyService
}

func NewRefreshHandler(svc historyService) *RefreshHandler {
	return &RefreshHandler{HistoryService: svc}
}

func (h *RefreshHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refresh-history",
		Method:      http.MethodPost,
		Path:        "/v1/history/refresh",
		Summary:     "Refresh history",
		Description: "Reloads the selected card's transactions and card info.",
		Tags:        []string{"History"},
	}, h.handle)
}

func (h *RefreshHandler) handle(ctx context.Context, input *SessionInput) (*PageOutput, error) {
	view, err := h.HistoryService.Refresh(ctx, input.SessionKey)
	return respond(ctx, view, err)
}

// PrevHandler handles POST /v1/history/prev.
type PrevHandler struct {
	HistoryService historyService
}

func NewPrevHandler(svc historyService) *PrevHandler {
	return &PrevHandler{HistoryService: svc}
}

func (h *PrevHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "history-prev",
		Method:      http.MethodPost,
		Path:        "/v1/history/prev",
		Summary:     "Previous page",
		Tags:        []string{"History"},
	}, h.handle)
}

func (h *PrevHandler) handle(ctx context.Context, input *SessionInput) (*PageOutput, error) {
	view, err := h.HistoryService.Prev(ctx, input.SessionKey)
	return respond(ctx, view, err)
}

// NextHandler handles POST /v1/history/next.
type NextHandler struct {
	HistoryService historyService
}

func NewNextHandler(svc historyService) *NextHandler {
	return &NextHandler{HistoryService: svc}
}

func (h *NextHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "history-next",
		Method:      http.MethodPost,
		Path:        "/v1/history/next",
		Summary:     "Next page",
		Tags:        []string{"History"},
	}, h.handle)
}

func (h *NextHandler) handle(ctx context.Context, input *SessionInput) (*PageOutput, error) {
	view, err := h.HistoryService.Next(ctx, input.SessionKey)
	return respond(ctx, view, err)
}

// JumpInput is the Huma input for jumping to a page.
type JumpInput struct {
	SessionKey string `header:"X-Session-Key" default:"default" doc:"Client session"`
	Body       struct {
		Page int `json:"page" required:"true" doc:"Target page, clamped into range"`
	}
}

// JumpHandler handles POST /v1/history/jump.
type JumpHandler struct {
	HistoryService historyService
}

func NewJumpHandler(svc historyService) *JumpHandler {
	return &JumpHandler{HistoryService: svc}
}

func (h *JumpHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "history-jump",
		Method:      http.MethodPost,
		Path:        "/v1/history/jump",
		Summary:     "Jump to page",
		Tags:        []string{"History"},
	}, h.handle)
}

func (h *JumpHandler) handle(ctx context.Context, input *JumpInput) (*PageOutput, error) {
	view, err := h.HistoryService.JumpTo(ctx, input.SessionKey, input.Body.Page)
	return respond(ctx, view, err)
}
