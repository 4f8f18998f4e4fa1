package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/card-history-server/internal/handlers/apierror"
)

// SelectCardInput is the Huma input for selecting a card.
type SelectCardInput struct {
	SessionKey string `header:"X-Session-Key" default:"default" doc:"Client session"`
	Body       struct {
		CardID string `json:"cardID" required:"true" minLength:"1" doc:"Card whose history the session shows"`
	}
}

// SelectCardHandler handles PUT /v1/selection.
type SelectCardHandler struct {
	CardService cardService
}

func NewSelectCardHandler(svc cardService) *SelectCardHandler {
	return &SelectCardHandler{CardService: svc}
}

func (h *SelectCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "select-card",
		Method:        http.MethodPut,
		Path:          "/v1/selection",
		Summary:       "Select card",
		Description:   "Stores the card whose history the session shows.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *SelectCardHandler) handle(ctx context.Context, input *SelectCardInput) (*struct{}, error) {
	if err := h.CardService.SelectCard(ctx, input.SessionKey, input.Body.CardID); err != nil {
		return nil, apierror.FromService(err, "failed to select card")
	}
	return nil, nil
}

// GetSelectionInput is the Huma input for reading the selected card.
type GetSelectionInput struct {
	SessionKey string `header:"X-Session-Key" default:"default" doc:"Client session"`
}

// GetSelectionOutput is the Huma output for reading the selected card.
type GetSelectionOutput struct {
	Body struct {
		CardID string `json:"cardID" doc:"Selected card, or the configured fallback"`
	}
}

// GetSelectionHandler handles GET /v1/selection.
type GetSelectionHandler struct {
	CardService cardService
}

func NewGetSelectionHandler(svc cardService) *GetSelectionHandler {
	return &GetSelectionHandler{CardService: svc}
}

func (h *GetSelectionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-selection",
		Method:      http.MethodGet,
		Path:        "/v1/selection",
		Summary:     "Get selected card",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *GetSelectionHandler) handle(ctx context.Context, input *GetSelectionInput) (*GetSelectionOutput, error) {
	cardID, err := h.CardService.SelectedCard(ctx, input.SessionKey)
	if err != nil {
		return nil, apierror.FromService(err, "failed to read selected card")
	}

	out := &GetSelectionOutput{}
	out.Body.CardID = cardID
	return out, nil
}
