package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/card-history-server/internal/handlers/apierror"
)

// DeleteCardInput is the Huma input for deleting a card.
type DeleteCardInput struct {
	SessionKey string `header:"X-Session-Key" default:"default" doc:"Client session"`
	CardID     string `path:"cardID" doc:"Card id"`
}

// DeleteCardHandler handles DELETE /v1/cards/{cardID}.
type DeleteCardHandler struct {
	CardService cardService
}

func NewDeleteCardHandler(svc cardService) *DeleteCardHandler {
	return &DeleteCardHandler{CardService: svc}
}

func (h *DeleteCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-card",
		Method:        http.MethodDelete,
		Path:          "/v1/cards/{cardID}",
		Summary:       "Delete card",
		Description:   "Deletes a card. Card service failures are tolerated.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCardHandler) handle(ctx context.Context, input *DeleteCardInput) (*struct{}, error) {
	if err := h.CardService.DeleteCard(ctx, input.SessionKey, input.CardID); err != nil {
		return nil, apierror.FromService(err, "failed to delete card")
	}
	return nil, nil
}
