package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/card-history-server/internal/handlers/apierror"
	"github.com/carson-networks/card-history-server/internal/logging"
)

// ListCardsOutput is the Huma output for listing cards.
type ListCardsOutput struct {
	Body struct {
		Cards []Card `json:"cards" doc:"All cards"`
	}
}

// ListCardsHandler handles GET /v1/cards.
type ListCardsHandler struct {
	CardService cardService
}

func NewListCardsHandler(svc cardService) *ListCardsHandler {
	return &ListCardsHandler{CardService: svc}
}

func (h *ListCardsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-cards",
		Method:      http.MethodGet,
		Path:        "/v1/cards",
		Summary:     "List cards",
		Description: "Returns every card known to the card service.",
		Tags:        []string{"Cards"},
	}, h.handle)
}

func (h *ListCardsHandler) handle(ctx context.Context, _ *struct{}) (*ListCardsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listCardsMs")
	}
	cards, err := h.CardService.ListCards(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(err, "failed to list cards")
	}

	if logData != nil {
		logData.AddData("cardCount", len(cards))
	}

	out := &ListCardsOutput{}
	out.Body.Cards = make([]Card, len(cards))
	for i, card := range cards {
		out.Body.Cards[i] = cardFromService(card)
	}
	return out, nil
}
