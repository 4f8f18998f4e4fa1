package card

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/card-history-server/internal/handlers/apierror"
	"github.com/carson-networks/card-history-server/internal/service"
)

// AddCardBody is the request body for adding a card.
type AddCardBody struct {
	Name    string `json:"name" required:"true" maxLength:"64" doc:"Card name"`
	Balance string `json:"balance" required:"true" doc:"Starting balance as a decimal string"`
}

// AddCardInput is the Huma input for adding a card.
type AddCardInput struct {
	Body AddCardBody
}

// AddCardOutput is the Huma output for adding a card.
type AddCardOutput struct {
	Status int
	Body   struct {
		OK bool `json:"ok"`
	}
}

// AddCardHandler handles POST /v1/cards.
type AddCardHandler struct {
	CardService cardService
}

func NewAddCardHandler(svc cardService) *AddCardHandler {
	return &AddCardHandler{CardService: svc}
}

func (h *AddCardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "add-card",
		Method:        http.MethodPost,
		Path:          "/v1/cards",
		Summary:       "Add card",
		Description:   "Creates a card on the card service.",
		Tags:          []string{"Cards"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseAddCardInput(input *AddCardInput) service.NewCard {
	return service.NewCard{
		Name:    input.Body.Name,
		Balance: input.Body.Balance,
	}
}

func (h *AddCardHandler) handle(ctx context.Context, input *AddCardInput) (*AddCardOutput, error) {
	if err := h.CardService.AddCard(ctx, parseAddCardInput(input)); err != nil {
		return nil, apierror.FromService(err, "failed to add card")
	}

	out := &AddCardOutput{Status: http.StatusCreated}
	out.Body.OK = true
	return out, nil
}
