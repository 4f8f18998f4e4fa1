package card

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/card-history-server/internal/service"
)

// Card is the API response model for a card.
type Card struct {
	ID      string  `json:"id" doc:"Card id"`
	Name    string  `json:"name" doc:"Card name"`
	Balance *string `json:"balance" doc:"Decimal balance, null when the card service sent a malformed value"`
}

// cardService is the part of service.CardService the card endpoints use.
type cardService interface {
	ListCards(ctx context.Context) ([]service.Card, error)
	AddCard(ctx context.Context, card service.NewCard) error
	DeleteCard(ctx context.Context, sessionKey, cardID string) error
	SelectCard(ctx context.Context, sessionKey, cardID string) error
	SelectedCard(ctx context.Context, sessionKey string) (string, error)
}

// Register registers every card endpoint with the Huma API.
func Register(api huma.API, svc cardService) {
	NewListCardsHandler(svc).Register(api)
	NewAddCardHandler(svc).Register(api)
	NewDeleteCardHandler(svc).Register(api)
	NewSelectCardHandler(svc).Register(api)
	NewGetSelectionHandler(svc).Register(api)
}

func cardFromService(card service.Card) Card {
	out := Card{ID: card.ID, Name: card.Name}
	if card.Balance.Valid {
		balance := card.Balance.Decimal.String()
		out.Balance = &balance
	}
	return out
}
