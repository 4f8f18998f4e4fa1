package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/card-history-server/internal/cardapi"
)

// Card represents a card in the service layer.
type Card struct {
	ID      string
	Name    string
	Balance decimal.NullDecimal
}

// NewCard is the input of AddCard.
type NewCard struct {
	Name    string `json:"name" validate:"notblank,max=64"`
	Balance string `json:"balance" validate:"required"`
}

type cardRef struct {
	CardID string `json:"cardID" validate:"notblank"`
}

func cardFromAPI(card cardapi.Card) Card {
	out := Card{
		ID:   strconv.FormatInt(card.ID, 10),
		Name: card.Name,
	}
	if balance, err := decimal.NewFromString(strings.TrimSpace(card.Balance.String())); err == nil {
		out.Balance = decimal.NewNullDecimal(balance)
	}
	return out
}
