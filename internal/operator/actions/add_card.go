package actions

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/card-history-server/internal/cardapi"
)

type AddCard struct {
	Name    string
	Balance decimal.Decimal

	IAction
}

func (a *AddCard) Perform(ctx context.Context, target *Target) error {
	return target.Cards.AddCard(ctx, cardapi.AddCardRequest{
		Name:    a.Name,
		Balance: json.Number(a.Balance.String()),
	})
}
