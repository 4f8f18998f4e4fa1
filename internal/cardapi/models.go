package cardapi

import (
	"encoding/json"

	"github.com/carson-networks/card-history-server/internal/transaction"
)

// Card is one entry of the card list.
type Card struct {
	ID      int64                  `json:"card_id"`
	Name    string                 `json:"card_name"`
	Balance transaction.FlexString `json:"balance"`
}

// CardInfo is the header data of a single card.
type CardInfo struct {
	Name    string                 `json:"card_name"`
	Balance transaction.FlexString `json:"balance"`
}

// AddCardRequest is the body of POST /cards/add. Balance is sent as a bare
// JSON number.
type AddCardRequest struct {
	Name    string      `json:"name"`
	Balance json.Number `json:"balance"`
}

type transactionsResponse struct {
	Transactions []transaction.Record `json:"transactions"`
}

type errorResponse struct {
	Error string `json:"error"`
}
