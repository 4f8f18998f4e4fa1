package history

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/card-history-server/internal/history"
	"github.com/carson-networks/card-history-server/internal/logging"
)

// Transaction is the API response model for one row of the history.
type Transaction struct {
	ID         string  `json:"id" doc:"Transaction id"`
	Kind       string  `json:"kind" enum:"purchased,added,setted" doc:"What the transaction did to the balance"`
	Amount     *string `json:"amount" doc:"Signed decimal amount, null when malformed"`
	NewBalance *string `json:"newBalance" doc:"Balance after the transaction, null when malformed"`
	Date       string  `json:"date" doc:"DD/MM/YYYY HH:mm, empty when malformed"`
	Liters     *string `json:"liters,omitempty" doc:"Fuel volume, present only when sent"`
}

// PageView is the API response model for the current history page.
type PageView struct {
	CardID           string        `json:"cardID" doc:"Card the history belongs to"`
	CardName         string        `json:"cardName" doc:"Card name"`
	Balance          *string       `json:"balance" doc:"Card balance, null when malformed"`
	TransactionCount int           `json:"transactionCount" doc:"Transactions across all pages"`
	Malformed        int           `json:"malformed" doc:"Transactions with unparsable fields"`
	Page             int           `json:"page" doc:"1-based current page"`
	TotalPages       int           `json:"totalPages" doc:"Page count, at least 1"`
	PageSize         int           `json:"pageSize" doc:"Transactions per page"`
	Transactions     []Transaction `json:"transactions" doc:"Transactions of the current page"`
	Error            string        `json:"error,omitempty" doc:"Message of the last failed load"`
}

// PageOutput is the Huma output shared by every history endpoint.
type PageOutput struct {
	Body PageView
}

// SessionInput identifies the client session of a history request.
type SessionInput struct {
	SessionKey string `header:"X-Session-Key" default:"default" doc:"Client session"`
}

// historyService is the part of service.HistoryService the history endpoints use.
type historyService interface {
	Page(ctx context.Context, sessionKey string, page int) (history.View, error)
	Refresh(ctx context.Context, sessionKey string) (history.View, error)
	Prev(ctx context.Context, sessionKey string) (history.View, error)
	Next(ctx context.Context, sessionKey string) (history.View, error)
	JumpTo(ctx context.Context, sessionKey string, page int) (history.View, error)
}

// Register registers every history endpoint with the Huma API.
func Register(api huma.API, svc historyService) {
	NewGetHistoryHandler(svc).Register(api)
	NewRefreshHandler(svc).Register(api)
	NewPrevHandler(svc).Register(api)
	NewNextHandler(svc).Register(api)
	NewJumpHandler(svc).Register(api)
}

// respond builds the page output. Load failures are already part of the
// view, so they are recorded in the log data and not returned as errors.
func respond(ctx context.Context, view history.View, err error) (*PageOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("sessionKey", view.SessionKey)
		logData.AddData("page", view.Page)
		if err != nil {
			logData.AddData("loadError", err.Error())
		}
	}
	return &PageOutput{Body: pageViewFromService(view)}, nil
}

func pageViewFromService(view history.View) PageView {
	out := PageView{
		CardID:           view.CardID,
		CardName:         view.CardName,
		Balance:          decimalString(view.Balance),
		TransactionCount: view.TransactionCount,
		Malformed:        view.Malformed,
		Page:             view.Page,
		TotalPages:       view.TotalPages,
		PageSize:         view.PageSize,
		Transactions:     make([]Transaction, len(view.Transactions)),
	}
	if view.Err != nil {
		out.Error = view.Err.Error()
	}

	for i, tx := range view.Transactions {
		out.Transactions[i] = Transaction{
			ID:         tx.ID,
			Kind:       tx.Kind.String(),
			Amount:     decimalString(tx.Amount),
			NewBalance: decimalString(tx.NewBalance),
			Date:       tx.Date,
			Liters:     decimalString(tx.Liters),
		}
	}
	return out
}

func decimalString(value decimal.NullDecimal) *string {
	if !value.Valid {
		return nil
	}
	s := value.Decimal.StringFixed(2)
	return &s
}
