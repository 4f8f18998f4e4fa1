package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/history"
	"github.com/carson-networks/card-history-server/internal/operator/actions"
	"github.com/carson-networks/card-history-server/internal/storage"
)

// ICardLister reads the card list from the card service.
type ICardLister interface {
	ListCards(ctx context.Context) ([]cardapi.Card, error)
}

// IOperator runs a mutation through the operator queue.
type IOperator interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Cards   *CardService
	History *HistoryService
}

type Dependencies struct {
	Cards         ICardLister
	Operator      IOperator
	Selection     storage.ISelectionStore
	Loader        *history.Loader
	DefaultCardID string
	PageSize      int
	SessionTTL    time.Duration
	Log           logrus.FieldLogger
}

// NewService wires the card and history services together.
func NewService(deps Dependencies) *Service {
	cards := NewCardService(deps.Cards, deps.Operator, deps.Selection, deps.DefaultCardID, deps.Log)
	return &Service{
		Cards:   cards,
		History: NewHistoryService(cards, deps.Loader, deps.PageSize, deps.SessionTTL),
	}
}
