package actions

import (
	"context"

	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/storage"
)

// ICardWriter is the mutating half of the remote card service.
type ICardWriter interface {
	AddCard(ctx context.Context, req cardapi.AddCardRequest) error
	DeleteCard(ctx context.Context, cardID string) error
}

// Target is what an action operates on.
type Target struct {
	Cards     ICardWriter
	Selection storage.ISelectionStore
}

type IAction interface {
	Perform(ctx context.Context, target *Target) error
}
