package storage

import (
	"context"
)

// SelectedCardKey is the fixed identifier under which the selected card is
// persisted. Each session gets its own cell under this prefix.
const SelectedCardKey = "@amic_selected_card"

// ISelectionStore persists the selected card id of each session.
//
//go:generate mockery --name ISelectionStore --inpackage --with-expecter --filename mock_ISelectionStore.go
type ISelectionStore interface {
	// Get returns the stored card id; found is false when nothing is stored.
	Get(ctx context.Context, sessionKey string) (cardID string, found bool, err error)
	Set(ctx context.Context, sessionKey, cardID string) error
	Clear(ctx context.Context, sessionKey string) error
}

func cellKey(sessionKey string) string {
	return SelectedCardKey + ":" + sessionKey
}
