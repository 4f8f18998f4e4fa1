package actions

import (
	"context"
)

type SelectCard struct {
	SessionKey string
	CardID     string

	IAction
}

func (s *SelectCard) Perform(ctx context.Context, target *Target) error {
	return target.Selection.Set(ctx, s.SessionKey, s.CardID)
}
