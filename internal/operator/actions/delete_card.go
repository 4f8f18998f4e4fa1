package actions

import (
	"context"
)

// DeleteCard removes a card remotely and drops it from the session's
// selection when it was the selected one.
type DeleteCard struct {
	SessionKey string
	CardID     string

	IAction
}

func (d *DeleteCard) Perform(ctx context.Context, target *Target) error {
	if err := target.Cards.DeleteCard(ctx, d.CardID); err != nil {
		return err
	}

	selected, found, err := target.Selection.Get(ctx, d.SessionKey)
	if err != nil {
		return err
	}
	if found && selected == d.CardID {
		return target.Selection.Clear(ctx, d.SessionKey)
	}
	return nil
}
