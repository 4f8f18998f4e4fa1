package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const selectedCardsTable = "selected_cards"

var _ ISelectionStore = (*PostgresSelectionStore)(nil)

// PostgresSelectionStore keeps one row per session in selected_cards.
type PostgresSelectionStore struct {
	exec bob.Executor
}

func NewPostgresSelectionStore(db *sql.DB) *PostgresSelectionStore {
	return &PostgresSelectionStore{exec: bob.NewDB(db)}
}

func (s *PostgresSelectionStore) Get(ctx context.Context, sessionKey string) (string, bool, error) {
	query := psql.Select(
		sm.Columns("card_id"),
		sm.From(selectedCardsTable),
		sm.Where(psql.Quote("cell_key").EQ(psql.Arg(cellKey(sessionKey)))),
	)

	cardID, err := bob.One(ctx, s.exec, query, scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return cardID, true, nil
}

func (s *PostgresSelectionStore) Set(ctx context.Context, sessionKey, cardID string) error {
	query := psql.Insert(
		im.Into(selectedCardsTable, "cell_key", "card_id"),
		im.Values(psql.Arg(cellKey(sessionKey), cardID)),
		im.OnConflict("cell_key").DoUpdate(
			im.SetExcluded("card_id"),
		),
	)
	_, err := bob.Exec(ctx, s.exec, query)
	return err
}

func (s *PostgresSelectionStore) Clear(ctx context.Context, sessionKey string) error {
	query := psql.Delete(
		dm.From(selectedCardsTable),
		dm.Where(psql.Quote("cell_key").EQ(psql.Arg(cellKey(sessionKey)))),
	)
	_, err := bob.Exec(ctx, s.exec, query)
	return err
}
