package history

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/logging"
	"github.com/carson-networks/card-history-server/internal/transaction"
)

// ErrStaleLoad is returned when a newer load was issued while this one was
// in flight. The returned View reflects the newer state.
var ErrStaleLoad = errors.New("history: load superseded by a newer one")

// ErrConnection is the user-facing error stored when the card service could
// not be reached.
var ErrConnection = errors.New("could not connect to the card service")

// ICardSource is the part of the card service a history load reads.
type ICardSource interface {
	Transactions(ctx context.Context, cardID string) ([]transaction.Record, error)
	CardInfo(ctx context.Context, cardID string) (*cardapi.CardInfo, error)
}

type Loader struct {
	source ICardSource
	mapper *transaction.Mapper
	log    logrus.FieldLogger
}

func NewLoader(source ICardSource, mapper *transaction.Mapper, log logrus.FieldLogger) *Loader {
	return &Loader{source: source, mapper: mapper, log: log}
}

// Load fetches transactions and then card info for cardID, one after the
// other, and applies them to session.
//
// A card service rejection (non-2xx) leaves the session untouched and
// records the service's message. Any other failure resets the session to an
// empty list with a zero balance. Either way the error is returned along
// with the resulting View.
func (l *Loader) Load(ctx context.Context, session *Session, cardID string) (View, error) {
	seq := session.Begin()
	log := l.log.WithFields(logrus.Fields{
		"sessionKey": session.Key(),
		"cardID":     cardID,
		"loadSeq":    seq,
	})
	logData := logging.GetLogData(ctx)

	result, err := l.fetch(ctx, logData, cardID)
	if err != nil {
		return l.fail(session, seq, err, log)
	}

	if !session.Apply(seq, result) {
		log.Info("Loader.Load.stale result discarded")
		return session.View(), ErrStaleLoad
	}

	if logData != nil {
		logData.AddData("transactionCount", len(result.Transactions))
		logData.AddData("malformedCount", result.Malformed)
	}
	return session.View(), nil
}

// Fail records a failure that happened before the card service was called,
// such as the selected card not being readable.
func (l *Loader) Fail(session *Session, err error) (View, error) {
	seq := session.Begin()
	log := l.log.WithFields(logrus.Fields{"sessionKey": session.Key(), "loadSeq": seq})
	return l.fail(session, seq, err, log)
}

func (l *Loader) fetch(ctx context.Context, logData *logging.LogData, cardID string) (LoadResult, error) {
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("fetchTransactionsMs")
	}
	records, err := l.source.Transactions(ctx, cardID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return LoadResult{}, err
	}

	if logData != nil {
		stopTimer = logData.AddTiming("fetchCardInfoMs")
	}
	info, err := l.source.CardInfo(ctx, cardID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return LoadResult{}, err
	}

	mapped := l.mapper.Map(records)
	return LoadResult{
		CardID:       cardID,
		CardName:     info.Name,
		Balance:      parseBalance(info.Balance.String()),
		Transactions: mapped.Transactions,
		Malformed:    mapped.Malformed,
	}, nil
}

func (l *Loader) fail(session *Session, seq uint64, err error, log logrus.FieldLogger) (View, error) {
	// The caller went away; keep whatever the session showed before.
	if errors.Is(err, context.Canceled) {
		log.WithError(err).Info("Loader.Load.cancelled by caller")
		return session.View(), err
	}

	var statusErr *cardapi.StatusError
	if errors.As(err, &statusErr) {
		if !session.Fail(seq, err) {
			return session.View(), ErrStaleLoad
		}
		log.WithError(err).WithField("status", statusErr.StatusCode).Warn("Loader.Load.card service rejected request")
		return session.View(), err
	}

	displayErr := err
	var networkErr *cardapi.NetworkError
	if errors.As(err, &networkErr) {
		displayErr = ErrConnection
	}
	if !session.Reset(seq, displayErr) {
		return session.View(), ErrStaleLoad
	}
	log.WithError(err).Error("Loader.Load.failed, history reset")
	return session.View(), err
}

func parseBalance(value string) decimal.NullDecimal {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(parsed)
}
