package service

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/operator/actions"
	"github.com/carson-networks/card-history-server/internal/transaction"
)

type mockCardAPI struct {
	mock.Mock
}

func (m *mockCardAPI) ListCards(ctx context.Context) ([]cardapi.Card, error) {
	args := m.Called(ctx)
	cards, _ := args.Get(0).([]cardapi.Card)
	return cards, args.Error(1)
}

func (m *mockCardAPI) Transactions(ctx context.Context, cardID string) ([]transaction.Record, error) {
	args := m.Called(ctx, cardID)
	records, _ := args.Get(0).([]transaction.Record)
	return records, args.Error(1)
}

func (m *mockCardAPI) CardInfo(ctx context.Context, cardID string) (*cardapi.CardInfo, error) {
	args := m.Called(ctx, cardID)
	info, _ := args.Get(0).(*cardapi.CardInfo)
	return info, args.Error(1)
}

type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func testMapper() *transaction.Mapper {
	return transaction.NewMapper(time.UTC, quietLogger())
}
