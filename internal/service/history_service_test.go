package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/history"
	"github.com/carson-networks/card-history-server/internal/storage"
	"github.com/carson-networks/card-history-server/internal/transaction"
)

func newHistoryTestService(t *testing.T, pageSize int) (*HistoryService, *mockCardAPI, *storage.MockISelectionStore) {
	t.Helper()
	api := new(mockCardAPI)
	selection := storage.NewMockISelectionStore(t)
	cards := NewCardService(api, new(mockOperator), selection, "1", quietLogger())
	loader := history.NewLoader(api, testMapper(), quietLogger())
	return NewHistoryService(cards, loader, pageSize, 30*time.Minute), api, selection
}

func spendRecords(n int) []transaction.Record {
	out := make([]transaction.Record, n)
	for i := range out {
		out[i] = transaction.Record{
			TransactionID:   transaction.FlexString(strconv.Itoa(i + 1)),
			TransactionType: "spend",
			Amount:          "2",
			NewBalance:      "10",
			TransactionDate: "2025-03-01",
		}
	}
	return out
}

func TestHistoryOpen_LoadsSelectedCardOnce(t *testing.T) {
	svc, api, selection := newHistoryTestService(t, 10)
	selection.EXPECT().Get(mock.Anything, "s").Return("7", true, nil).Once()
	api.On("Transactions", mock.Anything, "7").Return(spendRecords(12), nil).Once()
	api.On("CardInfo", mock.Anything, "7").Return(&cardapi.CardInfo{Name: "E100", Balance: "10"}, nil).Once()

	view, err := svc.Open(context.Background(), "s")
	require.NoError(t, err)
	assert.Equal(t, "7", view.CardID)
	assert.Equal(t, 2, view.TotalPages)
	assert.Equal(t, "-2", view.Transactions[0].Amount.Decimal.String())

	view, err = svc.Next(context.Background(), "s")
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)
	assert.Len(t, view.Transactions, 2)

	api.AssertExpectations(t)
}

func TestHistoryPage_JumpsAfterOpen(t *testing.T) {
	svc, api, selection := newHistoryTestService(t, 5)
	selection.EXPECT().Get(mock.Anything, "s").Return("", false, nil)
	api.On("Transactions", mock.Anything, "1").Return(spendRecords(12), nil)
	api.On("CardInfo", mock.Anything, "1").Return(&cardapi.CardInfo{Name: "Default", Balance: "0"}, nil)

	view, err := svc.Page(context.Background(), "s", 9)

	require.NoError(t, err)
	assert.Equal(t, 3, view.Page)
	assert.Equal(t, "Default", view.CardName)
}

func TestHistoryRefresh_ShrinkClampsPage(t *testing.T) {
	svc, api, selection := newHistoryTestService(t, 10)
	selection.EXPECT().Get(mock.Anything, "s").Return("7", true, nil)
	api.On("Transactions", mock.Anything, "7").Return(spendRecords(15), nil).Once()
	api.On("Transactions", mock.Anything, "7").Return(spendRecords(5), nil).Once()
	api.On("CardInfo", mock.Anything, "7").Return(&cardapi.CardInfo{Name: "E100", Balance: "10"}, nil)

	view, err := svc.JumpTo(context.Background(), "s", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Page)

	view, err = svc.Refresh(context.Background(), "s")

	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Len(t, view.Transactions, 5)
}

func TestHistoryRefresh_SelectionErrorResets(t *testing.T) {
	svc, _, selection := newHistoryTestService(t, 10)
	storeErr := errors.New("selection store unavailable")
	selection.EXPECT().Get(mock.Anything, "s").Return("", false, storeErr)

	view, err := svc.Refresh(context.Background(), "s")

	assert.ErrorIs(t, err, storeErr)
	assert.Empty(t, view.Transactions)
	assert.True(t, view.Loaded)
}

func TestHistorySessionsAreIndependent(t *testing.T) {
	svc, api, selection := newHistoryTestService(t, 10)
	selection.EXPECT().Get(mock.Anything, "a").Return("7", true, nil)
	selection.EXPECT().Get(mock.Anything, "b").Return("8", true, nil)
	api.On("Transactions", mock.Anything, "7").Return(spendRecords(3), nil)
	api.On("CardInfo", mock.Anything, "7").Return(&cardapi.CardInfo{Name: "A", Balance: "1"}, nil)
	api.On("Transactions", mock.Anything, "8").Return(spendRecords(1), nil)
	api.On("CardInfo", mock.Anything, "8").Return(&cardapi.CardInfo{Name: "B", Balance: "2"}, nil)

	a, err := svc.Open(context.Background(), "a")
	require.NoError(t, err)
	b, err := svc.Open(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, "A", a.CardName)
	assert.Equal(t, 3, a.TransactionCount)
	assert.Equal(t, "B", b.CardName)
	assert.Equal(t, 1, b.TransactionCount)
}

func TestHistorySession_IdleSessionEvictedAndReloaded(t *testing.T) {
	svc, api, selection := newHistoryTestService(t, 10)
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	selection.EXPECT().Get(mock.Anything, "a").Return("7", true, nil)
	selection.EXPECT().Get(mock.Anything, "b").Return("7", true, nil)
	api.On("Transactions", mock.Anything, "7").Return(spendRecords(3), nil)
	api.On("CardInfo", mock.Anything, "7").Return(&cardapi.CardInfo{Name: "E100", Balance: "1"}, nil)

	_, err := svc.Open(context.Background(), "a")
	require.NoError(t, err)

	clock = clock.Add(10 * time.Minute)
	_, err = svc.Open(context.Background(), "b")
	require.NoError(t, err)
	assert.Len(t, svc.sessions, 2, "a is not idle long enough yet")

	clock = clock.Add(25 * time.Minute)
	_, err = svc.Open(context.Background(), "b")
	require.NoError(t, err)
	assert.Len(t, svc.sessions, 1)
	assert.NotContains(t, svc.sessions, "a")

	view, err := svc.Open(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, view.Loaded)
	assert.Equal(t, 3, view.TransactionCount)
	api.AssertNumberOfCalls(t, "Transactions", 3)
}

func TestHistorySession_NoTTLKeepsSessions(t *testing.T) {
	svc, _, _ := newHistoryTestService(t, 10)
	svc.idleTTL = 0
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	svc.session("a")
	clock = clock.Add(24 * time.Hour)
	svc.session("b")

	assert.Len(t, svc.sessions, 2)
}
