package history

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/card-history-server/internal/history"
	"github.com/carson-networks/card-history-server/internal/transaction"
)

type mockHistoryService struct {
	mock.Mock
}

func (m *mockHistoryService) Page(ctx context.Context, sessionKey string, page int) (history.View, error) {
	args := m.Called(ctx, sessionKey, page)
	return args.Get(0).(history.View), args.Error(1)
}

func (m *mockHistoryService) Refresh(ctx context.Context, sessionKey string) (history.View, error) {
	args := m.Called(ctx, sessionKey)
	return args.Get(0).(history.View), args.Error(1)
}

func (m *mockHistoryService) Prev(ctx context.Context, sessionKey string) (history.View, error) {
	args := m.Called(ctx, sessionKey)
	return args.Get(0).(history.View), args.Error(1)
}

func (m *mockHistoryService) Next(ctx context.Context, sessionKey string) (history.View, error) {
	args := m.Called(ctx, sessionKey)
	return args.Get(0).(history.View), args.Error(1)
}

func (m *mockHistoryService) JumpTo(ctx context.Context, sessionKey string, page int) (history.View, error) {
	args := m.Called(ctx, sessionKey, page)
	return args.Get(0).(history.View), args.Error(1)
}

func newTestAPI(t *testing.T, svc historyService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	Register(api, svc)
	return api
}

func decodeView(t *testing.T, body []byte) PageView {
	t.Helper()
	var view PageView
	require.NoError(t, json.Unmarshal(body, &view))
	return view
}

func sampleView() history.View {
	return history.View{
		SessionKey:       "default",
		CardID:           "4",
		CardName:         "E100",
		Balance:          decimal.NewNullDecimal(decimal.RequireFromString("87.5")),
		TransactionCount: 12,
		Malformed:        1,
		Page:             2,
		TotalPages:       2,
		PageSize:         10,
		Loaded:           true,
		Transactions: []transaction.Display{
			{
				ID:         "11",
				Kind:       transaction.KindPurchased,
				Amount:     decimal.NewNullDecimal(decimal.RequireFromString("-12.3")),
				NewBalance: decimal.NewNullDecimal(decimal.RequireFromString("87.5")),
				Date:       "01/02/2025 10:00",
				Liters:     decimal.NewNullDecimal(decimal.RequireFromString("20")),
			},
			{
				ID:   "12",
				Kind: transaction.KindAdded,
				Date: "",
			},
		},
	}
}

// -- pageViewFromService unit tests --

func TestPageViewFromService(t *testing.T) {
	view := pageViewFromService(sampleView())

	assert.Equal(t, "E100", view.CardName)
	require.NotNil(t, view.Balance)
	assert.Equal(t, "87.50", *view.Balance)
	assert.Equal(t, 12, view.TransactionCount)
	assert.Equal(t, 1, view.Malformed)
	assert.Empty(t, view.Error)

	require.Len(t, view.Transactions, 2)
	first := view.Transactions[0]
	assert.Equal(t, "purchased", first.Kind)
	assert.Equal(t, "-12.30", *first.Amount)
	assert.Equal(t, "20.00", *first.Liters)
	assert.Equal(t, "01/02/2025 10:00", first.Date)

	second := view.Transactions[1]
	assert.Equal(t, "added", second.Kind)
	assert.Nil(t, second.Amount)
	assert.Nil(t, second.Liters)
}

func TestPageViewFromService_EmptyTransactionsNotNull(t *testing.T) {
	view := pageViewFromService(history.View{Page: 1, TotalPages: 1})

	assert.NotNil(t, view.Transactions)
	assert.Nil(t, view.Balance)
}

// -- HTTP integration tests --

func TestHTTP_GetHistory(t *testing.T) {
	mockSvc := new(mockHistoryService)
	mockSvc.On("Page", mock.Anything, "phone", 2).Return(sampleView(), nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/history?page=2", "X-Session-Key: phone")

	require.Equal(t, http.StatusOK, resp.Code)
	view := decodeView(t, resp.Body.Bytes())
	assert.Equal(t, 2, view.Page)
	assert.Len(t, view.Transactions, 2)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetHistory_DefaultsSessionAndPage(t *testing.T) {
	mockSvc := new(mockHistoryService)
	mockSvc.On("Page", mock.Anything, "default", 0).Return(sampleView(), nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/history")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Refresh_LoadErrorInBody(t *testing.T) {
	failed := history.View{
		SessionKey: "default",
		Page:       1,
		TotalPages: 1,
		PageSize:   10,
		Balance:    decimal.NewNullDecimal(decimal.Zero),
		Loaded:     true,
		Err:        history.ErrConnection,
	}
	mockSvc := new(mockHistoryService)
	mockSvc.On("Refresh", mock.Anything, "default").Return(failed, errors.New("dial tcp: refused"))

	resp := newTestAPI(t, mockSvc).Post("/v1/history/refresh")

	require.Equal(t, http.StatusOK, resp.Code)
	view := decodeView(t, resp.Body.Bytes())
	assert.Equal(t, "could not connect to the card service", view.Error)
	assert.Equal(t, "0.00", *view.Balance)
	assert.Empty(t, view.Transactions)
}

func TestHTTP_PrevNext(t *testing.T) {
	mockSvc := new(mockHistoryService)
	mockSvc.On("Prev", mock.Anything, "default").Return(history.View{Page: 1, TotalPages: 2}, nil)
	mockSvc.On("Next", mock.Anything, "default").Return(history.View{Page: 2, TotalPages: 2}, nil)
	api := newTestAPI(t, mockSvc)

	resp := api.Post("/v1/history/prev")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, decodeView(t, resp.Body.Bytes()).Page)

	resp = api.Post("/v1/history/next")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 2, decodeView(t, resp.Body.Bytes()).Page)
}

func TestHTTP_Jump(t *testing.T) {
	mockSvc := new(mockHistoryService)
	mockSvc.On("JumpTo", mock.Anything, "default", 99).Return(history.View{Page: 3, TotalPages: 3}, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/history/jump", map[string]any{"page": 99})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 3, decodeView(t, resp.Body.Bytes()).Page)
}

func TestHTTP_Jump_MissingPage(t *testing.T) {
	mockSvc := new(mockHistoryService)

	resp := newTestAPI(t, mockSvc).Post("/v1/history/jump", map[string]any{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "JumpTo", mock.Anything, mock.Anything, mock.Anything)
}
