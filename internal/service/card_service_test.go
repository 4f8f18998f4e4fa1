package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/operator/actions"
	"github.com/carson-networks/card-history-server/internal/storage"
	"github.com/carson-networks/card-history-server/internal/validation"
)

func newCardTestService(t *testing.T) (*CardService, *mockCardAPI, *mockOperator, *storage.MockISelectionStore) {
	t.Helper()
	api := new(mockCardAPI)
	op := new(mockOperator)
	selection := storage.NewMockISelectionStore(t)
	svc := NewCardService(api, op, selection, "1", quietLogger())
	return svc, api, op, selection
}

// -- ListCards tests --

func TestListCards_Success(t *testing.T) {
	svc, api, _, _ := newCardTestService(t)
	api.On("ListCards", mock.Anything).Return([]cardapi.Card{
		{ID: 3, Name: "E100", Balance: "40.10"},
		{ID: 4, Name: "Shell", Balance: "n/a"},
	}, nil)

	cards, err := svc.ListCards(context.Background())

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "3", cards[0].ID)
	assert.Equal(t, "E100", cards[0].Name)
	assert.Equal(t, "40.1", cards[0].Balance.Decimal.String())
	assert.False(t, cards[1].Balance.Valid)
}

func TestListCards_Error(t *testing.T) {
	svc, api, _, _ := newCardTestService(t)
	api.On("ListCards", mock.Anything).Return(nil, errors.New("down"))

	cards, err := svc.ListCards(context.Background())

	assert.Error(t, err)
	assert.Nil(t, cards)
}

// -- AddCard tests --

func TestAddCard_Success(t *testing.T) {
	svc, _, op, _ := newCardTestService(t)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.AddCard) bool {
		return a.Name == "E100" && a.Balance.String() == "25.5"
	})).Return(nil)

	err := svc.AddCard(context.Background(), NewCard{Name: "  E100 ", Balance: " 25.50 "})

	require.NoError(t, err)
	op.AssertExpectations(t)
}

func TestAddCard_Validation(t *testing.T) {
	tests := map[string]NewCard{
		"blank name":      {Name: "   ", Balance: "1"},
		"missing balance": {Name: "E100"},
		"text balance":    {Name: "E100", Balance: "ten"},
	}

	for name, card := range tests {
		t.Run(name, func(t *testing.T) {
			svc, _, op, _ := newCardTestService(t)

			err := svc.AddCard(context.Background(), card)

			var fieldErrs validation.Errors
			assert.ErrorAs(t, err, &fieldErrs)
			op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
		})
	}
}

func TestAddCard_LooseNumberForms(t *testing.T) {
	tests := map[string]string{
		".5":  "0.5",
		"12.": "12",
		"1e3": "1000",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			svc, _, op, _ := newCardTestService(t)
			op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.AddCard) bool {
				return a.Balance.Equal(decimal.RequireFromString(want))
			})).Return(nil)

			require.NoError(t, svc.AddCard(context.Background(), NewCard{Name: "E100", Balance: input}))
			op.AssertExpectations(t)
		})
	}
}

func TestAddCard_Rejected(t *testing.T) {
	svc, _, op, _ := newCardTestService(t)
	rejection := cardapi.NewStatusError(409, "card already exists")
	op.On("Process", mock.Anything, mock.Anything).Return(rejection)

	err := svc.AddCard(context.Background(), NewCard{Name: "E100", Balance: "1"})

	var statusErr *cardapi.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "card already exists", statusErr.Message)
}

// -- DeleteCard tests --

func TestDeleteCard_RemoteFailureTolerated(t *testing.T) {
	svc, _, op, _ := newCardTestService(t)
	op.On("Process", mock.Anything, &actions.DeleteCard{SessionKey: "s", CardID: "9"}).
		Return(&cardapi.NetworkError{ErrorMessage: cardapi.ErrorMessage{Message: "refused"}})

	assert.NoError(t, svc.DeleteCard(context.Background(), "s", "9"))
}

func TestDeleteCard_StoreFailureReturned(t *testing.T) {
	svc, _, op, _ := newCardTestService(t)
	op.On("Process", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	assert.Error(t, svc.DeleteCard(context.Background(), "s", "9"))
}

func TestDeleteCard_BlankID(t *testing.T) {
	svc, _, op, _ := newCardTestService(t)

	assert.Error(t, svc.DeleteCard(context.Background(), "s", " "))
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

// -- Selection tests --

func TestSelectCard(t *testing.T) {
	svc, _, op, _ := newCardTestService(t)
	op.On("Process", mock.Anything, &actions.SelectCard{SessionKey: "s", CardID: "5"}).Return(nil)

	require.NoError(t, svc.SelectCard(context.Background(), "s", " 5 "))
	op.AssertExpectations(t)
}

func TestSelectedCard_Stored(t *testing.T) {
	svc, _, _, selection := newCardTestService(t)
	selection.EXPECT().Get(mock.Anything, "s").Return("5", true, nil)

	cardID, err := svc.SelectedCard(context.Background(), "s")

	require.NoError(t, err)
	assert.Equal(t, "5", cardID)
}

func TestSelectedCard_Fallback(t *testing.T) {
	svc, _, _, selection := newCardTestService(t)
	selection.EXPECT().Get(mock.Anything, "s").Return("", false, nil)

	cardID, err := svc.SelectedCard(context.Background(), "s")

	require.NoError(t, err)
	assert.Equal(t, "1", cardID)
}

func TestSelectedCard_StoreError(t *testing.T) {
	svc, _, _, selection := newCardTestService(t)
	selection.EXPECT().Get(mock.Anything, "s").Return("", false, errors.New("unavailable"))

	_, err := svc.SelectedCard(context.Background(), "s")

	assert.Error(t, err)
}
