package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/card-history-server/internal/cardapi"
	"github.com/carson-networks/card-history-server/internal/operator/actions"
	"github.com/carson-networks/card-history-server/internal/storage"
	"github.com/carson-networks/card-history-server/internal/validation"
)

// CardService handles the card list, card creation and the selected card.
type CardService struct {
	cards         ICardLister
	operator      IOperator
	selection     storage.ISelectionStore
	defaultCardID string
	log           logrus.FieldLogger
}

// NewCardService creates a new CardService.
func NewCardService(
	cards ICardLister,
	operator IOperator,
	selection storage.ISelectionStore,
	defaultCardID string,
	log logrus.FieldLogger,
) *CardService {
	return &CardService{
		cards:         cards,
		operator:      operator,
		selection:     selection,
		defaultCardID: defaultCardID,
		log:           log,
	}
}

// ListCards returns every card known to the card service.
func (s *CardService) ListCards(ctx context.Context) ([]Card, error) {
	cards, err := s.cards.ListCards(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]Card, len(cards))
	for i, card := range cards {
		converted[i] = cardFromAPI(card)
	}
	return converted, nil
}

// AddCard validates and creates a card. The card service's rejection
// message is returned as a *cardapi.StatusError.
func (s *CardService) AddCard(ctx context.Context, card NewCard) error {
	card.Name = strings.TrimSpace(card.Name)
	card.Balance = strings.TrimSpace(card.Balance)
	if err := validation.Validate(card); err != nil {
		return err
	}

	balance, err := decimal.NewFromString(card.Balance)
	if err != nil {
		return validation.Errors{"balance": "Must be a number"}
	}

	return s.operator.Process(ctx, &actions.AddCard{Name: card.Name, Balance: balance})
}

// DeleteCard removes a card. Failures of the card service are logged and
// tolerated; the card list is simply reloaded by the caller.
func (s *CardService) DeleteCard(ctx context.Context, sessionKey, cardID string) error {
	if err := validation.Validate(cardRef{CardID: cardID}); err != nil {
		return err
	}

	err := s.operator.Process(ctx, &actions.DeleteCard{SessionKey: sessionKey, CardID: cardID})
	if isRemoteError(err) {
		s.log.WithError(err).WithField("cardID", cardID).Warn("CardService.DeleteCard.card service delete failed")
		return nil
	}
	return err
}

// SelectCard persists cardID as the card whose history sessionKey views.
func (s *CardService) SelectCard(ctx context.Context, sessionKey, cardID string) error {
	cardID = strings.TrimSpace(cardID)
	if err := validation.Validate(cardRef{CardID: cardID}); err != nil {
		return err
	}
	return s.operator.Process(ctx, &actions.SelectCard{SessionKey: sessionKey, CardID: cardID})
}

// SelectedCard returns the selected card of sessionKey, or the configured
// fallback when none was selected.
func (s *CardService) SelectedCard(ctx context.Context, sessionKey string) (string, error) {
	cardID, found, err := s.selection.Get(ctx, sessionKey)
	if err != nil {
		return "", err
	}
	if !found || cardID == "" {
		return s.defaultCardID, nil
	}
	return cardID, nil
}

func isRemoteError(err error) bool {
	var statusErr *cardapi.StatusError
	var networkErr *cardapi.NetworkError
	var decodeErr *cardapi.DecodeError
	return errors.As(err, &statusErr) || errors.As(err, &networkErr) || errors.As(err, &decodeErr)
}
