// Package history holds the transient state of one transaction history
// screen: the full list of mapped transactions, the card header and the
// current page.
//
// Loads are numbered. Only the most recently issued load may change the
// state, so a slow response that loses a race with a newer refresh is
// dropped instead of overwriting fresher data.
package history

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/card-history-server/internal/pagination"
	"github.com/carson-networks/card-history-server/internal/transaction"
)

// LoadResult is everything one successful load fetched.
type LoadResult struct {
	CardID       string
	CardName     string
	Balance      decimal.NullDecimal
	Transactions []transaction.Display
	Malformed    int
}

// View is a snapshot of the session with the current page sliced out.
type View struct {
	SessionKey       string
	CardID           string
	CardName         string
	Balance          decimal.NullDecimal
	TransactionCount int
	Malformed        int
	Page             int
	TotalPages       int
	PageSize         int
	Transactions     []transaction.Display
	Loaded           bool
	Err              error
}

type Session struct {
	mu sync.Mutex

	key      string
	pageSize int
	latest   uint64

	cardID      string
	cardName    string
	balance     decimal.NullDecimal
	items       []transaction.Display
	malformed   int
	currentPage int
	loaded      bool
	err         error
}

func NewSession(key string, pageSize int) *Session {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Session{
		key:         key,
		pageSize:    pageSize,
		currentPage: 1,
	}
}

func (s *Session) Key() string {
	return s.key
}

// Begin issues the sequence number for a new load.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// Apply replaces the session contents with result if seq is still the
// latest load. The current page is kept, clamped to the new page count.
func (s *Session) Apply(seq uint64, result LoadResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.latest {
		return false
	}

	s.cardID = result.CardID
	s.cardName = result.CardName
	s.balance = result.Balance
	s.items = result.Transactions
	s.malformed = result.Malformed
	s.loaded = true
	s.err = nil
	s.clampLocked()
	return true
}

// Reset empties the list and zeroes the balance after a load that could not
// reach the card service. err is kept for display.
func (s *Session) Reset(seq uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.latest {
		return false
	}

	s.items = nil
	s.balance = decimal.NewNullDecimal(decimal.Zero)
	s.malformed = 0
	s.loaded = true
	s.err = err
	s.clampLocked()
	return true
}

// Fail records err for a load the card service rejected, leaving the
// previous contents in place.
func (s *Session) Fail(seq uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.latest {
		return false
	}
	s.err = err
	return true
}

func (s *Session) Prev() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = pagination.Prev(s.currentPage)
	return s.viewLocked()
}

func (s *Session) Next() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = pagination.Next(s.currentPage, s.totalPagesLocked())
	return s.viewLocked()
}

func (s *Session) JumpTo(page int) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = pagination.JumpTo(page, s.totalPagesLocked())
	return s.viewLocked()
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Session) totalPagesLocked() int {
	return pagination.TotalPages(len(s.items), s.pageSize)
}

func (s *Session) clampLocked() {
	s.currentPage = pagination.Clamp(s.currentPage, s.totalPagesLocked())
}

func (s *Session) viewLocked() View {
	page := pagination.Paginate(s.items, s.pageSize, s.currentPage)
	return View{
		SessionKey:       s.key,
		CardID:           s.cardID,
		CardName:         s.cardName,
		Balance:          s.balance,
		TransactionCount: len(s.items),
		Malformed:        s.malformed,
		Page:             page.CurrentPage,
		TotalPages:       page.TotalPages,
		PageSize:         s.pageSize,
		Transactions:     page.Items,
		Loaded:           s.loaded,
		Err:              s.err,
	}
}
