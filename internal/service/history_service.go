package service

import (
	"context"
	"sync"
	"time"

	"github.com/carson-networks/card-history-server/internal/history"
)

// HistoryService keeps one history session per session key. A session left
// unused for idleTTL is dropped and loads again on its next use.
type HistoryService struct {
	cards    *CardService
	loader   *history.Loader
	pageSize int
	idleTTL  time.Duration
	now      func() time.Time

	mu        sync.Mutex
	sessions  map[string]*trackedSession
	lastSweep time.Time
}

type trackedSession struct {
	session  *history.Session
	lastUsed time.Time
}

// NewHistoryService creates a new HistoryService. A non-positive idleTTL
// keeps sessions for the life of the process.
func NewHistoryService(cards *CardService, loader *history.Loader, pageSize int, idleTTL time.Duration) *HistoryService {
	return &HistoryService{
		cards:    cards,
		loader:   loader,
		pageSize: pageSize,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[string]*trackedSession),
	}
}

// Open returns the session's view, loading it first if it was never loaded.
func (s *HistoryService) Open(ctx context.Context, sessionKey string) (history.View, error) {
	session := s.session(sessionKey)
	if session.Loaded() {
		return session.View(), nil
	}
	return s.load(ctx, session)
}

// Page opens the session and moves to page. A non-positive page keeps the
// current one.
func (s *HistoryService) Page(ctx context.Context, sessionKey string, page int) (history.View, error) {
	view, err := s.Open(ctx, sessionKey)
	if page < 1 {
		return view, err
	}
	return s.session(sessionKey).JumpTo(page), err
}

// Refresh reloads the selected card's history, keeping the current page
// when it still exists.
func (s *HistoryService) Refresh(ctx context.Context, sessionKey string) (history.View, error) {
	return s.load(ctx, s.session(sessionKey))
}

func (s *HistoryService) Prev(ctx context.Context, sessionKey string) (history.View, error) {
	_, err := s.Open(ctx, sessionKey)
	return s.session(sessionKey).Prev(), err
}

func (s *HistoryService) Next(ctx context.Context, sessionKey string) (history.View, error) {
	_, err := s.Open(ctx, sessionKey)
	return s.session(sessionKey).Next(), err
}

func (s *HistoryService) JumpTo(ctx context.Context, sessionKey string, page int) (history.View, error) {
	_, err := s.Open(ctx, sessionKey)
	return s.session(sessionKey).JumpTo(page), err
}

func (s *HistoryService) load(ctx context.Context, session *history.Session) (history.View, error) {
	cardID, err := s.cards.SelectedCard(ctx, session.Key())
	if err != nil {
		return s.loader.Fail(session, err)
	}
	return s.loader.Load(ctx, session, cardID)
}

func (s *HistoryService) session(sessionKey string) *history.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictIdleLocked(now)

	tracked, ok := s.sessions[sessionKey]
	if !ok {
		tracked = &trackedSession{session: history.NewSession(sessionKey, s.pageSize)}
		s.sessions[sessionKey] = tracked
	}
	tracked.lastUsed = now
	return tracked.session
}

// evictIdleLocked drops idle sessions, scanning at most once per half TTL.
func (s *HistoryService) evictIdleLocked(now time.Time) {
	if s.idleTTL <= 0 || now.Sub(s.lastSweep) < s.idleTTL/2 {
		return
	}
	s.lastSweep = now

	for key, tracked := range s.sessions {
		if now.Sub(tracked.lastUsed) >= s.idleTTL {
			delete(s.sessions, key)
		}
	}
}
