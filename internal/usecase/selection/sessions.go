package selection

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"dormgate/internal/gateway"
	"dormgate/internal/pkg/clock"
	"dormgate/internal/pkg/errs"
)

type session struct {
	flow      *Flow
	ownerID   string
	createdAt time.Time
}

// Store holds the active booking sessions, one Flow per session. A Selection
// is owned by exactly one session; lookups are scoped to the owner so no two
// users can ever touch the same Selection.
type Store struct {
	mu       sync.RWMutex
	gw       gateway.Gateway
	logger   *slog.Logger
	clock    clock.Clock
	sessions map[uuid.UUID]*session
}

func NewStore(gw gateway.Gateway, logger *slog.Logger, clk clock.Clock) *Store {
	return &Store{
		gw:       gw,
		logger:   logger,
		clock:    clk,
		sessions: make(map[uuid.UUID]*session),
	}
}

// Create opens a fresh empty Selection for the given user.
func (s *Store) Create(ownerID, ownerBuildingID string) (uuid.UUID, *Flow) {
	id := uuid.New()
	flow := NewFlow(s.gw, s.logger, ownerBuildingID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{
		flow:      flow,
		ownerID:   ownerID,
		createdAt: s.clock.Now(),
	}
	return id, flow
}

// Get returns the flow only to its owner; anything else looks like a missing
// session to avoid leaking other users' selections.
func (s *Store) Get(id uuid.UUID, ownerID string) (*Flow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok || sess.ownerID != ownerID {
		return nil, errs.ErrSessionNotFound
	}
	return sess.flow, nil
}

// Delete destroys the session; used on explicit cancel and after a
// successful submission completes the booking view's lifecycle.
func (s *Store) Delete(id uuid.UUID, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.ownerID != ownerID {
		return errs.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Sweep drops sessions older than maxAge. Abandoned booking modals would
// otherwise pile up for the lifetime of the process.
func (s *Store) Sweep(maxAge time.Duration) int {
	cutoff := s.clock.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.createdAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
