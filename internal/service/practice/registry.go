package practice

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/myenglish-practice/internal/domain"
)

// Registry holds the live sessions. It is bounded in size and drops
// sessions left idle longer than the configured TTL.
type Registry struct {
	// mu makes the lookup and idle refresh in Get atomic with Remove.
	mu    sync.Mutex
	cache *expirable.LRU[uuid.UUID, *Session]
	log   *slog.Logger
}

// NewRegistry creates a registry holding at most size sessions.
func NewRegistry(log *slog.Logger, size int, idleTTL time.Duration) *Registry {
	r := &Registry{log: log.With("component", "practice_registry")}
	r.cache = expirable.NewLRU[uuid.UUID, *Session](size, r.onEvict, idleTTL)
	return r
}

func (r *Registry) onEvict(id uuid.UUID, s *Session) {
	r.log.Debug("practice session dropped",
		slog.String("session_id", id.String()),
		slog.String("user_id", s.UserID().String()),
	)
}

// Add registers a session.
func (r *Registry) Add(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Add(s.ID(), s)
}

// Get returns the session if it exists and belongs to userID, and refreshes
// its idle timer. Sessions of other users are reported as not found.
func (r *Registry) Get(userID, sessionID uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.owned(userID, sessionID)
	if err != nil {
		return nil, err
	}
	r.cache.Add(sessionID, s)
	return s, nil
}

// Remove drops a session owned by userID.
func (r *Registry) Remove(userID, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.owned(userID, sessionID); err != nil {
		return err
	}
	r.cache.Remove(sessionID)
	return nil
}

// owned must be called with r.mu held.
func (r *Registry) owned(userID, sessionID uuid.UUID) (*Session, error) {
	s, ok := r.cache.Peek(sessionID)
	if !ok || s.UserID() != userID {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// NotifyWordDeleted removes the word from every live session of userID and
// returns the number of sessions that contained it.
func (r *Registry) NotifyWordDeleted(userID, wordID uuid.UUID) int {
	var affected int
	for _, s := range r.cache.Values() {
		if s.UserID() != userID {
			continue
		}
		if s.Remove(wordID) {
			affected++
		}
	}
	return affected
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	return r.cache.Len()
}
