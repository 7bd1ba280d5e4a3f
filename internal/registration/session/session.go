// Package session tracks in-flight registration wizard sessions.
//
// Sessions are held in memory: a wizard is interactive, short-lived state and
// losing it on restart only costs the applicant a resume from their saved
// draft. Drafts themselves live in the draft store.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"promohub/internal/registration/wizard"
	"promohub/pkg/platform/sentinel"
)

// Session pairs a wizard with its identifier and expiry. Access to the
// wizard goes through Do, which serializes callers so two concurrent
// requests for the same session never interleave transitions.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	wizard    *wizard.Wizard
	expiresAt time.Time
}

// Do runs fn with exclusive access to the session's wizard.
func (s *Session) Do(fn func(w *wizard.Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.wizard)
}

// Registry is an in-memory session registry. Expired sessions are dropped
// lazily on access and by the background sweep.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewRegistry constructs a registry whose sessions expire after ttl of
// inactivity.
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts a fresh wizard session and returns it.
func (r *Registry) Create() *Session {
	now := r.now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		wizard:    wizard.New(),
		expiresAt: now.Add(r.ttl),
	}

	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()
	return sess
}

// Get returns the session with the given id, sliding its expiry forward.
// Returns sentinel.ErrNotFound for unknown or expired sessions.
func (r *Registry) Get(id string) (*Session, error) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if now.After(sess.expiresAt) {
		delete(r.sessions, id)
		return nil, sentinel.ErrNotFound
	}
	sess.expiresAt = now.Add(r.ttl)
	return sess, nil
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len reports the number of live sessions, counting any not yet swept.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep runs a periodic cleanup of expired sessions until ctx is cancelled.
func (r *Registry) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweepExpired()
		}
	}
}

func (r *Registry) sweepExpired() {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, sess := range r.sessions {
		if now.After(sess.expiresAt) {
			delete(r.sessions, id)
		}
	}
}
