package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultIdleTimeout   = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Registry tracks live sessions by id.
type Registry struct {
	deps        Dependencies
	idleTimeout time.Duration
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(deps Dependencies, idleTimeout time.Duration) *Registry {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Registry{
		deps:        deps,
		idleTimeout: idleTimeout,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
}

// Open returns the session for id and marks it as active. An empty or
// unknown id yields a new session with a freshly generated id.
func (r *Registry) Open(id string) *Session {
	now := r.now()

	if id != "" {
		r.mu.RLock()
		s, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			s.touch(now)
			return s
		}
	}

	s := newSession(uuid.NewString(), r.deps, now)
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	slog.Debug("session opened", "session_id", s.ID)
	return s
}

// Get looks up a session without creating one.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.touch(r.now())
	}
	return s, ok
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep closes and forgets sessions idle longer than the idle timeout and
// returns how many were removed.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.idleSince(now) > r.idleTimeout {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	if len(expired) > 0 {
		slog.Info("expired idle sessions", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done. It blocks.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close closes every session.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.close()
	}
}
