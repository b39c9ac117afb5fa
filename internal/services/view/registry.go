package view

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrSessionNotFound = errors.New("session not found")

// RegistryOption tweaks a Registry at construction time.
type RegistryOption func(*Registry)

// WithIdleTTL drops sessions that have not been touched for ttl. Zero keeps
// them until deleted.
func WithIdleTTL(ttl time.Duration) RegistryOption {
	return func(r *Registry) {
		r.idleTTL = ttl
	}
}

// WithMaxSessions caps the number of live sessions. At the cap, Create
// evicts the least recently used session. Zero means no cap.
func WithMaxSessions(n int) RegistryOption {
	return func(r *Registry) {
		r.maxSessions = n
	}
}

// Registry holds the live view instances, keyed by a random ID.
type Registry struct {
	deps        Deps
	defaultCity string
	idleTTL     time.Duration
	maxSessions int

	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

func NewRegistry(deps Deps, defaultCity string, opts ...RegistryOption) *Registry {
	r := &Registry{
		deps:        deps,
		defaultCity: defaultCity,
		sessions:    make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create starts a view on the default city with favorites read from storage.
func (r *Registry) Create(ctx context.Context) (*Session, error) {
	city, err := r.deps.Weather.City(r.defaultCity)
	if err != nil {
		return nil, errors.Wrap(err, "default city")
	}

	s := newSession(ctx, uuid.NewString(), city, r.deps)

	r.mu.Lock()
	now := r.deps.Clock.Now()
	r.sweep(now)
	if r.maxSessions > 0 && len(r.sessions) >= r.maxSessions {
		r.evictOldest()
	}
	r.sessions[s.ID()] = &entry{session: s, lastSeen: now}
	r.mu.Unlock()

	r.deps.Logger.Info("session created", map[string]any{"session": s.ID(), "city": city.City})

	return s, nil
}

// Get returns the session and marks it as used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.deps.Clock.Now()
	e, ok := r.sessions[id]
	if !ok {
		return nil, errors.Wrapf(ErrSessionNotFound, "%s", id)
	}
	if r.expired(e, now) {
		delete(r.sessions, id)
		r.deps.Logger.Debug("session expired", map[string]any{"session": id})
		return nil, errors.Wrapf(ErrSessionNotFound, "%s expired", id)
	}
	e.lastSeen = now
	return e.session, nil
}

func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return errors.Wrapf(ErrSessionNotFound, "%s", id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.idleTTL > 0 && now.Sub(e.lastSeen) >= r.idleTTL
}

// sweep and evictOldest expect r.mu held.
func (r *Registry) sweep(now time.Time) {
	if r.idleTTL <= 0 {
		return
	}
	dropped := 0
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
			dropped++
		}
	}
	if dropped > 0 {
		r.deps.Logger.Debug("expired sessions dropped", map[string]any{"count": dropped})
	}
}

func (r *Registry) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, e := range r.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	if oldestID != "" {
		delete(r.sessions, oldestID)
		r.deps.Logger.Info("session evicted at capacity", map[string]any{"session": oldestID})
	}
}
