// Package viewsession keeps the per-browser page state of the topic page: the
// active tab and the copied-example marks.
//
// A signed cookie (gorilla/sessions) carries only a random view-session ID.
// The state itself lives in memory, is discarded when the browser leaves the
// topic it belongs to, and is evicted by Sweep when idle. Nothing is persisted.
package viewsession

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dalemusser/learnhub/internal/app/system/copyindicator"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	// DefaultCookieName is used when no session name is configured.
	DefaultCookieName = "learnhub-view"

	idKey = "view_id"
)

type ctxKey string

const bindingKey ctxKey = "viewBinding"

// DefaultMaxStates caps live view sessions. When full, the least recently
// seen one is evicted to make room.
const DefaultMaxStates = 10000

// Manager issues view-session IDs and owns the in-memory state behind them.
type Manager struct {
	store     *sessions.CookieStore
	name      string
	copyTTL   time.Duration
	maxStates int
	log       *zap.Logger
	now       func() time.Time

	mu     sync.Mutex
	states map[string]*State
}

// binding links one request to its view session. The State is created on
// first Ensure, so requests that never touch page state allocate nothing.
type binding struct {
	m  *Manager
	w  http.ResponseWriter
	r  *http.Request
	id string
	st *State
}

// NewManager builds a Manager with a cookie store keyed by sessionKey.
//
// In production (secure=true) cookies are Secure with SameSite=None; in local
// development over http they use SameSite=Lax so browsers accept them.
func NewManager(sessionKey, name, domain string, secure bool, copyTTL time.Duration, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultCookieName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("view session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.Duration("copy_ttl", copyTTL))

	return &Manager{
		store:     store,
		name:      name,
		copyTTL:   copyTTL,
		maxStates: DefaultMaxStates,
		log:       logger,
		now:       time.Now,
		states:    make(map[string]*State),
	}, nil
}

// Middleware binds the request to the caller's view session. An existing
// State is attached right away; a new one (and its cookie) is only created
// when a handler calls Ensure.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b := &binding{m: m, w: w, r: r}

		// A cookie that fails to decode (e.g. after a key rotation) is
		// treated as absent.
		if sess, err := m.store.Get(r, m.name); err == nil {
			id, _ := sess.Values[idKey].(string)
			if _, err := uuid.Parse(id); err == nil {
				b.id = id
				b.st = m.lookup(id)
			}
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), bindingKey, b)))
	})
}

// lookup returns the live State for id, or nil.
func (m *Manager) lookup(id string) *State {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.states[id]
	if !ok {
		return nil
	}
	st.touch(m.now())
	return st
}

// create returns the State for id, making room under maxStates if needed.
func (m *Manager) create(id string) *State {
	m.mu.Lock()
	st, ok := m.states[id]
	var evicted *State
	if !ok {
		if m.maxStates > 0 && len(m.states) >= m.maxStates {
			evicted = m.evictOldestLocked()
		}
		st = newState(id, m.copyTTL)
		m.states[id] = st
	}
	st.touch(m.now())
	m.mu.Unlock()

	if evicted != nil {
		evicted.Close()
		m.log.Debug("view session evicted at capacity", zap.Int("max_states", m.maxStates))
	}
	return st
}

// evictOldestLocked removes the least recently seen State. Caller holds mu.
func (m *Manager) evictOldestLocked() *State {
	var (
		oldestID string
		oldest   *State
	)
	for id, st := range m.states {
		if oldest == nil || st.lastSeen().Before(oldest.lastSeen()) {
			oldestID, oldest = id, st
		}
	}
	if oldest != nil {
		delete(m.states, oldestID)
	}
	return oldest
}

// ensure creates the bound State, issuing a cookie when the browser has none.
func (b *binding) ensure() *State {
	if b.st != nil {
		return b.st
	}
	if b.id == "" {
		b.id = uuid.NewString()
		// New returns a usable session even when the old cookie is bad.
		sess, _ := b.m.store.New(b.r, b.m.name)
		sess.Values[idKey] = b.id
		if err := sess.Save(b.r, b.w); err != nil {
			b.m.log.Warn("view session save failed", zap.Error(err))
		}
	}
	b.st = b.m.create(b.id)
	return b.st
}

// Len returns the number of live view sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.states)
}

// Sweep evicts view sessions idle for longer than idle and returns how many
// were removed. Pending copy timers of evicted sessions are stopped.
func (m *Manager) Sweep(idle time.Duration) int {
	cutoff := m.now().Add(-idle)

	m.mu.Lock()
	var stale []*State
	for id, st := range m.states {
		if st.lastSeen().Before(cutoff) {
			stale = append(stale, st)
			delete(m.states, id)
		}
	}
	m.mu.Unlock()

	for _, st := range stale {
		st.Close()
	}
	return len(stale)
}

// Close drops every view session.
func (m *Manager) Close() {
	m.mu.Lock()
	states := m.states
	m.states = make(map[string]*State)
	m.mu.Unlock()

	for _, st := range states {
		st.Close()
	}
}

// WithState returns r bound to st. Tests use it to bypass the middleware.
func WithState(r *http.Request, st *State) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), bindingKey, &binding{st: st}))
}

// Lookup returns the caller's existing State without creating one.
func Lookup(r *http.Request) (*State, bool) {
	if b, ok := r.Context().Value(bindingKey).(*binding); ok && b.st != nil {
		return b.st, true
	}
	return nil, false
}

// Ensure returns the caller's State, creating it (and setting the cookie on w)
// if needed. Call it before writing the response body. Requests that did not
// pass through the middleware get a throwaway State with default settings.
func Ensure(r *http.Request) *State {
	b, ok := r.Context().Value(bindingKey).(*binding)
	if !ok {
		return newState("", copyindicator.DefaultTTL)
	}
	if b.m == nil {
		return b.st
	}
	return b.ensure()
}
