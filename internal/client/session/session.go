// Package session owns the client's bearer token.
//
// A Manager is the single writer of the token: it caches it in memory,
// mirrors it to a TokenStore, decodes the identity claims on demand and
// publishes an Event to subscribers whenever the token is saved or cleared.
// Readers (the API facade, the CLI) hold a *Manager and query it; nothing
// else keeps a copy of the token.
//
// The token signature is never verified here. Claims are only used to decide
// what to show; the backend verifies every authenticated request.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/resumeportal/internal/client/models"
	"github.com/dmitrijs2005/resumeportal/internal/common"
	"github.com/dmitrijs2005/resumeportal/internal/logging"
)

// TokenStore is the persistent side of the session.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Event is published after the session changes.
type Event int

const (
	EventTokenSaved Event = iota + 1
	EventLoggedOut
)

func (e Event) String() string {
	switch e {
	case EventTokenSaved:
		return "token_saved"
	case EventLoggedOut:
		return "logged_out"
	default:
		return "unknown"
	}
}

type Manager struct {
	store  TokenStore
	log    logging.Logger
	now    func() time.Time
	parser *jwt.Parser

	mu     sync.RWMutex
	token  string
	loaded bool

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

type Option func(*Manager)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

func NewManager(store TokenStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		log:    logging.Nop(),
		now:    time.Now,
		parser: jwt.NewParser(),
		subs:   make(map[int]func(Event)),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// SaveToken persists token and replaces the cached one. The token is not
// inspected. The last concurrent caller wins.
func (m *Manager) SaveToken(ctx context.Context, token string) error {
	m.mu.Lock()
	if err := m.store.Save(ctx, token); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("save token: %w", err)
	}
	m.token = token
	m.loaded = true
	m.mu.Unlock()

	m.publish(EventTokenSaved)
	return nil
}

// Token returns the current token, reading the store only on the first call
// after construction. An empty string means there is no session.
func (m *Manager) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	if m.loaded {
		t := m.token
		m.mu.RUnlock()
		return t, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loaded {
		return m.token, nil
	}

	t, err := m.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	m.token = t
	m.loaded = true
	return t, nil
}

// UserDetails decodes the claims of the current token. It returns (nil, nil)
// when there is no token and an error wrapping common.ErrMalformedToken when
// the token cannot be decoded.
func (m *Manager) UserDetails(ctx context.Context) (*models.Claims, error) {
	t, err := m.Token(ctx)
	if err != nil {
		return nil, err
	}
	if t == "" {
		return nil, nil
	}
	return m.decode(t)
}

// decode reads only the middle (claims) segment. The header and signature
// are not looked at; they belong to the backend.
func (m *Manager) decode(token string) (*models.Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %d segments", common.ErrMalformedToken, len(parts))
	}

	payload, err := m.parser.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: decode claims: %w", common.ErrMalformedToken, err)
	}

	claims := &models.Claims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: parse claims: %w", common.ErrMalformedToken, err)
	}
	return claims, nil
}

// IsLoggedIn reports whether a token is held and its exp claim is strictly
// in the future. A malformed token counts as logged out.
func (m *Manager) IsLoggedIn(ctx context.Context) bool {
	c := m.claims(ctx)
	if c == nil || c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Time.After(m.now())
}

// IsAdmin reports whether the role claim is exactly common.RoleAdmin.
func (m *Manager) IsAdmin(ctx context.Context) bool {
	c := m.claims(ctx)
	return c != nil && c.Role == common.RoleAdmin
}

func (m *Manager) claims(ctx context.Context) *models.Claims {
	c, err := m.UserDetails(ctx)
	if err != nil {
		if errors.Is(err, common.ErrMalformedToken) {
			m.log.Warn(ctx, "ignoring malformed session token", "error", err)
		} else {
			m.log.Error(ctx, "session token unavailable", "error", err)
		}
		return nil
	}
	return c
}

// Logout drops the token from memory and from the store, then notifies
// subscribers. The in-memory token is cleared even if the store fails.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.loaded = true
	err := m.store.Clear(ctx)
	m.mu.Unlock()

	m.publish(EventLoggedOut)
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Subscribe registers fn for every subsequent Event. Callbacks run
// synchronously on the goroutine that changed the session. The returned func
// removes the subscription.
func (m *Manager) Subscribe(fn func(Event)) (cancel func()) {
	m.subMu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) publish(e Event) {
	m.subMu.Lock()
	fns := make([]func(Event), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
