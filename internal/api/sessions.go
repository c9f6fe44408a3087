package api

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/pulpworks/pulpstore/internal/app/cart"
	"github.com/pulpworks/pulpstore/internal/domain"
	"github.com/pulpworks/pulpstore/internal/infra/observability"
)

// sessionCookie identifies a browser's cart session.
const sessionCookie = "pulp_session"

// SlotFactory builds the durable slot for a session's cart. Backends are
// chosen in the CLI (file or sqlite); the session manager only sees keys.
type SlotFactory func(key string) domain.Slot

// SessionManager maps opaque session ids to cart stores. A store is built
// lazily on a session's first cart request and hydrated from its slot
// exactly once; afterwards the in-memory store is authoritative for that
// session's lifetime in this process.
type SessionManager struct {
	mu     sync.Mutex
	slots  SlotFactory
	rules  domain.PricingRules
	stores map[string]*cart.Store
}

// NewSessionManager creates a session manager over the given slot factory.
func NewSessionManager(slots SlotFactory, rules domain.PricingRules) *SessionManager {
	return &SessionManager{
		slots:  slots,
		rules:  rules,
		stores: make(map[string]*cart.Store),
	}
}

// Store returns the cart store for a session id, creating and hydrating
// it on first use.
func (m *SessionManager) Store(sessionID string) *cart.Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s := cart.NewStore(m.slots("cart-"+sessionID), m.rules)
	m.stores[sessionID] = s
	observability.ActiveSessions.Set(float64(len(m.stores)))
	return s
}

// Count returns the number of carts currently held in memory.
func (m *SessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stores)
}

// storeFor resolves the request's cart store from the session cookie,
// minting a new session id (and setting the cookie) when absent or not a
// valid UUID.
func (s *Server) storeFor(w http.ResponseWriter, r *http.Request) *cart.Store {
	var sid string
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			sid = c.Value
		}
	}
	if sid == "" {
		sid = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return s.sessions.Store(sid)
}
