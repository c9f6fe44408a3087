package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pulpworks/pulpstore/internal/daemon"
	"github.com/pulpworks/pulpstore/internal/domain"
	"github.com/pulpworks/pulpstore/internal/infra/catalog"
	"github.com/pulpworks/pulpstore/internal/infra/i18n"
	"github.com/pulpworks/pulpstore/internal/infra/observability"
)

// ─── Admin Gate ─────────────────────────────────────────────────────────────
// A static credential check that sets an opaque session cookie, plus the
// middleware guarding admin routes. Deliberately trivial.

const adminCookie = "pulp_admin"

type adminGate struct {
	cfg daemon.AdminConfig

	mu       sync.Mutex
	sessions map[string]time.Time // token → expiry
}

func newAdminGate(cfg daemon.AdminConfig) *adminGate {
	return &adminGate{
		cfg:      cfg,
		sessions: make(map[string]time.Time),
	}
}

// login checks the static credential and mints an opaque session token.
func (g *adminGate) login(username, password string) (string, error) {
	if g.cfg.Username == "" || username != g.cfg.Username || password != g.cfg.Password {
		return "", domain.ErrBadCredentials
	}
	token := uuid.NewString()
	g.mu.Lock()
	g.sessions[token] = time.Now().Add(g.cfg.TTL())
	g.mu.Unlock()
	return token, nil
}

// valid reports whether a token names a live session, pruning it if expired.
func (g *adminGate) valid(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	expiry, ok := g.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(g.sessions, token)
		return false
	}
	return true
}

func (g *adminGate) logout(token string) {
	g.mu.Lock()
	delete(g.sessions, token)
	g.mu.Unlock()
}

// requireAdmin guards admin routes behind the session cookie.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(adminCookie)
		if err != nil || !s.admin.valid(c.Value) {
			writeError(w, http.StatusUnauthorized, domain.ErrNoSession.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ─── Admin Handlers ─────────────────────────────────────────────────────────

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// handleAdminLogin checks credentials and sets the admin cookie.
// POST /admin/login
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := s.admin.login(req.Username, req.Password)
	if err != nil {
		observability.AdminLogins.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	observability.AdminLogins.WithLabelValues("ok").Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     adminCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(s.cfg.Admin.TTL().Seconds()),
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAdminLogout drops the admin session. POST /admin/logout
func (s *Server) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(adminCookie); err == nil {
		s.admin.logout(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   adminCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAdminSummary reports a small operational snapshot.
// GET /admin/summary
func (s *Server) handleAdminSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"active_sessions":         s.sessions.Count(),
		"catalog_entries":         len(catalog.Catalog),
		"locales":                 i18n.Locales(),
		"free_shipping_threshold": s.rules.FreeShippingThreshold.String(),
		"flat_shipping_rate":      s.rules.FlatShippingRate.String(),
	})
}
