// Package api provides the HTTP server for the storefront. It is the
// presentation boundary: handlers read derived cart values from the store
// and invoke its mutation operations — totals are never computed here.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pulpworks/pulpstore/internal/daemon"
	"github.com/pulpworks/pulpstore/internal/domain"
)

// Server is the storefront HTTP API server.
type Server struct {
	cfg      daemon.Config
	rules    domain.PricingRules
	sessions *SessionManager
	admin    *adminGate
	client   *http.Client
}

// NewServer creates an API server. The session manager owns per-session
// cart stores; the pricing rules are the single set applied everywhere.
func NewServer(cfg daemon.Config, rules domain.PricingRules, sessions *SessionManager) *Server {
	return &Server{
		cfg:      cfg,
		rules:    rules,
		sessions: sessions,
		admin:    newAdminGate(cfg.Admin),
		client:   &http.Client{Timeout: cfg.Contact.RequestTimeout()},
	}
}

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Cart — the four mutations plus reads and drawer visibility
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", s.handleGetCart)
		r.Delete("/", s.handleClearCart)
		r.Post("/items", s.handleAddItem)
		r.Put("/items/{id}", s.handleUpdateQuantity)
		r.Delete("/items/{id}", s.handleRemoveItem)
		r.Post("/open", s.handleOpenCart)
		r.Post("/close", s.handleCloseCart)
	})

	// Storefront content
	r.Get("/api/catalog", s.handleCatalog)
	r.Get("/api/catalog/{id}", s.handleCatalogEntry)
	r.Get("/api/i18n/{locale}", s.handleLocale)
	r.Post("/api/contact", s.handleContact)
	r.Get("/sitemap.xml", s.handleSitemap)

	// Admin area — static credential gate, opaque session cookie
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", s.handleAdminLogin)
		r.Post("/logout", s.handleAdminLogout)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Get("/summary", s.handleAdminSummary)
			r.Post("/indexnow", s.handleIndexNow)
		})
	})

	if s.cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the browser storefront.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
