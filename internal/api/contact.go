package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pulpworks/pulpstore/internal/domain"
	"github.com/pulpworks/pulpstore/internal/infra/observability"
)

// ─── Contact Forwarding ─────────────────────────────────────────────────────
// The storefront has no mail server: validated submissions are forwarded
// as JSON to a configured third-party endpoint. Upstream failures map to
// 502; the message is not queued or retried here.

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (c contactRequest) validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Message) == "" {
		return domain.ErrInvalidContact
	}
	at := strings.Index(c.Email, "@")
	if at < 1 || !strings.Contains(c.Email[at:], ".") {
		return domain.ErrInvalidContact
	}
	return nil
}

// handleContact validates and forwards a contact-form submission.
// POST /api/contact
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		observability.ContactForwards.WithLabelValues("invalid").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.cfg.Contact.ForwardURL == "" {
		writeError(w, http.StatusServiceUnavailable, "contact forwarding not configured")
		return
	}

	id := uuid.NewString()
	payload, _ := json.Marshal(map[string]string{
		"id":      id,
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	})

	resp, err := s.client.Post(s.cfg.Contact.ForwardURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		observability.ContactForwards.WithLabelValues("upstream_error").Inc()
		writeError(w, http.StatusBadGateway, "contact forwarding failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observability.ContactForwards.WithLabelValues("upstream_error").Inc()
		writeError(w, http.StatusBadGateway, "contact forwarding failed")
		return
	}

	observability.ContactForwards.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusAccepted, map[string]string{
		"id":     id,
		"status": "sent",
	})
}

// ─── IndexNow ───────────────────────────────────────────────────────────────

type indexNowRequest struct {
	URLs []string `json:"urls"`
}

// handleIndexNow submits changed URLs to the IndexNow API. Admin only.
// POST /admin/indexnow
func (s *Server) handleIndexNow(w http.ResponseWriter, r *http.Request) {
	var req indexNowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.URLs) == 0 {
		writeError(w, http.StatusBadRequest, "urls required")
		return
	}
	if s.cfg.IndexNow.Key == "" {
		writeError(w, http.StatusServiceUnavailable, "indexnow key not configured")
		return
	}

	host := strings.TrimPrefix(strings.TrimPrefix(s.cfg.Site.BaseURL, "https://"), "http://")
	payload, _ := json.Marshal(map[string]interface{}{
		"host":    host,
		"key":     s.cfg.IndexNow.Key,
		"urlList": req.URLs,
	})

	resp, err := s.client.Post(s.cfg.IndexNow.Endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		observability.IndexNowPings.WithLabelValues("upstream_error").Inc()
		writeError(w, http.StatusBadGateway, "indexnow ping failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observability.IndexNowPings.WithLabelValues("upstream_error").Inc()
		writeError(w, http.StatusBadGateway, "indexnow ping failed")
		return
	}

	observability.IndexNowPings.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "submitted",
		"url_count": len(req.URLs),
	})
}
