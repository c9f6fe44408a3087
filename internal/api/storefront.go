package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pulpworks/pulpstore/internal/infra/catalog"
	"github.com/pulpworks/pulpstore/internal/infra/i18n"
)

// ─── Catalog API ────────────────────────────────────────────────────────────

type catalogEntryResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Type          string   `json:"type"`
}

func toCatalogResponse(e catalog.Entry) catalogEntryResponse {
	resp := catalogEntryResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price.InexactFloat64(),
		Image:       e.Image,
		Type:        string(e.Kind),
	}
	if e.OriginalPrice != nil {
		p := e.OriginalPrice.InexactFloat64()
		resp.OriginalPrice = &p
	}
	return resp
}

// handleCatalog lists every product. GET /api/catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	entries := make([]catalogEntryResponse, 0, len(catalog.Catalog))
	for _, e := range catalog.Catalog {
		entries = append(entries, toCatalogResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// handleCatalogEntry returns one product. GET /api/catalog/{id}
func (s *Server) handleCatalogEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entry := catalog.Lookup(id)
	if entry == nil {
		writeError(w, http.StatusNotFound, "unknown catalog id")
		return
	}
	writeJSON(w, http.StatusOK, toCatalogResponse(*entry))
}

// ─── i18n API ───────────────────────────────────────────────────────────────

// handleLocale returns the string table for a locale, with default-locale
// entries filling any gaps. GET /api/i18n/{locale}
func (s *Server) handleLocale(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	if !i18n.Has(locale) {
		writeError(w, http.StatusNotFound, "unknown locale")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"locale":  locale,
		"strings": i18n.Table(locale),
	})
}
