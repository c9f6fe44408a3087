package api

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/pulpworks/pulpstore/internal/infra/catalog"
)

// ─── Sitemap ────────────────────────────────────────────────────────────────
// Static data emission: the fixed page list plus one URL per catalog entry.

// staticPages are the storefront's fixed routes, relative to the base URL.
var staticPages = []string{"/", "/catalog", "/contact"}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// handleSitemap emits the sitemap XML. GET /sitemap.xml
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSuffix(s.cfg.Site.BaseURL, "/")

	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + p})
	}
	for _, e := range catalog.Catalog {
		set.URLs = append(set.URLs, sitemapURL{Loc: base + "/catalog/" + e.ID})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	xml.NewEncoder(w).Encode(set)
}
