// Package daemon holds the service configuration: defaults, the TOML
// overlay from the config file, and the helpers that turn raw config
// strings into domain values.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/pulpworks/pulpstore/internal/domain"
)

// Config is the full service configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Cart     CartConfig     `toml:"cart"`
	Admin    AdminConfig    `toml:"admin"`
	Contact  ContactConfig  `toml:"contact"`
	IndexNow IndexNowConfig `toml:"indexnow"`
	Site     SiteConfig     `toml:"site"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CartConfig configures pricing constants and the durable slot backend.
// Monetary values are decimal strings so the config file cannot introduce
// binary-float artifacts into pricing.
type CartConfig struct {
	FreeShippingThreshold string `toml:"free_shipping_threshold"`
	FlatShippingRate      string `toml:"flat_shipping_rate"`
	SlotBackend           string `toml:"slot_backend"` // "file" or "sqlite"
	DataDir               string `toml:"data_dir"`
}

// Rules parses the pricing constants. These are the only shipping
// constants in the repo; every store is built from this one value.
func (c CartConfig) Rules() (domain.PricingRules, error) {
	threshold, err := decimal.NewFromString(c.FreeShippingThreshold)
	if err != nil {
		return domain.PricingRules{}, fmt.Errorf("parse free_shipping_threshold %q: %w", c.FreeShippingThreshold, err)
	}
	rate, err := decimal.NewFromString(c.FlatShippingRate)
	if err != nil {
		return domain.PricingRules{}, fmt.Errorf("parse flat_shipping_rate %q: %w", c.FlatShippingRate, err)
	}
	return domain.PricingRules{FreeShippingThreshold: threshold, FlatShippingRate: rate}, nil
}

// ResolvedDataDir returns the slot data directory, defaulting under Home.
func (c CartConfig) ResolvedDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return filepath.Join(Home(), "carts")
}

// AdminConfig holds the static admin credential and session lifetime.
// Deliberately a trivial gate, not an authentication system.
type AdminConfig struct {
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	SessionTTL string `toml:"session_ttl"`
}

// TTL parses the session lifetime, falling back to one hour.
func (a AdminConfig) TTL() time.Duration {
	d, err := time.ParseDuration(a.SessionTTL)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// ContactConfig configures contact-form forwarding.
type ContactConfig struct {
	ForwardURL string `toml:"forward_url"`
	Timeout    string `toml:"timeout"`
}

// RequestTimeout parses the forward timeout, falling back to ten seconds.
func (c ContactConfig) RequestTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// IndexNowConfig configures search-index pings.
type IndexNowConfig struct {
	Key      string `toml:"key"`
	Endpoint string `toml:"endpoint"`
}

// SiteConfig holds the public site identity used by sitemap and i18n.
type SiteConfig struct {
	BaseURL       string   `toml:"base_url"`
	Locales       []string `toml:"locales"`
	DefaultLocale string   `toml:"default_locale"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// ─── Defaults and Loading ───────────────────────────────────────────────────

// DefaultConfig returns the built-in defaults. The shipping values are the
// storefront's published rates.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8640},
		Cart: CartConfig{
			FreeShippingThreshold: "100",
			FlatShippingRate:      "9.99",
			SlotBackend:           "file",
		},
		Admin: AdminConfig{SessionTTL: "1h"},
		Contact: ContactConfig{
			Timeout: "10s",
		},
		IndexNow: IndexNowConfig{
			Endpoint: "https://api.indexnow.org/indexnow",
		},
		Site: SiteConfig{
			BaseURL:       "https://pulpworks.example",
			Locales:       []string{"en", "es"},
			DefaultLocale: "en",
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Home returns the service home directory: PULPSTORE_HOME if set, else
// ~/.pulpstore.
func Home() string {
	if env := os.Getenv("PULPSTORE_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pulpstore")
}

// ConfigPath returns the config file location under Home.
func ConfigPath() string {
	return filepath.Join(Home(), "config.toml")
}

// Load returns the defaults overlaid with the config file, if one exists.
// A missing file is not an error; a malformed file is.
func Load() (Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile loads defaults overlaid with the given TOML file.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
