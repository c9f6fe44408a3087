package i18n

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{"english key", "en", "cart.title", "Your Cart"},
		{"spanish key", "es", "cart.title", "Tu carrito"},
		{"unknown locale falls back", "fr", "cart.title", "Your Cart"},
		{"unknown key falls back to key", "en", "cart.nope", "cart.nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.locale, tt.key); got != tt.want {
				t.Errorf("Lookup(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestTableFillsGapsFromDefault(t *testing.T) {
	en := Table("en")
	es := Table("es")

	if len(es) != len(en) {
		t.Errorf("es table has %d keys, want %d (default fills gaps)", len(es), len(en))
	}
	for k := range en {
		if _, ok := es[k]; !ok {
			t.Errorf("es table missing key %q", k)
		}
	}
}

func TestTableIsACopy(t *testing.T) {
	a := Table("en")
	a["cart.title"] = "mutated"
	if got := Lookup("en", "cart.title"); got != "Your Cart" {
		t.Errorf("table mutation leaked into lookup: %q", got)
	}
}

func TestLocalesCoverTables(t *testing.T) {
	locales := Locales()
	if len(locales) < 2 {
		t.Fatalf("Locales() = %v, want at least en and es", locales)
	}
	for _, loc := range locales {
		if !Has(loc) {
			t.Errorf("Has(%q) = false for listed locale", loc)
		}
	}
}
