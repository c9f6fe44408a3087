package catalog

import (
	"testing"

	"github.com/pulpworks/pulpstore/internal/domain"
)

func TestLookupExisting(t *testing.T) {
	tests := []struct {
		id       string
		wantKind domain.ItemKind
	}{
		{"pw-comic-001", domain.KindComic},
		{"pw-book-101", domain.KindBook},
		{"pw-merch-202", domain.KindMerchandise},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			entry := Lookup(tt.id)
			if entry == nil {
				t.Fatalf("Lookup(%q) returned nil", tt.id)
			}
			if entry.Kind != tt.wantKind {
				t.Errorf("Lookup(%q).Kind = %q, want %q", tt.id, entry.Kind, tt.wantKind)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	if entry := Lookup("pw-nope-999"); entry != nil {
		t.Errorf("Lookup(unknown) = %v, want nil", entry)
	}
}

func TestCatalogNotEmpty(t *testing.T) {
	if len(Catalog) == 0 {
		t.Fatal("Catalog is empty")
	}
}

func TestAllEntriesWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Catalog {
		if e.ID == "" {
			t.Error("entry with empty ID")
		}
		if seen[e.ID] {
			t.Errorf("duplicate catalog id %q", e.ID)
		}
		seen[e.ID] = true
		if e.Name == "" {
			t.Errorf("entry %q has no name", e.ID)
		}
		if e.Image == "" {
			t.Errorf("entry %q has no image", e.ID)
		}
		if e.Price.IsNegative() {
			t.Errorf("entry %q has negative price", e.ID)
		}
		if !e.Kind.Valid() {
			t.Errorf("entry %q has invalid kind %q", e.ID, e.Kind)
		}
	}
}

func TestEntriesPassAddValidation(t *testing.T) {
	for _, e := range Catalog {
		if err := e.NewLineItem().Validate(); err != nil {
			t.Errorf("entry %q fails cart validation: %v", e.ID, err)
		}
	}
}
