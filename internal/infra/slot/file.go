package slot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pulpworks/pulpstore/internal/domain"
)

// ─── File Backend ───────────────────────────────────────────────────────────

// FileSlot stores one cart as a JSON document at <dir>/<key>.json.
type FileSlot struct {
	dir string
	key string
}

// NewFileSlot creates a file-backed slot for the given key. The directory
// is created lazily on first save.
func NewFileSlot(dir, key string) *FileSlot {
	return &FileSlot{dir: dir, key: key}
}

func (f *FileSlot) path() string {
	return filepath.Join(f.dir, f.key+".json")
}

// Load reads and decodes the slot. A missing or unreadable file and a
// corrupt payload all yield an empty list.
func (f *FileSlot) Load() []domain.LineItem {
	data, err := os.ReadFile(f.path())
	if err != nil {
		return nil
	}
	return decode(data)
}

// Save overwrites the slot with the full item list.
func (f *FileSlot) Save(items []domain.LineItem) error {
	payload, err := encode(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return fmt.Errorf("create slot directory: %w", err)
	}
	if err := os.WriteFile(f.path(), payload, 0600); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}
