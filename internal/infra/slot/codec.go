// Package slot implements the durable cart slot: a single named location
// holding one serialized line-item list, overwritten whole on every save.
//
// Two backends share the wire codec — a JSON document per slot key on
// disk, and a SQLite table keyed by slot name. The format is versionless;
// anything that does not decode into a well-formed item list is treated
// as absent data, never as an error.
package slot

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/pulpworks/pulpstore/internal/domain"
)

// record is the wire shape of one stored line item.
type record struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Quantity      int      `json:"quantity"`
	Type          string   `json:"type"`
}

func encode(items []domain.LineItem) ([]byte, error) {
	records := make([]record, 0, len(items))
	for _, li := range items {
		r := record{
			ID:          li.ID,
			Name:        li.Name,
			Description: li.Description,
			Price:       li.UnitPrice.InexactFloat64(),
			Image:       li.Image,
			Quantity:    li.Quantity,
			Type:        string(li.Kind),
		}
		if li.OriginalPrice != nil {
			p := li.OriginalPrice.InexactFloat64()
			r.OriginalPrice = &p
		}
		records = append(records, r)
	}
	return json.Marshal(records)
}

// decode turns a stored payload back into line items. Any failure — bad
// JSON, a non-list, or a single malformed record — discards the whole
// payload and yields nil. A partially restored cart would silently break
// the totals the user last saw, so it is all or nothing.
func decode(payload []byte) []domain.LineItem {
	if len(payload) == 0 {
		return nil
	}

	var records []record
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil
	}

	items := make([]domain.LineItem, 0, len(records))
	for _, r := range records {
		if r.ID == "" || r.Price < 0 || r.Quantity < 1 || !domain.ItemKind(r.Type).Valid() {
			return nil
		}
		li := domain.LineItem{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			UnitPrice:   decimal.NewFromFloat(r.Price),
			Image:       r.Image,
			Kind:        domain.ItemKind(r.Type),
			Quantity:    r.Quantity,
		}
		if r.OriginalPrice != nil {
			if *r.OriginalPrice < 0 {
				return nil
			}
			p := decimal.NewFromFloat(*r.OriginalPrice)
			li.OriginalPrice = &p
		}
		items = append(items, li)
	}
	return items
}
