// Package catalog is the static product table for the storefront. The
// catalog assigns item ids; the cart never generates them. Prices here are
// the insertion-time prices — items already in a cart keep the price they
// were added at even if this table changes.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/pulpworks/pulpstore/internal/domain"
)

// Entry is one purchasable catalog product.
type Entry struct {
	ID            string
	Name          string
	Description   string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Image         string
	Kind          domain.ItemKind
}

// NewLineItem converts the entry into the add-operation input shape.
func (e Entry) NewLineItem() domain.NewLineItem {
	return domain.NewLineItem{
		ID:            e.ID,
		Name:          e.Name,
		Description:   e.Description,
		UnitPrice:     e.Price,
		OriginalPrice: e.OriginalPrice,
		Image:         e.Image,
		Kind:          e.Kind,
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricePtr(s string) *decimal.Decimal {
	p := price(s)
	return &p
}

// Catalog lists every product the storefront sells.
var Catalog = []Entry{
	{
		ID:          "pw-comic-001",
		Name:        "Moon Harbor #1",
		Description: "First issue of the Moon Harbor arc.",
		Price:       price("4.99"),
		Image:       "/img/catalog/moon-harbor-1.webp",
		Kind:        domain.KindComic,
	},
	{
		ID:          "pw-comic-002",
		Name:        "Moon Harbor #2",
		Description: "Second issue of the Moon Harbor arc.",
		Price:       price("4.99"),
		Image:       "/img/catalog/moon-harbor-2.webp",
		Kind:        domain.KindComic,
	},
	{
		ID:            "pw-comic-003",
		Name:          "Moon Harbor #3",
		Description:   "Third issue, double-length finale.",
		Price:         price("5.99"),
		OriginalPrice: pricePtr("7.99"),
		Image:         "/img/catalog/moon-harbor-3.webp",
		Kind:          domain.KindComic,
	},
	{
		ID:          "pw-book-101",
		Name:        "Moon Harbor Omnibus",
		Description: "Collected edition, issues 1-12 with sketchbook.",
		Price:       price("39.99"),
		Image:       "/img/catalog/omnibus.webp",
		Kind:        domain.KindBook,
	},
	{
		ID:            "pw-book-102",
		Name:          "The Inkwell Letters",
		Description:   "Digital artbook and process commentary.",
		Price:         price("14.99"),
		OriginalPrice: pricePtr("19.99"),
		Image:         "/img/catalog/inkwell-letters.webp",
		Kind:          domain.KindBook,
	},
	{
		ID:          "pw-merch-201",
		Name:        "Harbor Lighthouse Tee",
		Description: "Screen-printed shirt, unisex sizes.",
		Price:       price("24.00"),
		Image:       "/img/catalog/lighthouse-tee.webp",
		Kind:        domain.KindMerchandise,
	},
	{
		ID:          "pw-merch-202",
		Name:        "Enamel Pin Set",
		Description: "Three-pin set from the first arc.",
		Price:       price("12.50"),
		Image:       "/img/catalog/pin-set.webp",
		Kind:        domain.KindMerchandise,
	},
}

// Lookup finds a catalog entry by id. Returns nil when absent.
func Lookup(id string) *Entry {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
