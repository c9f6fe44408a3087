// Package domain contains pure business types with ZERO infrastructure imports.
// This is the innermost ring of the service — it depends on nothing but the
// decimal money type.
package domain

import (
	"github.com/shopspring/decimal"
)

// ─── Item Types ─────────────────────────────────────────────────────────────

// ItemKind is the closed set of catalog categories. It is used for display
// and categorization only — never for pricing or shipping rules.
type ItemKind string

const (
	KindComic       ItemKind = "comic"
	KindBook        ItemKind = "book"
	KindMerchandise ItemKind = "merchandise"
)

// Valid reports whether the kind is one of the known categories.
func (k ItemKind) Valid() bool {
	switch k {
	case KindComic, KindBook, KindMerchandise:
		return true
	}
	return false
}

// LineItem is one purchasable entry in a cart ledger.
// The id is assigned by the catalog and stable across sessions; the cart
// never generates ids. UnitPrice is fixed at insertion time — upstream
// price changes do not retroactively reprice items already in the ledger.
type LineItem struct {
	ID            string
	Name          string
	Description   string
	UnitPrice     decimal.Decimal
	OriginalPrice *decimal.Decimal // display only (strikethrough); never priced
	Image         string
	Kind          ItemKind
	Quantity      int // always >= 1; an item at 0 is removed, not retained
}

// LineTotal returns UnitPrice × Quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// NewLineItem is the caller-supplied value for an add operation — every
// LineItem field except Quantity, which the store manages itself.
type NewLineItem struct {
	ID            string
	Name          string
	Description   string
	UnitPrice     decimal.Decimal
	OriginalPrice *decimal.Decimal
	Image         string
	Kind          ItemKind
}

// Validate enforces the add-operation precondition. Invalid input is a
// caller contract violation, rejected at the boundary.
func (n NewLineItem) Validate() error {
	if n.ID == "" {
		return ErrEmptyItemID
	}
	if n.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if n.OriginalPrice != nil && n.OriginalPrice.IsNegative() {
		return ErrNegativePrice
	}
	if !n.Kind.Valid() {
		return ErrUnknownKind
	}
	return nil
}

// ─── Cart View ──────────────────────────────────────────────────────────────

// CartView is the read-only snapshot handed to observers and the
// presentation layer. Items is a copy; mutating it does not touch the store.
type CartView struct {
	Items   []LineItem
	Totals  Totals
	Visible bool
}
