package domain

import "github.com/shopspring/decimal"

// ─── Pricing ────────────────────────────────────────────────────────────────

// PricingRules holds the shipping constants. There is exactly one shipping
// computation in the repo — every consumer reads derived totals through
// ComputeTotals with the same injected rules.
type PricingRules struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingRate      decimal.Decimal
}

// Shipping returns the shipping cost for a subtotal: zero for an empty
// cart, zero at or above the free-shipping threshold, else the flat rate.
func (r PricingRules) Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() {
		return decimal.Zero
	}
	if subtotal.GreaterThanOrEqual(r.FreeShippingThreshold) {
		return decimal.Zero
	}
	return r.FlatShippingRate
}

// Totals are the derived values of a ledger. They are recomputed fresh on
// every read and never stored, so they cannot drift from the item list.
type Totals struct {
	ItemCount  int
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	GrandTotal decimal.Decimal
}

// Subtotal sums UnitPrice × Quantity over all items.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, li := range items {
		sum = sum.Add(li.LineTotal())
	}
	return sum
}

// ItemCount sums the quantities of all items.
func ItemCount(items []LineItem) int {
	n := 0
	for _, li := range items {
		n += li.Quantity
	}
	return n
}

// ComputeTotals derives all cart totals from the item list. An empty list
// yields all zeros.
func ComputeTotals(items []LineItem, rules PricingRules) Totals {
	sub := Subtotal(items)
	ship := rules.Shipping(sub)
	return Totals{
		ItemCount:  ItemCount(items),
		Subtotal:   sub,
		Shipping:   ship,
		GrandTotal: sub.Add(ship),
	}
}
