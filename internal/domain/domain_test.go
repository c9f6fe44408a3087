package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func testRules() PricingRules {
	return PricingRules{
		FreeShippingThreshold: d("100"),
		FlatShippingRate:      d("9.99"),
	}
}

// ─── Shipping Tests ─────────────────────────────────────────────────────────

func TestShippingThresholdBoundary(t *testing.T) {
	rules := testRules()

	tests := []struct {
		name     string
		subtotal string
		want     string
	}{
		{"empty cart ships free", "0", "0"},
		{"just below threshold", "99.99", "9.99"},
		{"exactly at threshold", "100.00", "0"},
		{"above threshold", "250", "0"},
		{"small order pays flat rate", "0.01", "9.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.Shipping(d(tt.subtotal))
			if !got.Equal(d(tt.want)) {
				t.Errorf("Shipping(%s) = %s, want %s", tt.subtotal, got, tt.want)
			}
		})
	}
}

// ─── Totals Tests ───────────────────────────────────────────────────────────

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{ID: "pw-001", UnitPrice: d("12.50"), Quantity: 2, Kind: KindComic},
		{ID: "pw-002", UnitPrice: d("30.00"), Quantity: 1, Kind: KindBook},
	}

	totals := ComputeTotals(items, testRules())

	if totals.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", totals.ItemCount)
	}
	if !totals.Subtotal.Equal(d("55.00")) {
		t.Errorf("Subtotal = %s, want 55.00", totals.Subtotal)
	}
	if !totals.Shipping.Equal(d("9.99")) {
		t.Errorf("Shipping = %s, want 9.99", totals.Shipping)
	}
	if !totals.GrandTotal.Equal(d("64.99")) {
		t.Errorf("GrandTotal = %s, want 64.99", totals.GrandTotal)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil, testRules())

	if totals.ItemCount != 0 {
		t.Errorf("ItemCount = %d, want 0", totals.ItemCount)
	}
	if !totals.Subtotal.IsZero() {
		t.Errorf("Subtotal = %s, want 0", totals.Subtotal)
	}
	if !totals.Shipping.IsZero() {
		t.Errorf("Shipping = %s, want 0", totals.Shipping)
	}
	if !totals.GrandTotal.IsZero() {
		t.Errorf("GrandTotal = %s, want 0", totals.GrandTotal)
	}
}

func TestLineTotal(t *testing.T) {
	li := LineItem{UnitPrice: d("3.33"), Quantity: 3}
	if got := li.LineTotal(); !got.Equal(d("9.99")) {
		t.Errorf("LineTotal() = %s, want 9.99", got)
	}
}

// ─── Validation Tests ───────────────────────────────────────────────────────

func TestNewLineItemValidate(t *testing.T) {
	neg := d("-1")

	tests := []struct {
		name    string
		item    NewLineItem
		wantErr error
	}{
		{
			name:    "valid comic",
			item:    NewLineItem{ID: "pw-001", Name: "Issue #1", UnitPrice: d("4.99"), Kind: KindComic},
			wantErr: nil,
		},
		{
			name:    "zero price is allowed",
			item:    NewLineItem{ID: "pw-free", UnitPrice: decimal.Zero, Kind: KindMerchandise},
			wantErr: nil,
		},
		{
			name:    "empty id",
			item:    NewLineItem{UnitPrice: d("4.99"), Kind: KindComic},
			wantErr: ErrEmptyItemID,
		},
		{
			name:    "negative price",
			item:    NewLineItem{ID: "pw-001", UnitPrice: d("-0.01"), Kind: KindComic},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "negative original price",
			item:    NewLineItem{ID: "pw-001", UnitPrice: d("4.99"), OriginalPrice: &neg, Kind: KindComic},
			wantErr: ErrNegativePrice,
		},
		{
			name:    "unknown kind",
			item:    NewLineItem{ID: "pw-001", UnitPrice: d("4.99"), Kind: ItemKind("vinyl")},
			wantErr: ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.item.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestItemKindValid(t *testing.T) {
	for _, k := range []ItemKind{KindComic, KindBook, KindMerchandise} {
		if !k.Valid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if ItemKind("poster").Valid() {
		t.Error("unknown kind reported valid")
	}
}
