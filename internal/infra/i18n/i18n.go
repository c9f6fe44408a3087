// Package i18n is the localized string table for the storefront UI. It is
// a pure key→string mapping per locale with default-locale fallback — no
// pluralization, no interpolation, no logic.
package i18n

// DefaultLocale is used when a locale or key is missing.
const DefaultLocale = "en"

var tables = map[string]map[string]string{
	"en": {
		"nav.home":            "Home",
		"nav.catalog":         "Catalog",
		"nav.contact":         "Contact",
		"cart.title":          "Your Cart",
		"cart.empty":          "Your cart is empty.",
		"cart.subtotal":       "Subtotal",
		"cart.shipping":       "Shipping",
		"cart.shipping.free":  "Free",
		"cart.total":          "Total",
		"cart.checkout":       "Checkout",
		"cart.remove":         "Remove",
		"cart.free_threshold": "Free shipping on orders over $100",
		"contact.sent":        "Thanks! We'll get back to you soon.",
	},
	"es": {
		"nav.home":            "Inicio",
		"nav.catalog":         "Catálogo",
		"nav.contact":         "Contacto",
		"cart.title":          "Tu carrito",
		"cart.empty":          "Tu carrito está vacío.",
		"cart.subtotal":       "Subtotal",
		"cart.shipping":       "Envío",
		"cart.shipping.free":  "Gratis",
		"cart.total":          "Total",
		"cart.checkout":       "Pagar",
		"cart.remove":         "Quitar",
		"cart.free_threshold": "Envío gratis en pedidos de más de $100",
		"contact.sent":        "¡Gracias! Te responderemos pronto.",
	},
}

// Locales returns the locales with a string table.
func Locales() []string {
	out := make([]string, 0, len(tables))
	for loc := range tables {
		out = append(out, loc)
	}
	return out
}

// Has reports whether a locale has a string table.
func Has(locale string) bool {
	_, ok := tables[locale]
	return ok
}

// Lookup returns the string for a key in a locale, falling back to the
// default locale, then to the key itself.
func Lookup(locale, key string) string {
	if table, ok := tables[locale]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[DefaultLocale][key]; ok {
		return s
	}
	return key
}

// Table returns a copy of the full string table for a locale, with
// default-locale entries filling any gaps. Unknown locales get the
// default table.
func Table(locale string) map[string]string {
	out := make(map[string]string, len(tables[DefaultLocale]))
	for k, v := range tables[DefaultLocale] {
		out[k] = v
	}
	if locale == DefaultLocale {
		return out
	}
	for k, v := range tables[locale] {
		out[k] = v
	}
	return out
}
