// Package resolver implements two-tier variable resolution.
// A non-empty per-product override wins over a non-empty per-quote
// default, which wins over the field's documented fallback.
package resolver

import (
	"tradequote/core/types"
)

// Resolve returns the effective value of a field for one product.
// It is pure with respect to its two input bags and has no side effects.
//
// Resolution by class:
//   - product-only: read from the product record, else the fallback
//   - quote-only and admin-only: read from the quote bag, else the fallback
//   - both-level: product override, else quote default, else fallback
//
// "Non-empty" means not nil and not the empty string; a numeric zero is
// a valid, distinct override.
func Resolve(field types.Field, product types.Vars, quote types.Vars) interface{} {
	switch field.Classify() {
	case types.ClassProductOnly:
		if product.Has(field) {
			return product.Get(field)
		}
		return field.Fallback()

	case types.ClassQuoteOnly, types.ClassAdminOnly:
		if quote.Has(field) {
			return quote.Get(field)
		}
		return field.Fallback()

	case types.ClassBothLevel:
		if product.Has(field) {
			return product.Get(field)
		}
		if quote.Has(field) {
			return quote.Get(field)
		}
		return field.Fallback()

	default:
		return field.Fallback()
	}
}

// ResolveAll materializes every field of the catalogue for one product
func ResolveAll(product types.Vars, quote types.Vars) types.Vars {
	out := make(types.Vars, len(types.AllFields()))
	for _, f := range types.AllFields() {
		out[f] = Resolve(f, product, quote)
	}
	return out
}
