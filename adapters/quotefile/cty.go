// Package quotefile - Safe CTY value conversion
// HCL values are never passed through blindly; null and unknown values
// convert to nil so the mapper's safe-decimal defaulting applies.
package quotefile

import (
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

// toDecimal narrows a loose variable value to a decimal when possible
func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, true
	case string:
		parsed, err := decimal.NewFromString(d)
		if err != nil {
			return decimal.Zero, false
		}
		return parsed, true
	default:
		return decimal.Zero, false
	}
}

// ctyToVar converts an HCL attribute value into the loose variable
// representation the engine consumes: string, decimal.Decimal, bool,
// or nil. Numbers convert through their exact big.Float text form, not
// through float64.
func ctyToVar(val cty.Value) interface{} {
	if !val.IsKnown() || val.IsNull() {
		return nil
	}

	switch {
	case val.Type() == cty.String:
		return val.AsString()

	case val.Type() == cty.Number:
		text := val.AsBigFloat().Text('f', -1)
		d, err := decimal.NewFromString(text)
		if err != nil {
			// leave it to safe-decimal defaulting downstream
			return text
		}
		return d

	case val.Type() == cty.Bool:
		return val.True()

	default:
		return nil
	}
}
