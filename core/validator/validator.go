// Package validator checks a quote before computation begins.
// It returns every violation found, never just the first, and each
// message is ready to render to a business user as-is.
package validator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"tradequote/core/mapper"
	"tradequote/core/resolver"
	"tradequote/core/types"
)

// RequiredQuoteFields are the fields the quote as a whole must supply.
// The quote currency is deliberately absent: the mapper defaults it.
// Both-level entries (the exchange rate) are satisfied by either tier,
// so their presence is checked per product, not on the quote bag alone.
var RequiredQuoteFields = []types.Field{
	types.FieldSeller,
	types.FieldSaleType,
	types.FieldDeliveryBasis,
	types.FieldExchangeRate,
}

// RequiredProductFields are the per-product fields that must be present,
// resolved through the two-tier resolver before the presence check.
var RequiredProductFields = []types.Field{
	types.FieldProductName,
	types.FieldBrand,
	types.FieldUnitPrice,
	types.FieldQuantity,
	types.FieldWeight,
	types.FieldCustomsCode,
}

// Violation is one human-readable validation failure
type Violation struct {
	// Field is the offending field, when the rule concerns one field
	Field types.Field `json:"field,omitempty"`

	// Product is the 1-based product index, 0 for quote-level rules
	Product int `json:"product,omitempty"`

	// Message is ready for direct display to an end user
	Message string `json:"message"`
}

// String returns the display message
func (v Violation) String() string {
	return v.Message
}

// Validate checks required-field presence and the cross-field business
// rules. An empty result means the computation may proceed.
func Validate(quote types.Vars, products []types.Vars) []Violation {
	var out []Violation

	// presence: quote-only fields on the quote bag, everything else per
	// product through both tiers
	perProduct := make([]types.Field, 0, len(RequiredProductFields)+1)
	perProduct = append(perProduct, RequiredProductFields...)
	for _, f := range RequiredQuoteFields {
		if f.Classify() == types.ClassBothLevel {
			perProduct = append(perProduct, f)
			continue
		}
		if types.IsEmpty(resolver.Resolve(f, nil, quote)) {
			out = append(out, Violation{
				Field:   f,
				Message: fmt.Sprintf("%s is not specified", capitalize(f.Label())),
			})
		}
	}
	for i, product := range products {
		for _, f := range perProduct {
			if types.IsEmpty(resolver.Resolve(f, product, quote)) {
				out = append(out, Violation{
					Field:   f,
					Product: i + 1,
					Message: fmt.Sprintf("Product %d: %s is not specified", i+1, f.Label()),
				})
			}
		}
	}

	// advance payment schedule, once at quote level
	sum := advanceSum(quote)
	if sum.GreaterThan(decimal.NewFromInt(100)) {
		out = append(out, Violation{
			Field:   types.FieldClientAdvancePct,
			Message: fmt.Sprintf("The sum of advance payment percentages must not exceed 100%% (currently %s%%)", sum.String()),
		})
	}

	// quote currency is optional, but when given it must be a supported code
	if v := resolver.Resolve(types.FieldQuoteCurrency, nil, quote); !types.IsEmpty(v) {
		code := strings.ToUpper(fmt.Sprintf("%v", v))
		if !types.IsSupportedCurrency(code) {
			out = append(out, Violation{
				Field:   types.FieldQuoteCurrency,
				Message: fmt.Sprintf("Quote currency %q is not supported", code),
			})
		}
	}

	for i, product := range products {
		n := i + 1

		if !resolveDecimal(types.FieldLeadTimeDays, product, quote).IsPositive() {
			out = append(out, Violation{
				Field:   types.FieldLeadTimeDays,
				Product: n,
				Message: fmt.Sprintf("Product %d: delivery lead time must be greater than zero", n),
			})
		}

		if !resolveDecimal(types.FieldQuantity, product, quote).IsPositive() {
			out = append(out, Violation{
				Field:   types.FieldQuantity,
				Product: n,
				Message: fmt.Sprintf("Product %d: quantity must be greater than zero", n),
			})
		}

		if v := resolver.Resolve(types.FieldBaseCurrency, product, quote); !types.IsEmpty(v) {
			code := strings.ToUpper(fmt.Sprintf("%v", v))
			if !types.IsSupportedCurrency(code) {
				out = append(out, Violation{
					Field:   types.FieldBaseCurrency,
					Product: n,
					Message: fmt.Sprintf("Product %d: currency %q is not supported", n, code),
				})
			}
		}

		// logistics legs are only exempt under ex-works terms
		basis := mapper.SafeBasis(types.FieldDeliveryBasis, resolver.Resolve(types.FieldDeliveryBasis, product, quote), nil)
		if basis != "" && !basis.IsExWorks() {
			legs := resolveDecimal(types.FieldPickupCost, product, quote).
				Add(resolveDecimal(types.FieldFreightCost, product, quote)).
				Add(resolveDecimal(types.FieldDeliveryCost, product, quote))
			if !legs.IsPositive() {
				out = append(out, Violation{
					Field:   types.FieldFreightCost,
					Product: n,
					Message: fmt.Sprintf("Product %d: delivery terms are %s but no logistics costs are specified", n, basis),
				})
			}
		}
	}

	return out
}

// Messages flattens violations into display strings
func Messages(violations []Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Message)
	}
	return out
}

func advanceSum(quote types.Vars) decimal.Decimal {
	sum := decimal.Zero
	for _, f := range []types.Field{
		types.FieldClientAdvancePct,
		types.FieldLoadingPaymentPct,
		types.FieldDestinationPct,
		types.FieldClearancePct,
	} {
		sum = sum.Add(resolveDecimal(f, nil, quote))
	}
	return sum
}

func resolveDecimal(f types.Field, product, quote types.Vars) decimal.Decimal {
	return mapper.SafeDecimal(f, resolver.Resolve(f, product, quote), decimal.Zero, nil)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
