// Package types - Core domain types
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyCNY Currency = "CNY"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// SupportedCurrencies is the set of currency codes the engine accepts
var SupportedCurrencies = []Currency{CurrencyRUB, CurrencyUSD, CurrencyEUR, CurrencyCNY}

// IsSupportedCurrency reports whether a code belongs to the supported set
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if string(c) == code {
			return true
		}
	}
	return false
}

// DeliveryBasis is the trade-term code (incoterm) governing who bears
// logistics cost on each leg
type DeliveryBasis string

const (
	BasisExWorks DeliveryBasis = "EXW"
	BasisFOB     DeliveryBasis = "FOB"
	BasisCIF     DeliveryBasis = "CIF"
	BasisDAP     DeliveryBasis = "DAP"
	BasisDDP     DeliveryBasis = "DDP"
)

// String returns the string representation
func (b DeliveryBasis) String() string {
	return string(b)
}

// IsExWorks reports whether logistics costs are exempt from validation
func (b DeliveryBasis) IsExWorks() bool {
	return b == BasisExWorks
}

// Vars is a flat variable bag as delivered by the excluded web/API layer.
// Values are loosely typed: numbers, strings, decimals, or nothing.
type Vars map[Field]interface{}

// Get returns the raw value for a field, nil when absent
func (v Vars) Get(f Field) interface{} {
	if v == nil {
		return nil
	}
	return v[f]
}

// Has reports whether a field carries a non-empty value.
// Empty means nil or the empty string; a numeric zero is a valid value.
func (v Vars) Has(f Field) bool {
	return !IsEmpty(v.Get(f))
}

// Clone returns a shallow copy of the bag
func (v Vars) Clone() Vars {
	out := make(Vars, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// IsEmpty reports whether a loosely-typed value counts as absent.
// Only nil and the empty string are empty; zero is a distinct override.
func IsEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	return false
}

// VarsFromStrings converts a string-keyed bag (typical JSON input) into Vars
func VarsFromStrings(raw map[string]interface{}) Vars {
	out := make(Vars, len(raw))
	for k, v := range raw {
		out[Field(k)] = v
	}
	return out
}
