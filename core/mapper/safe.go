// Package mapper - Safe value conversion
// Null, empty, or unparsable input never aborts a calculation; it
// resolves to the field's documented default. Every fallback is
// recorded so callers can assert that no silent defaulting occurred.
package mapper

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tradequote/core/types"
)

// FallbackReason explains why a field fell back to its default
type FallbackReason string

const (
	// ReasonMissing means the value was nil or absent
	ReasonMissing FallbackReason = "missing"

	// ReasonEmpty means the value was an empty string
	ReasonEmpty FallbackReason = "empty"

	// ReasonUnparsable means the value could not be converted
	ReasonUnparsable FallbackReason = "unparsable"
)

// Fallback records one field that resolved to its default
type Fallback struct {
	// Field is the affected field
	Field types.Field `json:"field"`

	// Raw is the original input value
	Raw interface{} `json:"raw,omitempty"`

	// Reason explains the fallback
	Reason FallbackReason `json:"reason"`
}

// Trace accumulates every fallback that occurred while building one input
type Trace struct {
	Fallbacks []Fallback `json:"fallbacks,omitempty"`
}

// Clean reports whether no defaulting occurred
func (t *Trace) Clean() bool {
	return t == nil || len(t.Fallbacks) == 0
}

// Of returns the fallbacks recorded for a field
func (t *Trace) Of(field types.Field) []Fallback {
	var out []Fallback
	if t == nil {
		return out
	}
	for _, fb := range t.Fallbacks {
		if fb.Field == field {
			out = append(out, fb)
		}
	}
	return out
}

func (t *Trace) note(field types.Field, raw interface{}, reason FallbackReason) {
	if t == nil {
		return
	}
	t.Fallbacks = append(t.Fallbacks, Fallback{Field: field, Raw: raw, Reason: reason})
}

// SafeDecimal converts a loosely-typed value into a decimal.
// An already-valid decimal comes back unchanged; nil, "", and values
// that cannot be parsed yield the default and a trace entry. It never
// returns an error and never panics.
func SafeDecimal(field types.Field, value interface{}, def decimal.Decimal, trace *Trace) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		trace.note(field, nil, ReasonMissing)
		return def
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			trace.note(field, nil, ReasonMissing)
			return def
		}
		return *v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			trace.note(field, v, ReasonEmpty)
			return def
		}
		// tolerate a comma decimal separator from form input; a value
		// like "1,000.00" uses the comma for grouping and must not be
		// rewritten into something that parses to a different number
		if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
			s = strings.Replace(s, ",", ".", 1)
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			trace.note(field, v, ReasonUnparsable)
			return def
		}
		return d
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			trace.note(field, v, ReasonUnparsable)
			return def
		}
		return d
	default:
		trace.note(field, value, ReasonUnparsable)
		return def
	}
}

// SafeString converts a loosely-typed value into a string, trimming
// whitespace; nil and non-string values yield the default.
func SafeString(field types.Field, value interface{}, def string, trace *Trace) string {
	switch v := value.(type) {
	case nil:
		trace.note(field, nil, ReasonMissing)
		return def
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			trace.note(field, v, ReasonEmpty)
			return def
		}
		return s
	case fmt.Stringer:
		return v.String()
	default:
		trace.note(field, value, ReasonUnparsable)
		return def
	}
}

// SafeCurrency converts a value into an upper-cased currency code.
// Missing input yields the default; an unsupported code is kept as-is
// because the validator reports it with a proper message.
func SafeCurrency(field types.Field, value interface{}, def types.Currency, trace *Trace) types.Currency {
	s := SafeString(field, value, string(def), trace)
	return types.Currency(strings.ToUpper(s))
}

// SafeBasis converts a value into a delivery basis, accepting common
// spellings of the incoterm codes.
func SafeBasis(field types.Field, value interface{}, trace *Trace) types.DeliveryBasis {
	s := SafeString(field, value, "", trace)
	switch strings.ToUpper(strings.ReplaceAll(strings.ReplaceAll(s, "-", ""), " ", "")) {
	case "EXW", "EXWORKS":
		return types.BasisExWorks
	case "FOB":
		return types.BasisFOB
	case "CIF":
		return types.BasisCIF
	case "DAP":
		return types.BasisDAP
	case "DDP":
		return types.BasisDDP
	default:
		return types.DeliveryBasis(s)
	}
}
