package mapper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradequote/core/types"
)

func TestSafeDecimalIdempotence(t *testing.T) {
	trace := &Trace{}
	in := decimal.RequireFromString("123.456")

	out := SafeDecimal(types.FieldUnitPrice, in, decimal.Zero, trace)

	assert.True(t, in.Equal(out))
	assert.True(t, trace.Clean(), "a valid decimal must not produce a fallback")
}

func TestSafeDecimalDefaults(t *testing.T) {
	def := decimal.NewFromInt(5)

	tests := []struct {
		name   string
		value  interface{}
		reason FallbackReason
	}{
		{"nil", nil, ReasonMissing},
		{"empty string", "", ReasonEmpty},
		{"whitespace", "   ", ReasonEmpty},
		{"unparsable string", "not-a-number", ReasonUnparsable},
		{"unsupported type", []int{1}, ReasonUnparsable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := &Trace{}
			out := SafeDecimal(types.FieldMarkupRate, tt.value, def, trace)

			assert.True(t, def.Equal(out))
			require.Len(t, trace.Fallbacks, 1)
			assert.Equal(t, tt.reason, trace.Fallbacks[0].Reason)
			assert.Equal(t, types.FieldMarkupRate, trace.Fallbacks[0].Field)
		})
	}
}

func TestSafeDecimalParsesLooseInput(t *testing.T) {
	trace := &Trace{}

	tests := []struct {
		value interface{}
		want  string
	}{
		{"12.5", "12.5"},
		{"12,5", "12.5"}, // comma decimal separator from form input
		{" 95.00 ", "95"},
		{float64(3.25), "3.25"},
		{int(10), "10"},
		{int64(-4), "-4"},
	}

	for _, tt := range tests {
		out := SafeDecimal(types.FieldExchangeRate, tt.value, decimal.Zero, trace)
		assert.True(t, decimal.RequireFromString(tt.want).Equal(out), "value %v", tt.value)
	}
	assert.True(t, trace.Clean())
}

func TestSafeDecimalRejectsGroupedInput(t *testing.T) {
	// a comma alongside a dot is a thousands separator; rewriting it
	// would turn 1000 into 1, so the value must fall back instead
	def := decimal.NewFromInt(7)

	for _, value := range []string{"1,000.00", "1,000,000", "1,0,0"} {
		trace := &Trace{}
		out := SafeDecimal(types.FieldUnitPrice, value, def, trace)

		assert.True(t, def.Equal(out), "value %q", value)
		require.Len(t, trace.Fallbacks, 1)
		assert.Equal(t, ReasonUnparsable, trace.Fallbacks[0].Reason)
	}
}

func TestSafeDecimalNeverPanicsWithNilTrace(t *testing.T) {
	out := SafeDecimal(types.FieldExciseTax, "garbage", decimal.Zero, nil)
	assert.True(t, out.IsZero())
}

func TestSafeStringDefaults(t *testing.T) {
	trace := &Trace{}

	assert.Equal(t, "fallback", SafeString(types.FieldSeller, nil, "fallback", trace))
	assert.Equal(t, "fallback", SafeString(types.FieldSeller, "", "fallback", trace))
	assert.Equal(t, "TradeCo", SafeString(types.FieldSeller, "  TradeCo  ", "fallback", trace))
	assert.Len(t, trace.Fallbacks, 2)
}

func TestSafeBasisSpellings(t *testing.T) {
	tests := []struct {
		in   interface{}
		want types.DeliveryBasis
	}{
		{"EXW", types.BasisExWorks},
		{"ex-works", types.BasisExWorks},
		{"Ex Works", types.BasisExWorks},
		{"fob", types.BasisFOB},
		{"CIF", types.BasisCIF},
		{"DAP", types.BasisDAP},
		{"ddp", types.BasisDDP},
	}

	for _, tt := range tests {
		got := SafeBasis(types.FieldDeliveryBasis, tt.in, nil)
		assert.Equal(t, tt.want, got, "input %v", tt.in)
	}
}

func TestTraceOf(t *testing.T) {
	trace := &Trace{}
	SafeDecimal(types.FieldExciseTax, nil, decimal.Zero, trace)
	SafeDecimal(types.FieldMarkupRate, "bad", decimal.Zero, trace)

	assert.Len(t, trace.Of(types.FieldExciseTax), 1)
	assert.Len(t, trace.Of(types.FieldMarkupRate), 1)
	assert.Empty(t, trace.Of(types.FieldUnitPrice))
}
