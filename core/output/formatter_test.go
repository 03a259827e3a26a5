package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradequote/core/types"
)

func sampleResult() *types.QuoteResult {
	result := &types.QuoteResult{
		RequestID: "req-1",
		Currency:  types.CurrencyRUB,
		Products: []*types.PhaseBreakdown{
			{
				ProductName:    "Bearing 6204",
				Brand:          "SKF",
				Quantity:       decimal.NewFromInt(10),
				BaseUnitPrice:  decimal.RequireFromString("1000.00"),
				PurchasePrice:  decimal.RequireFromString("950000"),
				SalePriceGross: decimal.RequireFromString("1368000"),
			},
		},
	}
	result.Aggregate()
	return result
}

func TestNewFormatterSelection(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   Format
	}{
		{"json", FormatJSON, FormatJSON},
		{"cli", FormatCLI, FormatCLI},
		{"empty defaults to cli", Format(""), FormatCLI},
		{"unknown defaults to cli", Format("yaml"), FormatCLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.format).Format())
		})
	}
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(FormatJSON).Render(&buf, sampleResult()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "req-1", decoded["request_id"])
	assert.Equal(t, "RUB", decoded["currency"])
	assert.Len(t, decoded["products"], 1)
	assert.Equal(t, "950000", decoded["subtotal"])
	assert.Equal(t, "1368000", decoded["total"])
}

func TestCLIFormatterShowsAllPhases(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(FormatCLI).Render(&buf, sampleResult()))

	out := buf.String()
	assert.Contains(t, out, "Bearing 6204 (SKF) x 10")
	for _, phase := range sampleResult().Products[0].Phases() {
		assert.Contains(t, out, phase.Name)
	}
	assert.Contains(t, out, "Subtotal (purchase):")
	assert.Contains(t, out, "950000.00 RUB")
	assert.Contains(t, out, "1368000.00 RUB")
}

func TestCLIFormatterOmitsEmptyBrand(t *testing.T) {
	result := sampleResult()
	result.Products[0].Brand = ""

	var buf bytes.Buffer
	require.NoError(t, New(FormatCLI).Render(&buf, result))
	assert.Contains(t, buf.String(), "Bearing 6204 x 10")
	assert.NotContains(t, buf.String(), "()")
}
