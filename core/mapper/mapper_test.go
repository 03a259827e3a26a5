package mapper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradequote/core/settings"
	"tradequote/core/types"
)

func fullProduct() types.Vars {
	return types.Vars{
		types.FieldProductName:  "PUMP-100",
		types.FieldBrand:        "Grundfos",
		types.FieldUnitPrice:    decimal.RequireFromString("1000.00"),
		types.FieldQuantity:     decimal.NewFromInt(10),
		types.FieldWeight:       decimal.RequireFromString("25.5"),
		types.FieldCustomsCode:  "8413709900",
		types.FieldLeadTimeDays: decimal.NewFromInt(45),
	}
}

func fullQuote() types.Vars {
	return types.Vars{
		types.FieldSeller:        "TradeCo LLC",
		types.FieldSaleType:      "domestic",
		types.FieldDeliveryBasis: "CIF",
		types.FieldExchangeRate:  decimal.RequireFromString("95.00"),
		types.FieldBaseCurrency:  "USD",
		types.FieldMarkupRate:    decimal.NewFromInt(15),
		types.FieldFreightCost:   decimal.NewFromInt(120000),
	}
}

func TestBuildGroups(t *testing.T) {
	input, trace := Build(fullProduct(), fullQuote(), settings.DefaultRates())

	assert.Equal(t, "PUMP-100", input.Basic.Name)
	assert.Equal(t, "Grundfos", input.Basic.Brand)
	assert.True(t, input.Basic.UnitPrice.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, input.Basic.Quantity.Equal(decimal.NewFromInt(10)))

	assert.Equal(t, types.CurrencyUSD, input.Pricing.BaseCurrency)
	assert.Equal(t, types.CurrencyRUB, input.Pricing.QuoteCurrency, "quote currency defaults in the mapper")
	assert.True(t, input.Pricing.ExchangeRate.Equal(decimal.RequireFromString("95")))
	assert.Equal(t, "8413709900", input.Pricing.CustomsCode)

	assert.Equal(t, types.BasisCIF, input.Logistics.DeliveryBasis)
	assert.True(t, input.Logistics.LeadTimeDays.Equal(decimal.NewFromInt(45)))
	assert.True(t, input.Logistics.TotalCost.Equal(decimal.NewFromInt(120000)),
		"combined logistics cost is the sum of the three legs")

	assert.Equal(t, "TradeCo LLC", input.Fees.Seller)
	assert.Equal(t, "domestic", input.Fees.SaleType)

	assert.True(t, input.Costs.Freight.Equal(decimal.NewFromInt(120000)))
	assert.True(t, input.Costs.Pickup.IsZero())

	rates := settings.DefaultRates()
	assert.True(t, input.Settings.ForexRiskRate.Equal(rates.ForexRiskRate))
	assert.True(t, input.Settings.DailyInterestRate.Equal(rates.DailyInterestRate))

	require.NotNil(t, trace)
}

func TestBuildDefaultsUndefinedNumericsToZero(t *testing.T) {
	input, _ := Build(fullProduct(), fullQuote(), settings.DefaultRates())

	// optional numerics never propagate null into arithmetic
	assert.True(t, input.Pricing.SupplierDiscount.IsZero())
	assert.True(t, input.Pricing.ExciseTax.IsZero())
	assert.True(t, input.Fees.Brokerage.IsZero())
	assert.True(t, input.Payments.AgentFee.IsZero())
}

func TestBuildSupplierAdvanceFallback(t *testing.T) {
	input, _ := Build(fullProduct(), fullQuote(), settings.DefaultRates())
	assert.True(t, input.Payments.SupplierAdvancePct.Equal(decimal.NewFromInt(100)),
		"supplier advance falls back to full prepayment")
}

func TestBuildTraceObservesDefaulting(t *testing.T) {
	product := fullProduct()
	product[types.FieldMarkupRate] = "15%" // malformed: will silently default

	input, trace := Build(product, fullQuote(), settings.DefaultRates())

	assert.True(t, input.Pricing.MarkupRate.IsZero(),
		"malformed markup silently resolves to the default")
	require.NotEmpty(t, trace.Of(types.FieldMarkupRate),
		"the silent default must be observable in the trace")
	assert.Equal(t, ReasonUnparsable, trace.Of(types.FieldMarkupRate)[0].Reason)
}

func TestBuildProductOverrideBeatsQuoteDefault(t *testing.T) {
	product := fullProduct()
	product[types.FieldMarkupRate] = decimal.NewFromInt(30)

	input, _ := Build(product, fullQuote(), settings.DefaultRates())
	assert.True(t, input.Pricing.MarkupRate.Equal(decimal.NewFromInt(30)))
}

func TestBuildZeroOverrideIsNotDefaulted(t *testing.T) {
	product := fullProduct()
	product[types.FieldMarkupRate] = decimal.Zero

	input, trace := Build(product, fullQuote(), settings.DefaultRates())

	assert.True(t, input.Pricing.MarkupRate.IsZero())
	assert.Empty(t, trace.Of(types.FieldMarkupRate),
		"an explicit zero override is a value, not a fallback")
}
