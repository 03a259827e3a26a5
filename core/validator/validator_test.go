package validator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradequote/core/types"
)

func validQuote() types.Vars {
	return types.Vars{
		types.FieldSeller:        "TradeCo LLC",
		types.FieldSaleType:      "domestic",
		types.FieldDeliveryBasis: "EXW",
		types.FieldExchangeRate:  decimal.RequireFromString("95.00"),
	}
}

func validProduct() types.Vars {
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

func TestValidInputPasses(t *testing.T) {
	violations := Validate(validQuote(), []types.Vars{validProduct()})
	assert.Empty(t, violations)
}

func TestAllViolationsAreCollected(t *testing.T) {
	// three required fields missing plus the advance-payment rule:
	// exactly four violations, not just the first
	quote := validQuote()
	delete(quote, types.FieldSeller)
	delete(quote, types.FieldSaleType)
	quote[types.FieldClientAdvancePct] = decimal.NewFromInt(80)
	quote[types.FieldLoadingPaymentPct] = decimal.NewFromInt(30)

	product := validProduct()
	delete(product, types.FieldCustomsCode)

	violations := Validate(quote, []types.Vars{product})
	require.Len(t, violations, 4)

	messages := strings.Join(Messages(violations), "\n")
	assert.Contains(t, messages, "Selling entity is not specified")
	assert.Contains(t, messages, "Sale type is not specified")
	assert.Contains(t, messages, "Product 1: customs code is not specified")
	assert.Contains(t, messages, "advance payment percentages")
}

func TestFixingOneConditionRemovesExactlyItsMessage(t *testing.T) {
	quote := validQuote()
	delete(quote, types.FieldSeller)
	quote[types.FieldClientAdvancePct] = decimal.NewFromInt(110)

	violations := Validate(quote, []types.Vars{validProduct()})
	require.Len(t, violations, 2)

	quote[types.FieldSeller] = "TradeCo LLC"
	violations = Validate(quote, []types.Vars{validProduct()})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "advance payment percentages")
}

func TestAdvanceSumBoundary(t *testing.T) {
	quote := validQuote()
	quote[types.FieldClientAdvancePct] = decimal.NewFromInt(60)
	quote[types.FieldLoadingPaymentPct] = decimal.NewFromInt(40)

	assert.Empty(t, Validate(quote, []types.Vars{validProduct()}),
		"a schedule summing to exactly 100 is allowed")

	quote[types.FieldClearancePct] = decimal.NewFromInt(1)
	violations := Validate(quote, []types.Vars{validProduct()})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "101")
}

func TestProductExchangeRateSatisfiesPresence(t *testing.T) {
	// the exchange rate is a two-tier field: a per-product override is
	// as good as a quote-level default
	quote := validQuote()
	delete(quote, types.FieldExchangeRate)

	product := validProduct()
	product[types.FieldExchangeRate] = decimal.RequireFromString("95.00")

	assert.Empty(t, Validate(quote, []types.Vars{product}))
}

func TestExchangeRateMissingAtBothLevels(t *testing.T) {
	quote := validQuote()
	delete(quote, types.FieldExchangeRate)

	covered := validProduct()
	covered[types.FieldExchangeRate] = decimal.RequireFromString("95.00")
	uncovered := validProduct()

	violations := Validate(quote, []types.Vars{covered, uncovered})
	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].Product)
	assert.Contains(t, violations[0].Message, "Product 2: exchange rate is not specified")
}

func TestUnsupportedQuoteCurrencyIsRejected(t *testing.T) {
	quote := validQuote()
	quote[types.FieldQuoteCurrency] = "XYZ"

	violations := Validate(quote, []types.Vars{validProduct()})
	require.Len(t, violations, 1)
	assert.Equal(t, 0, violations[0].Product)
	assert.Contains(t, violations[0].Message, `Quote currency "XYZ" is not supported`)
}

func TestQuoteCurrencyIsNotRequired(t *testing.T) {
	quote := validQuote()
	// no quote currency anywhere: the mapper defaults it later
	assert.Empty(t, Validate(quote, []types.Vars{validProduct()}))
}

func TestLeadTimeMustBePositive(t *testing.T) {
	product := validProduct()
	product[types.FieldLeadTimeDays] = decimal.Zero

	violations := Validate(validQuote(), []types.Vars{product})
	require.Len(t, violations, 1)
	assert.Equal(t, 1, violations[0].Product)
	assert.Contains(t, violations[0].Message, "lead time")
}

func TestQuantityMustBePositive(t *testing.T) {
	product := validProduct()
	product[types.FieldQuantity] = decimal.NewFromInt(-1)

	violations := Validate(validQuote(), []types.Vars{product})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "quantity must be greater than zero")
}

func TestUnsupportedCurrencyIsRejected(t *testing.T) {
	product := validProduct()
	product[types.FieldBaseCurrency] = "XBT"

	violations := Validate(validQuote(), []types.Vars{product})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, `currency "XBT" is not supported`)
}

func TestExWorksExemptsLogisticsCosts(t *testing.T) {
	quote := validQuote()
	quote[types.FieldDeliveryBasis] = "ex-works"

	assert.Empty(t, Validate(quote, []types.Vars{validProduct()}),
		"EXW with zero logistics legs must pass")
}

func TestNonExWorksRequiresLogisticsCosts(t *testing.T) {
	quote := validQuote()
	quote[types.FieldDeliveryBasis] = "CIF"

	violations := Validate(quote, []types.Vars{validProduct()})
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "no logistics costs")

	// any single leg above zero satisfies the rule
	for _, leg := range []types.Field{types.FieldPickupCost, types.FieldFreightCost, types.FieldDeliveryCost} {
		product := validProduct()
		product[leg] = decimal.NewFromInt(500)
		assert.Empty(t, Validate(quote, []types.Vars{product}), "leg %s", leg)
	}
}

func TestViolationsCarryProductIndex(t *testing.T) {
	first := validProduct()
	second := validProduct()
	delete(second, types.FieldBrand)

	violations := Validate(validQuote(), []types.Vars{first, second})
	require.Len(t, violations, 1)
	assert.Equal(t, 2, violations[0].Product)
	assert.Contains(t, violations[0].Message, "Product 2:")
}

func TestMessagesUseHumanLabels(t *testing.T) {
	quote := validQuote()
	delete(quote, types.FieldDeliveryBasis)

	violations := Validate(quote, []types.Vars{validProduct()})
	require.Len(t, violations, 1)
	assert.Equal(t, "Delivery terms is not specified", violations[0].Message)
	assert.NotContains(t, violations[0].Message, "delivery_basis",
		"internal field identifiers must not leak to users")
}
