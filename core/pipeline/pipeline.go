// Package pipeline is the 13-phase numeric engine.
// It is a pure, synchronous function of its input: no shared state, no
// I/O, exact decimal arithmetic throughout. Each phase consumes only
// the outputs of strictly prior phases plus the immutable input.
package pipeline

import (
	"strings"

	"github.com/shopspring/decimal"

	"tradequote/core/types"
	errs "tradequote/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// StandardVATRate is the destination VAT rate out of 100 for domestic sales
var StandardVATRate = decimal.NewFromInt(20)

// Calculate runs the 13 phases for one product.
// Percentages are out of 100 and divided by 100 at point of use. If a
// phase precondition fails the whole per-product calculation aborts;
// the caller treats that as fatal for the quote.
func Calculate(input types.ComputationInput) (*types.PhaseBreakdown, error) {
	// phase 1: defensive re-validation of required numeric input
	if err := checkInput(input); err != nil {
		return nil, err
	}

	b := &types.PhaseBreakdown{
		ProductName: input.Basic.Name,
		Brand:       input.Basic.Brand,
		Quantity:    input.Basic.Quantity,
	}
	b.BaseUnitPrice = input.Basic.UnitPrice

	// phase 2: apply the supplier discount to the unit price
	discountFactor := decimal.NewFromInt(1).Sub(input.Pricing.SupplierDiscount.Div(hundred))
	b.DiscountedUnitPrice = b.BaseUnitPrice.Mul(discountFactor)

	// phase 3: order total in quote currency
	b.PurchasePrice = b.DiscountedUnitPrice.
		Mul(input.Basic.Quantity).
		Mul(input.Pricing.ExchangeRate)

	// phase 4: the three logistics legs
	b.LogisticsCost = input.Costs.Pickup.
		Add(input.Costs.Freight).
		Add(input.Costs.Delivery)

	// phase 5: import duty on the customs value, plus excise.
	// Customs value includes logistics to the border.
	customsValue := b.PurchasePrice.Add(b.LogisticsCost)
	duty := customsValue.Mul(input.Pricing.ImportDutyRate.Div(hundred))
	b.CustomsDuty = duty.Add(input.Pricing.ExciseTax)

	// phase 6: clearance, brokerage, warehousing, documentation and
	// discretionary fee aggregation
	b.ClearanceCost = input.Fees.CustomsClearance.
		Add(input.Fees.Brokerage).
		Add(input.Fees.Warehousing).
		Add(input.Fees.Documentation).
		Add(input.Fees.ExtraFees).
		Add(input.Fees.DisposalFee).
		Add(input.Payments.AgentFee).
		Add(input.Payments.BankFee)

	// phase 7: landed-cost subtotal
	b.LandedCost = b.PurchasePrice.
		Add(b.LogisticsCost).
		Add(b.CustomsDuty).
		Add(b.ClearanceCost)

	// phase 8: financing over the weighted credit period
	b.FinancingCost = b.LandedCost.
		Mul(input.Settings.DailyInterestRate).
		Mul(creditDays(input))

	// phase 9: total cost of goods
	forexReserve := b.PurchasePrice.Mul(input.Settings.ForexRiskRate.Div(hundred))
	commission := b.LandedCost.Add(b.FinancingCost).
		Mul(input.Settings.FinancingCommissionRate.Div(hundred))
	b.TotalCost = b.LandedCost.
		Add(b.FinancingCost).
		Add(forexReserve).
		Add(commission)

	// phase 10: markup
	b.MarkupAmount = b.TotalCost.Mul(input.Pricing.MarkupRate.Div(hundred))

	// phase 11: pre-tax sale price
	b.SalePriceNet = b.TotalCost.Add(b.MarkupAmount)

	// phase 12: destination VAT
	b.VATAmount = b.SalePriceNet.Mul(vatRate(input).Div(hundred))

	// phase 13: final client-facing price
	b.SalePriceGross = b.SalePriceNet.Add(b.VATAmount)

	return b, nil
}

// checkInput is the phase-1 precondition check. The validator has
// already rejected bad input; this guards against callers that bypass it.
func checkInput(input types.ComputationInput) error {
	switch {
	case !input.Basic.UnitPrice.IsPositive():
		return errs.Newf(errs.TypeCalculation, "purchase unit price must be positive, got %s", input.Basic.UnitPrice)
	case !input.Basic.Quantity.IsPositive():
		return errs.Newf(errs.TypeCalculation, "quantity must be positive, got %s", input.Basic.Quantity)
	case !input.Pricing.ExchangeRate.IsPositive():
		return errs.Newf(errs.TypeCalculation, "exchange rate must be positive, got %s", input.Pricing.ExchangeRate)
	case input.Basic.Weight.IsNegative():
		return errs.Newf(errs.TypeCalculation, "unit weight must not be negative, got %s", input.Basic.Weight)
	}
	return nil
}

// creditDays is the weighted-average days-to-payment implied by the
// advance-payment schedule, plus the supplier-advance share of the
// delivery lead time. The remainder of the client schedule is due at
// the final payment date.
func creditDays(input types.ComputationInput) decimal.Decimal {
	p := input.Payments

	weighted := p.ClientAdvancePct.Mul(p.ClientAdvanceDays).
		Add(p.LoadingPct.Mul(p.LoadingDays)).
		Add(p.DestinationPct.Mul(p.DestinationDays)).
		Add(p.ClearancePct.Mul(p.ClearanceDays))

	scheduled := p.ClientAdvancePct.
		Add(p.LoadingPct).
		Add(p.DestinationPct).
		Add(p.ClearancePct)
	if remainder := hundred.Sub(scheduled); remainder.IsPositive() {
		weighted = weighted.Add(remainder.Mul(p.FinalPaymentDays))
	}

	supplierExposure := input.Logistics.LeadTimeDays.Mul(p.SupplierAdvancePct)

	return weighted.Add(supplierExposure).Div(hundred)
}

// vatRate returns the destination VAT rate out of 100 for the resolved
// jurisdiction. Export sales are zero-rated.
func vatRate(input types.ComputationInput) decimal.Decimal {
	if isExport(input.Fees.SaleType) {
		return decimal.Zero
	}
	return StandardVATRate
}

// isExport matches any sale-type label that mentions export, whatever
// the spelling: "Export", "re-export", "EXPORT SALE" all qualify.
func isExport(saleType string) bool {
	return strings.Contains(strings.ToLower(saleType), "export")
}
