// Package types - Calculation results
package types

import "github.com/shopspring/decimal"

// PhaseBreakdown retains every intermediate figure of the 13-phase
// calculation for one product. Downstream reporting and financial review
// need intermediate visibility, not just the final price.
type PhaseBreakdown struct {
	// ProductName echoes the product identifier
	ProductName string `json:"product_name"`

	// Brand echoes the brand label
	Brand string `json:"brand"`

	// Quantity echoes the order quantity
	Quantity decimal.Decimal `json:"quantity"`

	// BaseUnitPrice is the re-validated purchase unit price (phase 1)
	BaseUnitPrice decimal.Decimal `json:"base_unit_price"`

	// DiscountedUnitPrice is the unit price after supplier discount (phase 2)
	DiscountedUnitPrice decimal.Decimal `json:"discounted_unit_price"`

	// PurchasePrice is the order total in quote currency (phase 3)
	PurchasePrice decimal.Decimal `json:"purchase_price"`

	// LogisticsCost is the sum of the three logistics legs (phase 4)
	LogisticsCost decimal.Decimal `json:"logistics_cost"`

	// CustomsDuty is import duty plus excise (phase 5)
	CustomsDuty decimal.Decimal `json:"customs_duty"`

	// ClearanceCost aggregates customs-leg and disposal fees (phase 6)
	ClearanceCost decimal.Decimal `json:"clearance_cost"`

	// LandedCost is the landed-cost subtotal (phase 7)
	LandedCost decimal.Decimal `json:"landed_cost"`

	// FinancingCost is the cost of financing the deal (phase 8)
	FinancingCost decimal.Decimal `json:"financing_cost"`

	// TotalCost is the internal total cost of goods (phase 9)
	TotalCost decimal.Decimal `json:"total_cost"`

	// MarkupAmount is the markup applied to total cost (phase 10)
	MarkupAmount decimal.Decimal `json:"markup_amount"`

	// SalePriceNet is the pre-tax sale price (phase 11)
	SalePriceNet decimal.Decimal `json:"sale_price_net"`

	// VATAmount is the destination value-added tax (phase 12)
	VATAmount decimal.Decimal `json:"vat_amount"`

	// SalePriceGross is the final client-facing price (phase 13)
	SalePriceGross decimal.Decimal `json:"sale_price_gross"`
}

// Phases returns the 13 phase values in order with their names
func (b *PhaseBreakdown) Phases() []PhaseValue {
	return []PhaseValue{
		{1, "base unit price", b.BaseUnitPrice},
		{2, "discounted unit price", b.DiscountedUnitPrice},
		{3, "purchase price", b.PurchasePrice},
		{4, "logistics cost", b.LogisticsCost},
		{5, "customs duty", b.CustomsDuty},
		{6, "clearance cost", b.ClearanceCost},
		{7, "landed cost", b.LandedCost},
		{8, "financing cost", b.FinancingCost},
		{9, "total cost", b.TotalCost},
		{10, "markup", b.MarkupAmount},
		{11, "sale price net", b.SalePriceNet},
		{12, "VAT", b.VATAmount},
		{13, "sale price gross", b.SalePriceGross},
	}
}

// PhaseValue is one named intermediate figure
type PhaseValue struct {
	// Number is the 1-based phase number
	Number int `json:"number"`

	// Name is the phase label
	Name string `json:"name"`

	// Value is the calculated figure
	Value decimal.Decimal `json:"value"`
}

// QuoteResult is the aggregated output for a whole quote
type QuoteResult struct {
	// RequestID correlates the result with engine logs
	RequestID string `json:"request_id"`

	// Currency is the quote currency
	Currency Currency `json:"currency"`

	// Products holds one breakdown per product, in input order
	Products []*PhaseBreakdown `json:"products"`

	// Subtotal is the sum of per-product purchase prices (phase 3)
	Subtotal decimal.Decimal `json:"subtotal"`

	// Total is the sum of per-product final prices (phase 13)
	Total decimal.Decimal `json:"total"`
}

// Aggregate recomputes quote totals from the per-product breakdowns.
// Decimal addition is exact and associative, so accumulation order
// does not matter.
func (r *QuoteResult) Aggregate() {
	subtotal := decimal.Zero
	total := decimal.Zero
	for _, p := range r.Products {
		subtotal = subtotal.Add(p.PurchasePrice)
		total = total.Add(p.SalePriceGross)
	}
	r.Subtotal = subtotal
	r.Total = total
}
