// Package types - Computation input
package types

import "github.com/shopspring/decimal"

// ComputationInput is the fully-typed, fully-defaulted input for one
// product calculation. It is constructed once by the mapper and never
// mutated afterwards; the pipeline reads it only.
type ComputationInput struct {
	// Basic contains product identity
	Basic BasicGroup `json:"basic"`

	// Pricing contains purchase pricing and rates
	Pricing PricingGroup `json:"pricing"`

	// Payments contains the advance-payment schedule and discretionary fees
	Payments PaymentsGroup `json:"payments"`

	// Logistics contains delivery terms and combined logistics cost
	Logistics LogisticsGroup `json:"logistics"`

	// Fees contains customs-leg fees and deal identity
	Fees FeesGroup `json:"fees"`

	// Costs contains the three individual logistics legs
	Costs CostsGroup `json:"costs"`

	// Settings contains the three organization-governed rates
	Settings SettingsGroup `json:"settings"`
}

// BasicGroup holds the five product-only identity fields
type BasicGroup struct {
	// Name identifies the product
	Name string `json:"name"`

	// Brand is the brand label
	Brand string `json:"brand"`

	// UnitPrice is the purchase unit price including source-side VAT
	UnitPrice decimal.Decimal `json:"unit_price"`

	// Quantity is the order quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Weight is the unit weight in kilograms
	Weight decimal.Decimal `json:"weight"`
}

// PricingGroup holds currencies and rates applied to the purchase price
type PricingGroup struct {
	// BaseCurrency is the purchase currency
	BaseCurrency Currency `json:"base_currency"`

	// QuoteCurrency is the currency the quote is priced in
	QuoteCurrency Currency `json:"quote_currency"`

	// ExchangeRate converts base currency into quote currency
	ExchangeRate decimal.Decimal `json:"exchange_rate"`

	// SupplierDiscount is the supplier discount out of 100
	SupplierDiscount decimal.Decimal `json:"supplier_discount"`

	// CustomsCode is the HS commodity code
	CustomsCode string `json:"customs_code"`

	// ImportDutyRate is the import duty out of 100
	ImportDutyRate decimal.Decimal `json:"import_duty_rate"`

	// ExciseTax is an absolute excise amount in quote currency
	ExciseTax decimal.Decimal `json:"excise_tax"`

	// MarkupRate is the markup out of 100
	MarkupRate decimal.Decimal `json:"markup_rate"`
}

// PaymentsGroup holds the advance-payment schedule.
// Percentages are out of 100; day counts are calendar days from order date.
type PaymentsGroup struct {
	ClientAdvancePct  decimal.Decimal `json:"client_advance_pct"`
	ClientAdvanceDays decimal.Decimal `json:"client_advance_days"`

	LoadingPct  decimal.Decimal `json:"loading_payment_pct"`
	LoadingDays decimal.Decimal `json:"loading_payment_days"`

	DestinationPct  decimal.Decimal `json:"destination_payment_pct"`
	DestinationDays decimal.Decimal `json:"destination_payment_days"`

	ClearancePct  decimal.Decimal `json:"clearance_payment_pct"`
	ClearanceDays decimal.Decimal `json:"clearance_payment_days"`

	// FinalPaymentDays is when the unsecured remainder is due
	FinalPaymentDays decimal.Decimal `json:"final_payment_days"`

	// SupplierAdvancePct is the prepayment to the supplier, out of 100
	SupplierAdvancePct decimal.Decimal `json:"supplier_advance_pct"`

	// AgentFee and BankFee are discretionary per-quote fees
	AgentFee decimal.Decimal `json:"agent_fee"`
	BankFee  decimal.Decimal `json:"bank_fee"`
}

// LogisticsGroup holds delivery terms and the combined logistics cost
type LogisticsGroup struct {
	// SourceCountry is the country of origin
	SourceCountry string `json:"source_country"`

	// LeadTimeDays is the delivery lead time in days
	LeadTimeDays decimal.Decimal `json:"lead_time_days"`

	// DeliveryBasis is the resolved incoterm
	DeliveryBasis DeliveryBasis `json:"delivery_basis"`

	// TotalCost is the sum of the three logistics legs
	TotalCost decimal.Decimal `json:"total_cost"`
}

// FeesGroup holds customs-leg fees and deal identity
type FeesGroup struct {
	CustomsClearance decimal.Decimal `json:"customs_clearance_cost"`
	Brokerage        decimal.Decimal `json:"brokerage_cost"`
	Warehousing      decimal.Decimal `json:"warehousing_cost"`
	Documentation    decimal.Decimal `json:"documentation_cost"`
	ExtraFees        decimal.Decimal `json:"extra_fee_cost"`

	// DisposalFee is the recycling fee where the commodity requires one
	DisposalFee decimal.Decimal `json:"disposal_fee"`

	// Seller is the selling entity
	Seller string `json:"seller"`

	// SaleType labels the deal (domestic, export, ...)
	SaleType string `json:"sale_type"`
}

// CostsGroup holds the three individual logistics legs
type CostsGroup struct {
	// Pickup is the supplier-to-hub leg
	Pickup decimal.Decimal `json:"pickup_cost"`

	// Freight is the international freight leg
	Freight decimal.Decimal `json:"freight_cost"`

	// Delivery is the destination delivery leg
	Delivery decimal.Decimal `json:"delivery_cost"`
}

// SettingsGroup holds the three admin-governed rates
type SettingsGroup struct {
	// ForexRiskRate is the currency risk reserve out of 100
	ForexRiskRate decimal.Decimal `json:"forex_risk_rate"`

	// FinancingCommissionRate is the financing commission out of 100
	FinancingCommissionRate decimal.Decimal `json:"financing_commission_rate"`

	// DailyInterestRate is the daily loan interest as a plain fraction
	DailyInterestRate decimal.Decimal `json:"daily_interest_rate"`
}
