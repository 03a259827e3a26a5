// Package types - Variable field catalogue
// Every quantity the engine consumes is a named field with an explicit
// classification, so resolution is a total mapping rather than a
// string-keyed lookup that can silently miss a field.
package types

import "github.com/shopspring/decimal"

// Field names one of the 42 variables the engine consumes
type Field string

// Class indicates at which level a field may be supplied
type Class int

const (
	// ClassProductOnly fields are always supplied per product
	ClassProductOnly Class = iota

	// ClassQuoteOnly fields are set once per quote
	ClassQuoteOnly

	// ClassBothLevel fields may carry a quote default and a per-product override
	ClassBothLevel

	// ClassAdminOnly fields come from organization settings, never user input
	ClassAdminOnly
)

// String returns the class name
func (c Class) String() string {
	switch c {
	case ClassProductOnly:
		return "product-only"
	case ClassQuoteOnly:
		return "quote-only"
	case ClassBothLevel:
		return "both-level"
	case ClassAdminOnly:
		return "admin-only"
	default:
		return "unknown"
	}
}

// Product-only fields (always supplied per product)
const (
	FieldProductName Field = "product_name"
	FieldBrand       Field = "brand"
	FieldUnitPrice   Field = "unit_price" // includes source-side VAT
	FieldQuantity    Field = "quantity"
	FieldWeight      Field = "weight"
)

// Quote-only fields (set once per quote)
const (
	FieldQuoteCurrency Field = "quote_currency"
	FieldSeller        Field = "seller"
	FieldSaleType      Field = "sale_type"
	FieldDeliveryBasis Field = "delivery_basis"

	FieldClientAdvancePct   Field = "client_advance_pct"
	FieldClientAdvanceDays  Field = "client_advance_days"
	FieldLoadingPaymentPct  Field = "loading_payment_pct"
	FieldLoadingPaymentDays Field = "loading_payment_days"
	FieldDestinationPct     Field = "destination_payment_pct"
	FieldDestinationDays    Field = "destination_payment_days"
	FieldClearancePct       Field = "clearance_payment_pct"
	FieldClearanceDays      Field = "clearance_payment_days"
	FieldFinalPaymentDays   Field = "final_payment_days"

	FieldAgentFee    Field = "agent_fee"
	FieldBankFee     Field = "bank_fee"
	FieldDisposalFee Field = "disposal_fee"
)

// Admin-only fields (organization settings; part of the quote-level set)
const (
	FieldForexRiskRate           Field = "forex_risk_rate"
	FieldFinancingCommissionRate Field = "financing_commission_rate"
	FieldDailyInterestRate       Field = "daily_interest_rate"
)

// Both-level fields (quote default, per-product override)
const (
	FieldBaseCurrency       Field = "base_currency"
	FieldExchangeRate       Field = "exchange_rate"
	FieldSourceCountry      Field = "source_country"
	FieldSupplierDiscount   Field = "supplier_discount"
	FieldCustomsCode        Field = "customs_code"
	FieldImportDutyRate     Field = "import_duty_rate"
	FieldExciseTax          Field = "excise_tax"
	FieldMarkupRate         Field = "markup_rate"
	FieldLeadTimeDays       Field = "lead_time_days"
	FieldSupplierAdvancePct Field = "supplier_advance_pct"

	FieldPickupCost   Field = "pickup_cost"
	FieldFreightCost  Field = "freight_cost"
	FieldDeliveryCost Field = "delivery_cost"

	FieldCustomsClearanceCost Field = "customs_clearance_cost"
	FieldBrokerageCost        Field = "brokerage_cost"
	FieldWarehousingCost      Field = "warehousing_cost"
	FieldDocumentationCost    Field = "documentation_cost"
	FieldExtraFeeCost         Field = "extra_fee_cost"
)

// String returns the field name
func (f Field) String() string {
	return string(f)
}

// AllFields returns every field in catalogue order
func AllFields() []Field {
	return []Field{
		FieldProductName, FieldBrand, FieldUnitPrice, FieldQuantity, FieldWeight,

		FieldQuoteCurrency, FieldSeller, FieldSaleType, FieldDeliveryBasis,
		FieldClientAdvancePct, FieldClientAdvanceDays,
		FieldLoadingPaymentPct, FieldLoadingPaymentDays,
		FieldDestinationPct, FieldDestinationDays,
		FieldClearancePct, FieldClearanceDays,
		FieldFinalPaymentDays,
		FieldAgentFee, FieldBankFee, FieldDisposalFee,

		FieldForexRiskRate, FieldFinancingCommissionRate, FieldDailyInterestRate,

		FieldBaseCurrency, FieldExchangeRate, FieldSourceCountry,
		FieldSupplierDiscount, FieldCustomsCode, FieldImportDutyRate,
		FieldExciseTax, FieldMarkupRate, FieldLeadTimeDays,
		FieldSupplierAdvancePct,
		FieldPickupCost, FieldFreightCost, FieldDeliveryCost,
		FieldCustomsClearanceCost, FieldBrokerageCost, FieldWarehousingCost,
		FieldDocumentationCost, FieldExtraFeeCost,
	}
}

// Classify returns the classification of a field.
// The switch is total over the catalogue; unknown names classify as
// quote-only so they never shadow a product override.
func (f Field) Classify() Class {
	switch f {
	case FieldProductName, FieldBrand, FieldUnitPrice, FieldQuantity, FieldWeight:
		return ClassProductOnly

	case FieldForexRiskRate, FieldFinancingCommissionRate, FieldDailyInterestRate:
		return ClassAdminOnly

	case FieldBaseCurrency, FieldExchangeRate, FieldSourceCountry,
		FieldSupplierDiscount, FieldCustomsCode, FieldImportDutyRate,
		FieldExciseTax, FieldMarkupRate, FieldLeadTimeDays,
		FieldSupplierAdvancePct,
		FieldPickupCost, FieldFreightCost, FieldDeliveryCost,
		FieldCustomsClearanceCost, FieldBrokerageCost, FieldWarehousingCost,
		FieldDocumentationCost, FieldExtraFeeCost:
		return ClassBothLevel

	default:
		return ClassQuoteOnly
	}
}

// Fallback returns the documented fallback constant for a field.
// A nil fallback means the field has no usable default; required-field
// validation catches it before the pipeline runs.
func (f Field) Fallback() interface{} {
	switch f {
	case FieldQuoteCurrency:
		return string(CurrencyRUB)
	case FieldBaseCurrency:
		return string(CurrencyUSD)
	case FieldSaleType:
		return ""
	case FieldSupplierAdvancePct:
		// full prepayment to the supplier unless stated otherwise
		return decimal.NewFromInt(100)
	case FieldProductName, FieldBrand, FieldSeller, FieldDeliveryBasis,
		FieldSourceCountry, FieldCustomsCode:
		return nil
	case FieldExchangeRate, FieldUnitPrice, FieldQuantity, FieldWeight:
		return nil
	default:
		return decimal.Zero
	}
}

// Label returns the human-readable label used in violation messages
func (f Field) Label() string {
	switch f {
	case FieldProductName:
		return "product name"
	case FieldBrand:
		return "brand"
	case FieldUnitPrice:
		return "purchase unit price"
	case FieldQuantity:
		return "quantity"
	case FieldWeight:
		return "unit weight"
	case FieldQuoteCurrency:
		return "quote currency"
	case FieldSeller:
		return "selling entity"
	case FieldSaleType:
		return "sale type"
	case FieldDeliveryBasis:
		return "delivery terms"
	case FieldClientAdvancePct:
		return "advance from client, %"
	case FieldClientAdvanceDays:
		return "days to advance from client"
	case FieldLoadingPaymentPct:
		return "payment on loading, %"
	case FieldLoadingPaymentDays:
		return "days to payment on loading"
	case FieldDestinationPct:
		return "payment on arrival, %"
	case FieldDestinationDays:
		return "days to payment on arrival"
	case FieldClearancePct:
		return "payment on customs clearance, %"
	case FieldClearanceDays:
		return "days to payment on customs clearance"
	case FieldFinalPaymentDays:
		return "days to final payment"
	case FieldAgentFee:
		return "agent fee"
	case FieldBankFee:
		return "bank fee"
	case FieldDisposalFee:
		return "disposal fee"
	case FieldForexRiskRate:
		return "currency risk reserve, %"
	case FieldFinancingCommissionRate:
		return "financing commission, %"
	case FieldDailyInterestRate:
		return "daily loan interest rate"
	case FieldBaseCurrency:
		return "purchase currency"
	case FieldExchangeRate:
		return "exchange rate"
	case FieldSourceCountry:
		return "country of origin"
	case FieldSupplierDiscount:
		return "supplier discount, %"
	case FieldCustomsCode:
		return "customs code"
	case FieldImportDutyRate:
		return "import duty, %"
	case FieldExciseTax:
		return "excise tax"
	case FieldMarkupRate:
		return "markup, %"
	case FieldLeadTimeDays:
		return "delivery lead time, days"
	case FieldSupplierAdvancePct:
		return "advance to supplier, %"
	case FieldPickupCost:
		return "pickup cost"
	case FieldFreightCost:
		return "freight cost"
	case FieldDeliveryCost:
		return "last-mile delivery cost"
	case FieldCustomsClearanceCost:
		return "customs clearance cost"
	case FieldBrokerageCost:
		return "brokerage cost"
	case FieldWarehousingCost:
		return "warehousing cost"
	case FieldDocumentationCost:
		return "documentation cost"
	case FieldExtraFeeCost:
		return "extra customs fees"
	default:
		return string(f)
	}
}
