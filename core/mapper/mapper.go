// Package mapper transforms a flat, loosely-typed variable bag plus a
// raw product record into the strongly-typed, fully-defaulted
// computation input. The loosely-typed bag never crosses into the
// pipeline itself.
package mapper

import (
	"github.com/shopspring/decimal"

	"tradequote/core/resolver"
	"tradequote/core/settings"
	"tradequote/core/types"
)

// Build constructs the computation input for one product.
// Every numeric field passes through safe-decimal conversion; the
// returned trace records each field that resolved to a default, so a
// caller can assert that no silent defaulting occurred.
func Build(product, quote types.Vars, rates settings.Rates) (types.ComputationInput, *Trace) {
	trace := &Trace{}

	dec := func(f types.Field) decimal.Decimal {
		return SafeDecimal(f, resolver.Resolve(f, product, quote), fallbackDecimal(f), trace)
	}
	str := func(f types.Field) string {
		return SafeString(f, resolver.Resolve(f, product, quote), fallbackString(f), trace)
	}

	input := types.ComputationInput{
		Basic: types.BasicGroup{
			Name:      str(types.FieldProductName),
			Brand:     str(types.FieldBrand),
			UnitPrice: dec(types.FieldUnitPrice),
			Quantity:  dec(types.FieldQuantity),
			Weight:    dec(types.FieldWeight),
		},
		Pricing: types.PricingGroup{
			BaseCurrency:     SafeCurrency(types.FieldBaseCurrency, resolver.Resolve(types.FieldBaseCurrency, product, quote), types.CurrencyUSD, trace),
			QuoteCurrency:    SafeCurrency(types.FieldQuoteCurrency, resolver.Resolve(types.FieldQuoteCurrency, product, quote), types.CurrencyRUB, trace),
			ExchangeRate:     dec(types.FieldExchangeRate),
			SupplierDiscount: dec(types.FieldSupplierDiscount),
			CustomsCode:      str(types.FieldCustomsCode),
			ImportDutyRate:   dec(types.FieldImportDutyRate),
			ExciseTax:        dec(types.FieldExciseTax),
			MarkupRate:       dec(types.FieldMarkupRate),
		},
		Payments: types.PaymentsGroup{
			ClientAdvancePct:   dec(types.FieldClientAdvancePct),
			ClientAdvanceDays:  dec(types.FieldClientAdvanceDays),
			LoadingPct:         dec(types.FieldLoadingPaymentPct),
			LoadingDays:        dec(types.FieldLoadingPaymentDays),
			DestinationPct:     dec(types.FieldDestinationPct),
			DestinationDays:    dec(types.FieldDestinationDays),
			ClearancePct:       dec(types.FieldClearancePct),
			ClearanceDays:      dec(types.FieldClearanceDays),
			FinalPaymentDays:   dec(types.FieldFinalPaymentDays),
			SupplierAdvancePct: dec(types.FieldSupplierAdvancePct),
			AgentFee:           dec(types.FieldAgentFee),
			BankFee:            dec(types.FieldBankFee),
		},
		Fees: types.FeesGroup{
			CustomsClearance: dec(types.FieldCustomsClearanceCost),
			Brokerage:        dec(types.FieldBrokerageCost),
			Warehousing:      dec(types.FieldWarehousingCost),
			Documentation:    dec(types.FieldDocumentationCost),
			ExtraFees:        dec(types.FieldExtraFeeCost),
			DisposalFee:      dec(types.FieldDisposalFee),
			Seller:           str(types.FieldSeller),
			SaleType:         str(types.FieldSaleType),
		},
		Costs: types.CostsGroup{
			Pickup:   dec(types.FieldPickupCost),
			Freight:  dec(types.FieldFreightCost),
			Delivery: dec(types.FieldDeliveryCost),
		},
		Settings: types.SettingsGroup{
			ForexRiskRate:           rates.ForexRiskRate,
			FinancingCommissionRate: rates.FinancingCommissionRate,
			DailyInterestRate:       rates.DailyInterestRate,
		},
	}

	input.Logistics = types.LogisticsGroup{
		SourceCountry: str(types.FieldSourceCountry),
		LeadTimeDays:  dec(types.FieldLeadTimeDays),
		DeliveryBasis: SafeBasis(types.FieldDeliveryBasis, resolver.Resolve(types.FieldDeliveryBasis, product, quote), trace),
		TotalCost:     input.Costs.Pickup.Add(input.Costs.Freight).Add(input.Costs.Delivery),
	}

	return input, trace
}

// fallbackDecimal returns the field's documented numeric default.
// Fields without a usable fallback default to exact zero; required-field
// validation has already rejected them by the time the pipeline runs.
func fallbackDecimal(f types.Field) decimal.Decimal {
	if d, ok := f.Fallback().(decimal.Decimal); ok {
		return d
	}
	return decimal.Zero
}

// fallbackString returns the field's documented string default
func fallbackString(f types.Field) string {
	if s, ok := f.Fallback().(string); ok {
		return s
	}
	return ""
}
