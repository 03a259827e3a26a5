// Package settings supplies the organization-wide financial rates.
// A lookup failure never fails a calculation: the provider degrades to
// the documented default rates.
package settings

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tradequote/internal/logging"
)

// Rates are the three admin-governed financial constants
type Rates struct {
	// ForexRiskRate is the currency risk reserve out of 100
	ForexRiskRate decimal.Decimal `json:"forex_risk_rate"`

	// FinancingCommissionRate is the financing commission out of 100
	FinancingCommissionRate decimal.Decimal `json:"financing_commission_rate"`

	// DailyInterestRate is the daily loan interest as a plain fraction
	DailyInterestRate decimal.Decimal `json:"daily_interest_rate"`
}

// DefaultRates returns the documented fallback rates
func DefaultRates() Rates {
	return Rates{
		ForexRiskRate:           decimal.NewFromInt(3),
		FinancingCommissionRate: decimal.NewFromInt(2),
		DailyInterestRate:       decimal.RequireFromString("0.00069"),
	}
}

// Store fetches rates for an organization.
// Implementations signal "no configuration" with found == false.
type Store interface {
	// FetchRates returns the configured rates for an organization
	FetchRates(ctx context.Context, orgID string) (rates Rates, found bool, err error)
}

// Provider resolves rates for an organization, falling back to defaults
type Provider struct {
	store Store
}

// NewProvider creates a provider backed by a store.
// A nil store always yields the defaults.
func NewProvider(store Store) *Provider {
	return &Provider{store: store}
}

// Rates returns the rates for an organization.
// Absent configuration and storage errors are treated identically: the
// documented defaults are returned and the error is only logged.
func (p *Provider) Rates(ctx context.Context, orgID string) Rates {
	if p == nil || p.store == nil {
		return DefaultRates()
	}

	rates, found, err := p.store.FetchRates(ctx, orgID)
	if err != nil {
		logging.Warn("admin settings lookup failed, using defaults",
			zap.String("org_id", orgID),
			zap.Error(err))
		return DefaultRates()
	}
	if !found {
		return DefaultRates()
	}
	return rates
}
