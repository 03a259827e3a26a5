// Package settings provides concrete stores for admin rates.
// The calculation core only sees the settings.Store interface; these
// backends exist for the CLI and for tests.
package settings

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/shopspring/decimal"

	core "tradequote/core/settings"
	errs "tradequote/internal/errors"
)

// Static is an in-memory store keyed by organization ID
type Static struct {
	mu    sync.RWMutex
	rates map[string]core.Rates
}

// NewStatic creates an empty in-memory store
func NewStatic() *Static {
	return &Static{rates: make(map[string]core.Rates)}
}

// Set configures rates for an organization
func (s *Static) Set(orgID string, rates core.Rates) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rates[orgID] = rates
}

// FetchRates implements settings.Store
func (s *Static) FetchRates(_ context.Context, orgID string) (core.Rates, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rates, ok := s.rates[orgID]
	return rates, ok, nil
}

// fileRates is the JSON shape of one organization's configuration.
// Rates are strings so the file round-trips without float drift.
type fileRates struct {
	ForexRiskRate           string `json:"forex_risk_rate"`
	FinancingCommissionRate string `json:"financing_commission_rate"`
	DailyInterestRate       string `json:"daily_interest_rate"`
}

// File is a JSON-file-backed store: {"org-id": {...rates...}, ...}
type File struct {
	path string
}

// NewFile creates a file-backed store
func NewFile(path string) *File {
	return &File{path: path}
}

// FetchRates implements settings.Store. The file is read per lookup;
// the provider caches nothing and treats any error as "not found".
func (f *File) FetchRates(_ context.Context, orgID string) (core.Rates, bool, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return core.Rates{}, false, errs.Settings("reading settings file", err)
	}

	var orgs map[string]fileRates
	if err := json.Unmarshal(raw, &orgs); err != nil {
		return core.Rates{}, false, errs.Settings("parsing settings file", err)
	}

	entry, ok := orgs[orgID]
	if !ok {
		return core.Rates{}, false, nil
	}

	rates := core.DefaultRates()
	if d, err := decimal.NewFromString(entry.ForexRiskRate); err == nil {
		rates.ForexRiskRate = d
	}
	if d, err := decimal.NewFromString(entry.FinancingCommissionRate); err == nil {
		rates.FinancingCommissionRate = d
	}
	if d, err := decimal.NewFromString(entry.DailyInterestRate); err == nil {
		rates.DailyInterestRate = d
	}
	return rates, true, nil
}
