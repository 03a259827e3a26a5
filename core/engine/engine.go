// Package engine orchestrates a quote calculation end to end:
// admin settings, validation, per-product mapping and pipeline runs,
// and quote-level aggregation.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tradequote/core/mapper"
	"tradequote/core/pipeline"
	"tradequote/core/settings"
	"tradequote/core/types"
	"tradequote/core/validator"
	errs "tradequote/internal/errors"
	"tradequote/internal/logging"
)

// Request is one quote calculation request
type Request struct {
	// OrganizationID selects the admin settings to apply
	OrganizationID string

	// Quote is the quote-level variable bag
	Quote types.Vars

	// Products are the per-product records, each carrying the five
	// product-only fields plus optional both-level overrides
	Products []types.Vars
}

// ValidationError carries every violation found before computation.
// No partial calculation has been performed when it is returned.
type ValidationError struct {
	Violations []validator.Violation
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("quote validation failed: %s",
		strings.Join(validator.Messages(e.Violations), "; "))
}

// Engine computes priced quotes
type Engine struct {
	provider *settings.Provider
	workers  int
	logger   *zap.Logger
}

// Option configures the engine
type Option func(*Engine)

// WithWorkers bounds per-product concurrency
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithLogger overrides the global logger
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine. The settings provider may be nil, in which
// case the documented default rates apply to every organization.
func New(provider *settings.Provider, opts ...Option) *Engine {
	e := &Engine{
		provider: provider,
		workers:  4,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Logger
	}
	return e
}

// Calculate validates a request and produces the priced quote.
// A validation failure is returned as *ValidationError; any pipeline
// failure aborts the whole quote naming the offending product.
func (e *Engine) Calculate(ctx context.Context, req Request) (*types.QuoteResult, error) {
	requestID := uuid.NewString()
	log := e.logger.With(
		zap.String("request_id", requestID),
		zap.String("org_id", req.OrganizationID),
		zap.Int("products", len(req.Products)))

	if len(req.Products) == 0 {
		return nil, errs.Input("a quote needs at least one product")
	}

	if violations := validator.Validate(req.Quote, req.Products); len(violations) > 0 {
		log.Info("quote rejected by validation", zap.Int("violations", len(violations)))
		return nil, &ValidationError{Violations: violations}
	}

	rates := settings.DefaultRates()
	if e.provider != nil {
		rates = e.provider.Rates(ctx, req.OrganizationID)
	}

	// products are independent; compute them concurrently and keep
	// input order in the result
	breakdowns := make([]*types.PhaseBreakdown, len(req.Products))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, product := range req.Products {
		i, product := i, product
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			input, trace := mapper.Build(product, req.Quote, rates)
			if !trace.Clean() {
				log.Debug("mapper applied defaults",
					zap.String("product", input.Basic.Name),
					zap.Int("fallbacks", len(trace.Fallbacks)))
			}
			breakdown, err := pipeline.Calculate(input)
			if err != nil {
				return errs.Calculation(input.Basic.Name, err)
			}
			breakdowns[i] = breakdown
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("quote calculation aborted", zap.Error(err))
		return nil, err
	}

	quoteCurrency := types.CurrencyRUB
	if v := req.Quote.Get(types.FieldQuoteCurrency); !types.IsEmpty(v) {
		quoteCurrency = mapper.SafeCurrency(types.FieldQuoteCurrency, v, types.CurrencyRUB, nil)
	}

	result := &types.QuoteResult{
		RequestID: requestID,
		Currency:  quoteCurrency,
		Products:  breakdowns,
	}
	result.Aggregate()

	log.Info("quote calculated",
		zap.String("subtotal", result.Subtotal.String()),
		zap.String("total", result.Total.String()))

	return result, nil
}
