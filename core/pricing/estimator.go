package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tfcost/core/catalog"
	"tfcost/core/types"
	apperrors "tfcost/internal/errors"
)

// EstimatorConfig contains estimator settings
type EstimatorConfig struct {
	// Concurrency bounds simultaneous catalog queries (0 = unbounded)
	Concurrency int

	// QueryTimeout bounds each catalog query (0 = none)
	QueryTimeout time.Duration
}

// DefaultEstimatorConfig returns sensible defaults
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		Concurrency:  8,
		QueryTimeout: 30 * time.Second,
	}
}

// Estimator prices normalized resources against a catalog
type Estimator struct {
	catalog Catalog
	filters *FilterBuilder
	config  EstimatorConfig
	logger  *zap.Logger
}

// NewEstimator creates an estimator
func NewEstimator(c Catalog, tables *catalog.Tables, config EstimatorConfig, logger *zap.Logger) *Estimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{
		catalog: c,
		filters: NewFilterBuilder(tables),
		config:  config,
		logger:  logger,
	}
}

// Filters returns the catalog filters used for a resource
func (e *Estimator) Filters(r types.NormalizedResource, region string) []types.PricingFilter {
	return e.filters.Build(r, region)
}

// Price estimates the cost of one resource. Every failure becomes a failed
// estimate; Price never returns an error.
func (e *Estimator) Price(ctx context.Context, r types.NormalizedResource, region string) types.CostEstimate {
	log := e.logger.With(
		zap.String("resource", r.Address()),
		zap.String("serviceCode", r.ServiceCode),
		zap.String("region", region),
	)

	filters := e.filters.Build(r, region)
	if !IsQueryable(filters) {
		return types.FailedEstimate(apperrors.NotSupported("pricing for resource type " + r.ResourceType).Message)
	}
	if r.ServiceCode == "" || r.ServiceCode == types.UnknownServiceCode {
		return types.FailedEstimate(fmt.Sprintf("no pricing service code for resource type %s", r.ResourceType))
	}

	qctx := ctx
	if e.config.QueryTimeout > 0 {
		var cancel context.CancelFunc
		qctx, cancel = context.WithTimeout(ctx, e.config.QueryTimeout)
		defer cancel()
	}

	docs, err := e.catalog.Query(qctx, r.ServiceCode, filters)
	if err != nil {
		log.Warn("pricing catalog query failed", zap.Error(err))
		return types.FailedEstimate(fmt.Sprintf("pricing catalog query failed: %v", err))
	}
	if len(docs) == 0 {
		log.Warn("no pricing data found", zap.Any("filters", filters))
		return types.FailedEstimate("no pricing data found")
	}

	est := ComputeCost(docs[0], r)
	switch {
	case est.Failed:
		log.Warn("price list navigation failed", zap.String("reason", est.Reason))
	case est.Unpriced:
		log.Debug("unsupported pricing unit, priced at zero", zap.String("unit", est.Unit))
	}
	return est
}

// PriceAll prices resources concurrently. Results keep input order, and one
// resource's failure never affects another's result.
func (e *Estimator) PriceAll(ctx context.Context, resources []types.NormalizedResource, region string) []types.ResourceCost {
	results := make([]types.ResourceCost, len(resources))

	var g errgroup.Group
	if e.config.Concurrency > 0 {
		g.SetLimit(e.config.Concurrency)
	}

	for i, r := range resources {
		i, r := i, r
		g.Go(func() error {
			results[i] = types.ResourceCost{
				ResourceName: r.Name,
				ResourceType: r.DisplayType(),
				Address:      r.Address(),
				Pricing:      e.Price(ctx, r, region),
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Estimate prices resources and totals the result
func (e *Estimator) Estimate(ctx context.Context, resources []types.NormalizedResource, region string) *types.EstimateReport {
	start := time.Now()
	costs := e.PriceAll(ctx, resources, region)
	total := AggregateResources(costs)

	report := &types.EstimateReport{
		ID:        uuid.New().String(),
		Region:    region,
		Resources: costs,
		Total:     total,
		Timestamp: time.Now().UTC(),
	}

	e.logger.Info("estimate complete",
		zap.String("id", report.ID),
		zap.String("region", region),
		zap.Int("resources", len(costs)),
		zap.Int("failed", report.FailedCount()),
		zap.String("monthly", total.Monthly.StringFixed(2)),
		zap.Duration("duration", time.Since(start)),
	)
	return report
}
