// Package pricing turns normalized resources into cost estimates using an
// external pricing catalog.
package pricing

import (
	"context"

	"tfcost/core/types"
)

// Catalog queries an external price list
type Catalog interface {
	// Query returns raw Price List product documents (JSON) matching all
	// filters for a service code. An empty result is not an error.
	Query(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]string, error)
}

// CatalogFunc adapts a function to the Catalog interface
type CatalogFunc func(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]string, error)

// Query calls f
func (f CatalogFunc) Query(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]string, error) {
	return f(ctx, serviceCode, filters)
}
