// Package types - Cost estimate types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostEstimate is the priced cost of one resource, or of a total.
// A failed estimate carries a reason and zero amounts.
type CostEstimate struct {
	Hourly  decimal.Decimal `json:"hourly"`
	Monthly decimal.Decimal `json:"monthly"`
	Yearly  decimal.Decimal `json:"yearly"`

	// Unit is the catalog unit label the price was quoted in
	Unit string `json:"unit,omitempty"`

	// PricePerUnit is the catalog unit price in USD
	PricePerUnit *decimal.Decimal `json:"pricePerUnit,omitempty"`

	// Unpriced is set when the unit is not supported and the amounts
	// are zero because of that, not because the resource is free.
	Unpriced bool `json:"unpriced,omitempty"`

	Failed bool   `json:"failed,omitempty"`
	Reason string `json:"error,omitempty"`
}

// FailedEstimate returns a failed estimate with zero amounts
func FailedEstimate(reason string) CostEstimate {
	return CostEstimate{
		Hourly:  decimal.Zero,
		Monthly: decimal.Zero,
		Yearly:  decimal.Zero,
		Failed:  true,
		Reason:  reason,
	}
}

// EstimateFromHourly derives monthly and yearly amounts from an unrounded
// hourly rate and rounds all three to cents.
func EstimateFromHourly(rate decimal.Decimal) CostEstimate {
	return CostEstimate{
		Hourly:  Round2(rate),
		Monthly: Round2(rate.Mul(decimal.NewFromInt(HoursPerMonth))),
		Yearly:  Round2(rate.Mul(decimal.NewFromInt(HoursPerYear))),
	}
}

// Round2 rounds to two decimal places, halves away from zero
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ResourceCost pairs a resource with its estimate
type ResourceCost struct {
	ResourceName string       `json:"resourceName"`
	ResourceType string       `json:"resourceType"`
	Address      string       `json:"address"`
	Pricing      CostEstimate `json:"pricing"`
}

// PricingFilter is one catalog query predicate
type PricingFilter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// EstimateReport is the priced result for one configuration
type EstimateReport struct {
	ID        string         `json:"id"`
	Region    string         `json:"region"`
	Resources []ResourceCost `json:"resources"`
	Total     CostEstimate   `json:"total"`
	Timestamp time.Time      `json:"timestamp"`
}

// FailedCount returns the number of resources that could not be priced
func (r *EstimateReport) FailedCount() int {
	n := 0
	for _, c := range r.Resources {
		if c.Pricing.Failed {
			n++
		}
	}
	return n
}
