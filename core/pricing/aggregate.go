package pricing

import (
	"github.com/shopspring/decimal"

	"tfcost/core/types"
)

// Aggregate sums the amounts of all non-failed estimates.
// Failed estimates contribute nothing. Each field is rounded to cents.
func Aggregate(estimates []types.CostEstimate) types.CostEstimate {
	hourly, monthly, yearly := decimal.Zero, decimal.Zero, decimal.Zero
	for _, e := range estimates {
		if e.Failed {
			continue
		}
		hourly = hourly.Add(e.Hourly)
		monthly = monthly.Add(e.Monthly)
		yearly = yearly.Add(e.Yearly)
	}

	return types.CostEstimate{
		Hourly:  types.Round2(hourly),
		Monthly: types.Round2(monthly),
		Yearly:  types.Round2(yearly),
	}
}

// AggregateResources sums the estimates of priced resources
func AggregateResources(costs []types.ResourceCost) types.CostEstimate {
	estimates := make([]types.CostEstimate, len(costs))
	for i, c := range costs {
		estimates[i] = c.Pricing
	}
	return Aggregate(estimates)
}
