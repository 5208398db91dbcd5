package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"tfcost/core/types"
)

// priceListDocument is the subset of a Price List product document used here
type priceListDocument struct {
	Terms struct {
		OnDemand map[string]onDemandTerm `json:"OnDemand"`
	} `json:"terms"`
}

type onDemandTerm struct {
	SKU             string                    `json:"sku"`
	PriceDimensions map[string]priceDimension `json:"priceDimensions"`
}

type priceDimension struct {
	Unit         string            `json:"unit"`
	Description  string            `json:"description"`
	PricePerUnit map[string]string `json:"pricePerUnit"`
}

// Unit classes the calculator converts to an hourly rate
const (
	unitHours    = "hours"
	unitGBMonth  = "gb-month"
	unitRequests = "requests"
)

func unitClass(unit string) string {
	switch strings.ToLower(unit) {
	case "hrs", "hours", "hour", "hr":
		return unitHours
	case "gb-mo", "gb-month":
		return unitGBMonth
	case "requests", "request":
		return unitRequests
	default:
		return ""
	}
}

// ComputeCost converts one Price List document into a cost estimate for r.
// The first on-demand term and its first price dimension are used, where
// first means the smallest key. That is not document order: with several
// terms or dimensions the pick can differ from the first one in the raw JSON,
// but it is stable across runs. ComputeCost never fails: navigation problems
// produce a failed estimate.
func ComputeCost(doc string, r types.NormalizedResource) types.CostEstimate {
	var parsed priceListDocument
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return types.FailedEstimate(fmt.Sprintf("failed to decode price list: %v", err))
	}

	if len(parsed.Terms.OnDemand) == 0 {
		return types.FailedEstimate("no on-demand pricing terms in price list")
	}
	term := parsed.Terms.OnDemand[firstKey(parsed.Terms.OnDemand)]

	if len(term.PriceDimensions) == 0 {
		return types.FailedEstimate("no price dimensions in on-demand term")
	}
	dim := term.PriceDimensions[firstKey(term.PriceDimensions)]

	price, err := decimal.NewFromString(strings.TrimSpace(dim.PricePerUnit[string(types.CurrencyUSD)]))
	if err != nil {
		price = decimal.Zero
	}

	unit := dim.Unit
	if unit == "" {
		unit = "Hrs"
	}

	rate, priced := HourlyRate(price, unit, r)
	est := types.EstimateFromHourly(rate.Mul(decimal.NewFromInt(int64(r.Replicas()))))
	est.Unit = unit
	est.PricePerUnit = &price
	est.Unpriced = !priced
	return est
}

// HourlyRate converts a unit price into an hourly rate for one replica.
// It reports false for units it cannot convert; the rate is then zero.
func HourlyRate(price decimal.Decimal, unit string, r types.NormalizedResource) (decimal.Decimal, bool) {
	hoursPerMonth := decimal.NewFromInt(types.HoursPerMonth)

	switch unitClass(unit) {
	case unitHours:
		return price, true
	case unitGBMonth:
		size := decimal.NewFromInt(int64(r.StorageSizeGB()))
		return price.Mul(size).Div(hoursPerMonth), true
	case unitRequests:
		requests := decimal.NewFromInt(types.AssumedMonthlyRequests)
		return price.Mul(requests).Div(hoursPerMonth), true
	default:
		return decimal.Zero, false
	}
}

func firstKey[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0]
}
