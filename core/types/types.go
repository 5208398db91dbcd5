// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Kind classifies a normalized resource by the pricing model it follows
type Kind string

const (
	KindEC2      Kind = "EC2"
	KindRDS      Kind = "RDS"
	KindS3       Kind = "S3"
	KindLambda   Kind = "Lambda"
	KindDynamoDB Kind = "DynamoDB"
	KindOther    Kind = "Other"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// UnknownServiceCode is the sentinel service code for unmapped resource types
const UnknownServiceCode = "Unknown"

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Billing constants shared by the calculator and aggregator
const (
	// HoursPerMonth is the average number of hours in a month
	HoursPerMonth = 730

	// HoursPerYear is the number of hours in a 365-day year
	HoursPerYear = 8760

	// AssumedMonthlyRequests is the request volume assumed for request-priced services
	AssumedMonthlyRequests = 1000000
)
