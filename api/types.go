// Package api - Request and response types
package api

import (
	"github.com/goccy/go-json"

	"tfcost/core/scanner"
	"tfcost/core/types"
)

// PricingRequest is the body of POST /api/pricing.
// Resources stays raw so that a missing or non-array value can be rejected.
type PricingRequest struct {
	Resources json.RawMessage `json:"resources"`
	Region    string          `json:"region"`
}

// PricingResponse is the result of POST /api/pricing
type PricingResponse = types.EstimateReport

// ParseRequest is the body of POST /api/parse
type ParseRequest struct {
	Config string `json:"config"`
}

// ParseResponse is the result of POST /api/parse
type ParseResponse struct {
	Resources    []types.NormalizedResource `json:"resources"`
	ServiceCodes []string                   `json:"serviceCodes"`
	Warnings     []scanner.Warning          `json:"warnings,omitempty"`
}

// EstimateRequest is the body of POST /api/estimate: parse then price
type EstimateRequest struct {
	Config string `json:"config"`
	Region string `json:"region"`
}

// StatusResponse is the result of GET /api/pricing
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error     string `json:"error"`
	Type      string `json:"type,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
