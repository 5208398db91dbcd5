// Package scanner turns free-form Terraform text into normalized resources.
// NO pricing or cost logic belongs here.
package scanner

import "tfcost/core/types"

// Classifier maps a resource type to a pricing service code
type Classifier interface {
	Classify(resourceType string) string
}

// Normalizer builds the normalized record for one declaration
type Normalizer interface {
	Normalize(resourceType, name, body string) types.NormalizedResource
}

// Inspector performs an independent syntax check of the input text
type Inspector interface {
	Inspect(text string) Inspection
}

// Inspection is the outcome of a syntax check
type Inspection struct {
	// ResourceBlocks is the number of resource blocks the checker found
	ResourceBlocks int

	// Warnings are syntax diagnostics
	Warnings []Warning
}

// ParseResult contains the output of a parse
type ParseResult struct {
	// Resources are in declaration order
	Resources []types.NormalizedResource `json:"resources"`

	// ServiceCodes are the distinct service codes in first-seen order,
	// excluding the unknown sentinel
	ServiceCodes []string `json:"serviceCodes"`

	// Warnings are non-fatal issues encountered
	Warnings []Warning `json:"warnings,omitempty"`
}

// Warning represents a non-fatal scanning issue
type Warning struct {
	// Line is the line number, when known
	Line int `json:"line,omitempty"`

	// Message describes the warning
	Message string `json:"message"`

	// Code is a warning code for programmatic handling
	Code string `json:"code,omitempty"`
}

// Warning codes
const (
	WarnSyntax     = "SYNTAX"
	WarnTruncated  = "TRUNCATED"
	WarnNonLiteral = "NON_LITERAL"
)

// HasWarnings returns true if there are any warnings
func (r *ParseResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}
