// Package hcl - Literal value checks
// Unknown and computed values are never treated as literals.
package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// pricedAttributes are the attributes the text scanner reads for pricing
var pricedAttributes = map[string]bool{
	"instance_type":     true,
	"count":             true,
	"ami":               true,
	"instance_class":    true,
	"engine":            true,
	"allocated_storage": true,
	"storage_type":      true,
	"multi_az":          true,
	"runtime":           true,
	"memory_size":       true,
	"timeout":           true,
	"billing_mode":      true,
	"read_capacity":     true,
	"write_capacity":    true,
}

// literalReason reports why expr is not a primitive literal, or "" if it is.
// Expressions are evaluated without a context, so any reference fails.
func literalReason(expr hcl.Expression) string {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "references other values"
	}
	return valueReason(val)
}

func valueReason(val cty.Value) string {
	if !val.IsKnown() {
		return "is not known until apply"
	}
	if val.IsNull() {
		return "is null"
	}
	if !val.Type().IsPrimitiveType() {
		return "is a " + val.Type().FriendlyName() + ", not a single value"
	}
	return ""
}
