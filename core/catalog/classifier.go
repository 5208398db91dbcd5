// Package catalog - Resource type classification
package catalog

import "tfcost/core/types"

// Classifier maps Terraform resource types to Price List service codes
type Classifier struct {
	codes map[string]string
}

// NewClassifier creates a classifier over the given tables
func NewClassifier(t *Tables) *Classifier {
	return &Classifier{codes: t.ServiceCodes}
}

// Classify returns the service code for a resource type, or the
// "Unknown" sentinel. It never returns an empty string.
func (c *Classifier) Classify(resourceType string) string {
	if code, ok := c.codes[resourceType]; ok && code != "" {
		return code
	}
	return types.UnknownServiceCode
}
