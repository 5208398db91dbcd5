// Package aws turns Terraform resource declarations into normalized,
// priceable AWS resources.
package aws

import (
	"tfcost/core/catalog"
	"tfcost/core/types"
)

// Builder produces the kind-specific part of a normalized resource
type Builder interface {
	// ResourceType returns the Terraform resource type handled
	ResourceType() string

	// Kind returns the normalized kind produced
	Kind() types.Kind

	// Build extracts specs and pricing dimensions from a resource body.
	// It must not fail: missing or malformed values take defaults.
	Build(body string) (types.Specs, map[string]string)
}

// Normalizer dispatches resource declarations to their builders
type Normalizer struct {
	classifier *catalog.Classifier
	builders   map[string]Builder
}

// NewNormalizer creates a normalizer over the given lookup tables
func NewNormalizer(tables *catalog.Tables) *Normalizer {
	return NewNormalizerWithBuilders(catalog.NewClassifier(tables), Builders(tables)...)
}

// NewNormalizerWithBuilders creates a normalizer with an explicit builder set
func NewNormalizerWithBuilders(classifier *catalog.Classifier, builders ...Builder) *Normalizer {
	n := &Normalizer{
		classifier: classifier,
		builders:   make(map[string]Builder, len(builders)),
	}
	for _, b := range builders {
		n.builders[b.ResourceType()] = b
	}
	return n
}

// Normalize builds the normalized record for one declaration.
// Unrecognized types become Other-kind records with empty specs.
func (n *Normalizer) Normalize(resourceType, name, body string) types.NormalizedResource {
	res := types.NormalizedResource{
		Kind:         types.KindOther,
		Name:         name,
		ResourceType: resourceType,
		Specs:        types.OtherSpecs{},
		ServiceCode:  n.classifier.Classify(resourceType),
	}

	b, ok := n.builders[resourceType]
	if !ok {
		return res
	}

	specs, dims := b.Build(body)
	if types.KindOf(specs) != b.Kind() {
		// builder returned a foreign spec variant
		return res
	}

	res.Kind = b.Kind()
	res.Specs = specs
	res.PricingDimensions = dims
	return res
}
