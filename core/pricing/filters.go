package pricing

import (
	"tfcost/core/catalog"
	"tfcost/core/types"
)

// Price List attribute names used in filters
const (
	FieldLocation         = "location"
	FieldInstanceType     = "instanceType"
	FieldTenancy          = "tenancy"
	FieldOperatingSystem  = "operatingSystem"
	FieldPreInstalledSw   = "preInstalledSw"
	FieldCapacityStatus   = "capacitystatus"
	FieldDatabaseEngine   = "databaseEngine"
	FieldDeploymentOption = "deploymentOption"
	FieldGroup            = "group"
	FieldStorageClass     = "storageClass"
	FieldVolumeType       = "volumeType"
)

// FilterBuilder builds catalog query predicates for normalized resources
type FilterBuilder struct {
	tables *catalog.Tables
}

// NewFilterBuilder creates a filter builder over the given lookup tables
func NewFilterBuilder(tables *catalog.Tables) *FilterBuilder {
	return &FilterBuilder{tables: tables}
}

// Build returns the filters for a resource in a region. The location
// predicate is always first. A result holding only the location predicate
// means no meaningful query exists for the resource.
//
// EC2 queries always assume Linux, shared tenancy and no pre-installed
// software, whatever OS was inferred from the AMI.
func (b *FilterBuilder) Build(r types.NormalizedResource, region string) []types.PricingFilter {
	filters := []types.PricingFilter{
		{Field: FieldLocation, Value: b.tables.LocationName(region)},
	}

	switch s := r.Specs.(type) {
	case types.EC2Specs:
		if s.InstanceType != "" {
			filters = append(filters, types.PricingFilter{Field: FieldInstanceType, Value: s.InstanceType})
		}
		filters = append(filters,
			types.PricingFilter{Field: FieldTenancy, Value: "Shared"},
			types.PricingFilter{Field: FieldOperatingSystem, Value: "Linux"},
			types.PricingFilter{Field: FieldPreInstalledSw, Value: "NA"},
			types.PricingFilter{Field: FieldCapacityStatus, Value: "Used"},
		)

	case types.RDSSpecs:
		if s.InstanceClass != "" {
			filters = append(filters, types.PricingFilter{Field: FieldInstanceType, Value: s.InstanceClass})
		}
		if s.Engine != "" {
			filters = append(filters, types.PricingFilter{Field: FieldDatabaseEngine, Value: b.tables.EngineName(s.Engine)})
		}
		deployment := "Single-AZ"
		if s.MultiAZ {
			deployment = "Multi-AZ"
		}
		filters = append(filters, types.PricingFilter{Field: FieldDeploymentOption, Value: deployment})

	case types.LambdaSpecs:
		filters = append(filters, types.PricingFilter{Field: FieldGroup, Value: "AWS-Lambda-Requests"})

	case types.S3Specs:
		filters = append(filters,
			types.PricingFilter{Field: FieldStorageClass, Value: "General Purpose"},
			types.PricingFilter{Field: FieldVolumeType, Value: "Standard"},
		)

	case types.DynamoDBSpecs:
		filters = append(filters, types.PricingFilter{Field: FieldGroup, Value: "DDB-WriteUnits"})

	case types.OtherSpecs, nil:
		// location only
	}

	return filters
}

// IsQueryable reports whether filters carry more than the location predicate
func IsQueryable(filters []types.PricingFilter) bool {
	return len(filters) > 1
}
