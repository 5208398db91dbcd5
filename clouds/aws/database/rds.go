// Package database - AWS RDS resource builder
// RDS pricing is selected by:
// - Instance class
// - Engine (Price List vocabulary)
// - Deployment option (Single-AZ or Multi-AZ)
// Allocated storage feeds GB-month pricing.
package database

import (
	"tfcost/core/scanner"
	"tfcost/core/types"
)

// EngineNamer maps Terraform engine names to the Price List vocabulary
type EngineNamer interface {
	EngineName(engine string) string
}

// RDSBuilder builds the normalized form of aws_db_instance
type RDSBuilder struct {
	engines EngineNamer
}

// NewRDSBuilder creates an RDS builder
func NewRDSBuilder(engines EngineNamer) *RDSBuilder {
	return &RDSBuilder{engines: engines}
}

// ResourceType returns the Terraform resource type
func (b *RDSBuilder) ResourceType() string {
	return "aws_db_instance"
}

// Kind returns the normalized kind
func (b *RDSBuilder) Kind() types.Kind {
	return types.KindRDS
}

// Build extracts RDS specs and pricing dimensions from a resource body
func (b *RDSBuilder) Build(body string) (types.Specs, map[string]string) {
	storage := scanner.IntValue(body, "allocated_storage", 0)
	if storage < 0 {
		storage = 0
	}

	specs := types.RDSSpecs{
		InstanceClass: scanner.StringValue(body, "instance_class", ""),
		Engine:        scanner.StringValue(body, "engine", ""),
		StorageGB:     storage,
		StorageType:   scanner.StringValue(body, "storage_type", "gp2"),
		MultiAZ:       scanner.BoolValue(body, "multi_az"),
	}

	engine := "Unknown"
	if specs.Engine != "" {
		engine = b.engines.EngineName(specs.Engine)
	}

	dims := map[string]string{
		"databaseEngine":   engine,
		"deploymentOption": DeploymentOption(specs.MultiAZ),
		"licenseModel":     "No license required",
	}
	if specs.InstanceClass != "" {
		dims["instanceType"] = specs.InstanceClass
	}

	return specs, dims
}

// DeploymentOption returns the Price List deployment option
func DeploymentOption(multiAZ bool) string {
	if multiAZ {
		return "Multi-AZ"
	}
	return "Single-AZ"
}
