// Package database - AWS DynamoDB resource builder
package database

import (
	"tfcost/core/scanner"
	"tfcost/core/types"
)

// DynamoDBBuilder builds the normalized form of aws_dynamodb_table
type DynamoDBBuilder struct{}

// NewDynamoDBBuilder creates a DynamoDB builder
func NewDynamoDBBuilder() *DynamoDBBuilder {
	return &DynamoDBBuilder{}
}

// ResourceType returns the Terraform resource type
func (b *DynamoDBBuilder) ResourceType() string {
	return "aws_dynamodb_table"
}

// Kind returns the normalized kind
func (b *DynamoDBBuilder) Kind() types.Kind {
	return types.KindDynamoDB
}

// Build extracts DynamoDB specs and pricing dimensions from a resource body.
// Any billing mode other than PAY_PER_REQUEST is treated as provisioned.
func (b *DynamoDBBuilder) Build(body string) (types.Specs, map[string]string) {
	mode := types.BillingProvisioned
	if scanner.StringValue(body, "billing_mode", "") == string(types.BillingPayPerRequest) {
		mode = types.BillingPayPerRequest
	}

	specs := types.DynamoDBSpecs{
		BillingMode:   mode,
		ReadCapacity:  scanner.OptionalInt(body, "read_capacity"),
		WriteCapacity: scanner.OptionalInt(body, "write_capacity"),
	}

	dims := map[string]string{
		"group":            "DDB-Provisioned",
		"groupDescription": "DynamoDB Provisioned Capacity",
	}
	if mode == types.BillingPayPerRequest {
		dims["group"] = "DDB-OnDemand"
		dims["groupDescription"] = "DynamoDB On-Demand Capacity"
	}

	return specs, dims
}
