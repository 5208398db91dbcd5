// Package serverless - AWS Lambda resource builder
// Only request pricing is estimated; duration (GB-second) pricing is not.
package serverless

import (
	"tfcost/core/scanner"
	"tfcost/core/types"
)

const (
	defaultMemoryMB   = 128
	defaultTimeoutSec = 3
)

// LambdaBuilder builds the normalized form of aws_lambda_function
type LambdaBuilder struct{}

// NewLambdaBuilder creates a Lambda builder
func NewLambdaBuilder() *LambdaBuilder {
	return &LambdaBuilder{}
}

// ResourceType returns the Terraform resource type
func (b *LambdaBuilder) ResourceType() string {
	return "aws_lambda_function"
}

// Kind returns the normalized kind
func (b *LambdaBuilder) Kind() types.Kind {
	return types.KindLambda
}

// Build extracts Lambda specs and pricing dimensions from a resource body
func (b *LambdaBuilder) Build(body string) (types.Specs, map[string]string) {
	memory := scanner.IntValue(body, "memory_size", defaultMemoryMB)
	if memory < 1 {
		memory = defaultMemoryMB
	}
	timeout := scanner.IntValue(body, "timeout", defaultTimeoutSec)
	if timeout < 1 {
		timeout = defaultTimeoutSec
	}

	specs := types.LambdaSpecs{
		Runtime:    scanner.StringValue(body, "runtime", ""),
		MemoryMB:   memory,
		TimeoutSec: timeout,
	}

	return specs, map[string]string{
		"group":            "AWS-Lambda-Requests",
		"groupDescription": "Invocation call for a Lambda function",
	}
}
