// Package storage - AWS S3 resource builder
// A bucket declaration carries no usage, so storage is a fixed estimate.
package storage

import "tfcost/core/types"

// EstimatedBucketStorageGB is the storage assumed for every bucket
const EstimatedBucketStorageGB = 100

// S3Builder builds the normalized form of aws_s3_bucket
type S3Builder struct{}

// NewS3Builder creates an S3 builder
func NewS3Builder() *S3Builder {
	return &S3Builder{}
}

// ResourceType returns the Terraform resource type
func (b *S3Builder) ResourceType() string {
	return "aws_s3_bucket"
}

// Kind returns the normalized kind
func (b *S3Builder) Kind() types.Kind {
	return types.KindS3
}

// Build returns S3 specs and pricing dimensions. The body is not inspected.
func (b *S3Builder) Build(string) (types.Specs, map[string]string) {
	return types.S3Specs{EstimatedStorageGB: EstimatedBucketStorageGB}, map[string]string{
		"storageClass": "Standard",
		"volumeType":   "Standard",
	}
}
