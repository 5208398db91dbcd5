// Package compute - AWS EC2 resource builder
// EC2 pricing is selected by:
// - Instance type
// - Operating system (inferred from the AMI id)
// - Tenancy and pre-installed software
// Root volume size feeds GB-month pricing.
package compute

import (
	"strings"

	"tfcost/core/scanner"
	"tfcost/core/types"
)

const (
	defaultRootVolumeGB   = 8
	defaultRootVolumeType = "gp2"
)

// EC2Builder builds the normalized form of aws_instance
type EC2Builder struct{}

// NewEC2Builder creates an EC2 builder
func NewEC2Builder() *EC2Builder {
	return &EC2Builder{}
}

// ResourceType returns the Terraform resource type
func (b *EC2Builder) ResourceType() string {
	return "aws_instance"
}

// Kind returns the normalized kind
func (b *EC2Builder) Kind() types.Kind {
	return types.KindEC2
}

// Build extracts EC2 specs and pricing dimensions from a resource body
func (b *EC2Builder) Build(body string) (types.Specs, map[string]string) {
	count := scanner.IntValue(body, "count", 1)
	if count < 1 {
		count = 1
	}

	storage := types.Storage{SizeGB: defaultRootVolumeGB, VolumeType: defaultRootVolumeType}
	if root, ok := scanner.ExtractBlock(body, "root_block_device"); ok {
		storage.SizeGB = scanner.IntValue(root, "volume_size", defaultRootVolumeGB)
		if storage.SizeGB < 0 {
			storage.SizeGB = defaultRootVolumeGB
		}
		storage.VolumeType = scanner.StringValue(root, "volume_type", defaultRootVolumeType)
	}

	ami := scanner.StringValue(body, "ami", "")
	specs := types.EC2Specs{
		InstanceType:    scanner.StringValue(body, "instance_type", ""),
		Count:           count,
		Storage:         storage,
		AMI:             ami,
		OperatingSystem: InferOS(ami),
	}

	dims := map[string]string{
		"operatingSystem": specs.OperatingSystem,
		"preInstalledSw":  "NA",
		"tenancy":         "Shared",
		"licenseModel":    "No License required",
	}
	if specs.InstanceType != "" {
		dims["instanceType"] = specs.InstanceType
	}

	return specs, dims
}

// InferOS guesses the operating system from an AMI id or name.
// Matching is case-sensitive and the first hit wins.
func InferOS(ami string) string {
	switch {
	case strings.Contains(ami, "windows"):
		return "Windows"
	case strings.Contains(ami, "rhel"):
		return "RHEL"
	case strings.Contains(ami, "suse"):
		return "SUSE"
	default:
		return "Linux"
	}
}
