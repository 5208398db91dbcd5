// Package types - Normalized resource model
package types

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// NormalizedResource is a Terraform resource declaration reduced to the
// fields needed for pricing.
type NormalizedResource struct {
	// Kind is derived from ResourceType only
	Kind Kind `json:"type"`

	// Name is the Terraform resource name (second label)
	Name string `json:"name"`

	// ResourceType is the Terraform resource type (e.g. "aws_instance")
	ResourceType string `json:"resourceType"`

	// Specs holds the kind-specific specification
	Specs Specs `json:"specs"`

	// ServiceCode is the AWS Price List service code, never empty
	ServiceCode string `json:"serviceCode"`

	// PricingDimensions are catalog attribute hints for this resource
	PricingDimensions map[string]string `json:"pricingDimensions,omitempty"`
}

// DisplayType returns a short label for the resource.
// Recognized kinds use their kind name; others drop the provider prefix.
func (r NormalizedResource) DisplayType() string {
	if r.Kind != KindOther {
		return r.Kind.String()
	}
	return strings.TrimPrefix(r.ResourceType, "aws_")
}

// Address returns the Terraform address of the resource
func (r NormalizedResource) Address() string {
	return r.ResourceType + "." + r.Name
}

// Specs is the sealed sum type over kind-specific specifications.
// Only types in this package implement it.
type Specs interface {
	specKind() Kind
}

// Storage describes a root block device
type Storage struct {
	SizeGB     int    `json:"size"`
	VolumeType string `json:"type"`
}

// EC2Specs describes an aws_instance
type EC2Specs struct {
	InstanceType    string  `json:"instanceType,omitempty"`
	Count           int     `json:"count"`
	Storage         Storage `json:"storage"`
	AMI             string  `json:"ami,omitempty"`
	OperatingSystem string  `json:"operatingSystem"`
}

func (EC2Specs) specKind() Kind { return KindEC2 }

// RDSSpecs describes an aws_db_instance
type RDSSpecs struct {
	InstanceClass string `json:"instanceClass,omitempty"`
	Engine        string `json:"engine,omitempty"`
	StorageGB     int    `json:"allocatedStorage"`
	StorageType   string `json:"storageType"`
	MultiAZ       bool   `json:"multiAz"`
}

func (RDSSpecs) specKind() Kind { return KindRDS }

// LambdaSpecs describes an aws_lambda_function
type LambdaSpecs struct {
	Runtime    string `json:"runtime,omitempty"`
	MemoryMB   int    `json:"memorySize"`
	TimeoutSec int    `json:"timeout"`
}

func (LambdaSpecs) specKind() Kind { return KindLambda }

// BillingMode is the DynamoDB capacity billing mode
type BillingMode string

const (
	BillingProvisioned   BillingMode = "PROVISIONED"
	BillingPayPerRequest BillingMode = "PAY_PER_REQUEST"
)

// DynamoDBSpecs describes an aws_dynamodb_table
type DynamoDBSpecs struct {
	BillingMode   BillingMode `json:"billingMode"`
	ReadCapacity  *int        `json:"readCapacity"`
	WriteCapacity *int        `json:"writeCapacity"`
}

func (DynamoDBSpecs) specKind() Kind { return KindDynamoDB }

// S3Specs describes an aws_s3_bucket.
// Bucket declarations carry no usage, so storage is a fixed placeholder.
type S3Specs struct {
	EstimatedStorageGB int `json:"estimatedStorage"`
}

func (S3Specs) specKind() Kind { return KindS3 }

// OtherSpecs is the empty specification of unrecognized resources
type OtherSpecs struct{}

func (OtherSpecs) specKind() Kind { return KindOther }

// KindOf returns the kind a spec value belongs to
func KindOf(s Specs) Kind {
	if s == nil {
		return KindOther
	}
	return s.specKind()
}

// StorageSizeGB returns the storage size used for GB-month pricing.
// Precedence: root block device, allocated storage, estimated storage.
func (r NormalizedResource) StorageSizeGB() int {
	switch s := r.Specs.(type) {
	case EC2Specs:
		return s.Storage.SizeGB
	case RDSSpecs:
		return s.StorageGB
	case S3Specs:
		return s.EstimatedStorageGB
	default:
		return 0
	}
}

// Replicas returns how many identical copies the resource provisions
func (r NormalizedResource) Replicas() int {
	if s, ok := r.Specs.(EC2Specs); ok && s.Count > 0 {
		return s.Count
	}
	return 1
}

// UnmarshalJSON decodes the specs variant selected by the kind field
func (r *NormalizedResource) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind              Kind              `json:"type"`
		Name              string            `json:"name"`
		ResourceType      string            `json:"resourceType"`
		Specs             json.RawMessage   `json:"specs"`
		ServiceCode       string            `json:"serviceCode"`
		PricingDimensions map[string]string `json:"pricingDimensions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = NormalizedResource{
		Kind:              raw.Kind,
		Name:              raw.Name,
		ResourceType:      raw.ResourceType,
		ServiceCode:       raw.ServiceCode,
		PricingDimensions: raw.PricingDimensions,
	}

	var specs Specs
	switch r.Kind {
	case KindEC2:
		specs = &EC2Specs{}
	case KindRDS:
		specs = &RDSSpecs{}
	case KindS3:
		specs = &S3Specs{}
	case KindLambda:
		specs = &LambdaSpecs{}
	case KindDynamoDB:
		specs = &DynamoDBSpecs{}
	default:
		r.Kind = KindOther
		r.Specs = OtherSpecs{}
		return nil
	}
	if len(raw.Specs) > 0 && string(raw.Specs) != "null" {
		if err := json.Unmarshal(raw.Specs, specs); err != nil {
			return fmt.Errorf("decode %s specs: %w", r.Kind, err)
		}
	}
	r.Specs = deref(specs)
	return nil
}

func deref(s Specs) Specs {
	switch v := s.(type) {
	case *EC2Specs:
		return *v
	case *RDSSpecs:
		return *v
	case *S3Specs:
		return *v
	case *LambdaSpecs:
		return *v
	case *DynamoDBSpecs:
		return *v
	default:
		return s
	}
}
