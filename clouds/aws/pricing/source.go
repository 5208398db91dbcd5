// Package pricing provides the AWS Price List catalog.
// Queries go to the Price List Query API (GetProducts), which is only
// served from a few regions regardless of the region being priced.
package pricing

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awspricing "github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/aws/smithy-go"

	"tfcost/core/types"
	apperrors "tfcost/internal/errors"
)

// DefaultEndpointRegion is the region the Price List API is called in
const DefaultEndpointRegion = "us-east-1"

// GetProductsAPI is the subset of the SDK client used by Source
type GetProductsAPI interface {
	GetProducts(ctx context.Context, params *awspricing.GetProductsInput, optFns ...func(*awspricing.Options)) (*awspricing.GetProductsOutput, error)
}

// Options contains AWS client settings
type Options struct {
	// EndpointRegion is where the Price List API is called
	EndpointRegion string

	// Profile is an optional shared config profile
	Profile string

	// MaxResults bounds documents per query
	MaxResults int32
}

// DefaultOptions returns sensible defaults
func DefaultOptions() Options {
	return Options{
		EndpointRegion: DefaultEndpointRegion,
		MaxResults:     1,
	}
}

// Source fetches price-list documents from the AWS Price List API
type Source struct {
	client     GetProductsAPI
	maxResults int32
}

// NewSource creates a source using the default AWS credential chain
func NewSource(ctx context.Context, opts Options) (*Source, error) {
	if opts.EndpointRegion == "" {
		opts.EndpointRegion = DefaultEndpointRegion
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.EndpointRegion),
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(opts.Profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, apperrors.Config("failed to load AWS config", err)
	}

	return NewSourceWithClient(awspricing.NewFromConfig(cfg), opts.MaxResults), nil
}

// NewSourceWithClient creates a source over an existing client
func NewSourceWithClient(client GetProductsAPI, maxResults int32) *Source {
	if maxResults <= 0 {
		maxResults = 1
	}
	return &Source{
		client:     client,
		maxResults: maxResults,
	}
}

// Query returns the price-list documents matching every filter
func (s *Source) Query(ctx context.Context, serviceCode string, filters []types.PricingFilter) ([]string, error) {
	input := &awspricing.GetProductsInput{
		ServiceCode:   aws.String(serviceCode),
		Filters:       toSDKFilters(filters),
		FormatVersion: aws.String("aws_v1"),
		MaxResults:    aws.Int32(s.maxResults),
	}

	out, err := s.client.GetProducts(ctx, input)
	if err != nil {
		return nil, classify(ctx, serviceCode, err)
	}
	return out.PriceList, nil
}

func toSDKFilters(filters []types.PricingFilter) []pricingtypes.Filter {
	out := make([]pricingtypes.Filter, 0, len(filters))
	for _, f := range filters {
		out = append(out, pricingtypes.Filter{
			Type:  pricingtypes.FilterTypeTermMatch,
			Field: aws.String(f.Field),
			Value: aws.String(f.Value),
		})
	}
	return out
}

func classify(ctx context.Context, serviceCode string, err error) error {
	if ctx.Err() != nil {
		return apperrors.Network(fmt.Sprintf("GetProducts for %s did not complete", serviceCode), err)
	}

	e := apperrors.Pricing(fmt.Sprintf("GetProducts for %s failed", serviceCode), err).
		WithContext("serviceCode", serviceCode)

	var apiErr smithy.APIError
	if stderrors.As(err, &apiErr) {
		e.WithContext("code", apiErr.ErrorCode())
	}
	return e
}
