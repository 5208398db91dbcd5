package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awspricing "github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfcost/core/types"
	apperrors "tfcost/internal/errors"
)

type fakeClient struct {
	input *awspricing.GetProductsInput
	out   *awspricing.GetProductsOutput
	err   error
}

func (f *fakeClient) GetProducts(_ context.Context, params *awspricing.GetProductsInput, _ ...func(*awspricing.Options)) (*awspricing.GetProductsOutput, error) {
	f.input = params
	return f.out, f.err
}

func TestQueryBuildsRequest(t *testing.T) {
	client := &fakeClient{out: &awspricing.GetProductsOutput{PriceList: []string{`{"a":1}`}}}
	src := NewSourceWithClient(client, 0)

	docs, err := src.Query(context.Background(), "AmazonEC2", []types.PricingFilter{
		{Field: "location", Value: "US East (N. Virginia)"},
		{Field: "instanceType", Value: "t3.micro"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{`{"a":1}`}, docs)

	in := client.input
	require.NotNil(t, in)
	assert.Equal(t, "AmazonEC2", aws.ToString(in.ServiceCode))
	assert.Equal(t, "aws_v1", aws.ToString(in.FormatVersion))
	assert.Equal(t, int32(1), aws.ToInt32(in.MaxResults))
	require.Len(t, in.Filters, 2)
	for _, f := range in.Filters {
		assert.Equal(t, pricingtypes.FilterTypeTermMatch, f.Type)
	}
	assert.Equal(t, "location", aws.ToString(in.Filters[0].Field))
	assert.Equal(t, "t3.micro", aws.ToString(in.Filters[1].Value))
}

func TestQueryMaxResults(t *testing.T) {
	client := &fakeClient{out: &awspricing.GetProductsOutput{}}
	_, err := NewSourceWithClient(client, 5).Query(context.Background(), "AmazonS3", nil)

	require.NoError(t, err)
	assert.Equal(t, int32(5), aws.ToInt32(client.input.MaxResults))
	assert.Empty(t, client.input.Filters)
}

func TestQueryEmptyResult(t *testing.T) {
	client := &fakeClient{out: &awspricing.GetProductsOutput{}}
	docs, err := NewSourceWithClient(client, 1).Query(context.Background(), "AmazonEC2", nil)

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestQueryAPIError(t *testing.T) {
	client := &fakeClient{err: &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"}}
	_, err := NewSourceWithClient(client, 1).Query(context.Background(), "AmazonRDS", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypePricing))

	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "AmazonRDS", appErr.Context["serviceCode"])
	assert.Equal(t, "ThrottlingException", appErr.Context["code"])
}

func TestQueryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &fakeClient{err: context.Canceled}
	_, err := NewSourceWithClient(client, 1).Query(ctx, "AmazonEC2", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeNetwork))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "us-east-1", opts.EndpointRegion)
	assert.Equal(t, int32(1), opts.MaxResults)
}
