package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfcost/core/pricing"
	"tfcost/core/types"
	"tfcost/internal/config"
)

func TestParseFilterArgs(t *testing.T) {
	got, err := parseFilterArgs([]string{"location=US East (N. Virginia)", "instanceType=t3.micro", "empty="})
	require.NoError(t, err)
	assert.Equal(t, []types.PricingFilter{
		{Field: "location", Value: "US East (N. Virginia)"},
		{Field: "instanceType", Value: "t3.micro"},
		{Field: "empty", Value: ""},
	}, got)

	_, err = parseFilterArgs([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseFilterArgs([]string{"=x"})
	assert.Error(t, err)
}

func TestWriteFilters(t *testing.T) {
	c, err := newParserComponents(config.Default())
	require.NoError(t, err)

	result := c.parser.Parse(`
resource "aws_instance" "web" {
  instance_type = "t3.micro"
}
resource "aws_nat_gateway" "nat" {
  subnet_id = "subnet-1"
}
`)

	var buf bytes.Buffer
	require.NoError(t, writeFilters(&buf, result, pricing.NewFilterBuilder(c.tables), "eu-west-1"))

	out := buf.String()
	assert.Contains(t, out, "aws_instance.web")
	assert.Contains(t, out, "location=EU (Ireland), instanceType=t3.micro")
	assert.Contains(t, out, "aws_nat_gateway.nat")
	assert.Contains(t, out, "(not queryable)")
}
