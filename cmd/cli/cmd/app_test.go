package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfcost/internal/config"
	apperrors "tfcost/internal/errors"
)

func TestReadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tf")
	require.NoError(t, os.WriteFile(path, []byte(`resource "aws_s3_bucket" "b" {}`), 0o644))

	got, err := readInput(strings.NewReader("ignored"), []string{path})
	require.NoError(t, err)
	assert.Contains(t, got, "aws_s3_bucket")

	got, err = readInput(strings.NewReader("from stdin"), nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	got, err = readInput(strings.NewReader("dash"), []string{"-"})
	require.NoError(t, err)
	assert.Equal(t, "dash", got)

	_, err = readInput(nil, []string{dir})
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))

	_, err = readInput(nil, []string{filepath.Join(dir, "absent.tf")})
	assert.True(t, apperrors.IsType(err, apperrors.TypeInput))
}

func TestParseCommandOffline(t *testing.T) {
	orig := config.Get()
	t.Cleanup(func() { config.Set(orig) })
	config.Set(config.Default())

	dir := t.TempDir()
	path := filepath.Join(dir, "main.tf")
	require.NoError(t, os.WriteFile(path, []byte(`
resource "aws_instance" "web" {
  instance_type = "t3.micro"
}
resource "aws_nat_gateway" "nat" {
  subnet_id = "subnet-1"
}
`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"parse", "--config", filepath.Join(dir, "none.yaml"), "--format", "json", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"resourceType": "aws_instance"`)
	assert.Contains(t, out.String(), `"AmazonVPC"`)
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestLoadTablesFromFile(t *testing.T) {
	cfg := config.Default()
	cfg.Pricing.CatalogFile = filepath.Join(t.TempDir(), "absent.yaml")
	_, err := loadTables(cfg)
	assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))

	cfg.Pricing.CatalogFile = ""
	tables, err := loadTables(cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tables.ServiceCodes)
}
