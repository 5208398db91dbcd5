package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tfcost/internal/errors"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pricing:
  concurrency: 2
aws:
  default_region: eu-west-1
output:
  default_format: json
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Pricing.Concurrency)
	assert.Equal(t, 30*time.Second, cfg.Pricing.QueryTimeout())
	assert.Equal(t, time.Hour, cfg.Pricing.CacheTTL())
	assert.Equal(t, "eu-west-1", cfg.AWS.DefaultRegion)
	assert.Equal(t, "us-east-1", cfg.AWS.PricingEndpointRegion)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server":{"addr":":9090","shutdown_timeout_seconds":3}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout())
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"bad.yaml":    "pricing: [",
		"neg.yaml":    "pricing:\n  concurrency: -1\n",
		"fmt.yaml":    "output:\n  default_format: xml\n",
		"timeout.yml": "pricing:\n  query_timeout_seconds: -5\n",
		"cache.yaml":  "pricing:\n  cache_ttl_seconds: -1\n",
		"bad.json":    "{",
	}

	dir := t.TempDir()
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.TypeConfig))
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"nested/config.yaml", "config.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := Default()
			cfg.AWS.Profile = "billing"
			cfg.Pricing.Concurrency = 4

			require.NoError(t, cfg.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestGlobalConfig(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	cfg := Default()
	cfg.Version = "test"
	Set(cfg)
	assert.Equal(t, "test", Get().Version)
}
