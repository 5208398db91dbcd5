// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	apperrors "tfcost/internal/errors"
	"tfcost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" yaml:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing" yaml:"pricing"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server" yaml:"server"`

	// Output contains output configuration
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" yaml:"logging"`

	// AWS contains AWS-specific configuration
	AWS AWSConfig `json:"aws" yaml:"aws"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Concurrency bounds simultaneous catalog queries
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// QueryTimeoutSeconds bounds each catalog query (0 = none)
	QueryTimeoutSeconds int `json:"query_timeout_seconds" yaml:"query_timeout_seconds"`

	// CacheTTLSeconds keeps catalog responses for reuse (0 = no cache)
	CacheTTLSeconds int `json:"cache_ttl_seconds" yaml:"cache_ttl_seconds"`

	// CatalogFile overrides the embedded lookup tables
	CatalogFile string `json:"catalog_file,omitempty" yaml:"catalog_file,omitempty"`
}

// QueryTimeout returns the per-query timeout
func (p PricingConfig) QueryTimeout() time.Duration {
	return time.Duration(p.QueryTimeoutSeconds) * time.Second
}

// CacheTTL returns how long catalog responses are reused
func (p PricingConfig) CacheTTL() time.Duration {
	return time.Duration(p.CacheTTLSeconds) * time.Second
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" yaml:"addr"`

	// ShutdownTimeoutSeconds bounds graceful shutdown
	ShutdownTimeoutSeconds int `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds"`
}

// ShutdownTimeout returns the graceful shutdown bound
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format" yaml:"default_format"`

	// ShowDetails shows unit prices per resource
	ShowDetails bool `json:"show_details" yaml:"show_details"`
}

// AWSConfig contains AWS-specific settings
type AWSConfig struct {
	// DefaultRegion is the region priced when none is given
	DefaultRegion string `json:"default_region" yaml:"default_region"`

	// Profile is the AWS profile to use
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`

	// PricingEndpointRegion is where the Price List API is called
	PricingEndpointRegion string `json:"pricing_endpoint_region" yaml:"pricing_endpoint_region"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Concurrency:         8,
			QueryTimeoutSeconds: 30,
			CacheTTLSeconds:     3600,
		},
		Server: ServerConfig{
			Addr:                   ":8080",
			ShutdownTimeoutSeconds: 10,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
		AWS: AWSConfig{
			DefaultRegion:         "us-east-1",
			PricingEndpointRegion: "us-east-1",
		},
	}
}

// DefaultPath returns the per-user configuration path
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tfcost", "config.yaml")
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load loads configuration from a JSON or YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, apperrors.Config("failed to read config file", err).WithContext("path", path)
	}

	config := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, apperrors.Config("failed to decode config file", err).WithContext("path", path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks settings that would otherwise fail later
func (c *Config) Validate() error {
	if c.Pricing.Concurrency < 0 {
		return apperrors.Config("pricing.concurrency must not be negative", nil)
	}
	if c.Pricing.QueryTimeoutSeconds < 0 {
		return apperrors.Config("pricing.query_timeout_seconds must not be negative", nil)
	}
	if c.Pricing.CacheTTLSeconds < 0 {
		return apperrors.Config("pricing.cache_ttl_seconds must not be negative", nil)
	}
	switch c.Output.DefaultFormat {
	case "cli", "json":
	default:
		return apperrors.Config("output.default_format must be cli or json", nil).
			WithContext("value", c.Output.DefaultFormat)
	}
	return nil
}

// Save saves configuration to a file, as YAML or JSON by extension
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
