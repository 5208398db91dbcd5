// Package catalog - Static lookup tables for the AWS Price List.
// The tables are data, not logic: they are loaded from YAML (embedded by
// default) and handed to the components that need them at construction.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/aws.yaml
var embeddedAWS []byte

// Tables holds the immutable lookup data used by parsing and pricing
type Tables struct {
	// ServiceCodes maps Terraform resource types to Price List service codes
	ServiceCodes map[string]string `yaml:"service_codes"`

	// Regions maps region codes to Price List location names
	Regions map[string]string `yaml:"regions"`

	// DefaultRegion is used when a region code is not in Regions
	DefaultRegion string `yaml:"default_region"`

	// RDSEngines maps Terraform engine names to Price List databaseEngine values
	RDSEngines map[string]string `yaml:"rds_engines"`
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the embedded AWS tables. It panics if the embedded data is
// malformed, which can only happen at build time.
func Default() *Tables {
	defaultOnce.Do(func() {
		t, err := Parse(embeddedAWS)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded tables are invalid: %v", err))
		}
		defaultTables = t
	})
	return defaultTables
}

// Parse decodes tables from YAML
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode catalog tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile reads tables from path and fills any missing table from the
// embedded defaults.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, err)
	}

	def := Default()
	if len(t.ServiceCodes) == 0 {
		t.ServiceCodes = def.ServiceCodes
	}
	if len(t.Regions) == 0 {
		t.Regions = def.Regions
	}
	if t.DefaultRegion == "" {
		t.DefaultRegion = def.DefaultRegion
	}
	if len(t.RDSEngines) == 0 {
		t.RDSEngines = def.RDSEngines
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tables) validate() error {
	if len(t.ServiceCodes) == 0 {
		return fmt.Errorf("catalog tables: service_codes is empty")
	}
	if _, ok := t.Regions[t.DefaultRegion]; !ok {
		return fmt.Errorf("catalog tables: default_region %q has no location name", t.DefaultRegion)
	}
	return nil
}

// LocationName returns the Price List location for a region code.
// Unknown codes resolve to the default region's location.
func (t *Tables) LocationName(region string) string {
	if loc, ok := t.Regions[region]; ok {
		return loc
	}
	return t.Regions[t.DefaultRegion]
}

// EngineName maps a Terraform engine name to the Price List vocabulary.
// Unknown engines pass through unchanged.
func (t *Tables) EngineName(engine string) string {
	if name, ok := t.RDSEngines[engine]; ok {
		return name
	}
	return engine
}
