package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"tfcost/adapters/terraform/hcl"
	"tfcost/clouds/aws"
	awspricing "tfcost/clouds/aws/pricing"
	"tfcost/core/catalog"
	"tfcost/core/pricing"
	"tfcost/core/scanner"
	"tfcost/internal/config"
	apperrors "tfcost/internal/errors"
	"tfcost/internal/logging"
)

// components holds the wired parser and estimator
type components struct {
	tables     *catalog.Tables
	classifier *catalog.Classifier
	parser     *scanner.Parser
	estimator  *pricing.Estimator
}

func loadTables(cfg *config.Config) (*catalog.Tables, error) {
	if cfg.Pricing.CatalogFile == "" {
		return catalog.Default(), nil
	}
	tables, err := catalog.LoadFile(cfg.Pricing.CatalogFile)
	if err != nil {
		return nil, apperrors.Config("failed to load catalog file", err)
	}
	return tables, nil
}

// newParserComponents wires parsing only
func newParserComponents(cfg *config.Config) (*components, error) {
	tables, err := loadTables(cfg)
	if err != nil {
		return nil, err
	}

	classifier := catalog.NewClassifier(tables)
	parser := scanner.NewParser(classifier, aws.NewNormalizer(tables)).
		WithInspector(hcl.NewInspector())

	return &components{
		tables:     tables,
		classifier: classifier,
		parser:     parser,
	}, nil
}

// newComponents wires parsing and pricing against the AWS Price List
func newComponents(ctx context.Context, cfg *config.Config) (*components, error) {
	c, err := newParserComponents(cfg)
	if err != nil {
		return nil, err
	}

	source, err := awspricing.NewSource(ctx, awspricing.Options{
		EndpointRegion: cfg.AWS.PricingEndpointRegion,
		Profile:        cfg.AWS.Profile,
		MaxResults:     1,
	})
	if err != nil {
		return nil, err
	}

	cached := pricing.NewCachingCatalog(source, pricing.CachePolicy{
		TTL:          cfg.Pricing.CacheTTL(),
		MaxEntries:   pricing.DefaultCachePolicy().MaxEntries,
		FetchTimeout: cfg.Pricing.QueryTimeout(),
	})
	c.estimator = pricing.NewEstimator(cached, c.tables, pricing.EstimatorConfig{
		Concurrency:  cfg.Pricing.Concurrency,
		QueryTimeout: cfg.Pricing.QueryTimeout(),
	}, logging.Named("pricing"))
	return c, nil
}

// readInput reads the configuration from a file, or stdin for "" and "-"
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", apperrors.Wrap(apperrors.TypeInput, "failed to read stdin", err)
		}
		return string(data), nil
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.Input(fmt.Sprintf("path does not exist: %s", path))
		}
		return "", apperrors.Wrap(apperrors.TypeInput, "failed to stat input", err)
	}
	if info.IsDir() {
		return "", apperrors.Input(fmt.Sprintf("%s is a directory; pass a single .tf file or use stdin", path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.Wrap(apperrors.TypeInput, "failed to read input", err)
	}
	logging.Debug("read configuration", zap.String("path", path), zap.Int("bytes", len(data)))
	return string(data), nil
}
