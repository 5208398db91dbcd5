// Package cmd - Pricing catalog inspection
package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	awspricing "tfcost/clouds/aws/pricing"
	"tfcost/core/pricing"
	"tfcost/core/scanner"
	"tfcost/core/types"
	"tfcost/internal/config"
	apperrors "tfcost/internal/errors"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Inspect pricing catalog queries",
	Long: `Inspect how resources are matched against the AWS Price List.

Examples:
  tfcost pricing filters main.tf
  tfcost pricing query AmazonEC2 "location=US East (N. Virginia)" instanceType=t3.micro`,
}

var pricingFiltersCmd = &cobra.Command{
	Use:   "filters [file]",
	Short: "Show the catalog filters each resource would be queried with",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPricingFilters,
}

var pricingQueryCmd = &cobra.Command{
	Use:   "query <service-code> [field=value...]",
	Short: "Query the Price List and print the raw documents",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPricingQuery,
}

var (
	pricingRegion     string
	pricingMaxResults int32
)

func init() {
	rootCmd.AddCommand(pricingCmd)
	pricingCmd.AddCommand(pricingFiltersCmd)
	pricingCmd.AddCommand(pricingQueryCmd)

	pricingFiltersCmd.Flags().StringVarP(&pricingRegion, "region", "r", "", "AWS region to price in")
	pricingQueryCmd.Flags().Int32Var(&pricingMaxResults, "max-results", 1, "maximum documents to return")
}

func runPricingFilters(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	c, err := newParserComponents(cfg)
	if err != nil {
		return err
	}

	filters := pricing.NewFilterBuilder(c.tables)
	priceRegion := firstNonEmpty(pricingRegion, cfg.AWS.DefaultRegion)
	return writeFilters(cmd.OutOrStdout(), c.parser.Parse(text), filters, priceRegion)
}

func writeFilters(w io.Writer, result *scanner.ParseResult, b *pricing.FilterBuilder, region string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOURCE\tSERVICE\tFILTERS")
	for _, r := range result.Resources {
		filters := b.Build(r, region)
		desc := "(not queryable)"
		if pricing.IsQueryable(filters) {
			desc = formatFilters(filters)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Address(), r.ServiceCode, desc)
	}
	return tw.Flush()
}

func formatFilters(filters []types.PricingFilter) string {
	parts := make([]string, len(filters))
	for i, f := range filters {
		parts[i] = f.Field + "=" + f.Value
	}
	return strings.Join(parts, ", ")
}

// parseFilterArgs parses field=value arguments
func parseFilterArgs(args []string) ([]types.PricingFilter, error) {
	filters := make([]types.PricingFilter, 0, len(args))
	for _, arg := range args {
		field, value, ok := strings.Cut(arg, "=")
		if !ok || field == "" {
			return nil, apperrors.Input(fmt.Sprintf("filter %q must be field=value", arg))
		}
		filters = append(filters, types.PricingFilter{Field: field, Value: value})
	}
	return filters, nil
}

func runPricingQuery(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	filters, err := parseFilterArgs(args[1:])
	if err != nil {
		return err
	}

	source, err := awspricing.NewSource(cmd.Context(), awspricing.Options{
		EndpointRegion: cfg.AWS.PricingEndpointRegion,
		Profile:        cfg.AWS.Profile,
		MaxResults:     pricingMaxResults,
	})
	if err != nil {
		return err
	}

	docs, err := source.Query(cmd.Context(), args[0], filters)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "no pricing data found")
		return nil
	}

	for _, doc := range docs {
		var v interface{}
		if err := json.Unmarshal([]byte(doc), &v); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), doc)
			continue
		}
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	}
	return nil
}
