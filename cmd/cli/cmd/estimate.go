// Package cmd - estimate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tfcost/core/output"
	"tfcost/internal/config"
	"tfcost/internal/logging"
)

var (
	outputFormat string
	showDetails  bool
	region       string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [file]",
	Short: "Estimate costs for a Terraform configuration",
	Long: `Parse Terraform resource declarations and price them against the AWS
Price List. Reads stdin when no file (or "-") is given.

AWS credentials are taken from the default credential chain.

Examples:
  tfcost estimate main.tf
  tfcost estimate --format json main.tf
  tfcost estimate --region eu-west-1 < main.tf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show unit prices per resource")
	estimateCmd.Flags().StringVarP(&region, "region", "r", "", "AWS region to price in")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format, err := output.ParseFormat(firstNonEmpty(outputFormat, cfg.Output.DefaultFormat))
	if err != nil {
		return err
	}

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	c, err := newComponents(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result := c.parser.Parse(text)
	if result.HasWarnings() {
		for _, w := range result.Warnings {
			logging.Sugar.Warn(output.FormatWarning(w))
		}
		logging.Sugar.Warnf("%d parse warnings", len(result.Warnings))
	}

	priceRegion := firstNonEmpty(region, cfg.AWS.DefaultRegion)
	report := c.estimator.Estimate(cmd.Context(), result.Resources, priceRegion)

	details := showDetails
	if !cmd.Flags().Changed("details") {
		details = cfg.Output.ShowDetails
	}
	if err := output.New(format, details).Render(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
