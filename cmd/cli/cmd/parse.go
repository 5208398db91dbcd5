// Package cmd - parse command
package cmd

import (
	"github.com/spf13/cobra"

	"tfcost/core/output"
	"tfcost/internal/config"
)

var parseFormat string

// parseCmd prints the normalized resources without pricing them
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the normalized resources of a Terraform configuration",
	Long: `Parse Terraform resource declarations without contacting AWS.
Reads stdin when no file (or "-") is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		format, err := output.ParseFormat(firstNonEmpty(parseFormat, cfg.Output.DefaultFormat))
		if err != nil {
			return err
		}

		text, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		c, err := newParserComponents(cfg)
		if err != nil {
			return err
		}

		return output.New(format, cfg.Output.ShowDetails).RenderParse(cmd.OutOrStdout(), c.parser.Parse(text))
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format (cli, json)")
}
