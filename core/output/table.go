package output

import (
	"fmt"
	"io"
	"strings"

	"tfcost/core/scanner"
	"tfcost/core/types"
)

const tableWidth = 73

// CLIFormatter writes a box-drawn summary table
type CLIFormatter struct {
	ShowDetails bool
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the report as a table
func (f *CLIFormatter) Render(w io.Writer, report *types.EstimateReport) error {
	p := &printer{w: w}

	p.rule("┌", "┐")
	p.center("COST ESTIMATION SUMMARY")
	p.center("region " + report.Region)
	p.rule("├", "┤")

	if len(report.Resources) == 0 {
		p.row("No resources found", "")
	}

	for _, rc := range report.Resources {
		label := fmt.Sprintf("%s (%s)", rc.Address, rc.ResourceType)
		est := rc.Pricing
		switch {
		case est.Failed:
			p.row(label, "n/a")
			p.detail("error: "+est.Reason, "")
		default:
			p.row(label, "$"+est.Monthly.StringFixed(2)+"/month")
			if f.ShowDetails && est.PricePerUnit != nil {
				p.detail(fmt.Sprintf("$%s per %s", est.PricePerUnit.String(), est.Unit), "$"+est.Hourly.StringFixed(2)+"/hr")
			}
			if est.Unpriced {
				p.detail("unit "+est.Unit+" is not priced; shown as zero", "")
			}
		}
	}

	p.rule("├", "┤")
	p.row("TOTAL HOURLY ESTIMATE", "$"+report.Total.Hourly.StringFixed(2))
	p.row("TOTAL MONTHLY ESTIMATE", "$"+report.Total.Monthly.StringFixed(2))
	p.row("TOTAL YEARLY ESTIMATE", "$"+report.Total.Yearly.StringFixed(2))
	p.rule("└", "┘")

	if failed := report.FailedCount(); failed > 0 {
		p.line(fmt.Sprintf("\n%d of %d resources could not be priced and are excluded from the total", failed, len(report.Resources)))
	}
	return p.err
}

// RenderParse writes the parse result as a table
func (f *CLIFormatter) RenderParse(w io.Writer, result *scanner.ParseResult) error {
	p := &printer{w: w}

	p.rule("┌", "┐")
	p.center("PARSED RESOURCES")
	p.rule("├", "┤")
	if len(result.Resources) == 0 {
		p.row("No resources found", "")
	}
	for _, r := range result.Resources {
		p.row(r.Address(), r.DisplayType())
		if f.ShowDetails {
			p.detail("service "+r.ServiceCode, "")
		}
	}
	p.rule("└", "┘")

	if len(result.ServiceCodes) > 0 {
		p.line("\nServices: " + strings.Join(result.ServiceCodes, ", "))
	}
	for _, warn := range result.Warnings {
		p.line("warning: " + FormatWarning(warn))
	}
	return p.err
}

// printer remembers the first write error
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) rule(left, right string) {
	p.line(left + strings.Repeat("─", tableWidth) + right)
}

func (p *printer) center(s string) {
	s = truncate(s, tableWidth)
	pad := tableWidth - len([]rune(s))
	p.line("│" + strings.Repeat(" ", pad/2) + s + strings.Repeat(" ", pad-pad/2) + "│")
}

func (p *printer) row(label, value string) {
	p.line(fmt.Sprintf("│ %-50s %20s │", truncate(label, 50), truncate(value, 20)))
}

func (p *printer) detail(label, value string) {
	p.line(fmt.Sprintf("│   └─ %-45s %20s │", truncate(label, 45), truncate(value, 20)))
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
