// Package hcl provides a Terraform HCL syntax check that runs alongside the
// flat text scanner and reports what the scanner cannot see.
package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"tfcost/core/scanner"
)

// Inspector implements scanner.Inspector using the HCL parser
type Inspector struct {
	filename string
}

// NewInspector creates a new HCL inspector
func NewInspector() *Inspector {
	return &Inspector{filename: "main.tf"}
}

// Inspect parses text as HCL. It counts resource blocks and reports syntax
// errors and non-literal priced attributes as warnings.
func (i *Inspector) Inspect(text string) scanner.Inspection {
	var result scanner.Inspection

	// hclparse.Parser caches files by name; a fresh parser keeps calls independent
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL([]byte(text), i.filename)
	if diags.HasErrors() {
		result.Warnings = append(result.Warnings, diagnosticWarnings(diags)...)
	}
	if file == nil || file.Body == nil {
		return result
	}

	content, _, _ := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "resource", LabelNames: []string{"type", "name"}},
		},
	})
	if content == nil {
		return result
	}

	for _, block := range content.Blocks {
		result.ResourceBlocks++
		result.Warnings = append(result.Warnings, i.attributeWarnings(block)...)
	}

	return result
}

func (i *Inspector) attributeWarnings(block *hcl.Block) []scanner.Warning {
	if len(block.Labels) < 2 {
		return nil
	}
	// nested blocks produce diagnostics, but the attributes found are still returned
	attrs, _ := block.Body.JustAttributes()

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if pricedAttributes[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var warnings []scanner.Warning
	address := block.Labels[0] + "." + block.Labels[1]
	for _, name := range names {
		attr := attrs[name]
		if reason := literalReason(attr.Expr); reason != "" {
			warnings = append(warnings, scanner.Warning{
				Line:    attr.Range.Start.Line,
				Code:    scanner.WarnNonLiteral,
				Message: fmt.Sprintf("%s: %s %s; the raw expression text is used", address, name, reason),
			})
		}
	}
	return warnings
}

func diagnosticWarnings(diags hcl.Diagnostics) []scanner.Warning {
	var warnings []scanner.Warning
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		warnings = append(warnings, scanner.Warning{
			Line:    line,
			Code:    scanner.WarnSyntax,
			Message: diag.Summary + ": " + diag.Detail,
		})
	}
	return warnings
}
