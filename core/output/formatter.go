// Package output renders estimates for humans and machines.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"

	"tfcost/core/scanner"
	"tfcost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCLI, "table", "":
		return FormatCLI, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want cli or json)", s)
	}
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes an estimate report
	Render(w io.Writer, report *types.EstimateReport) error

	// RenderParse writes a parse result
	RenderParse(w io.Writer, result *scanner.ParseResult) error
}

// New returns the formatter for a format
func New(format Format, showDetails bool) Formatter {
	if format == FormatJSON {
		return &JSONFormatter{}
	}
	return &CLIFormatter{ShowDetails: showDetails}
}

// JSONFormatter writes indented JSON
type JSONFormatter struct{}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the report as JSON
func (f *JSONFormatter) Render(w io.Writer, report *types.EstimateReport) error {
	return writeIndented(w, report)
}

// RenderParse writes the parse result as JSON
func (f *JSONFormatter) RenderParse(w io.Writer, result *scanner.ParseResult) error {
	return writeIndented(w, result)
}

func writeIndented(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// FormatWarning renders a parse warning, prefixed with its line when known
func FormatWarning(w scanner.Warning) string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}
