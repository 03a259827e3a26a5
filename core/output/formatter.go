// Package output renders quote results for humans and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"tradequote/core/types"
)

// Format represents an output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the result
	Render(w io.Writer, result *types.QuoteResult) error
}

// New returns a formatter for the named format, defaulting to CLI
func New(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &jsonFormatter{}
	default:
		return &cliFormatter{}
	}
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

func (f *jsonFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

type cliFormatter struct{}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) Render(w io.Writer, result *types.QuoteResult) error {
	for _, product := range result.Products {
		fmt.Fprintf(w, "%s", product.ProductName)
		if product.Brand != "" {
			fmt.Fprintf(w, " (%s)", product.Brand)
		}
		fmt.Fprintf(w, " x %s\n", product.Quantity.String())

		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		for _, phase := range product.Phases() {
			fmt.Fprintf(tw, "  %2d\t%s\t%s %s\n",
				phase.Number, phase.Name,
				phase.Value.StringFixed(2), result.Currency)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Subtotal (purchase):\t%s %s\n", result.Subtotal.StringFixed(2), result.Currency)
	fmt.Fprintf(w, "Total (incl. VAT):\t%s %s\n", result.Total.StringFixed(2), result.Currency)
	return nil
}
