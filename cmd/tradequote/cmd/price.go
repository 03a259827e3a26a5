// Package cmd - price command
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradequote/adapters/quotefile"
	settingsstore "tradequote/adapters/settings"
	"tradequote/core/engine"
	"tradequote/core/output"
	"tradequote/core/settings"
	"tradequote/internal/config"
)

var outputFormat string

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <quote-file>",
	Short: "Compute a priced quote from a quote definition file",
	Long: `Parse a quote definition written in HCL and compute the full
per-product cost and price breakdown plus quote totals.

Examples:
  tradequote price ./deal.quote.hcl
  tradequote price --format json ./deal.quote.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
}

func runPrice(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	file, err := quotefile.NewScanner().ScanFile(args[0])
	if err != nil {
		return err
	}

	eng := engine.New(buildProvider(cfg, file), engine.WithWorkers(cfg.Workers))

	result, err := eng.Calculate(ctx, file.Request())
	if err != nil {
		var verr *engine.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "The quote cannot be calculated:")
			for _, v := range verr.Violations {
				fmt.Fprintf(os.Stderr, "  - %s\n", v.Message)
			}
			return err
		}
		return err
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.Format)
	}
	return output.New(format).Render(os.Stdout, result)
}

// buildProvider picks the admin-settings source: inline settings block
// first, then the configured settings file, then defaults.
func buildProvider(cfg config.Config, file *quotefile.QuoteFile) *settings.Provider {
	if file.Rates != nil {
		store := settingsstore.NewStatic()
		store.Set(file.OrganizationID, *file.Rates)
		return settings.NewProvider(store)
	}
	if cfg.SettingsFile != "" {
		return settings.NewProvider(settingsstore.NewFile(cfg.SettingsFile))
	}
	return settings.NewProvider(nil)
}
