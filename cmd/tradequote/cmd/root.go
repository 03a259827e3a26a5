// Package cmd provides the CLI commands for tradequote.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradequote/internal/config"
	"tradequote/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tradequote",
	Short: "Price commercial quotes for imported products",
	Long: `tradequote computes priced commercial quotes for traded products,
covering purchase price, logistics, customs, financing, and markup.

Examples:
  tradequote price ./deal.quote.hcl
  tradequote price --format json ./deal.quote.hcl
  tradequote fields`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tradequote.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tradequote version 0.1.0")
	},
}
