// Package cmd - fields command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tradequote/core/types"
)

// fieldsCmd prints the variable catalogue
var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List every quote variable with its level and label",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "FIELD\tLEVEL\tLABEL")
		for _, f := range types.AllFields() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", f, f.Classify(), f.Label())
		}
		tw.Flush()
	},
}
