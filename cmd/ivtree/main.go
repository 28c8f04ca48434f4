// Command ivtree is a thin CLI surface over the intervaltree facade: it
// loads a CSV of (begin, end, data) rows and runs a single query or
// restructuring operation against the resulting tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cmd := rootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "ivtree",
		Short: "Query and restructure an interval tree loaded from a CSV file",
	}
	cmd.PersistentFlags().StringVarP(&file, "file", "f", "", "CSV file of begin,end,data rows (required)")
	_ = cmd.MarkPersistentFlagRequired("file")

	cmd.AddCommand(
		addCmd(&file),
		atCmd(&file),
		overlapCmd(&file),
		mergeCmd(&file),
		scoreCmd(&file),
		verifyCmd(&file),
	)
	return cmd
}
