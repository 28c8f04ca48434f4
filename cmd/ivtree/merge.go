package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func mergeCmd(file *string) *cobra.Command {
	var equalsOnly bool

	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge overlapping (or exactly-equal) intervals and print the result",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := loadTree(*file)
			if err != nil {
				return err
			}
			reducer := func(a, b string) string { return strings.Join([]string{a, b}, ";") }
			if equalsOnly {
				t.MergeEquals(reducer)
			} else {
				t.MergeOverlaps(reducer)
			}
			for _, iv := range t.All() {
				fmt.Println(iv.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&equalsOnly, "equals-only", false, "merge only exactly-equal intervals")
	return cmd
}
