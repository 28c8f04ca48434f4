package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func scoreCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Print the tree's diagnostic tightness score, in [0, 1]",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := loadTree(*file)
			if err != nil {
				return err
			}
			fmt.Printf("%.4f\n", t.Score())
			return nil
		},
	}
}
