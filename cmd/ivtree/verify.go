package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func verifyCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every structural invariant of the loaded tree",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			t, err := loadTree(*file)
			if err != nil {
				return err
			}
			if err := t.Verify(); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}
