package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func atCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "at <point>",
		Short: "List intervals containing a point",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			point, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad point %q: %w", args[0], err)
			}
			t, err := loadTree(*file)
			if err != nil {
				return err
			}
			for _, iv := range t.At(point) {
				fmt.Println(iv.String())
			}
			return nil
		},
	}
}
