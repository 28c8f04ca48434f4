package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func overlapCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "overlap <begin> <end>",
		Short: "List intervals overlapping [begin, end)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			begin, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("bad begin %q: %w", args[0], err)
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad end %q: %w", args[1], err)
			}
			t, err := loadTree(*file)
			if err != nil {
				return err
			}
			for _, iv := range t.Overlap(begin, end) {
				fmt.Println(iv.String())
			}
			return nil
		},
	}
}
