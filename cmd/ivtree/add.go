package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// addCmd validates a candidate interval against the loaded tree and reports
// the resulting size; it does not rewrite the source file.
func addCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <begin> <end> <data>",
		Short: "Validate adding an interval to the loaded tree",
		Args:  cobra.ExactArgs(3),
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
			if err := t.AddInterval(begin, end, args[2]); err != nil {
				return err
			}
			fmt.Printf("ok, tree now holds %d intervals\n", t.Len())
			return nil
		},
	}
}
