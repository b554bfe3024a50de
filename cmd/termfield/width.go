package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/termfield"
)

func newWidthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "width TEXT...",
		Short: "Print the visible width of each argument",
		Long:  "Print the visible width of each argument on its own line. ANSI escape sequences do not count.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runWidth,
	}
	cmd.Flags().Bool("cells", false, "Measure display cells instead of characters")
	return cmd
}

func runWidth(cmd *cobra.Command, args []string) error {
	cells, err := cmd.Flags().GetBool("cells")
	if err != nil {
		return err
	}
	m := termfield.Runes
	if cells {
		m = termfield.Cells
	}
	for _, arg := range args {
		w := termfield.WidthWith(m, termfield.Text(arg))
		log.Debug().Int("bytes", len(arg)).Int("width", w).Msg("Measured")
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), w); err != nil {
			return err
		}
	}
	return nil
}
