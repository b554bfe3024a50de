package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const rootLong = `termfield renders fixed-width, column-aligned text for terminals.

Field widths ignore ANSI escape sequences, so colored values line up with
plain ones. A template is a YAML document naming a Go text/template and the
width and justification of each placeholder.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "termfield",
		Short:         "Render fixed-width terminal fields",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbose, err := cmd.Flags().GetBool("verbose")
			if err != nil {
				return err
			}
			configureLogging(cmd.ErrOrStderr(), verbose)
			return nil
		},
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newWidthCmd())

	// Hide the default completion command
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func configureLogging(w io.Writer, verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}).
		Level(level).
		With().Timestamp().Logger()
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		printError(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, color.New(color.FgRed, color.Bold).Sprint("Error: ")+err.Error())
}
