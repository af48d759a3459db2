package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aircon/core"
	"aircon/protocol"
)

var (
	globalVerbose bool
	globalNoColor bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aircon-host",
		Short:         "Host tools for the climate-control firmware",
		Version:       "telemetry protocol " + protocol.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if globalNoColor {
				color.NoColor = true
			}
			setupLogging(globalVerbose)
		},
	}

	root.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newSimCmd(),
		newMonitorCmd(),
	)

	return root
}

func setupLogging(verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: color.NoColor})

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Firmware debug lines go through the same logger.
	core.SetDebugWriter(func(s string) {
		log.Debug().Str("src", "core").Msg(s)
	})
	core.SetDebugEnabled(verbose)
}
