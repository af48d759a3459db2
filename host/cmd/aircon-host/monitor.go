package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aircon/core"
	"aircon/host/monitor"
	"aircon/host/serial"
)

func newMonitorCmd() *cobra.Command {
	var (
		device string
		baud   int
	)

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Print telemetry streamed by a connected board",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := serial.DefaultConfig(device)
			cfg.Baud = baud
			return runMonitor(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&device, "device", "d", "/dev/ttyACM0", "serial device path")
	cmd.Flags().IntVar(&baud, "baud", serial.DefaultBaud, "baud rate (ignored for USB CDC)")

	return cmd
}

func runMonitor(ctx context.Context, cfg *serial.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()

	log.Info().Str("device", port.Device()).Int("baud", cfg.Baud).Msg("connected")

	mon := monitor.New(log.Logger)
	mon.OnTelemetry = func(t core.Telemetry) { printCycle(os.Stdout, t) }
	mon.OnFault = func(reason string) {
		colorWarn.Fprintln(os.Stdout, "FAULT: "+reason)
	}

	err = mon.Run(ctx, port)
	s := mon.Stats()
	log.Info().
		Uint32("frames", s.Frames).
		Uint32("dropped", s.Dropped).
		Uint32("seq_gaps", s.SeqGaps).
		Uint32("faults", s.Faults).
		Msg("disconnected")
	return err
}
