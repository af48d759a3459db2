package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aircon/core"
	"aircon/host/monitor"
	"aircon/host/sim"
)

type simOptions struct {
	cycles    int
	pot       []uint
	light     []uint
	temp      []int
	joystick  []string
	realtime  bool
	showLight bool
	wire      bool
	screen    bool
}

func newSimCmd() *cobra.Command {
	opts := &simOptions{}

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the control loop on a simulated board",
		Long: `Run the control loop against scripted sensor readings.

Every list flag gives one reading per cycle; the last reading repeats.
Joystick samples are directions joined with '+', e.g. "center", "left+up", "none".`,
		Example: `  aircon-host sim --cycles 5 --pot 2048 --light 800,800,300 --temp 235
  aircon-host sim --cycles 4 --joystick center,none,left,down --screen`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSim(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.cycles, "cycles", "n", 10, "number of cycles to run (0 = until interrupted)")
	f.UintSliceVar(&opts.pot, "pot", []uint{2048}, "potentiometer readings (0-4095)")
	f.UintSliceVar(&opts.light, "light", []uint{800}, "light sensor readings")
	f.IntSliceVar(&opts.temp, "temp", []int{200}, "temperature readings in tenths of a degree")
	f.StringSliceVar(&opts.joystick, "joystick", nil, "joystick samples")
	f.BoolVar(&opts.realtime, "realtime", false, "pace cycles in wall-clock time")
	f.BoolVar(&opts.showLight, "show-light", false, "show the light reading on screen")
	f.BoolVar(&opts.wire, "wire", false, "route telemetry through the framed wire format")
	f.BoolVar(&opts.screen, "screen", false, "print the simulated screen after the run")

	return cmd
}

func runSim(ctx context.Context, opts *simOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	joy, err := parseJoystick(opts.joystick)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.ShowLight = opts.showLight

	board := sim.NewBoard(cfg)
	board.Pot.Set(convert[uint, uint16](opts.pot)...)
	board.Light.Set(convert[uint, uint32](opts.light)...)
	board.Temp.Set(convert[int, int32](opts.temp)...)
	if len(joy) > 0 {
		board.Joy.Set(joy...)
	}
	if opts.realtime {
		board.Sleeper = sim.WallSleeper{Clock: board.Clock}
	}

	ctrl, err := core.NewController(board.Core(), cfg)
	if err != nil {
		return err
	}

	out := os.Stdout
	if opts.wire {
		mon := monitor.New(log.Logger)
		mon.OnTelemetry = func(t core.Telemetry) { printCycle(out, t) }
		ctrl.SetTelemetrySink(core.NewFrameWriter(mon))
	} else {
		ctrl.SetTelemetrySink(sinkFunc(func(t core.Telemetry) { printCycle(out, t) }))
	}

	log.Info().Int("cycles", opts.cycles).Bool("realtime", opts.realtime).Msg("starting simulation")

	n := 0
	ctrl.RunUntil(func() bool {
		if ctx.Err() != nil {
			return true
		}
		if opts.cycles > 0 && n >= opts.cycles {
			return true
		}
		n++
		return false
	})

	if opts.screen {
		fmt.Fprintln(out)
		fmt.Fprint(out, board.Frame.String())
	}
	printStats(out, ctrl.Stats())
	return nil
}

type sinkFunc func(t core.Telemetry)

func (f sinkFunc) Publish(t core.Telemetry) { f(t) }

func convert[From, To uint | int | uint16 | uint32 | int32](in []From) []To {
	out := make([]To, len(in))
	for i, v := range in {
		out[i] = To(v)
	}
	return out
}

// parseJoystick turns samples like "left+up" into masks.
func parseJoystick(samples []string) ([]core.JoystickMask, error) {
	dirs := map[string]core.JoystickMask{
		"none":   0,
		"center": core.JoyCenter,
		"up":     core.JoyUp,
		"down":   core.JoyDown,
		"left":   core.JoyLeft,
		"right":  core.JoyRight,
	}

	out := make([]core.JoystickMask, 0, len(samples))
	for _, s := range samples {
		var m core.JoystickMask
		for _, name := range strings.Split(strings.ToLower(strings.TrimSpace(s)), "+") {
			d, ok := dirs[name]
			if !ok {
				return nil, fmt.Errorf("unknown joystick direction %q", name)
			}
			m |= d
		}
		out = append(out, m)
	}
	return out, nil
}
