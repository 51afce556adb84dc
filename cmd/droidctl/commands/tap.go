package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"droidctl/internal/domain"
)

// parsePoint converts two positional args into a Point.
func parsePoint(xs, ys string) (domain.Point, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid x coordinate %q", xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid y coordinate %q", ys)
	}
	p := domain.Point{X: x, Y: y}
	return p, p.Validate()
}

// tap <x> <y>: humanized tap, sendevent when the device allows it.
func tapCmd() *cobra.Command {
	var (
		method     string
		noHumanize bool
		delay      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "tap <x> <y>",
		Short: "Tap at the given coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			m, err := domain.ParseTapMethod(method)
			if err != nil {
				return err
			}
			return appCtx.Input.Tap(cmd.Context(), p, domain.TapOptions{
				Method:   m,
				Humanize: !noHumanize,
				Delay:    delay,
			})
		},
	}
	cmd.Flags().StringVar(&method, "method", string(domain.TapAuto), "tap delivery: auto, sendevent, swipe or input")
	cmd.Flags().BoolVar(&noHumanize, "no-humanize", false, "disable randomized offsets and timing")
	cmd.Flags().DurationVar(&delay, "delay", -1, "delay after the tap (default from config)")
	return cmd
}

// doubletap <x> <y>
func doubleTapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doubletap <x> <y>",
		Short: "Tap twice at the given coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			return appCtx.Input.DoubleTap(cmd.Context(), p)
		},
	}
}

// longpress <x> <y>
func longPressCmd() *cobra.Command {
	var duration time.Duration
	cmd := &cobra.Command{
		Use:   "longpress <x> <y>",
		Short: "Press and hold at the given coordinates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			return appCtx.Input.LongPress(cmd.Context(), p, duration)
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", 3*time.Second, "hold duration")
	return cmd
}
