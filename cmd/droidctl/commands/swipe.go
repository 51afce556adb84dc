package commands

import (
	"time"

	"github.com/spf13/cobra"
)

// swipe <x1> <y1> <x2> <y2>: drag between two points. Without --duration
// the speed is derived from the distance.
func swipeCmd() *cobra.Command {
	var duration time.Duration
	cmd := &cobra.Command{
		Use:   "swipe <x1> <y1> <x2> <y2>",
		Short: "Swipe between two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePoint(args[0], args[1])
			if err != nil {
				return err
			}
			to, err := parsePoint(args[2], args[3])
			if err != nil {
				return err
			}
			return appCtx.Input.Swipe(cmd.Context(), from, to, duration)
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", 0, "swipe duration (default: derived from distance)")
	return cmd
}
