package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// info: touch input diagnostics for the target device, mirroring what the
// tap command will decide.
func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show touch input diagnostics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rooted, err := appCtx.Device.Rooted(ctx)
			if err != nil {
				return err
			}
			size, err := appCtx.Device.Resolution(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("rooted:     %v\n", rooted)
			fmt.Printf("resolution: %s\n", size)

			path, ok, err := appCtx.Device.TouchDevice(ctx)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("touch:      not found")
			} else {
				r, err := appCtx.Device.TouchRange(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("touch:      %s\n", path)
				fmt.Printf("  x range:        0-%d\n", r.XMax)
				fmt.Printf("  y range:        0-%d\n", r.YMax)
				fmt.Printf("  pressure max:   %d\n", r.PressureMax)
				fmt.Printf("  touch major max: %d\n", r.TouchMajorMax)
			}

			method := "swipe"
			if rooted && ok {
				method = "sendevent"
			}
			fmt.Printf("tap method: %s\n", method)
			return nil
		},
	}
}
