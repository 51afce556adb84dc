package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"droidctl/internal/app"
	"droidctl/internal/domain"
)

// devices: list connected devices; --probe gathers resolution and root
// status per device concurrently.
func devicesCmd() *cobra.Command {
	var probe bool
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List connected devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devs, err := appCtx.Device.Devices(cmd.Context())
			if err != nil {
				return err
			}
			if len(devs) == 0 {
				fmt.Println("no devices attached")
				return nil
			}
			if !probe {
				for _, d := range devs {
					fmt.Printf("%-24s %-12s %s\n", d.Serial, d.State, d.Model)
				}
				return nil
			}

			probes := make([]domain.DeviceProbe, len(devs))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, d := range devs {
				i, d := i, d
				probes[i].Device = d
				if d.State != "device" {
					continue
				}
				g.Go(func() error {
					sub := app.New(app.Config{Settings: cfg, Serial: d.Serial, Log: logger})
					res, err := sub.Device.Resolution(ctx)
					if err != nil {
						return fmt.Errorf("probe %s: %w", d.Serial, err)
					}
					rooted, err := sub.Device.Rooted(ctx)
					if err != nil {
						return fmt.Errorf("probe %s: %w", d.Serial, err)
					}
					probes[i].Resolution = res
					probes[i].Rooted = rooted
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			for _, p := range probes {
				if p.Device.State != "device" {
					fmt.Printf("%-24s %-12s %s\n", p.Device.Serial, p.Device.State, p.Device.Model)
					continue
				}
				root := "no"
				if p.Rooted {
					root = "yes"
				}
				fmt.Printf("%-24s %-12s %-20s %-10s root:%s\n",
					p.Device.Serial, p.Device.State, p.Device.Model, p.Resolution, root)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&probe, "probe", false, "probe resolution and root status per device")
	return cmd
}
