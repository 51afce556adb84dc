package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// screenshot: capture the screen as PNG, to a file or stdout.
func screenshotCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Capture the screen as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return appCtx.Screen.Screenshot(cmd.Context(), os.Stdout)
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := appCtx.Screen.Screenshot(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Printf("saved %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")
	return cmd
}
