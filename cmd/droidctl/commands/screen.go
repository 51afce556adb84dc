package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// screen wake|sleep|unlock: display power and lock state.
func screenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Control screen power and lock state",
	}

	wake := &cobra.Command{
		Use:   "wake",
		Short: "Wake the screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			woke, err := appCtx.Screen.Wake(cmd.Context())
			if err != nil {
				return err
			}
			if woke {
				fmt.Println("screen woken")
			} else {
				fmt.Println("screen already on")
			}
			return nil
		},
	}

	sleep := &cobra.Command{
		Use:   "sleep",
		Short: "Turn the screen off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slept, err := appCtx.Screen.Sleep(cmd.Context())
			if err != nil {
				return err
			}
			if slept {
				fmt.Println("screen turned off")
			} else {
				fmt.Println("screen already off")
			}
			return nil
		},
	}

	var horizontal bool
	unlock := &cobra.Command{
		Use:   "unlock",
		Short: "Wake and swipe away a swipe lock screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			attempted, err := appCtx.Screen.Unlock(cmd.Context(), horizontal)
			if err != nil {
				return err
			}
			if attempted {
				fmt.Println("unlock swipe performed")
			} else {
				fmt.Println("screen already unlocked")
			}
			return nil
		},
	}
	unlock.Flags().BoolVar(&horizontal, "horizontal", false, "swipe left to right instead of up")

	cmd.AddCommand(wake, sleep, unlock)
	return cmd
}
