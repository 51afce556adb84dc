package commands

import (
	"github.com/spf13/cobra"
)

// key <code>: raw keyevent by number or name.
func keyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key <code>",
		Short: "Send a keyevent (e.g. 4 or KEYCODE_HOME)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Input.Key(cmd.Context(), args[0])
		},
	}
}

func backCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "back",
		Short: "Press the back button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Input.Back(cmd.Context())
		},
	}
}

func homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Press the home button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Input.Home(cmd.Context())
		},
	}
}
