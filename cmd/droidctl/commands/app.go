package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// app launch|current|list: app registry operations.
func appCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Launch apps and query the focused app",
	}

	launch := &cobra.Command{
		Use:   "launch <name>",
		Short: "Launch an app by its registered name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Apps.Launch(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("launched %s\n", args[0])
			return nil
		},
	}

	current := &cobra.Command{
		Use:   "current",
		Short: "Print the app currently holding focus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := appCtx.Apps.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered app names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range appCtx.Apps.Known() {
				fmt.Println(name)
			}
			return nil
		},
	}

	cmd.AddCommand(launch, current, list)
	return cmd
}
