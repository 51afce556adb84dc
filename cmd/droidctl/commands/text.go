package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// text <words...>: type a string into the focused field.
func textCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <string>",
		Short: "Type a string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Input.Text(cmd.Context(), strings.Join(args, " "))
		},
	}
}
