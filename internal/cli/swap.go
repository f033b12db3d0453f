package cli

import (
	"github.com/spf13/cobra"
)

func newSwapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Tile exchange commands",
	}

	cmd.AddCommand(playerCmd("start", "Open swap selection", "/swap"))
	cmd.AddCommand(tileCmd("Select or deselect a rack tile", "/swap/toggle"))
	cmd.AddCommand(playerCmd("invert", "Flip the selection", "/swap/invert"))
	cmd.AddCommand(playerCmd("cancel", "Close swap selection", "/swap/cancel"))
	cmd.AddCommand(playerCmd("apply", "Exchange the selected tiles with the bag", "/swap/apply"))

	return cmd
}
