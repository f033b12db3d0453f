package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/request"
)

func newRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <id> <slot>",
		Short: "Report a replacement tile as revealed",
		Long: `Report that the replacement tile in a swap slot has been shown.

The swap lands once every slot has been reported.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseInt("slot", args[1])
			if err != nil {
				return err
			}
			return postTransition(cmd, args[0], "/reveals", request.RevealRequest{Player: cfg.Player, Slot: slot})
		},
	}
}

func newPassCmd() *cobra.Command {
	return playerCmd("pass", "Hand the turn to the next player", "/pass")
}
