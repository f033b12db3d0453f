package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/request"
)

func newPlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Word placing commands",
	}

	cmd.AddCommand(newPlaceStartCmd())
	cmd.AddCommand(tileCmd("Add or remove a rack tile from the word", "/placing/toggle"))
	cmd.AddCommand(playerCmd("apply", "Commit the word to the board", "/placing/apply"))
	cmd.AddCommand(playerCmd("cancel", "Abandon the word", "/placing/cancel"))

	return cmd
}

func newPlaceStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id> <x> <y>",
		Short: "Anchor a word at a square, or rotate it when already anchored there",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseInt("x", args[1])
			if err != nil {
				return err
			}
			y, err := parseInt("y", args[2])
			if err != nil {
				return err
			}
			return postTransition(cmd, args[0], "/placing", request.StartPlacingRequest{
				Player: cfg.Player,
				X:      x,
				Y:      y,
			})
		},
	}
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}
