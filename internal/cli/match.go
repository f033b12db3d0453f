package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/request"
	"github.com/mcoot/wordtiles/internal/api/response"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match commands",
	}

	cmd.AddCommand(newMatchCreateCmd())
	cmd.AddCommand(newMatchListCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchDeleteCmd())

	return cmd
}

func newMatchCreateCmd() *cobra.Command {
	var req request.CreateMatchRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Deal a new match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Match

			if err := client.Post("/api/v1/matches", req, &result); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Players, "players", 0, "Number of players, 1 to 4 (default 2)")
	cmd.Flags().StringVar(&req.Locale, "locale", "", "Letter distribution locale (default en-US)")
	cmd.Flags().StringVar(&req.TurnSource, "turn-source", "", "Turn source: local or remote (default local)")

	return cmd
}

func newMatchListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.MatchList

			if err := client.Get("/api/v1/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Match

			if err := client.Get(matchPath(args[0], ""), &result); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(matchPath(args[0], "")); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage(fmt.Sprintf("Match %s deleted", args[0]))
			return nil
		},
	}
}

func matchPath(id, suffix string) string {
	return fmt.Sprintf("/api/v1/matches/%s%s", id, suffix)
}

// postTransition sends a turn transition and prints the result
func postTransition(cmd *cobra.Command, id, suffix string, body any) error {
	var result response.Transition

	if err := client.Post(matchPath(id, suffix), body, &result); err != nil {
		return err
	}

	out := NewOutput(cmd.OutOrStdout(), cfg.Output)
	out.Print(result)
	return nil
}

// playerCmd builds a command whose only argument is the match ID
func playerCmd(use, short, suffix string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return postTransition(cmd, args[0], suffix, request.PlayerRequest{Player: cfg.Player})
		},
	}
}

// tileCmd builds a command that toggles one rack tile
func tileCmd(short, suffix string) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id> <tile-id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tile, err := parseInt("tile-id", args[1])
			if err != nil {
				return err
			}
			return postTransition(cmd, args[0], suffix, request.TileRequest{Player: cfg.Player, TileID: tile})
		},
	}
}
