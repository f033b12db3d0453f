package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordtiles/internal/api/response"
)

func newWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "word <locale> <word>",
		Short: "Look a word up in a locale's dictionary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Word

			path := fmt.Sprintf("/api/v1/dictionary/%s/words/%s",
				url.PathEscape(args[0]), url.PathEscape(args[1]))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
