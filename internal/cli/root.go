package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cfgErr error
	cfg, cfgErr = LoadConfig()

	rootCmd := &cobra.Command{
		Use:   "wtgame",
		Short: "CLI tool for the word tiles API",
		Long: `wtgame is a CLI tool for interacting with the word tiles JSON API.

It creates and inspects matches, drives placing and swap turns for a
player seat, reports tile reveals and looks words up in the dictionary.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Create HTTP client
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WTGAME_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: WTGAME_OUTPUT)")
	rootCmd.PersistentFlags().IntVarP(&cfg.Player, "player", "p", cfg.Player, "Player seat to act as (env: WTGAME_PLAYER)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newPlaceCmd())
	rootCmd.AddCommand(newSwapCmd())
	rootCmd.AddCommand(newRevealCmd())
	rootCmd.AddCommand(newPassCmd())
	rootCmd.AddCommand(newWordCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
