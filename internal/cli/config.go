package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string `env:"WTGAME_SERVER" envDefault:"http://localhost:8080"`
	Output    string `env:"WTGAME_OUTPUT" envDefault:"text"`
	// Player is the seat transitions are sent for
	Player  int  `env:"WTGAME_PLAYER"`
	Verbose bool `env:"WTGAME_VERBOSE"`
}

// LoadConfig reads defaults from the environment. Flags override them
func LoadConfig() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return &Config{ServerURL: "http://localhost:8080", Output: FormatText}, fmt.Errorf("parse env: %w", err)
	}
	return &c, nil
}

// Validate checks flag values once they have been parsed
func (c *Config) Validate() error {
	if c.Output != FormatText && c.Output != FormatJSON {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.Player < 0 {
		return fmt.Errorf("invalid player %d", c.Player)
	}
	return nil
}
