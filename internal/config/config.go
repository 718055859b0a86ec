package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack/internal/display"
)

// DefaultFile is the config file read when no path is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete game configuration
type Config struct {
	Display *DisplaySettings `hcl:"display,block"`
	Log     *LogSettings     `hcl:"log,block"`
	Dealer  *DealerSettings  `hcl:"dealer,block"`
}

// DisplaySettings controls terminal output
type DisplaySettings struct {
	Theme   string `hcl:"theme,optional"`
	NoColor bool   `hcl:"no_color,optional"`
}

// LogSettings controls the debug log. An empty file discards log output.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// DealerSettings controls how the dealer's turn is presented. The dealer's
// drawing rule itself is fixed.
type DealerSettings struct {
	PaceMS int `hcl:"pace_ms,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Display: &DisplaySettings{
			Theme:   "default",
			NoColor: false,
		},
		Log: &LogSettings{
			Level: "info",
			File:  "",
		},
		Dealer: &DealerSettings{
			PaceMS: 0,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing blocks and values
	defaults := DefaultConfig()

	if config.Display == nil {
		config.Display = defaults.Display
	}
	if config.Log == nil {
		config.Log = defaults.Log
	}
	if config.Dealer == nil {
		config.Dealer = defaults.Dealer
	}

	if config.Display.Theme == "" {
		config.Display.Theme = defaults.Display.Theme
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if _, err := display.ThemeStyles(c.Display.Theme); err != nil {
		return fmt.Errorf("invalid theme: %s (available: %v)", c.Display.Theme, display.Themes())
	}

	if c.Dealer.PaceMS < 0 {
		return fmt.Errorf("dealer pace cannot be negative")
	}

	return nil
}

// Pace returns the pause before each dealer draw
func (c *Config) Pace() time.Duration {
	return time.Duration(c.Dealer.PaceMS) * time.Millisecond
}

// Styles returns the styles for the configured theme
func (c *Config) Styles() display.Styles {
	styles, err := display.ThemeStyles(c.Display.Theme)
	if err != nil {
		return display.DefaultStyles()
	}
	return styles
}
