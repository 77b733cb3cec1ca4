// Package config loads optional play settings from an HCL file. A missing
// file yields defaults; a malformed file is an error.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete play configuration.
type Config struct {
	Player *PlayerSettings `hcl:"player,block"`
	Game   *GameSettings   `hcl:"game,block"`
	UI     *UISettings     `hcl:"ui,block"`
}

// PlayerSettings contains player-specific settings.
type PlayerSettings struct {
	Name string `hcl:"name,optional"`
}

// GameSettings contains game-level settings.
type GameSettings struct {
	// Seed drives the bot's RNG. Zero means pick a fresh seed per run; the
	// --seed flag takes precedence over this value.
	Seed int64 `hcl:"seed,optional"`
}

// UISettings contains user interface settings.
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	Theme    string `hcl:"theme,optional"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Player: &PlayerSettings{
			Name: "Player",
		},
		Game: &GameSettings{},
		UI: &UISettings{
			LogLevel: "warn",
			Theme:    "default",
		},
	}
}

// Load reads configuration from an HCL file, filling unset values from
// Default. A missing file is not an error.
func Load(filename string) (*Config, error) {
	defaults := Default()

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return defaults, nil
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

	if config.Player == nil {
		config.Player = defaults.Player
	} else if config.Player.Name == "" {
		config.Player.Name = defaults.Player.Name
	}
	if config.Game == nil {
		config.Game = defaults.Game
	}
	if config.UI == nil {
		config.UI = defaults.UI
	} else {
		if config.UI.LogLevel == "" {
			config.UI.LogLevel = defaults.UI.LogLevel
		}
		if config.UI.Theme == "" {
			config.UI.Theme = defaults.UI.Theme
		}
	}

	return &config, nil
}
