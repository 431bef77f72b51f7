package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/kmacinski/harvest/internal/ui"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file
const (
	EnvAccessToken = "HARVEST_ACCESS_TOKEN"
	EnvAccountID   = "HARVEST_ACCOUNT_ID"
)

// Config holds all application configuration
type Config struct {
	Harvest HarvestConfig `yaml:"harvest"`
	Log     LogConfig     `yaml:"log"`
	Colors  ColorConfig   `yaml:"colors"`
	List    ListConfig    `yaml:"list"`
}

// HarvestConfig holds the API endpoint and credentials
type HarvestConfig struct {
	AccountID string `yaml:"account_id"`
	Token     string `yaml:"token"`
	BaseURL   string `yaml:"base_url"`
	UserAgent string `yaml:"user_agent"`
}

// LogConfig holds the diagnostic log settings
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// ColorConfig holds color pair overrides
type ColorConfig struct {
	BlackOnWhite PairConfig `yaml:"black_on_white"`
	WhiteOnBlack PairConfig `yaml:"white_on_black"`
	WhiteOnGreen PairConfig `yaml:"white_on_green"`
}

// PairConfig holds one foreground/background pair
type PairConfig struct {
	Fg string `yaml:"fg"`
	Bg string `yaml:"bg"`
}

// ListConfig holds list window settings
type ListConfig struct {
	FocusPair string `yaml:"focus_pair"`
}

// Default returns the default configuration
var Default = Config{
	Harvest: HarvestConfig{
		BaseURL:   "https://api.harvestapp.com/v2",
		UserAgent: "harvest-tui",
	},
	Log: LogConfig{
		File:  "harvest.log",
		Level: "info",
	},
	List: ListConfig{
		FocusPair: ui.BlackOnWhite.String(),
	},
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "harvest.yaml"
	}
	return filepath.Join(dir, "harvest", "config.yaml")
}

// Load reads path over Default. A missing file is not an error.
// Credentials from the environment win over the file.
func Load(path string) (Config, error) {
	cfg := Default
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if v := os.Getenv(EnvAccessToken); v != "" {
		cfg.Harvest.Token = v
	}
	if v := os.Getenv(EnvAccountID); v != "" {
		cfg.Harvest.AccountID = v
	}
	return cfg, nil
}

// Palette returns the color overrides as a ui palette
func (c Config) Palette() ui.Palette {
	return ui.Palette{
		ui.BlackOnWhite: c.Colors.BlackOnWhite.pair(),
		ui.WhiteOnBlack: c.Colors.WhiteOnBlack.pair(),
		ui.WhiteOnGreen: c.Colors.WhiteOnGreen.pair(),
	}
}

// FocusPair returns the pair used to highlight the focused list row
func (c Config) FocusPair() (ui.PairID, error) {
	return ui.ParsePairID(c.List.FocusPair)
}

func (p PairConfig) pair() ui.Pair {
	return ui.Pair{
		Foreground: lipgloss.Color(p.Fg),
		Background: lipgloss.Color(p.Bg),
	}
}
