package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds process-level settings. Values come from SKYHOP_*
// environment variables; CLI flags override them.
type AppConfig struct {
	DBPath        string `env:"SKYHOP_DB" envDefault:"~/.skyhop/scores.db"`
	HighScorePath string `env:"SKYHOP_HIGHSCORE" envDefault:"~/.skyhop/highscore.txt"`
	LogPath       string `env:"SKYHOP_LOG" envDefault:"~/.skyhop/skyhop.log"`
	LogLevel      string `env:"SKYHOP_LOG_LEVEL" envDefault:"info"`
	ConfigPath    string `env:"SKYHOP_CONFIG"`
	TickRate      int    `env:"SKYHOP_FPS" envDefault:"60"`
	Sound         bool   `env:"SKYHOP_SOUND" envDefault:"false"`
}

// LoadApp parses AppConfig from the environment.
func LoadApp() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("config: cannot parse environment: %w", err)
	}
	if cfg.TickRate <= 0 {
		return AppConfig{}, fmt.Errorf("config: SKYHOP_FPS must be positive, got %d", cfg.TickRate)
	}
	return cfg, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
