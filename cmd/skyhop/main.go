// skyhop is a vertical platformer for the terminal: bounce from platform to
// platform, climb as high as you can, and don't fall off the bottom.
//
// Usage:
//
//	skyhop                   - Play (same as skyhop play)
//	skyhop play              - Play in this terminal
//	skyhop scores            - Show the score history
//	skyhop serve             - Start SSH server for remote play
//	skyhop config            - Print the effective game tuning as YAML
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.skyhop/scores.db)
//	--highscore <path>   - Set high score file (default: ~/.skyhop/highscore.txt)
//	--config <path>      - Use a custom tuning YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//
// Every path and the tick rate can also be set through SKYHOP_* environment
// variables; flags win over the environment.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagHighScore  string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "SkyHop - a vertical platformer in your terminal",
	Long: `SkyHop is a terminal platformer. Jump from platform to platform; the
screen scrolls up as you climb and every platform that drops off the
bottom scores 10 points. Fall off the bottom yourself and the run is over.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the score history
  serve    - Start SSH server for remote play
  config   - Print the effective game tuning

Examples:
  skyhop
  skyhop play --difficulty hard
  skyhop scores
  skyhop serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.skyhop/scores.db", "Path to scores database")
	flags.StringVar(&flagHighScore, "highscore", "~/.skyhop/highscore.txt", "Path to high score file")
	flags.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogPath, "log", "~/.skyhop/skyhop.log", "Log file for local play")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// settings merges the environment with explicitly set flags.
func settings(cmd *cobra.Command) (config.AppConfig, error) {
	app, err := config.LoadApp()
	if err != nil {
		return config.AppConfig{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		if flagFPS <= 0 {
			return config.AppConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		app.TickRate = flagFPS
	}
	if flags.Changed("db") {
		app.DBPath = flagDBPath
	}
	if flags.Changed("highscore") {
		app.HighScorePath = flagHighScore
	}
	if flags.Changed("config") {
		app.ConfigPath = flagConfig
	}
	if flags.Changed("log") {
		app.LogPath = flagLogPath
	}
	if flags.Changed("log-level") {
		app.LogLevel = flagLogLevel
	}
	return app, nil
}

// preset validates the --difficulty flag.
func preset() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	p := config.ParsePreset(flagDifficulty)
	if p == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return p, nil
}

// loadTuning resolves the game tuning once, so a bad --config path is
// reported before the game takes over the terminal.
func loadTuning(app config.AppConfig) (config.SkyHopConfig, error) {
	cfg, err := config.LoadSkyHop(app.ConfigPath)
	if err != nil {
		return config.SkyHopConfig{}, fmt.Errorf("loading game config: %w", err)
	}
	return cfg, nil
}
