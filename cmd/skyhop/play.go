package main

import (
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/game"
	"github.com/vovakirdan/skyhop/internal/logging"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/storage"
)

var (
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play SkyHop in this terminal",
	Long: `Play SkyHop in the current terminal.

Controls:
  ←/→ or A/D    Move
  Space/↑/W     Jump
  P/Esc         Pause
  Ctrl+S        Save a screenshot
  Q/Ctrl+C      Quit

Examples:
  skyhop play
  skyhop play --seed 42           # Reproducible platform layout
  skyhop play --difficulty easy
  skyhop play --sound`,
	RunE: runPlay,
}

func init() {
	// Registered on the root too, since plain "skyhop" plays
	for _, c := range []*cobra.Command{playCmd, rootCmd} {
		c.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
		c.Flags().Float64Var(&flagVolume, "volume", 1, "Sound volume (0 = silent, 1 = normal)")
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	app, err := settings(cmd)
	if err != nil {
		return err
	}
	p, err := preset()
	if err != nil {
		return err
	}
	tuning, err := loadTuning(app)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(app.LogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logging.NewFile(app.LogPath, level)
	if err != nil {
		// The game owns the terminal, so logs never go to stderr here.
		logger, closer = logging.Discard(), nil
	}
	if closer != nil {
		defer closer.Close()
	}
	log.SetDefault(logger)

	highScore, err := storage.NewHighScoreFile(app.HighScorePath)
	if err != nil {
		return err
	}

	// Score history is optional: the game still runs without it
	var scores tui.ScoreRecorder
	store, err := storage.Open(app.DBPath)
	if err != nil {
		logger.Warn("score history disabled", "db", app.DBPath, "err", err)
	} else {
		defer store.Close()
		scores = store
	}

	var sound tui.SoundPlayer
	useSound := app.Sound
	if cmd.Flags().Changed("sound") {
		useSound = flagSound
	}
	if useSound {
		player := audio.NewPlayer(flagVolume)
		if err := player.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer player.Close()
			sound = player
		}
	}

	w, h := terminalSize()
	g := game.New(game.Options{
		Config: &tuning,
		Preset: p,
		Store:  highScore,
	})

	cfg := core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: app.TickRate,
		Seed:     flagSeed,
	}

	logger.Info("starting run", "size", [2]int{w, h}, "fps", cfg.TickRate, "difficulty", string(p))
	return tui.Run(g, cfg, tui.Options{
		Scores: scores,
		Sound:  sound,
		Player: playerName(),
		Logger: logger,
	})
}

// terminalSize falls back to 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
