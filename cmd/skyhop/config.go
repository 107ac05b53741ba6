package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game tuning",
	Long: `Print the game tuning SkyHop would use, as YAML.

The file is resolved the same way the game does it: --config (or
SKYHOP_CONFIG), then ~/.skyhop/configs/skyhop.yaml, then
./configs/skyhop.yaml, then the built-in defaults. A --difficulty preset is
applied on top.

Examples:
  skyhop config > ~/.skyhop/configs/skyhop.yaml
  skyhop config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	app, err := settings(cmd)
	if err != nil {
		return err
	}
	p, err := preset()
	if err != nil {
		return err
	}

	cfg, err := loadTuning(app)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, p)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
