package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "skyhop.yaml"

// LoadSkyHop loads the game configuration.
// Search order: customPath -> ~/.skyhop/configs/skyhop.yaml -> ./configs/skyhop.yaml -> embedded default
func LoadSkyHop(customPath string) (SkyHopConfig, error) {
	// Try custom path first; errors here are the user's to fix.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkyHopConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SkyHopConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Discovered files fall through to the next source if unusable.
	candidates := []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultSkyHopYAML)
	if err != nil {
		return DefaultSkyHopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults, so partial files only
// override the keys they set, then validates the result.
func parse(data []byte) (SkyHopConfig, error) {
	cfg := DefaultSkyHopConfig()
	cfg.Platforms.Initial = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SkyHopConfig{}, err
	}
	if cfg.Platforms.Initial == nil {
		cfg.Platforms.Initial = DefaultSkyHopConfig().Platforms.Initial
	}
	if err := cfg.Validate(); err != nil {
		return SkyHopConfig{}, err
	}
	return cfg, nil
}

// Validate checks values the simulation relies on.
func (c SkyHopConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, errors.New("physics.jump_impulse must be negative (upward)"))
	}
	if c.Physics.JumpThreshold < 0 {
		errs = append(errs, errors.New("physics.jump_threshold must not be negative"))
	}
	if c.Physics.Accel < 0 {
		errs = append(errs, errors.New("physics.accel must not be negative"))
	}
	if c.Physics.MaxFallSpeed <= 0 {
		errs = append(errs, errors.New("physics.max_fall_speed must be positive"))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction >= 1 {
		errs = append(errs, errors.New("physics.friction must be in [0, 1)"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Platforms.MinCount < 1 {
		errs = append(errs, errors.New("platforms.min_count must be at least 1"))
	}
	if c.Platforms.MinWidth < 1 || c.Platforms.MaxWidth <= c.Platforms.MinWidth {
		errs = append(errs, errors.New("platforms need 1 <= min_width < max_width"))
	}
	if c.Platforms.Height < 1 {
		errs = append(errs, errors.New("platforms.height must be at least 1"))
	}
	if c.Platforms.SpawnMaxY <= c.Platforms.SpawnMinY || c.Platforms.SpawnMaxY > 0 {
		errs = append(errs, errors.New("platforms need spawn_min_y < spawn_max_y <= 0"))
	}
	if c.Scroll.Fraction <= 0 || c.Scroll.Fraction >= 1 {
		errs = append(errs, errors.New("scroll.fraction must be in (0, 1)"))
	}
	if c.Scroll.DeathMin <= 0 {
		errs = append(errs, errors.New("scroll.death_min must be positive"))
	}
	if c.Session.HoldTicks < 1 {
		errs = append(errs, errors.New("session.hold_ticks must be at least 1"))
	}
	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SkyHopConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SkyHopConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Coarse gameplay adjustments on top of the progression curve
	switch preset {
	case DifficultyEasy:
		cfg.Physics.RequireSupport = false
		cfg.Platforms.MinCount++
	case DifficultyHard:
		cfg.Physics.RequireSupport = true
	}
}
