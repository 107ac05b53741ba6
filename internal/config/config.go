// Package config provides YAML-based game tuning, difficulty management and
// environment-based process settings for SkyHop.
package config

// SkyHopConfig contains all tuning for the game.
type SkyHopConfig struct {
	Physics    Physics          `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformsConfig  `yaml:"platforms"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines the player's movement parameters.
type Physics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`   // Negative = up
	JumpThreshold  float64 `yaml:"jump_threshold"` // Jump refused while rising faster than this
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	Accel          float64 `yaml:"accel"`    // Horizontal acceleration while a direction is held
	Friction       float64 `yaml:"friction"` // Fraction of horizontal speed lost per tick
	RequireSupport bool    `yaml:"require_support"`
}

// PlayerConfig defines the player's hitbox and spawn point.
// StartX and StartY are fractions of the screen size.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// PlatformsConfig defines platform generation.
type PlatformsConfig struct {
	MinCount      int            `yaml:"min_count"`
	MinWidth      int            `yaml:"min_width"`
	MaxWidth      int            `yaml:"max_width"`
	Height        int            `yaml:"height"`
	SpawnMinY     int            `yaml:"spawn_min_y"`
	SpawnMaxY     int            `yaml:"spawn_max_y"`
	RecyclePoints int            `yaml:"recycle_points"`
	Initial       []PlatformSpec `yaml:"initial"`
}

// PlatformSpec places one platform of the starting layout.
// X and Y are fractions of the screen size; W = 0 spans the full width.
type PlatformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W int     `yaml:"w"`
	H int     `yaml:"h"`
}

// ScrollConfig defines camera behaviour.
type ScrollConfig struct {
	Fraction float64 `yaml:"fraction"`  // Scroll once the player's top is above H*Fraction
	DeathMin float64 `yaml:"death_min"` // Minimum world shift per tick while falling out
}

// SessionConfig defines session lifecycle parameters.
type SessionConfig struct {
	GameOverGraceTicks int `yaml:"gameover_grace_ticks"`
	MinScreenW         int `yaml:"min_screen_w"`
	MinScreenH         int `yaml:"min_screen_h"`
	HoldTicks          int `yaml:"hold_ticks"` // Ticks a direction key press stays held
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	WidthReduction int `yaml:"width_reduction"` // Platform width reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
