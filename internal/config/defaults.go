package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultSkyHopYAML []byte

// DefaultSkyHopConfig returns the hardcoded default configuration.
// It mirrors defaults/skyhop.yaml and is used if the embedded file is broken.
func DefaultSkyHopConfig() SkyHopConfig {
	return SkyHopConfig{
		Physics: Physics{
			Gravity:       0.032,
			JumpImpulse:   -0.8,
			JumpThreshold: 0.05,
			MaxFallSpeed:  1.0,
			Accel:         0.08,
			Friction:      0.12,
		},
		Player: PlayerConfig{
			Width:  3,
			Height: 2,
			StartX: 0.5,
			StartY: 0.5,
		},
		Platforms: PlatformsConfig{
			MinCount:      6,
			MinWidth:      8,
			MaxWidth:      16,
			Height:        1,
			SpawnMinY:     -3,
			SpawnMaxY:     -1,
			RecyclePoints: 10,
			Initial: []PlatformSpec{
				{X: 0, Y: 1.0, W: 0, H: 2}, // ground
				{X: 0.4, Y: 0.75, W: 16, H: 1},
				{X: 0.26, Y: 0.42, W: 16, H: 1},
				{X: 0.73, Y: 0.33, W: 16, H: 1},
				{X: 0.36, Y: 0.17, W: 8, H: 1},
			},
		},
		Scroll: ScrollConfig{
			Fraction: 0.25,
			DeathMin: 0.4,
		},
		Session: SessionConfig{
			GameOverGraceTicks: 30,
			MinScreenW:         30,
			MinScreenH:         15,
			HoldTicks:          18,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				WidthReduction: 5,
			},
		},
	}
}
