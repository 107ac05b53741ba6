package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{1000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got < tc.want-1e-9 || got > tc.want+1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{WidthReduction: 4},
	})

	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(10000, 10000); got != 0.5 {
		t.Errorf("disabled Level = %f, expected initial 0.5", got)
	}
	if got := d.PlatformWidth(10, 10000, 0); got != 8 {
		t.Errorf("PlatformWidth = %d, expected 8 at fixed level 0.5", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 60},
	})
	if got := d.Level(0, 30); got != 0.5 {
		t.Errorf("Level at half time = %f, expected 0.5", got)
	}
}

func TestPlatformWidthFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{WidthReduction: 50},
	})
	if got := d.PlatformWidth(8, 10, 0); got != minPlatformWidth {
		t.Errorf("PlatformWidth = %d, expected floor %d", got, minPlatformWidth)
	}
}
