package config

import (
	"math"
	"testing"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		prog     ProgressionConfig
		index    int
		ticks    int
		expected float64
		ok       bool
	}{
		{"level start", ProgressionConfig{Type: "level", MaxAt: 4}, 0, 999, 0, true},
		{"level half", ProgressionConfig{Type: "level", MaxAt: 4}, 2, 0, 0.5, true},
		{"level past max", ProgressionConfig{Type: "level", MaxAt: 4}, 9, 0, 1, true},
		{"time", ProgressionConfig{Type: "time", MaxAt: 100}, 7, 25, 0.25, true},
		{"zero max_at", ProgressionConfig{Type: "level"}, 1, 0, 1, true},
		{"none", ProgressionConfig{Type: "none", MaxAt: 4}, 3, 3, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.prog.Progress(tc.index, tc.ticks)
			if ok != tc.ok || math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Progress(%d, %d) = %v, %v, expected %v, %v", tc.index, tc.ticks, got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestHazardCurveLevel(t *testing.T) {
	c := NewHazardCurve(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "level", MaxAt: 4},
		Scaling:      ScalingConfig{HazardSpeed: 1},
	})

	tests := []struct {
		index    int
		expected float64
	}{
		{0, 0.2},
		{2, 0.6},
		{4, 1.0},
		{10, 1.0},
	}

	for _, tc := range tests {
		if got := c.Level(tc.index, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d, 0) = %v, expected %v", tc.index, got, tc.expected)
		}
	}
}

func TestHazardCurveFlat(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "none", MaxAt: 1},
	}
	c := NewHazardCurve(cfg)
	if !c.Flat() {
		t.Error("Flat() = false, expected true for progression none")
	}
	if got := c.Level(5, 500); got != 0.4 {
		t.Errorf("Level() = %v, expected initial level 0.4", got)
	}

	cfg.Progression.Type = "level"
	cfg.Enabled = false
	c = NewHazardCurve(cfg)
	if !c.Flat() {
		t.Error("Flat() = false, expected true when disabled")
	}
	if got := c.Level(5, 500); got != 0.4 {
		t.Errorf("Level() = %v, expected 0.4 when disabled", got)
	}

	cfg.InitialLevel = 3
	if got := NewHazardCurve(cfg).Level(0, 0); got != 1 {
		t.Errorf("Level() = %v, expected clamped initial level 1", got)
	}
}

func TestHazardScale(t *testing.T) {
	c := NewHazardCurve(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "level", MaxAt: 2},
		Scaling:     ScalingConfig{HazardSpeed: 0.5},
	})

	if got := c.HazardScale(0, 0); got != 1 {
		t.Errorf("HazardScale(0) = %v, expected 1", got)
	}
	if got := c.HazardScale(2, 0); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("HazardScale(2) = %v, expected 1.5", got)
	}
}
