package config

import "github.com/vovakirdan/tui-platformer/internal/core"

// Progress reports how far a campaign has advanced toward MaxAt, in [0, 1].
// ok is false for progression types that never advance.
func (p ProgressionConfig) Progress(levelIndex, ticks int) (progress float64, ok bool) {
	var at int
	switch p.Type {
	case "level":
		at = levelIndex
	case "time":
		at = ticks
	default:
		return 0, false
	}

	span := max(p.MaxAt, 1)
	return core.Clamp(float64(at)/float64(span), 0.0, 1.0), true
}

// HazardCurve maps campaign progress onto a difficulty in [0, 1] and the
// hazard time scale derived from it.
type HazardCurve struct {
	floor   float64
	speedUp float64
	prog    *ProgressionConfig
}

// NewHazardCurve builds a curve from cfg. A disabled config yields a flat
// curve pinned at the initial level.
func NewHazardCurve(cfg DifficultyConfig) HazardCurve {
	c := HazardCurve{
		floor:   core.Clamp(cfg.InitialLevel, 0.0, 1.0),
		speedUp: cfg.Scaling.HazardSpeed,
	}
	if cfg.Enabled {
		p := cfg.Progression
		c.prog = &p
	}
	return c
}

// Flat reports whether the difficulty never moves off the initial level.
func (c HazardCurve) Flat() bool {
	if c.prog == nil {
		return true
	}
	_, ok := c.prog.Progress(0, 0)
	return !ok
}

// Level returns the difficulty for the given level index and campaign ticks.
func (c HazardCurve) Level(levelIndex, ticks int) float64 {
	if c.prog == nil {
		return c.floor
	}
	t, ok := c.prog.Progress(levelIndex, ticks)
	if !ok {
		return c.floor
	}
	return c.floor + t*(1-c.floor)
}

// HazardScale is 1 at difficulty 0 and 1 + hazard_speed at difficulty 1.
func (c HazardCurve) HazardScale(levelIndex, ticks int) float64 {
	return 1 + c.speedUp*c.Level(levelIndex, ticks)
}
