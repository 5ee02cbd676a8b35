package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform hands the driver on every reset.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in cells
	ScreenH  int   // Viewport height in cells
	TickRate int   // Ticks per simulated second
	Seed     int64 // Seeds the level parser; 0 asks the driver to pick one
}

// DefaultConfig returns an 80x24 viewport at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: DefaultTickRate}
}

// Normalized replaces a missing tick rate with the default.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// TickSeconds is the simulated time covered by one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	return 1.0 / float64(c.Normalized().TickRate)
}

// GameState summarizes a campaign for the platform layer.
type GameState struct {
	Score    int  // Coins banked from won levels plus coins taken in the current one
	Level    int  // 1-based index of the current level
	Lives    int  // 0 when lives are unlimited
	GameOver bool // The run has ended, won or lost
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
