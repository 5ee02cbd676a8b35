// Package config provides YAML-based configuration loading and
// difficulty management for the platformer.
package config

import "fmt"

// PlatformerConfig contains all tunable gameplay parameters.
type PlatformerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines player motion in cells and seconds.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration
	JumpSpeed    float64 `yaml:"jump_speed"`     // Upward speed applied on jump
	PlayerXSpeed float64 `yaml:"player_x_speed"` // Horizontal walking speed
	MaxStep      float64 `yaml:"max_step"`       // Longest simulated sub-step
}

// GameplayConfig defines campaign rules.
type GameplayConfig struct {
	FinishDelay   float64 `yaml:"finish_delay"`    // Seconds a level keeps running after win/loss
	Lives         int     `yaml:"lives"`           // 0 means unlimited
	RestartOnLoss bool    `yaml:"restart_on_loss"` // Replay a lost level instead of ending the run
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level index or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	HazardSpeed float64 `yaml:"hazard_speed"` // Multiplier added to hazard speed at max difficulty
}

// Validate reports the first parameter that would break the simulation.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Physics.MaxStep <= 0:
		return fmt.Errorf("config: physics.max_step must be positive, got %v", c.Physics.MaxStep)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("config: physics.gravity must not be negative, got %v", c.Physics.Gravity)
	case c.Physics.PlayerXSpeed < 0:
		return fmt.Errorf("config: physics.player_x_speed must not be negative, got %v", c.Physics.PlayerXSpeed)
	case c.Gameplay.Lives < 0:
		return fmt.Errorf("config: gameplay.lives must not be negative, got %d", c.Gameplay.Lives)
	case c.Difficulty.Scaling.HazardSpeed < -1:
		return fmt.Errorf("config: difficulty.scaling.hazard_speed must be at least -1, got %v", c.Difficulty.Scaling.HazardSpeed)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
