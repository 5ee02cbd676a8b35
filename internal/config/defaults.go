package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hard-coded configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:      30,
			JumpSpeed:    17,
			PlayerXSpeed: 7,
			MaxStep:      0.05,
		},
		Gameplay: GameplayConfig{
			FinishDelay:   1,
			Lives:         3,
			RestartOnLoss: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				HazardSpeed: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
