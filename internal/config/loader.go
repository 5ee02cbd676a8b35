package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default -> hard-coded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets.
func Load(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("platformer.yaml"), filepath.Join("configs", "platformer.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := tryFile(path); ok {
			return c, nil
		}
	}

	embedded := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultPlatformerConfig(), nil
	}
	return embedded, nil
}

// tryFile decodes path over the defaults. Unreadable or invalid files are
// skipped so the search can fall through.
func tryFile(path string) (PlatformerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, false
	}
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, false
	}
	if cfg.Validate() != nil {
		return PlatformerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.FinishDelay = 0.5
	}
}
