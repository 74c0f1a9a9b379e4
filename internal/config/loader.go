package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.gravityworm/config.yaml -> ./configs/worm.yaml -> embedded default.
// Files only need to set the fields they change; everything else keeps its default.
func Load(customPath string) (WormConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WormConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return WormConfig{}, fmt.Errorf("%w (in %s)", err, customPath)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "worm.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultWormYAML)
	if err != nil {
		return DefaultWormConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults and validates the result.
func parse(data []byte) (WormConfig, error) {
	cfg := DefaultWormConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WormConfig{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return WormConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gravityworm", filename)
}
