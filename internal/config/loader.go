package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "baseball.yaml"

// LoadBaseball loads the game configuration. Fields missing from the file
// keep their default values; BASEBALL_* environment variables override
// whatever file was used.
// Search order: customPath -> ~/.baseball/configs/baseball.yaml -> ./configs/baseball.yaml -> embedded default
func LoadBaseball(customPath string) (BaseballConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg.Normalize(), nil
}

func loadFile(customPath string) (BaseballConfig, error) {
	cfg := DefaultBaseballConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if c, ok := tryLoad(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryLoad(filepath.Join("configs", configFile)); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBaseballYAML, &cfg); err != nil {
		return DefaultBaseballConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is tried.
func tryLoad(path string) (BaseballConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BaseballConfig{}, false
	}
	cfg := DefaultBaseballConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BaseballConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".baseball", "configs", filename)
}
