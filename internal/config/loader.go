package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "crossing.yaml"

// LoadCrossing loads the game configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default.
// Files are overlaid on the defaults, so a file may set only the keys it changes.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	// A custom path is an explicit request; failures there are errors
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrossingConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CrossingConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := Parse(defaultCrossingYAML); err == nil {
		return cfg, nil
	}
	return DefaultCrossingConfig(), nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	// A difficulties list in the file replaces the stock table entirely
	cfg.Difficulties = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossingConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Difficulties) == 0 {
		cfg.Difficulties = DefaultProfiles()
	}
	if err := cfg.Validate(); err != nil {
		return CrossingConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing", "configs", filename)
}
