package config

import (
	"fmt"
	"os"
	"path/filepath"

	"themectl/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/themectl"
	projectConfigDir = ".themectl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the themectl configuration by layering default, user,
// project and explicit settings. explicitPath may be empty; when set, the
// file must exist.
func LoadConfig(explicitPath string) (ThemectlConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		config, err = overlayIfExists(config, userConfigPath)
		if err != nil {
			return ThemectlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		config, err = overlayIfExists(config, projectConfigPath)
		if err != nil {
			return ThemectlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	// 4. Explicit --config file
	if explicitPath != "" {
		explicitConfig, err := loadConfigFromFile(explicitPath)
		if err != nil {
			return ThemectlConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		logging.Debug("Config", "Loaded config from %s", explicitPath)
		config = mergeConfigs(config, explicitConfig)
	}

	return config, nil
}

func overlayIfExists(base ThemectlConfig, path string) (ThemectlConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return ThemectlConfig{}, err
	}
	logging.Debug("Config", "Loaded config from %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd() // Use mockable variable
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a ThemectlConfig from a YAML file.
func loadConfigFromFile(filePath string) (ThemectlConfig, error) {
	var config ThemectlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ThemectlConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return ThemectlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay ThemectlConfig) ThemectlConfig {
	mergedConfig := base

	if overlay.Scheme != "" {
		mergedConfig.Scheme = overlay.Scheme
	}

	// Palette colors merge one by one
	mergedConfig.Palette = base.Palette.Merge(overlay.Palette)

	if overlay.Output.Format != "" {
		mergedConfig.Output.Format = overlay.Output.Format
	}
	if overlay.Logging.Level != "" {
		mergedConfig.Logging.Level = overlay.Logging.Level
	}

	return mergedConfig
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
