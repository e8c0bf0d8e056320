package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/conkygen/conkygen/internal/errors"
)

const (
	// SettingsFileName is the settings file looked for in the working
	// directory.
	SettingsFileName = ".conkygen.yaml"
	// GlobalSettingsDir is the per-user settings directory under $HOME.
	GlobalSettingsDir = ".config/conkygen"
	// GlobalSettingsFile is the settings file name inside GlobalSettingsDir.
	GlobalSettingsFile = "config.yaml"
)

// Load reads settings from the specified path.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Settings file not found",
				"Check the --config path, or drop the flag to run with defaults")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read settings file",
			"Check the file exists and is valid YAML")
	}

	return parseSettings(v, path)
}

// Find locates the settings file using the search order:
// 1. Explicit path (from --config flag)
// 2. .conkygen.yaml in the current directory
// 3. ~/.config/conkygen/config.yaml
//
// Returns the path to the settings file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified settings file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access settings file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	local := filepath.Join(cwd, SettingsFileName)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		global := filepath.Join(home, GlobalSettingsDir, GlobalSettingsFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads settings from the found path, or returns defaults
// when no settings file exists anywhere in the search order.
func LoadOrDefault(explicit string) (*Settings, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultSettings(), nil
	}

	return Load(path)
}

// parseSettings converts viper config to Settings with defaults merged in.
func parseSettings(v *viper.Viper, path string) (*Settings, error) {
	cfg := DefaultSettings()
	setDefaults(v)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid settings format",
			"Check the YAML syntax in "+path)
	}

	return cfg, nil
}

// setDefaults registers defaults viper merges under explicit file values.
// Durations are given as strings; viper's decode hooks parse them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("version", CurrentSettingsVersion)
	v.SetDefault("design", "clean-stack")
	v.SetDefault("probe_timeout", "5s")
	v.SetDefault("output.color", "auto")
	v.SetDefault("output.quiet", false)
}
