package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds all configuration options.
type Settings struct {
	// OutputRoot is the directory auto-named output lands in when no
	// explicit output path is given.
	OutputRoot string `toml:"output_root"`

	// Container selects zip output by default; directory output otherwise.
	// An explicit mode flag or a .zip output path still wins.
	Container bool `toml:"container"`

	// Verbose includes per-file progress messages in the output.
	Verbose bool `toml:"verbose"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputRoot: "output",
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "saf.toml"
	}
	return filepath.Join(configDir, "saf", "config.toml")
}

// Load reads settings from a TOML file. A missing file is not an error;
// defaults are returned instead.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a TOML file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
