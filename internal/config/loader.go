package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownScene is returned when no file and no embedded default exist for a scene.
var ErrUnknownScene = errors.New("config: unknown scene")

// LoadScene loads the configuration of scene id.
// Search order: customPath -> ~/.gamebuilder/scenes/<id>.yaml -> ./scenes/<id>.yaml -> embedded default
//
// A custom path must exist and parse. Unreadable or malformed files on the
// other search paths are skipped; a file that parses but fails Validate is
// returned with its error.
func LoadScene(id, customPath string) (Scene, error) {
	var cfg Scene

	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	filename := id + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	// Try local scenes directory
	if data, err := os.ReadFile(filepath.Join("scenes", filename)); err == nil {
		cfg = Scene{}
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	data := defaultSceneYAML(id)
	if data == nil {
		return Scene{}, fmt.Errorf("%w %q", ErrUnknownScene, id)
	}
	cfg = Scene{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Scene{}, fmt.Errorf("config: failed to parse embedded scene %s: %w", id, err)
	}
	return cfg, cfg.Validate()
}

// LoadFile reads and validates a single scene file.
func LoadFile(p string) (Scene, error) {
	var cfg Scene

	data, err := os.ReadFile(p)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read scene %s: %w", p, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse scene %s: %w", p, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w (in %s)", err, p)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user scene file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gamebuilder", "scenes", filename)
}
