package scene

import (
	"path/filepath"
	"strings"

	"github.com/vovakirdan/gamebuilder/internal/config"
	"github.com/vovakirdan/gamebuilder/internal/registry"
)

// configID and configPath store the custom scene file set via CLI
var (
	configID         string
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath makes Load read scene id from path. Other ids keep the
// normal search order. An empty path clears the override.
func SetConfigPath(id, path string) {
	configID, configPath = id, path
}

// SetDifficultyPreset sets the difficulty preset. An empty preset keeps the
// scene's own difficulty block.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Load loads scene id through the config search order and applies the
// difficulty preset.
func Load(id string) (*Scene, error) {
	var custom string
	if id == configID {
		custom = configPath
	}
	cfg, err := config.LoadScene(id, custom)
	if err != nil {
		return nil, err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return New(id, cfg), nil
}

// FromFile loads a scene that is not registered. Its ID is the file name
// without extension.
func FromFile(path string) (*Scene, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return New(id, cfg), nil
}

// presetTitles names the embedded scenes for menus and `list`.
var presetTitles = map[string]string{
	"maze":  "Gem Maze",
	"dodge": "Rock Dodge",
}

func init() {
	for _, id := range config.Presets() {
		title, ok := presetTitles[id]
		if !ok {
			title = id
		}
		registry.Register(id, title, factory(id))
	}
}

func factory(id string) registry.Factory {
	return func() (registry.Scene, error) {
		s, err := Load(id)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
