package config

import (
	"embed"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var defaultScenes embed.FS

// Presets returns the IDs of the embedded scenes, sorted.
func Presets() []string {
	entries, err := defaultScenes.ReadDir("defaults")
	if err != nil {
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if name := e.Name(); path.Ext(name) == ".yaml" {
			ids = append(ids, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(ids)
	return ids
}

// defaultSceneYAML returns the embedded YAML for id, or nil.
func defaultSceneYAML(id string) []byte {
	data, err := defaultScenes.ReadFile("defaults/" + id + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
