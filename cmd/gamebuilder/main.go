// gamebuilder plays configurable 2D scenes in the terminal or in a window.
//
// Usage:
//
//	gamebuilder list              - List available scenes
//	gamebuilder play <scene>      - Play a scene in the terminal
//	gamebuilder window <scene>    - Play a scene in a desktop window
//	gamebuilder menu              - Pick scenes interactively
//
// Global flags:
//
//	--fps <rate>          - Override the scene's tick rate
//	--config <path>       - Load the played scene from a YAML file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamebuilder/internal/config"
	"github.com/vovakirdan/gamebuilder/internal/registry"
	"github.com/vovakirdan/gamebuilder/internal/scene"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamebuilder",
	Short: "Play configurable 2D scenes",
	Long: `gamebuilder runs small 2D scenes described in YAML: walls, items to
collect and patrolling enemies around a keyboard-driven player.

Available commands:
  list     - Show all available scenes
  play     - Play a scene in the terminal
  window   - Play a scene in a desktop window
  menu     - Interactive scene picker

Examples:
  gamebuilder list
  gamebuilder play maze
  gamebuilder play dodge --difficulty hard
  gamebuilder play custom --config ./custom.yaml
  gamebuilder window maze --log-level debug`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagDifficulty == "" {
			return nil
		}
		preset, err := config.ParseDifficultyPreset(flagDifficulty)
		if err != nil {
			return err
		}
		scene.SetDifficultyPreset(preset)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = scene default)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom scene YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
}

// newLogger builds the logger from the global flags. Terminal hosts own
// the screen, so without --log-file their logs are dropped.
func newLogger(terminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case terminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "gamebuilder",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadScene creates a registered scene, reading it from --config when set,
// or loads --config directly when id is not registered.
func loadScene(id string) (registry.Scene, error) {
	if registry.Exists(id) {
		scene.SetConfigPath(id, flagConfig)
		return registry.Create(id)
	}
	if flagConfig != "" {
		return scene.FromFile(flagConfig)
	}
	return nil, fmt.Errorf("%w %q (run 'gamebuilder list' to see available scenes)", registry.ErrUnknownScene, id)
}
