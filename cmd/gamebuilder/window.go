package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamebuilder/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window <scene>",
	Short: "Play a scene in a desktop window",
	Long: `Open the scene in a window sized to its world. Images and audio named
in the scene's assets are loaded from disk; images that fail to load are
drawn as colored rectangles.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  Esc          - Quit

Examples:
  gamebuilder window maze
  gamebuilder window custom --config ./custom.yaml --fps 60`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	outcome, err := window.Run(sc, flagFPS, logger)
	if err != nil {
		return fmt.Errorf("run scene: %w", err)
	}
	printOutcome(sc.Title(), outcome)
	return nil
}
