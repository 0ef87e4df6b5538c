package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gamebuilder/internal/platform/tui"
	"github.com/vovakirdan/gamebuilder/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick scenes from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a scene.
After a scene ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play scene
  Q/Esc        - Quit

Examples:
  gamebuilder menu
  gamebuilder menu --difficulty hard --log-file menu.log`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		sc, err := registry.Create(result.SceneID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
			continue
		}

		outcome, err := tui.Run(sc, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running scene: %v\n", err)
			continue
		}
		logger.Info("scene finished", "scene", sc.ID(), "outcome", outcome)
	}
}
