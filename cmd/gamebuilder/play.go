package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gamebuilder/internal/core"
	"github.com/vovakirdan/gamebuilder/internal/engine"
	"github.com/vovakirdan/gamebuilder/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <scene>",
	Short: "Play a scene in the terminal",
	Long: `Start playing the specified scene in the terminal.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - Enemies start slow and speed up
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 60% difficulty, progresses to max
  fixed  - No progression, stays at the scene's initial level

Examples:
  gamebuilder play maze
  gamebuilder play dodge --difficulty easy
  gamebuilder play maze --config ./my-maze.yaml
  gamebuilder play custom --config ./custom.yaml --log-file play.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	outcome, err := tui.Run(sc, terminalConfig(), logger)
	if err != nil {
		return fmt.Errorf("run scene: %w", err)
	}
	printOutcome(sc.Title(), outcome)
	return nil
}

// terminalConfig sizes the runtime config to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

func printOutcome(title string, o engine.Outcome) {
	switch o {
	case engine.OutcomeVictory:
		fmt.Printf("%s: victory!\n", title)
	case engine.OutcomeDefeat:
		fmt.Printf("%s: defeat.\n", title)
	}
}
