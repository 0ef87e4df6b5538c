package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gamebuilder/internal/core"
	"github.com/vovakirdan/gamebuilder/internal/engine"
	"github.com/vovakirdan/gamebuilder/internal/registry"
)

// Model is the Bubble Tea model for running a scene.
type Model struct {
	scene    registry.Scene
	game     *engine.Game
	host     *Host
	width    int
	quitting bool
}

// NewModel builds scene into a new game on a terminal host and starts the
// loop. The first tick is scheduled by Init.
func NewModel(scene registry.Scene, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	host := NewHost(cfg, NewPalette(scene.Config().Sprites), logger)

	opts := scene.Options()
	opts.Host = host
	opts.Logger = logger
	if cfg.TickRate > 0 {
		opts.TickRate = cfg.TickRate
	}

	game := engine.New(opts)
	if err := scene.Build(game); err != nil {
		return Model{}, fmt.Errorf("build scene %s: %w", scene.ID(), err)
	}
	if err := game.Start(); err != nil {
		return Model{}, fmt.Errorf("start scene %s: %w", scene.ID(), err)
	}

	return Model{
		scene: scene,
		game:  game,
		host:  host,
		width: cfg.ScreenW,
	}, nil
}

// Game returns the running game.
func (m Model) Game() *engine.Game { return m.game }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return m.host.TakeCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			m.game.Stop()
			return m, tea.Quit
		}
		cmd = m.host.HandleKey(msg)

	case TickMsg:
		cmd = m.host.HandleTick(msg)

	case releaseMsg:
		m.host.handleRelease(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.host.Resize(msg.Width, msg.Height)
	}

	// A key press may pause or resume the loop.
	return m, tea.Batch(cmd, m.host.TakeCmd())
}

// View renders the world and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	kind := StatusPlaying
	switch m.game.Outcome() {
	case engine.OutcomeVictory:
		kind = StatusVictory
	case engine.OutcomeDefeat:
		kind = StatusDefeat
	}

	var world string
	if s := m.host.Surface(); s != nil {
		world = RenderScreen(s.Screen())
	}
	return world + "\n" + RenderStatus(m.scene.Title(), m.scene.Status(), kind, m.width)
}

// Run plays scene in the terminal until the user quits and returns the
// declared outcome.
func Run(scene registry.Scene, cfg core.RuntimeConfig, logger *log.Logger) (engine.Outcome, error) {
	model, err := NewModel(scene, cfg, logger)
	if err != nil {
		return engine.OutcomeNone, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return model.game.Outcome(), err
	}
	return model.game.Outcome(), nil
}
