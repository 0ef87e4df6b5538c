package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gamebuilder/internal/config"
	"github.com/vovakirdan/gamebuilder/internal/core"
	"github.com/vovakirdan/gamebuilder/internal/registry"
)

// MenuKeyMap defines the key bindings for the scene picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the scene picker.
type MenuModel struct {
	scenes   []registry.Info
	table    table.Model
	help     help.Model
	keys     MenuKeyMap
	config   core.RuntimeConfig
	selected string
	quitting bool
}

// NewMenuModel creates a picker over every registered scene.
// Scenes that fail to load are still listed with the error as their goal.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	scenes := registry.List()

	rows := make([]table.Row, 0, len(scenes))
	for _, info := range scenes {
		rows = append(rows, sceneRow(info))
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Scene", Width: 10},
			{Title: "Title", Width: 18},
			{Title: "World", Width: 14},
			{Title: "Goal", Width: 30},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(menuTableHeight(cfg.ScreenH, len(rows))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		scenes: scenes,
		table:  t,
		help:   h,
		keys:   DefaultMenuKeyMap(),
		config: cfg,
	}
}

func sceneRow(info registry.Info) table.Row {
	sc, err := registry.Create(info.ID)
	if err != nil {
		return table.Row{info.ID, info.Title, "-", "error: " + err.Error()}
	}
	cfg := sc.Config()
	world := fmt.Sprintf("%gx%g@%d", cfg.World.Width, cfg.World.Height, cfg.World.TickRate)
	return table.Row{info.ID, sc.Title(), world, DescribeGoal(cfg)}
}

// DescribeGoal summarizes how a scene is won.
func DescribeGoal(cfg config.Scene) string {
	var goals []string
	if cfg.Rules.CollectAll {
		goals = append(goals, fmt.Sprintf("collect %d items", len(cfg.Items)))
	}
	if cfg.Rules.SurviveMs > 0 {
		goals = append(goals, fmt.Sprintf("survive %gs", float64(cfg.Rules.SurviveMs)/1000))
	}
	if len(goals) == 0 {
		return "explore"
	}
	return strings.Join(goals, " or ")
}

func menuTableHeight(screenH, rows int) int {
	h := screenH - 8 // title, help and margins
	if h > rows+1 {
		h = rows + 1
	}
	return max(h, 3)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.table.SetHeight(menuTableHeight(msg.Height, len(m.table.Rows())))
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("G A M E B U I L D E R"))
	b.WriteString("\n")
	if len(m.scenes) == 0 {
		b.WriteString(helpStyle.Italic(true).Render("No scenes registered."))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the chosen scene ID, or "" if none was chosen.
func (m MenuModel) Selected() string {
	return m.selected
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	SceneID string
	Config  core.RuntimeConfig // Updated by resize events
	Quit    bool
}

// RunMenu runs the scene picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.selected == "" {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{SceneID: m.selected, Config: m.config}, nil
}
