package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-clearcell/internal/config"
	"github.com/vovakirdan/tui-clearcell/internal/core"
)

// BoardPreset pairs a display name with board dimensions.
type BoardPreset struct {
	Name string
	Rows int
	Cols int
}

// Selectable board sizes, smallest first.
var boardPresets = []BoardPreset{
	{"Compact", 8, 10},
	{"Classic", 12, 16},
	{"Wide", 14, 24},
	{"Huge", 18, 32},
}

var difficultyPresets = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// SetupSelection holds the user's choices from the setup menu.
type SetupSelection struct {
	Rows   int
	Cols   int
	Preset config.DifficultyPreset
}

// SetupKeyMap defines the key bindings for the setup menu.
type SetupKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Adjust key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Adjust, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Adjust},
		{k.Select, k.Back, k.Quit},
	}
}

// DefaultSetupKeyMap returns default key bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Adjust: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "a", "d"),
			key.WithHelp("←/→", "change"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Setup menu rows.
const (
	setupRowBoard = iota
	setupRowDifficulty
	setupRowStart
	setupRowCount
)

// SetupModel lets users pick board size and difficulty before playing.
type SetupModel struct {
	cursor    int
	boardIdx  int
	diffIdx   int
	width     int
	height    int
	keyMapper *KeyMapper
	keys      SetupKeyMap
	help      help.Model
	choosing  bool
	quitting  bool
	back      bool
}

// NewSetupModel creates a new setup menu model.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		boardIdx:  1, // Classic
		diffIdx:   1, // Normal
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		keys:      DefaultSetupKeyMap(),
		help:      help.New(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < setupRowCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor == setupRowStart {
			m.choosing = false
			return m, tea.Quit
		}
		m.cursor++
	}
	return m, nil
}

// adjust cycles the value under the cursor.
func (m *SetupModel) adjust(delta int) {
	switch m.cursor {
	case setupRowBoard:
		m.boardIdx = (m.boardIdx + delta + len(boardPresets)) % len(boardPresets)
	case setupRowDifficulty:
		m.diffIdx = (m.diffIdx + delta + len(difficultyPresets)) % len(difficultyPresets)
	}
}

// View renders the setup menu.
func (m SetupModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C L E A R   C E L L", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Game setup:", m.width))
	b.WriteString("\n\n")

	preset := boardPresets[m.boardIdx]
	rows := []string{
		fmt.Sprintf("Board:      ‹ %s (%dx%d) ›", preset.Name, preset.Rows, preset.Cols),
		fmt.Sprintf("Difficulty: ‹ %s ›", difficultyPresets[m.diffIdx]),
		"Start",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *SetupSelection {
	if m.choosing {
		return nil
	}
	preset := boardPresets[m.boardIdx]
	return &SetupSelection{
		Rows:   preset.Rows,
		Cols:   preset.Cols,
		Preset: difficultyPresets[m.diffIdx],
	}
}

// RunSetupMenu runs the setup menu and returns the selection.
// A nil selection means the user backed out or quit.
func RunSetupMenu(cfg core.RuntimeConfig) (*SetupSelection, core.RuntimeConfig, error) {
	model := NewSetupModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, cfg, nil
	}

	// The terminal may have been resized while the menu was up; the game
	// should start at the final size, not the one probed before the menu.
	cfg = m.applySize(cfg)

	if m.quitting || m.back {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}

// applySize copies the menu's last known terminal dimensions into the
// runtime config.
func (m SetupModel) applySize(cfg core.RuntimeConfig) core.RuntimeConfig {
	if m.width > 0 {
		cfg.ScreenW = m.width
	}
	if m.height > 0 {
		cfg.ScreenH = m.height
	}
	return cfg
}

// centerText centers a line of text within the given width.
func centerText(text string, width int) string {
	pad := (width - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + text
}
