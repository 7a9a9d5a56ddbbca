package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// MenuChoice is what the player picked on the start menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// Difficulties lists the presets the menu cycles through. The empty preset
// keeps the configured difficulty.
var Difficulties = []string{"", "easy", "normal", "hard", "fixed"}

type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemScores
	itemQuit
	itemCount
)

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Left:   key.NewBinding(key.WithKeys("left", "h")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	title      string
	gameID     string
	cursor     menuItem
	difficulty int // index into Difficulties
	highScore  int
	config     core.RuntimeConfig
	keys       MenuKeyMap
	choice     MenuChoice
}

// NewMenuModel creates the start menu. difficulty preselects a preset.
func NewMenuModel(store *storage.Store, gameID, title, difficulty string, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:  title,
		gameID: gameID,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
	}
	for i, d := range Difficulties {
		if d == difficulty {
			m.difficulty = i
		}
	}
	if store != nil {
		if hs, err := store.HighScore(gameID); err == nil {
			m.highScore = hs
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + itemCount - 1) % itemCount

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % itemCount

	case key.Matches(msg, m.keys.Left):
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + len(Difficulties) - 1) % len(Difficulties)
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor == itemDifficulty {
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
		}

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case itemPlay:
			m.choice = MenuPlay
		case itemDifficulty:
			m.difficulty = (m.difficulty + 1) % len(Difficulties)
			return m, nil
		case itemScores:
			m.choice = MenuScores
		case itemQuit:
			m.choice = MenuQuit
		}
		return m, tea.Quit
	}

	return m, nil
}

func difficultyLabel(d string) string {
	if d == "" {
		return "config"
	}
	return d
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}
	width := m.config.ScreenW

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(helpStyle.Render(fmt.Sprintf("Best: %d pieces", m.highScore)), width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	labels := [itemCount]string{
		itemPlay:       "Play",
		itemDifficulty: fmt.Sprintf("Difficulty: < %s >", difficultyLabel(Difficulties[m.difficulty])),
		itemScores:     "High Scores",
		itemQuit:       "Quit",
	}
	for i, label := range labels {
		cursor := "  "
		if menuItem(i) == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%-24s", cursor+label), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"), width))
	b.WriteString("\n")

	return b.String()
}

// spaced puts a space between the letters of s.
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty string
	Config     core.RuntimeConfig
}

// Result returns the player's choice and the current settings.
func (m MenuModel) Result() MenuResult {
	choice := m.choice
	if choice == MenuNone {
		choice = MenuQuit
	}
	return MenuResult{
		Choice:     choice,
		Difficulty: Difficulties[m.difficulty],
		Config:     m.config,
	}
}

// RunMenu runs the start menu and returns the selection result.
func RunMenu(store *storage.Store, gameID, title, difficulty string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, gameID, title, difficulty, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}
	return m.Result(), nil
}
