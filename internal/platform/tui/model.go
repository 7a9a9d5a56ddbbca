package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// Optional game capabilities, checked with type assertions.
type (
	repeatConfigurer interface{ RepeatConfig() core.RepeatConfig }
	resizer          interface{ Resize(w, h int) }
	seeded           interface{ Seed() int64 }
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	repeater   *core.Repeater
	inputFrame core.InputFrame
	gameState  core.GameState
	termH      int
	frames     int  // frames played in the current game
	quitting   bool
	scoreSaved bool // whether the score has been saved for the current game over
	now        func() time.Time
}

// NewModel creates a model for the given game and starts it.
// cfg.ScreenH is the terminal height; one line is kept for the help bar.
// A nil store disables score saving and a nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		termH:      cfg.ScreenH,
		now:        time.Now,
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)

	m.game.Reset(m.config)
	m.gameState = m.game.State()

	repeat := core.DefaultRepeatConfig()
	if rc, ok := game.(repeatConfigurer); ok {
		repeat = rc.RepeatConfig()
	}
	m.repeater = core.NewRepeater(repeat)

	return m
}

// gameHeight is the terminal height left after the help bar.
func (m Model) gameHeight() int {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			lines = max(lines, len(col))
		}
	}
	return max(m.termH-lines, 0)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.applySize(m.config.ScreenW, m.termH)
		return m, nil
	case key.Matches(msg, m.keys.Snapshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.repeater.Press(action, m.now()) {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.help.Width = msg.Width
	m.applySize(msg.Width, msg.Height)
	return m, nil
}

// applySize resizes the screen buffer and tells the game. Games that cannot
// relayout in place are restarted unless the current game is over.
func (m *Model) applySize(width, height int) {
	m.termH = height
	m.config.ScreenW = width
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.frames = 0
	}
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case prev.GameOver && !m.gameState.GameOver:
		m.logger.Debug("new game started")
		m.frames = 0
		m.scoreSaved = false
		m.repeater.Reset()
	case !m.gameState.GameOver && !m.gameState.Paused:
		m.frames++
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.FrameDuration())
}

// saveScore records the finished game. Empty games are not recorded.
func (m *Model) saveScore() {
	if m.store == nil || m.gameState.Score == 0 {
		return
	}

	seed := m.config.Seed
	if s, ok := m.game.(seeded); ok {
		seed = s.Seed()
	}
	id, err := m.store.SaveEntry(storage.ScoreEntry{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
		Frames: m.frames,
		Seed:   seed,
	})
	if err != nil {
		m.logger.Error("cannot save score", "err", err)
		return
	}
	m.logger.Info("score saved", "id", id, "score", m.gameState.Score, "level", m.gameState.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
