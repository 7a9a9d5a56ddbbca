package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// KeyMap defines the key bindings used while a game is running.
// It centralizes bindings so they can be tested and shown in the help bar.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	RotateCW  key.Binding
	RotateCCW key.Binding
	SoftDrop  key.Binding
	HardDrop  key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Quit      key.Binding
	Help      key.Binding
	Snapshot  key.Binding
}

// DefaultKeyMap returns arrow, vim-style and letter bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("up", "k", "x", "w"),
			key.WithHelp("↑/x", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "rotate back"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "soft drop"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.HardDrop, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.HardDrop},
		{k.RotateCW, k.RotateCCW},
		{k.Pause, k.Restart, k.Snapshot},
		{k.Help, k.Quit},
	}
}

// Action translates a key message to a game action.
// Keys that only affect the driver (help, screenshot) map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.RotateCW):
		return core.ActionRotateCW
	case key.Matches(msg, k.RotateCCW):
		return core.ActionRotateCCW
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
