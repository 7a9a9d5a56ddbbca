// Package tui provides the Bubble Tea integration for Blockfall.
// It runs the frame loop, maps keys to actions and draws the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
