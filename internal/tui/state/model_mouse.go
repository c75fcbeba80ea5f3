package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/swipewaifu/internal/input"
)

// handleMouse turns a left-button drag past the swipe threshold into next
// and two quick presses into a favorite toggle.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.overlay != overlayNone {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.swipe.Press(msg.X, msg.Y)
		if m.doubleTap.Tap(m.now()) {
			return m.toggleFavorite()
		}
	case tea.MouseActionRelease:
		if m.swipe.Release(msg.X, msg.Y) != input.DirectionNone {
			return m.next()
		}
	}
	return nil
}
