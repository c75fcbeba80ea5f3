package state

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/swipewaifu/internal/history"
)

// syncTimer enables the countdown only while auto-advance is on and an
// image is fully shown, and schedules a tick for each new timer generation.
func (m *Model) syncTimer() tea.Cmd {
	m.timer.SetEnabled(m.autoAdvance && m.imageLoaded && m.nav.Status() != history.StatusLoading)
	if !m.timer.Enabled() {
		return nil
	}
	gen := m.timer.Generation()
	if gen == m.tickGen {
		return nil
	}
	m.tickGen = gen
	return m.scheduleTick(gen)
}

func (m *Model) scheduleTick(gen uint64) tea.Cmd {
	return m.tick(m.timer.TickPeriod(), func(time.Time) tea.Msg { return autoTickMsg{gen: gen} })
}

// handleAutoTick drops ticks from a previous generation.
func (m *Model) handleAutoTick(msg autoTickMsg) tea.Cmd {
	if !m.timer.Enabled() || msg.gen != m.timer.Generation() {
		return nil
	}
	if m.timer.Tick() {
		return m.next()
	}
	return m.scheduleTick(msg.gen)
}
