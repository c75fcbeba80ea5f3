package input

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDoubleTap(t *testing.T) {
	d := NewDoubleTap(0)
	t0 := time.Unix(100, 0)

	assert.False(t, d.Tap(t0))
	assert.True(t, d.Tap(t0.Add(299*time.Millisecond)))
	assert.False(t, d.Tap(t0.Add(700*time.Millisecond)))
	assert.False(t, d.Tap(t0.Add(1000*time.Millisecond)))
}

func TestSwipeThreshold(t *testing.T) {
	tests := []struct {
		name         string
		fromX, fromY int
		toX, toY     int
		want         Direction
	}{
		{"click", 10, 10, 10, 10, DirectionNone},
		{"small horizontal", 10, 10, 16, 10, DirectionNone},
		{"just under threshold", 10, 10, 10, 13, DirectionNone},
		{"right", 10, 10, 17, 10, DirectionRight},
		{"left", 20, 10, 10, 10, DirectionLeft},
		{"down", 10, 10, 11, 14, DirectionDown},
		{"up", 10, 10, 10, 5, DirectionUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSwipe(50)
			s.Press(tt.fromX, tt.fromY)
			assert.True(t, s.Active())
			got := s.Release(tt.toX, tt.toY)
			assert.Equal(t, tt.want, got, got.String())
			assert.False(t, s.Active())
		})
	}
}

func TestSwipeReleaseWithoutPress(t *testing.T) {
	s := NewSwipe(0)
	assert.Equal(t, DirectionNone, s.Release(100, 100))

	s.Press(0, 0)
	s.Cancel()
	assert.Equal(t, DirectionNone, s.Release(100, 100))
}

func TestKeyMap(t *testing.T) {
	k := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRight}, k.Next))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, k.Next))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, k.Prev))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, k.Prev))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, k.Favorite))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, k.AutoAdvance))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, k.Mute))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, k.Help))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, k.Quit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftRight}, k.Forward))

	assert.NotEmpty(t, k.ShortHelp())
	assert.Len(t, k.FullHelp(), 5)
}
