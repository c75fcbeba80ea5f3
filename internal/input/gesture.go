package input

import (
	"time"

	"github.com/cristianoliveira/swipewaifu/internal/config"
)

// Default gesture parameters.
const (
	DefaultDoubleTapWindow = 300 * time.Millisecond
	DefaultSwipeThreshold  = 50
	// CellWidth and CellHeight convert terminal cells to pixel-like units.
	CellWidth  = 8
	CellHeight = 16
)

// DoubleTap detects two taps within a window.
type DoubleTap struct {
	window time.Duration
	last   time.Time
}

// NewDoubleTap creates a detector. Non-positive windows use the default.
func NewDoubleTap(window time.Duration) *DoubleTap {
	if window <= 0 {
		window = DefaultDoubleTapWindow
	}
	return &DoubleTap{window: window}
}

// NewDoubleTapFromConfig uses double_tap_window.
func NewDoubleTapFromConfig() *DoubleTap {
	return NewDoubleTap(config.GetDuration("double_tap_window", DefaultDoubleTapWindow))
}

// Tap records a tap at now and reports whether it completes a double tap.
// Every tap becomes the reference for the next one, so three quick taps
// report two double taps.
func (d *DoubleTap) Tap(now time.Time) bool {
	double := !d.last.IsZero() && now.Sub(d.last) < d.window
	d.last = now
	return double
}

// Direction is the dominant axis of a swipe.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Swipe tracks a press-drag-release gesture in cell coordinates.
type Swipe struct {
	threshold int
	active    bool
	startX    int
	startY    int
}

// NewSwipe creates a detector. Non-positive thresholds use the default.
func NewSwipe(threshold int) *Swipe {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Swipe{threshold: threshold}
}

// NewSwipeFromConfig uses swipe_threshold.
func NewSwipeFromConfig() *Swipe {
	return NewSwipe(config.GetInt("swipe_threshold", DefaultSwipeThreshold))
}

// Press starts a drag at cell (x, y).
func (s *Swipe) Press(x, y int) {
	s.active = true
	s.startX, s.startY = x, y
}

// Active reports whether a drag is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// Cancel drops any drag in progress.
func (s *Swipe) Cancel() {
	s.active = false
}

// Release ends the drag at cell (x, y). It returns the swipe direction when
// the displacement on either axis exceeds the threshold, and DirectionNone
// otherwise (including when no drag was started).
func (s *Swipe) Release(x, y int) Direction {
	if !s.active {
		return DirectionNone
	}
	s.active = false

	dx := (x - s.startX) * CellWidth
	dy := (y - s.startY) * CellHeight
	if abs(dx) <= s.threshold && abs(dy) <= s.threshold {
		return DirectionNone
	}
	if abs(dx) >= abs(dy) {
		if dx < 0 {
			return DirectionLeft
		}
		return DirectionRight
	}
	if dy < 0 {
		return DirectionUp
	}
	return DirectionDown
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
