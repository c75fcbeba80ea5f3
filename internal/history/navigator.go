// Package history keeps the bounded, most-recent-first list of fetched images
// and the cursor that decides which one is on screen.
package history

import (
	"context"
	"errors"
	"sync"

	"github.com/cristianoliveira/swipewaifu/internal/config"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
)

// DefaultCapacity is the number of images retained when none is configured.
const DefaultCapacity = 50

// ErrFetchInFlight is returned when a fetch is requested while one is outstanding.
var ErrFetchInFlight = errors.New("history: fetch already in flight")

// Fetcher produces the next image.
type Fetcher interface {
	Fetch(ctx context.Context, mode domain.Mode, category string) (domain.Image, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, mode domain.Mode, category string) (domain.Image, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, mode domain.Mode, category string) (domain.Image, error) {
	return f(ctx, mode, category)
}

// Status is the fetch lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// State is a copy of the navigator state.
type State struct {
	History []domain.Image
	Cursor  domain.Cursor
	Current domain.Image
	Status  Status
	Err     error
	// Pinned is true when Current was set with Display rather than by the cursor.
	Pinned bool
}

// HasCurrent reports whether an image is on screen.
func (s State) HasCurrent() bool {
	return !s.Current.IsZero()
}

// Navigator owns the history, cursor and status. All methods are safe for
// concurrent use.
type Navigator struct {
	mu       sync.Mutex
	capacity int
	history  []domain.Image
	cursor   domain.Cursor
	status   Status
	err      error
	pinned   *domain.Image
}

// New creates a navigator retaining at most capacity images.
// Non-positive capacities use DefaultCapacity.
func New(capacity int) *Navigator {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Navigator{capacity: capacity}
}

// NewFromConfig creates a navigator sized by history_size.
func NewFromConfig() *Navigator {
	return New(config.GetInt("history_size", DefaultCapacity))
}

// Capacity returns the history cap.
func (n *Navigator) Capacity() int {
	return n.capacity
}

// RequestNext fetches one image and makes it current. It is Begin, the
// fetch, and Complete or Fail run back to back.
func (n *Navigator) RequestNext(ctx context.Context, f Fetcher, mode domain.Mode, category string) (domain.Image, error) {
	if err := n.Begin(); err != nil {
		return domain.Image{}, err
	}
	img, err := f.Fetch(ctx, mode, category)
	if err != nil {
		n.Fail(err)
		return domain.Image{}, err
	}
	n.Complete(img)
	return img, nil
}

// Begin marks a fetch as started: status becomes loading and the cursor
// returns to Latest. It returns ErrFetchInFlight without changing anything
// when a fetch is already outstanding.
func (n *Navigator) Begin() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.status == StatusLoading {
		return ErrFetchInFlight
	}
	n.status = StatusLoading
	n.err = nil
	n.cursor = domain.Latest()
	n.pinned = nil
	return nil
}

// Complete prepends img, evicting the oldest entries beyond capacity.
func (n *Navigator) Complete(img domain.Image) {
	n.mu.Lock()
	defer n.mu.Unlock()

	h := make([]domain.Image, 0, min(len(n.history)+1, n.capacity))
	h = append(h, img)
	h = append(h, n.history...)
	if len(h) > n.capacity {
		h = h[:n.capacity]
	}
	n.history = h
	n.cursor = domain.Latest()
	n.status = StatusReady
	n.err = nil
}

// Fail records a failed fetch. History and cursor are left untouched.
func (n *Navigator) Fail(err error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.status = StatusError
	n.err = err
}

// ClearError moves an error status back to idle.
func (n *Navigator) ClearError() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.status == StatusError {
		n.status = StatusIdle
		n.err = nil
	}
}

// backTarget returns the cursor GoBack would move to. AtOffset(k) shows
// history[k+1], and the oldest retained entry is never a back target.
func (n *Navigator) backTarget() (domain.Cursor, bool) {
	next := n.cursor.Older()
	off, _ := next.Offset()
	if off+1 >= len(n.history)-1 {
		return n.cursor, false
	}
	return next, true
}

// GoBack moves one step toward older images.
func (n *Navigator) GoBack() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	next, ok := n.backTarget()
	if !ok {
		return false
	}
	n.cursor = next
	n.pinned = nil
	return true
}

// GoForward moves one step toward newer images.
func (n *Navigator) GoForward() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.cursor.IsLatest() {
		return false
	}
	n.cursor = n.cursor.Newer()
	n.pinned = nil
	return true
}

// CanGoBack reports whether GoBack would move.
func (n *Navigator) CanGoBack() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, ok := n.backTarget()
	return ok
}

// CanGoForward reports whether GoForward would move.
func (n *Navigator) CanGoForward() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return !n.cursor.IsLatest()
}

// Display pins img on screen without touching history. The next navigation
// or fetch unpins it.
func (n *Navigator) Display(img domain.Image) {
	n.mu.Lock()
	defer n.mu.Unlock()

	pinned := img
	n.pinned = &pinned
}

// Current returns the image on screen and whether there is one.
func (n *Navigator) Current() (domain.Image, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	img := n.currentLocked()
	return img, !img.IsZero()
}

// Status returns the fetch status.
func (n *Navigator) Status() Status {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status
}

// Len returns the number of retained images.
func (n *Navigator) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.history)
}

// Snapshot returns a copy of the full state.
func (n *Navigator) Snapshot() State {
	n.mu.Lock()
	defer n.mu.Unlock()

	h := make([]domain.Image, len(n.history))
	copy(h, n.history)
	return State{
		History: h,
		Cursor:  n.cursor,
		Current: n.currentLocked(),
		Status:  n.status,
		Err:     n.err,
		Pinned:  n.pinned != nil,
	}
}

func (n *Navigator) currentLocked() domain.Image {
	if n.pinned != nil {
		return *n.pinned
	}
	idx := n.cursor.Index()
	if idx >= len(n.history) {
		return domain.Image{}
	}
	return n.history[idx]
}
