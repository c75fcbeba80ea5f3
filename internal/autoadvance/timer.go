// Package autoadvance implements the slideshow countdown.
package autoadvance

import (
	"context"
	"sync"
	"time"

	"github.com/cristianoliveira/swipewaifu/internal/config"
)

// DefaultInterval is the countdown length in seconds.
const DefaultInterval = 3

// TickPeriod is the wall-clock length of one tick.
const TickPeriod = time.Second

// Presets are the interval choices offered by the interval keys.
var Presets = []int{2, 3, 5, 10}

// Timer counts down from Interval one tick at a time and calls the fire
// callback when it reaches zero, then starts over. It does nothing while
// disabled.
type Timer struct {
	mu         sync.Mutex
	interval   int
	remaining  int
	enabled    bool
	generation uint64
	onFire     func()
	tickPeriod time.Duration
}

// Option configures a Timer.
type Option func(*Timer)

// WithTickPeriod changes how often Subscribe ticks.
func WithTickPeriod(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.tickPeriod = d
		}
	}
}

// New creates a disabled timer. Intervals below one second become one.
func New(interval int, onFire func(), opts ...Option) *Timer {
	interval = clamp(interval)
	t := &Timer{
		interval:   interval,
		remaining:  interval,
		onFire:     onFire,
		tickPeriod: TickPeriod,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewFromConfig creates a timer using auto_advance_interval.
func NewFromConfig(onFire func()) *Timer {
	return New(config.GetInt("auto_advance_interval", DefaultInterval), onFire)
}

func clamp(interval int) int {
	if interval < 1 {
		return 1
	}
	return interval
}

// Tick advances the countdown by one second. It reports whether the fire
// callback ran. The callback is invoked without the lock held.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	if !t.enabled {
		t.mu.Unlock()
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		t.mu.Unlock()
		return false
	}
	t.remaining = t.interval
	fire := t.onFire
	t.mu.Unlock()

	if fire != nil {
		fire()
	}
	return true
}

// Reset restarts the countdown from the full interval.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.remaining = t.interval
	t.generation++
}

// SetInterval changes the interval and restarts the countdown.
func (t *Timer) SetInterval(interval int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.interval = clamp(interval)
	t.remaining = t.interval
	t.generation++
}

// SetEnabled starts or halts ticking. Enabling a disabled timer starts a
// fresh cycle.
func (t *Timer) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if enabled == t.enabled {
		return
	}
	t.enabled = enabled
	t.remaining = t.interval
	t.generation++
}

// Enabled reports whether the timer ticks.
func (t *Timer) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// Interval returns the interval in seconds.
func (t *Timer) Interval() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.interval
}

// Remaining returns the seconds left in the current cycle.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Generation changes whenever the countdown is restarted or toggled.
// Event loops tag scheduled ticks with it and drop ticks whose tag is stale.
func (t *Timer) Generation() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}

// TickPeriod returns the wall-clock period between ticks.
func (t *Timer) TickPeriod() time.Duration {
	return t.tickPeriod
}

// Subscribe ticks the timer on a goroutine until ctx is done or the returned
// stop function is called. stop waits for the goroutine to exit and is safe
// to call more than once.
func (t *Timer) Subscribe(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(t.tickPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				t.Tick()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

// NextPreset returns the smallest preset above current, or the largest preset.
func NextPreset(current int) int {
	for _, p := range Presets {
		if p > current {
			return p
		}
	}
	return Presets[len(Presets)-1]
}

// PrevPreset returns the largest preset below current, or the smallest preset.
func PrevPreset(current int) int {
	for i := len(Presets) - 1; i >= 0; i-- {
		if Presets[i] < current {
			return Presets[i]
		}
	}
	return Presets[0]
}
