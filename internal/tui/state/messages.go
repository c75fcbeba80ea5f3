package state

import "github.com/cristianoliveira/swipewaifu/internal/domain"

// imageFetchedMsg carries the result of one API request.
type imageFetchedMsg struct {
	img domain.Image
	err error
}

// frameLoadedMsg carries a rendered frame for url.
type frameLoadedMsg struct {
	url   string
	frame string
	err   error
}

// autoTickMsg is one auto-advance tick tagged with the timer generation it
// was scheduled for.
type autoTickMsg struct {
	gen uint64
}

// loadingTickMsg advances the loading bar of fetch seq.
type loadingTickMsg struct {
	seq int
}

// noticeExpiredMsg clears notice seq if it is still the latest.
type noticeExpiredMsg struct {
	seq int
}
