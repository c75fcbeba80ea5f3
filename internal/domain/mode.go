package domain

import "fmt"

// Mode is the content-rating mode an image is requested in.
type Mode string

const (
	ModeStandard   Mode = "sfw"
	ModeRestricted Mode = "nsfw"
)

// IsValid checks if the mode is one of the known modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeStandard, ModeRestricted:
		return true
	default:
		return false
	}
}

// String returns the path segment used by the image API.
func (m Mode) String() string {
	return string(m)
}

// Label returns a short human-readable label.
func (m Mode) Label() string {
	if m == ModeRestricted {
		return "restricted"
	}
	return "standard"
}

// ParseMode accepts either the API segment or the human label.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "sfw", "standard":
		return ModeStandard, nil
	case "nsfw", "restricted":
		return ModeRestricted, nil
	default:
		return "", fmt.Errorf("invalid mode: %q", s)
	}
}
