// Package preview turns downloaded image bytes into terminal output.
package preview

import (
	"fmt"
	"os"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/cristianoliveira/swipewaifu/internal/config"
)

// Protocol is a terminal graphics protocol.
type Protocol string

const (
	ProtocolAuto       Protocol = "auto"
	ProtocolHalfblocks Protocol = "halfblocks"
	ProtocolKitty      Protocol = "kitty"
	ProtocolITerm2     Protocol = "iterm2"
	ProtocolSixel      Protocol = "sixel"
	ProtocolNone       Protocol = "none"
)

func (p Protocol) String() string {
	return string(p)
}

// ParseProtocol parses a configured protocol name.
func ParseProtocol(s string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ProtocolAuto, nil
	case ProtocolAuto, ProtocolHalfblocks, ProtocolKitty, ProtocolITerm2, ProtocolSixel, ProtocolNone:
		return p, nil
	default:
		return "", fmt.Errorf("invalid image protocol: %q", s)
	}
}

// Detect picks a protocol from the terminal environment. Terminals that are
// not recognised get halfblocks, which only needs true color.
func Detect(getenv func(string) string) Protocol {
	termProgram := getenv("TERM_PROGRAM")
	term := getenv("TERM")

	switch {
	case termProgram == "kitty", termProgram == "ghostty",
		term == "xterm-kitty", term == "xterm-ghostty",
		getenv("KITTY_WINDOW_ID") != "":
		return ProtocolKitty
	case termProgram == "iTerm.app", termProgram == "WezTerm",
		getenv("ITERM_SESSION_ID") != "", getenv("LC_TERMINAL") == "iTerm2",
		getenv("WEZTERM_EXECUTABLE") != "":
		return ProtocolITerm2
	case strings.Contains(term, "sixel") || termProgram == "foot" || term == "foot":
		return ProtocolSixel
	default:
		return ProtocolHalfblocks
	}
}

// Resolve maps ProtocolAuto to a detected protocol and returns others as is.
func Resolve(p Protocol, getenv func(string) string) Protocol {
	if p == ProtocolAuto || p == "" {
		return Detect(getenv)
	}
	return p
}

// ProtocolFromConfig resolves image_protocol against the process environment.
func ProtocolFromConfig() Protocol {
	p, err := ParseProtocol(config.Get("image_protocol", string(ProtocolAuto)))
	if err != nil {
		p = ProtocolAuto
	}
	return Resolve(p, os.Getenv)
}

var termimgProtocols = map[Protocol]termimg.Protocol{
	ProtocolKitty:  termimg.Kitty,
	ProtocolITerm2: termimg.ITerm2,
	ProtocolSixel:  termimg.Sixel,
}

func (p Protocol) graphics() (termimg.Protocol, bool) {
	proto, ok := termimgProtocols[p]
	return proto, ok
}
