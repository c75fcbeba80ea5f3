package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	out := Header(Dark(), HeaderState{
		Mode:        domain.ModeStandard,
		Category:    "neko",
		Favorite:    true,
		Favorites:   3,
		Views:       12,
		AutoAdvance: true,
		Interval:    5,
		Remaining:   2,
		Width:       100,
	})

	assert.Contains(t, out, "swipewaifu")
	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "neko")
	assert.Contains(t, out, "♥")
	assert.Contains(t, out, "#12")
	assert.Contains(t, out, "2s/5s")
	assert.Equal(t, 100, lipgloss.Width(out))
}

func TestHeaderNarrow(t *testing.T) {
	out := Header(Light(), HeaderState{Mode: domain.ModeRestricted, Category: "waifu", Width: 5, Muted: true})
	assert.Contains(t, out, "restricted")
	assert.Contains(t, out, "muted")
	assert.Contains(t, out, "♡")
}

func TestFooter(t *testing.T) {
	out := Footer(Dark(), FooterState{Notice: "♥ saved!", NoticeType: errors.MessageTypeSuccess, HasNotice: true, Help: "help", Width: 40})
	assert.Contains(t, out, "♥ saved!")
	assert.NotContains(t, out, "help")

	out = Footer(Dark(), FooterState{Help: "→ next", Width: 40})
	assert.Contains(t, out, "→ next")
}

func TestBodies(t *testing.T) {
	assert.Contains(t, Welcome(Dark(), 60, 10), "press → for waifu")
	assert.Contains(t, Loading(Dark(), "[###]", 60, 10), "[###]")
	assert.Contains(t, Message(Dark(), "could not load", "timeout", 60, 10), "timeout")
	assert.Contains(t, Dialog(Dark(), "Reset?", "y/n", 60, 12), "Reset?")

	frame := Frame("XX", 10, 3)
	assert.Equal(t, 3, len(strings.Split(frame, "\n")))
}

func TestForName(t *testing.T) {
	assert.Equal(t, "light", ForName("light").Name)
	assert.Equal(t, "dark", ForName("dark").Name)
	assert.Equal(t, "dark", ForName("").Name)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
