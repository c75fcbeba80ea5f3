package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/errors"
)

// HeaderState defines the inputs needed to render the status header.
type HeaderState struct {
	Mode        domain.Mode
	Category    string
	Favorite    bool
	Favorites   int
	Views       int
	AutoAdvance bool
	Interval    int
	Remaining   int
	Muted       bool
	Position    string
	Width       int
}

// Header renders the single status line at the top of the screen.
func Header(t Theme, s HeaderState) string {
	left := []string{t.Title.Render("swipewaifu")}
	mode := s.Mode.Label()
	if s.Mode == domain.ModeRestricted {
		mode = t.Accent.Render(mode)
	} else {
		mode = t.Muted.Render(mode)
	}
	left = append(left, mode, t.Base.Render(s.Category))
	if s.Position != "" {
		left = append(left, t.Muted.Render(s.Position))
	}

	heart := t.Muted.Render("♡")
	if s.Favorite {
		heart = t.Heart.Render("♥")
	}
	right := []string{
		fmt.Sprintf("%s %d", heart, s.Favorites),
		t.Muted.Render(fmt.Sprintf("#%d", s.Views)),
	}
	if s.AutoAdvance {
		right = append(right, t.Accent.Render(fmt.Sprintf("▶ %ds/%ds", s.Remaining, s.Interval)))
	}
	if s.Muted {
		right = append(right, t.Muted.Render("muted"))
	}

	sep := t.Muted.Render(" · ")
	return spread(strings.Join(left, sep), strings.Join(right, sep), s.Width)
}

// FooterState defines the inputs needed to render the footer.
type FooterState struct {
	Notice     string
	NoticeType errors.MessageType
	HasNotice  bool
	Help       string
	Width      int
}

// Footer renders the notice line when one is active, otherwise the short help.
func Footer(t Theme, s FooterState) string {
	if s.HasNotice {
		return lipgloss.PlaceHorizontal(s.Width, lipgloss.Center, t.Notice(s.NoticeType).Render(s.Notice))
	}
	return lipgloss.PlaceHorizontal(s.Width, lipgloss.Center, s.Help)
}

// Welcome renders the screen shown before the first image.
func Welcome(t Theme, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render("hi, press → for waifu"),
		"",
		t.Muted.Render("or drag anywhere · ? for shortcuts"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// Loading renders the progress bar view.
func Loading(t Theme, bar string, width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center, t.Muted.Render("loading"), "", bar)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// Message renders a centred single message, used for failed previews and
// when image rendering is off.
func Message(t Theme, title, detail string, width, height int) string {
	body := t.Base.Render(title)
	if detail != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, body, t.Muted.Render(truncate(detail, width-4)))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// Frame centres a rendered image in the body area.
func Frame(frame string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, frame)
}

// Dialog renders a bordered box with a title and body, centred.
func Dialog(t Theme, title, body string, width, height int) string {
	box := t.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, t.Title.Render(title), "", body))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, max int) string {
	if max <= 1 || lipgloss.Width(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) > max-1 {
		r = r[:max-1]
	}
	return string(r) + "…"
}
