// Package render draws the pieces of the browser screen.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/swipewaifu/internal/errors"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
)

// Theme is the set of styles for one color scheme.
type Theme struct {
	Name   string
	Base   lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Heart  lipgloss.Style
	Dialog lipgloss.Style
	notice map[errors.MessageType]lipgloss.Style
}

// Notice returns the style for a notice of type t.
func (t Theme) Notice(typ errors.MessageType) lipgloss.Style {
	if s, ok := t.notice[typ]; ok {
		return s
	}
	return t.Base
}

// Dark is the default theme.
func Dark() Theme {
	return Theme{
		Name:   preferences.ThemeDark,
		Base:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Heart:  lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(1, 3),
		notice: map[errors.MessageType]lipgloss.Style{
			errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
	}
}

// Light is the light theme.
func Light() Theme {
	return Theme{
		Name:   preferences.ThemeLight,
		Base:   lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("162")),
		Heart:  lipgloss.NewStyle().Foreground(lipgloss.Color("161")),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("162")).
			Padding(1, 3),
		notice: map[errors.MessageType]lipgloss.Style{
			errors.MessageTypeError:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			errors.MessageTypeWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
			errors.MessageTypeInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			errors.MessageTypeSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("162")),
		},
	}
}

// ForName returns the theme called name, falling back to Dark.
func ForName(name string) Theme {
	if name == preferences.ThemeLight {
		return Light()
	}
	return Dark()
}
