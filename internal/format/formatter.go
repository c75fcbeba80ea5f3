// Package format provides output formatting for CLI commands.
// It renders images and preferences as plain lines, tables, JSON or YAML.
package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatImages writes a list of images.
	FormatImages(images []domain.Image, writer io.Writer) error

	// FormatPreferences writes the persisted preferences.
	FormatPreferences(prefs preferences.Preferences, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeSimple prints one URL per line.
	FormatterTypeSimple FormatterType = "simple"

	// FormatterTypeTable prints aligned columns with headers.
	FormatterTypeTable FormatterType = "table"

	// FormatterTypeJSON prints the persisted JSON representation.
	FormatterTypeJSON FormatterType = "json"

	// FormatterTypeYAML prints YAML.
	FormatterTypeYAML FormatterType = "yaml"
)

// Types lists every formatter name accepted by ParseType.
func Types() []FormatterType {
	return []FormatterType{FormatterTypeSimple, FormatterTypeTable, FormatterTypeJSON, FormatterTypeYAML}
}

// ParseType validates a --format value.
func ParseType(s string) (FormatterType, error) {
	for _, t := range Types() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid format %q: expected simple, table, json or yaml", s)
}

// NewFormatter creates a new formatter of the specified type.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	case FormatterTypeJSON:
		return NewJSONFormatter()
	case FormatterTypeYAML:
		return NewYAMLFormatter()
	default:
		// Default to simple formatter for unknown types
		return NewSimpleFormatter()
	}
}
