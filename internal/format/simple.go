package format

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
)

// SimpleFormatter prints bare values, suitable for piping.
type SimpleFormatter struct{}

// NewSimpleFormatter creates a new SimpleFormatter.
func NewSimpleFormatter() *SimpleFormatter {
	return &SimpleFormatter{}
}

// FormatImages prints one URL per line.
func (f *SimpleFormatter) FormatImages(images []domain.Image, writer io.Writer) error {
	for _, img := range images {
		if _, err := fmt.Fprintln(writer, img.URL); err != nil {
			return err
		}
	}
	return nil
}

// FormatPreferences prints key=value lines in storage-key order.
func (f *SimpleFormatter) FormatPreferences(prefs preferences.Preferences, writer io.Writer) error {
	for _, key := range preferences.Keys() {
		value, _ := prefs.Value(key)
		if _, err := fmt.Fprintf(writer, "%s=%s\n", key, value); err != nil {
			return err
		}
	}
	return nil
}
