// Package search filters images by a query. It supports substring and regex
// strategies through a common Provider interface, shared by the favorites
// command and its tests.
package search

import (
	"path"

	"github.com/cristianoliveira/swipewaifu/internal/domain"
)

// Provider defines the interface for search providers.
type Provider interface {
	// Match returns true if the image matches the search query.
	Match(img domain.Image, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Searchable fields.
const (
	FieldURL      = "url"
	FieldName     = "name"
	FieldCategory = "category"
	FieldMode     = "mode"
)

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields to search in (default: all fields)
}

// DefaultOptions returns the default search options.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldURL, FieldCategory, FieldMode},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
// Valid fields: "url", "name", "category", "mode".
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// fieldValue returns the text of field for img, or "" for unknown fields.
func fieldValue(img domain.Image, field string) string {
	switch field {
	case FieldURL:
		return img.URL
	case FieldName:
		return path.Base(img.URL)
	case FieldCategory:
		return img.Category
	case FieldMode:
		return img.Mode().Label()
	}
	return ""
}

// Filter returns the images p matches, preserving order.
func Filter(p Provider, images []domain.Image, query string) []domain.Image {
	out := make([]domain.Image, 0, len(images))
	for _, img := range images {
		if p.Match(img, query) {
			out = append(out, img)
		}
	}
	return out
}
