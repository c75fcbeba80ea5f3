package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
	"gopkg.in/yaml.v3"
)

// JSONFormatter writes the same JSON the favorites store persists.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// FormatImages writes images as an indented JSON array.
func (f *JSONFormatter) FormatImages(images []domain.Image, writer io.Writer) error {
	if images == nil {
		images = []domain.Image{}
	}
	return writeJSON(writer, images)
}

// FormatPreferences writes preferences as an indented JSON object.
func (f *JSONFormatter) FormatPreferences(prefs preferences.Preferences, writer io.Writer) error {
	return writeJSON(writer, prefs)
}

func writeJSON(writer io.Writer, v any) error {
	enc := json.NewEncoder(writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAMLFormatter writes YAML documents.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// FormatImages writes images as a YAML sequence.
func (f *YAMLFormatter) FormatImages(images []domain.Image, writer io.Writer) error {
	if images == nil {
		images = []domain.Image{}
	}
	return writeYAML(writer, images)
}

// FormatPreferences writes preferences as a YAML mapping.
func (f *YAMLFormatter) FormatPreferences(prefs preferences.Preferences, writer io.Writer) error {
	return writeYAML(writer, prefs)
}

func writeYAML(writer io.Writer, v any) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// yamlImage mirrors the persisted image fields for YAML input.
type yamlImage struct {
	URL       string `yaml:"url"`
	Category  string `yaml:"category"`
	Timestamp int64  `yaml:"timestamp"`
	IsNsfw    bool   `yaml:"isNsfw"`
}

// ParseImages reads a favorites export. JSON arrays (the persisted form)
// and YAML sequences are accepted.
func ParseImages(data []byte) ([]domain.Image, error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var images []domain.Image
		if err := json.Unmarshal([]byte(trimmed), &images); err == nil {
			return images, nil
		}
	}

	var records []yamlImage
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse favorites: %w", err)
	}
	images := make([]domain.Image, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.URL) == "" {
			return nil, fmt.Errorf("parse favorites: entry %d: %w", i+1, domain.ErrEmptyURL)
		}
		img := domain.Image{
			URL:        strings.TrimSpace(rec.URL),
			Category:   rec.Category,
			Restricted: rec.IsNsfw,
		}
		if rec.Timestamp > 0 {
			img.FetchedAt = time.UnixMilli(rec.Timestamp).UTC()
		}
		images = append(images, img)
	}
	return images, nil
}
