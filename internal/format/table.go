package format

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
)

// TableConfig holds configuration for table formatting.
type TableConfig struct {
	// ShowHeaders determines whether to show column headers.
	ShowHeaders bool

	// HeaderColor is the color to use for headers. Empty disables color.
	HeaderColor string

	// ColumnWidths defines the width for each column.
	ColumnWidths map[string]int
}

// DefaultTableConfig returns a default table configuration.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		ShowHeaders: true,
		HeaderColor: colors.Blue,
		ColumnWidths: map[string]int{
			"#":        3,
			"Name":     24,
			"Category": 10,
			"Mode":     10,
			"Saved":    16,
			"Key":      18,
		},
	}
}

// TableColumn represents a column in an image table.
type TableColumn struct {
	// Name is the column name displayed in the header.
	Name string

	// Width is the column width in characters. Zero means unbounded.
	Width int

	// Extractor extracts the value from an image.
	Extractor func(i int, img domain.Image) string
}

// TableFormatter formats images in aligned columns.
type TableFormatter struct {
	config  *TableConfig
	columns []TableColumn
}

// NewTableFormatter creates a TableFormatter with the default columns.
func NewTableFormatter() *TableFormatter {
	config := DefaultTableConfig()
	columns := []TableColumn{
		{
			Name:  "#",
			Width: config.ColumnWidths["#"],
			Extractor: func(i int, _ domain.Image) string {
				return fmt.Sprintf("%d", i+1)
			},
		},
		{
			Name:  "Name",
			Width: config.ColumnWidths["Name"],
			Extractor: func(_ int, img domain.Image) string {
				return path.Base(img.URL)
			},
		},
		{
			Name:  "Category",
			Width: config.ColumnWidths["Category"],
			Extractor: func(_ int, img domain.Image) string {
				return img.Category
			},
		},
		{
			Name:  "Mode",
			Width: config.ColumnWidths["Mode"],
			Extractor: func(_ int, img domain.Image) string {
				return img.Mode().Label()
			},
		},
		{
			Name:  "Saved",
			Width: config.ColumnWidths["Saved"],
			Extractor: func(_ int, img domain.Image) string {
				if img.FetchedAt.IsZero() {
					return "-"
				}
				return img.FetchedAt.Local().Format("2006-01-02 15:04")
			},
		},
		{
			Name: "URL",
			Extractor: func(_ int, img domain.Image) string {
				return img.URL
			},
		},
	}
	return &TableFormatter{config: config, columns: columns}
}

// WithoutColor disables the header color, for output that is not a terminal.
func (f *TableFormatter) WithoutColor() *TableFormatter {
	f.config.HeaderColor = ""
	return f
}

// FormatImages formats images as a table.
func (f *TableFormatter) FormatImages(images []domain.Image, writer io.Writer) error {
	if len(images) == 0 {
		_, err := fmt.Fprintln(writer, "No favorites")
		return err
	}

	if f.config.ShowHeaders {
		names := make([]string, len(f.columns))
		rules := make([]string, len(f.columns))
		for i, col := range f.columns {
			names[i] = formatString(col.Name, col.Width)
			rules[i] = strings.Repeat("-", max(col.Width, len(col.Name)))
		}
		if err := f.writeHeader(writer, strings.Join(names, "  ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(writer, strings.Join(rules, "  ")); err != nil {
			return err
		}
	}

	for i, img := range images {
		cells := make([]string, len(f.columns))
		for c, col := range f.columns {
			cells[c] = formatString(col.Extractor(i, img), col.Width)
		}
		if _, err := fmt.Fprintln(writer, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

// FormatPreferences formats preferences as a two-column table.
func (f *TableFormatter) FormatPreferences(prefs preferences.Preferences, writer io.Writer) error {
	width := f.config.ColumnWidths["Key"]
	if f.config.ShowHeaders {
		if err := f.writeHeader(writer, formatString("Key", width)+"  Value"); err != nil {
			return err
		}
	}
	for _, key := range preferences.Keys() {
		value, _ := prefs.Value(key)
		if _, err := fmt.Fprintf(writer, "%s  %s\n", formatString(key, width), value); err != nil {
			return err
		}
	}
	return nil
}

func (f *TableFormatter) writeHeader(writer io.Writer, line string) error {
	line = strings.TrimRight(line, " ")
	if f.config.HeaderColor != "" {
		line = f.config.HeaderColor + line + colors.Reset
	}
	_, err := fmt.Fprintln(writer, line)
	return err
}

// formatString pads or truncates s to width. Zero width leaves s untouched.
func formatString(s string, width int) string {
	if width <= 0 {
		return s
	}
	return fmt.Sprintf("%-*s", width, truncateString(s, width))
}

// truncateString shortens s to at most width runes, marking the cut with "...".
func truncateString(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
