package format

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleImages() []domain.Image {
	return []domain.Image{
		{URL: "https://i.waifu.pics/abc.png", Category: "neko", FetchedAt: time.UnixMilli(1714564800000).UTC()},
		{URL: "https://i.waifu.pics/def.jpg", Category: "waifu", Restricted: true},
	}
}

func TestFormatterFactory(t *testing.T) {
	tests := []struct {
		name     string
		ftype    FormatterType
		expected interface{}
	}{
		{"Simple", FormatterTypeSimple, &SimpleFormatter{}},
		{"Table", FormatterTypeTable, &TableFormatter{}},
		{"JSON", FormatterTypeJSON, &JSONFormatter{}},
		{"YAML", FormatterTypeYAML, &YAMLFormatter{}},
		{"Unknown", FormatterType("unknown"), &SimpleFormatter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.IsType(t, tt.expected, NewFormatter(tt.ftype))
		})
	}
}

func TestParseType(t *testing.T) {
	got, err := ParseType("yaml")
	require.NoError(t, err)
	assert.Equal(t, FormatterTypeYAML, got)

	_, err = ParseType("xml")
	assert.Error(t, err)
}

func TestSimpleFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSimpleFormatter().FormatImages(sampleImages(), &buf))
	assert.Equal(t, "https://i.waifu.pics/abc.png\nhttps://i.waifu.pics/def.jpg\n", buf.String())

	buf.Reset()
	require.NoError(t, NewSimpleFormatter().FormatPreferences(preferences.Defaults(), &buf))
	assert.Equal(t, "theme=dark\nwaifu-view-count=0\nnsfw-age-verified=false\nsound-muted=false\n", buf.String())
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().WithoutColor().FormatImages(sampleImages(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "abc.png")
	assert.Contains(t, out, "neko")
	assert.Contains(t, out, "restricted")
	assert.Contains(t, out, "https://i.waifu.pics/def.jpg")
	assert.NotContains(t, out, "\033[")
}

func TestTableFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter().FormatImages(nil, &buf))
	assert.Equal(t, "No favorites\n", buf.String())
}

func TestTableFormatterPreferences(t *testing.T) {
	var buf bytes.Buffer
	prefs := preferences.Defaults()
	prefs.ViewCount = 7
	require.NoError(t, NewTableFormatter().WithoutColor().FormatPreferences(prefs, &buf))
	assert.Contains(t, buf.String(), "waifu-view-count")
	assert.Contains(t, buf.String(), "7")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
}

func TestJSONFormatterMatchesPersistedShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatImages(sampleImages()[:1], &buf))

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "https://i.waifu.pics/abc.png", raw[0]["url"])
	assert.Equal(t, float64(1714564800000), raw[0]["timestamp"])
	assert.Equal(t, false, raw[0]["isNsfw"])
}

func TestJSONFormatterEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().FormatImages(nil, &buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().FormatImages(sampleImages(), &buf))

	var raw []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw, 2)
	assert.Equal(t, "neko", raw[0]["category"])
	assert.Equal(t, true, raw[1]["isNsfw"])
}

func TestParseImagesAcceptsJSONAndYAML(t *testing.T) {
	for _, f := range []Formatter{NewJSONFormatter(), NewYAMLFormatter()} {
		var buf bytes.Buffer
		require.NoError(t, f.FormatImages(sampleImages(), &buf))

		got, err := ParseImages(buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, sampleImages(), got)
	}
}

func TestParseImagesRejectsMissingURL(t *testing.T) {
	_, err := ParseImages([]byte("- category: neko\n"))
	assert.ErrorIs(t, err, domain.ErrEmptyURL)
}

func TestParseImagesEmpty(t *testing.T) {
	got, err := ParseImages([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}
