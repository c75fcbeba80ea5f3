package search

import (
	"testing"

	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func images() []domain.Image {
	return []domain.Image{
		{URL: "https://i.waifu.pics/AbC.png", Category: "neko"},
		{URL: "https://i.waifu.pics/xyz.gif", Category: "waifu", Restricted: true},
		{URL: "https://i.waifu.pics/q1.jpg", Category: "hug"},
	}
}

func TestSubstringProvider(t *testing.T) {
	p := NewSubstringProvider()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty matches all", "", 3},
		{"category", "neko", 1},
		{"case insensitive url", "abc", 1},
		{"mode label", "restricted", 1},
		{"shared host", "waifu.pics", 3},
		{"no match", "dragon", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Filter(p, images(), tt.query), tt.want)
		})
	}
	assert.Equal(t, "substring", p.Name())
}

func TestSubstringCaseSensitive(t *testing.T) {
	p := NewSubstringProvider(WithCaseInsensitive(false))
	assert.Empty(t, Filter(p, images(), "abc"))
	assert.Len(t, Filter(p, images(), "AbC"), 1)
}

func TestSubstringFields(t *testing.T) {
	p := NewSubstringProvider(WithFields([]string{FieldName}))
	assert.Empty(t, Filter(p, images(), "waifu"), "host is not part of the name")
	assert.Len(t, Filter(p, images(), ".gif"), 1)
}

func TestRegexProvider(t *testing.T) {
	p := NewRegexProvider()

	got := Filter(p, images(), `\.(gif|jpg)$`)
	require.Len(t, got, 2)
	assert.Equal(t, "xyz.gif", fieldValue(got[0], FieldName))

	assert.Len(t, Filter(p, images(), "^NEKO$"), 1)
	assert.Equal(t, "regex", p.Name())
}

func TestRegexInvalidPattern(t *testing.T) {
	p := NewRegexProvider()
	assert.Error(t, p.Compile("("))
	assert.Empty(t, Filter(p, images(), "("))
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(NewSubstringProvider(), images(), "i.waifu")
	assert.Equal(t, images(), got)
}
