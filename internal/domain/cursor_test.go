package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorZeroValueIsLatest(t *testing.T) {
	var c Cursor
	assert.True(t, c.IsLatest())
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, "latest", c.String())
}

func TestCursorOlderNewer(t *testing.T) {
	c := Latest().Older()
	off, ok := c.Offset()
	assert.True(t, ok)
	assert.Equal(t, 0, off)
	assert.Equal(t, 1, c.Index())

	c = c.Older()
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, "offset(1)", c.String())

	c = c.Newer()
	assert.Equal(t, AtOffset(0), c)
	assert.True(t, c.Newer().IsLatest())
	assert.True(t, Latest().Newer().IsLatest())
}

func TestAtOffsetNegativeIsLatest(t *testing.T) {
	assert.True(t, AtOffset(-1).IsLatest())
}
