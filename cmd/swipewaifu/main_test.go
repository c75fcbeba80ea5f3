package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/stretchr/testify/assert"
)

func captureStructured(t *testing.T) *bytes.Buffer {
	t.Helper()
	colors.EnableStructuredLogging()
	colors.SetDebug(true)
	t.Cleanup(func() {
		colors.SetDebug(false)
		colors.EnableStructuredLogging()
	})
	return captureColors(t)
}

func TestRunNonTUILogsStartupAndCompletion(t *testing.T) {
	out := captureStructured(t)

	code := run([]string{"favorites", "list"}, func() error { return nil })

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), `"component":"startup"`)
	assert.Contains(t, out.String(), `"status":"started"`)
	assert.Contains(t, out.String(), `"status":"completed"`)
}

func TestRunNonTUILogsFailure(t *testing.T) {
	out := captureStructured(t)

	code := run([]string{"fetch"}, func() error { return errors.New("boom") })

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), `"status":"failed"`)
	assert.Contains(t, out.String(), "boom")
}

func TestRunTUISkipsStartupStructuredLogs(t *testing.T) {
	out := captureStructured(t)

	code := run([]string{"slideshow"}, func() error { return nil })

	assert.Equal(t, 0, code)
	assert.Empty(t, out.String())
}

func TestIsTUICommand(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{nil, true},
		{[]string{"--mode", "nsfw"}, true},
		{[]string{"slideshow", "--interval", "5"}, true},
		{[]string{"fetch"}, false},
		{[]string{"--help"}, false},
		{[]string{"-v"}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isTUICommand(tt.args), "%v", tt.args)
	}
}
