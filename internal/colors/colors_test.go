package colors

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	entries []string
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.entries = append(r.entries, "debug:"+msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.entries = append(r.entries, "info:"+msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.entries = append(r.entries, "warn:"+msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.entries = append(r.entries, "error:"+msg) }

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })
	return &out, &errOut
}

func TestStreams(t *testing.T) {
	out, errOut := captureOutput(t)

	Success("saved")
	Info("hello", "world")
	Warning("careful")
	Error("boom")
	LogInfo("progress")

	assert.Contains(t, out.String(), checkmark+Reset+" saved")
	assert.Contains(t, out.String(), "hello world")
	assert.Contains(t, errOut.String(), "Warning:"+Reset+" careful")
	assert.Contains(t, errOut.String(), "Error:"+Reset+" boom")
	assert.Contains(t, errOut.String(), "progress")
	assert.NotContains(t, out.String(), "progress")
}

func TestDebugGated(t *testing.T) {
	_, errOut := captureOutput(t)
	prev := DebugEnabled()
	t.Cleanup(func() { SetDebug(prev) })

	SetDebug(false)
	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	Debug("shown")
	assert.Contains(t, errOut.String(), "shown")
}

func TestLoggerMirrorsOutput(t *testing.T) {
	captureOutput(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	t.Cleanup(func() { SetLogger(nil) })

	Error("e")
	Warning("w")
	Success("s")

	assert.Equal(t, []string{"error:e", "warn:w", "info:s"}, rec.entries)
}

func TestStructuredLogRespectsToggles(t *testing.T) {
	_, errOut := captureOutput(t)
	prev := DebugEnabled()
	t.Cleanup(func() {
		SetDebug(prev)
		EnableStructuredLogging()
	})

	SetDebug(true)
	DisableStructuredLogging()
	StructuredInfo("startup", "main", "started", nil, nil)
	assert.Empty(t, errOut.String())

	EnableStructuredLogging()
	StructuredError("startup", "main", "failed", errors.New("bad"), map[string]interface{}{"n": 1})

	line := strings.TrimSpace(errOut.String())
	var entry StructuredLogEntry
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, LevelError, entry.Level)
	assert.Equal(t, "startup", entry.Component)
	assert.Equal(t, "bad", entry.Error)
}
