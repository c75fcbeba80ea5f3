package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/swipewaifu/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	config.Load()
	return tmp
}

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("SWIPEWAIFU_LOGGING_ENABLED", "true")
	t.Setenv("SWIPEWAIFU_LOGGING_LEVEL", "debug")
	t.Setenv("SWIPEWAIFU_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	require.True(t, cfg.Enabled)
	require.Equal(t, "debug", cfg.Level)
	require.Equal(t, 5, cfg.MaxFiles)
	require.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	require.Equal(t, os.Getpid(), cfg.PID)
}

func TestLogLevelMapping(t *testing.T) {
	setupTest(t)

	t.Setenv("SWIPEWAIFU_DEBUG", "true")
	t.Setenv("SWIPEWAIFU_LOGGING_LEVEL", "info")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level)

	t.Setenv("SWIPEWAIFU_QUIET", "true")
	config.Load()
	require.Equal(t, "debug", FromGlobalConfig().Level, "debug wins over quiet")

	t.Setenv("SWIPEWAIFU_DEBUG", "")
	config.Load()
	require.Equal(t, "error", FromGlobalConfig().Level)

	t.Setenv("SWIPEWAIFU_QUIET", "")
	t.Setenv("SWIPEWAIFU_LOGGING_LEVEL", "warn")
	config.Load()
	require.Equal(t, "warn", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	stateDir := config.Get("state_dir", "")
	require.True(t, strings.HasPrefix(stateDir, tmp), "state_dir %s not in temp dir %s", stateDir, tmp)

	logDir, err := LogDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(stateDir, "logs"), logDir)
	info, err := os.Stat(logDir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestInitDisabled(t *testing.T) {
	logger, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	require.IsType(t, noopLogger{}, logger)
	logger.Debug("test")
	logger.With("k", "v").Info("test")
	require.NoError(t, logger.Shutdown())
}

func TestInitEnabledWritesJSON(t *testing.T) {
	setupTest(t)
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"
	cfg.Command = "swipewaifu test"

	logger, err := Init(cfg)
	require.NoError(t, err)
	fl, ok := logger.(*fileLogger)
	require.True(t, ok)
	require.True(t, strings.HasPrefix(filepath.Base(fl.path), filePrefix))
	require.True(t, strings.HasSuffix(fl.path, "_swipewaifu_test.log"))

	logger.With("component", "history").Info("fetched", "url", "https://i.waifu.pics/a.png", "api_token", "abc")
	logger.Debug("tick", "remaining", 2)
	require.NoError(t, logger.Shutdown())

	entries := readEntries(t, fl.path)
	require.Len(t, entries, 2)
	assert.Equal(t, "fetched", entries[0]["msg"])
	assert.Equal(t, "history", entries[0]["component"])
	assert.Equal(t, "[REDACTED]", entries[0]["api_token"])
	assert.Equal(t, "https://i.waifu.pics/a.png", entries[0]["url"])
	assert.Equal(t, "tick", entries[1]["msg"])
}

func TestLevelFiltering(t *testing.T) {
	setupTest(t)
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "warn"

	logger, err := Init(cfg)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept")
	require.NoError(t, logger.Shutdown())

	entries := readEntries(t, logger.(*fileLogger).path)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["msg"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, clog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, clog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, clog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, clog.InfoLevel, parseLevel("bogus"))
}

func TestRotationKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, fmt.Sprintf("%s20250101_12000%d_PID999_test.log", filePrefix, i))
		require.NoError(t, os.WriteFile(name, []byte("x"), 0600))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(name, mod, mod))
	}
	other := filepath.Join(dir, "unrelated.log")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0600))

	require.NoError(t, rotate(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, 3)
	assert.Contains(t, names, "unrelated.log")
	assert.Contains(t, names, filePrefix+"20250101_120004_PID999_test.log")
	assert.Contains(t, names, filePrefix+"20250101_120003_PID999_test.log")
}

func TestRotationDisabled(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, fmt.Sprintf("%s%d.log", filePrefix, i)), nil, 0600))
	}
	require.NoError(t, rotate(dir, 0))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRedactor(t *testing.T) {
	r := newRedactor()
	out := r.redact([]any{"password", "p", "user", "u", "session_cookie", "c", 42, "odd"})
	assert.Equal(t, []any{"password", "[REDACTED]", "user", "u", "session_cookie", "[REDACTED]", 42, "odd"}, out)
	assert.False(t, r.isSensitive("keyboard"))
	assert.True(t, r.isSensitive("API-Key"))
}

func TestGlobalLogger(t *testing.T) {
	setupTest(t)
	t.Setenv("SWIPEWAIFU_LOGGING_ENABLED", "true")
	config.Load()

	require.NoError(t, InitGlobal())
	t.Cleanup(func() { _ = ShutdownGlobal() })
	path := CurrentLogFile()
	require.NotEmpty(t, path)

	With("component", "test").Warn("hello")
	require.NoError(t, ShutdownGlobal())
	assert.Empty(t, CurrentLogFile())

	entries := readEntries(t, path)
	require.NotEmpty(t, entries)
	assert.Equal(t, "hello", entries[len(entries)-1]["msg"])
}
