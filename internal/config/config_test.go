package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDirs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SWIPEWAIFU_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("SWIPEWAIFU_STATE_DIR", filepath.Join(dir, "state"))
	reset()
	return dir
}

func TestLoadAndGet(t *testing.T) {
	setupDirs(t)
	Load()

	got := Get("missing", "default")
	require.Equal(t, "default", got)
}

func TestDefaults(t *testing.T) {
	dir := setupDirs(t)
	Load()

	assert.Equal(t, "https://api.waifu.pics", Get("api_base_url", ""))
	assert.Equal(t, 50, GetInt("history_size", 0))
	assert.Equal(t, 3, GetInt("auto_advance_interval", 0))
	assert.Equal(t, 300*time.Millisecond, GetDuration("double_tap_window", 0))
	assert.Equal(t, 1500*time.Millisecond, GetDuration("notice_duration", 0))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, filepath.Join(dir, "state", "swipewaifu.db"), Get("db_path", ""))
}

func TestLoadCreatesSampleConfig(t *testing.T) {
	dir := setupDirs(t)
	Load()

	data, err := os.ReadFile(filepath.Join(dir, "config", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# swipewaifu configuration")
	assert.Contains(t, string(data), "history_size = 50")
}

func TestConfigLoadingPrecedence(t *testing.T) {
	dir := setupDirs(t)
	configFile := filepath.Join(dir, "custom.toml")
	content := `
history_size = 20
auto_advance_interval = 7
image_protocol = "kitty"
request_timeout = "3s"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	t.Setenv("SWIPEWAIFU_CONFIG_PATH", configFile)
	t.Setenv("SWIPEWAIFU_AUTO_ADVANCE_INTERVAL", "9")
	Load()

	assert.Equal(t, 20, GetInt("history_size", 0), "config file value should be used")
	assert.Equal(t, 9, GetInt("auto_advance_interval", 0), "environment should override config file")
	assert.Equal(t, "kitty", Get("image_protocol", ""))
	assert.Equal(t, 3*time.Second, GetDuration("request_timeout", 0))
	assert.Equal(t, configFile, ConfigPath())
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	setupDirs(t)
	t.Setenv("SWIPEWAIFU_HISTORY_SIZE", "-4")
	t.Setenv("SWIPEWAIFU_IMAGE_PROTOCOL", "ascii-art")
	t.Setenv("SWIPEWAIFU_REQUEST_TIMEOUT", "soon")
	t.Setenv("SWIPEWAIFU_LOGGING_ENABLED", "maybe")
	t.Setenv("SWIPEWAIFU_API_BASE_URL", "ftp://example.com")
	Load()

	assert.Equal(t, "50", Get("history_size", ""))
	assert.Equal(t, "auto", Get("image_protocol", ""))
	assert.Equal(t, "10s", Get("request_timeout", ""))
	assert.Equal(t, "false", Get("logging_enabled", ""))
	assert.Equal(t, "https://api.waifu.pics", Get("api_base_url", ""))
}

func TestBoolNormalization(t *testing.T) {
	setupDirs(t)
	t.Setenv("SWIPEWAIFU_DEBUG", "yes")
	t.Setenv("SWIPEWAIFU_API_BASE_URL", "http://localhost:8080/")
	Load()

	assert.Equal(t, "true", Get("debug", ""))
	assert.True(t, GetBool("debug", false))
	assert.Equal(t, "http://localhost:8080", Get("api_base_url", ""))
}

func TestSetOverridesValue(t *testing.T) {
	setupDirs(t)
	Load()

	Set("default_category", "neko")
	assert.Equal(t, "neko", Get("default_category", ""))
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterValidator("history_size", PositiveIntValidator())
	})
}
