package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(""))

	assert.Equal(t, zerolog.InfoLevel, LogLevel())
	assert.Equal(t, 60, TickRate())
	assert.Equal(t, Window{Width: 1280, Height: 720, Title: "gunplay"}, GetWindow())
	assert.Equal(t, Trace{CrosshairBias: 50, FireRange: 50000, ItemRange: 5000, MuzzleRange: 50000}, GetTrace())
	assert.Equal(t, Prefabs{Dir: "prefabs", Watch: false, Level: "level.yaml"}, GetPrefabs())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
logLevel: debug
tickRate: 120
window:
  width: 800
  title: range
trace:
  crosshairBias: 0
  itemRange: 2500
prefabs:
  watch: true
`
	path := filepath.Join(dir, "gunplay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	require.NoError(t, Load(path))

	assert.Equal(t, zerolog.DebugLevel, LogLevel())
	assert.Equal(t, 120, TickRate())

	win := GetWindow()
	assert.Equal(t, 800, win.Width)
	assert.Equal(t, 720, win.Height)
	assert.Equal(t, "range", win.Title)

	tr := GetTrace()
	assert.Equal(t, 0.0, tr.CrosshairBias)
	assert.Equal(t, 2500.0, tr.ItemRange)
	assert.Equal(t, 50000.0, tr.FireRange)

	assert.True(t, GetPrefabs().Watch)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("GUNPLAY_LOGLEVEL", "warn")
	t.Setenv("GUNPLAY_TRACE_FIRERANGE", "1234")

	require.NoError(t, Load(""))

	assert.Equal(t, zerolog.WarnLevel, LogLevel())
	assert.Equal(t, 1234.0, GetTrace().FireRange)
}

func TestLogLevel_Invalid(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("logLevel", "loud")
	assert.Equal(t, zerolog.InfoLevel, LogLevel())
}

func TestTickRate_NonPositive(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("tickRate", 0)
	assert.Equal(t, 60, TickRate())
}

func TestGetters(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("s", "value")
	viper.Set("i", 7)
	viper.Set("b", true)
	viper.Set("f", 2.5)

	assert.Equal(t, "value", GetString("s"))
	assert.Equal(t, 7, GetInt("i"))
	assert.True(t, GetBool("b"))
	assert.Equal(t, 2.5, GetFloat64("f"))
}
