package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Window holds host window settings.
type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// Trace holds the crosshair bias in pixels and trace ranges in world units.
type Trace struct {
	CrosshairBias float64 `mapstructure:"crosshairBias"`
	FireRange     float64 `mapstructure:"fireRange"`
	ItemRange     float64 `mapstructure:"itemRange"`
	MuzzleRange   float64 `mapstructure:"muzzleRange"`
}

// Prefabs controls where prefab overrides come from.
type Prefabs struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
	Level string `mapstructure:"level"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("tickRate", 60)

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "gunplay")

	viper.SetDefault("trace.crosshairBias", 50.0)
	viper.SetDefault("trace.fireRange", 50000.0)
	viper.SetDefault("trace.itemRange", 5000.0)
	viper.SetDefault("trace.muzzleRange", 50000.0)

	viper.SetDefault("prefabs.dir", "prefabs")
	viper.SetDefault("prefabs.watch", false)
	viper.SetDefault("prefabs.level", "level.yaml")
}

// Load sets defaults, reads the config file and enables GUNPLAY_ overrides.
// An empty path looks for gunplay.yaml in the working directory and is not
// an error when absent; an explicit path must exist.
func Load(path string) error {
	setDefaults()

	viper.SetEnvPrefix("GUNPLAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("gunplay")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// LogLevel parses logLevel, falling back to info.
func LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(viper.GetString("logLevel")))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// TickRate is the fixed simulation rate in ticks per second.
func TickRate() int {
	rate := viper.GetInt("tickRate")
	if rate <= 0 {
		return 60
	}
	return rate
}

func GetWindow() Window {
	return Window{
		Width:  viper.GetInt("window.width"),
		Height: viper.GetInt("window.height"),
		Title:  viper.GetString("window.title"),
	}
}

func GetTrace() Trace {
	return Trace{
		CrosshairBias: viper.GetFloat64("trace.crosshairBias"),
		FireRange:     viper.GetFloat64("trace.fireRange"),
		ItemRange:     viper.GetFloat64("trace.itemRange"),
		MuzzleRange:   viper.GetFloat64("trace.muzzleRange"),
	}
}

func GetPrefabs() Prefabs {
	return Prefabs{
		Dir:   viper.GetString("prefabs.dir"),
		Watch: viper.GetBool("prefabs.watch"),
		Level: viper.GetString("prefabs.level"),
	}
}
