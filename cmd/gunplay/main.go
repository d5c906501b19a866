package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gunplay/config"
	"github.com/milk9111/gunplay/prefabs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a gunplay.yaml config file")
	debug := flag.Bool("debug", false, "enable debug logging and the debug overlay")
	levelName := flag.String("level", "", "level prefab name (overrides prefabs.level)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := config.Load(*configPath); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level := config.LogLevel()
	if *debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	pf := config.GetPrefabs()
	prefabs.SetDiskDir(pf.Dir)
	if *levelName != "" {
		pf.Level = *levelName
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	win := config.GetWindow()
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetTPS(config.TickRate())

	game, err := NewGame(GameOptions{
		Width:    win.Width,
		Height:   win.Height,
		TickRate: config.TickRate(),
		Level:    pf.Level,
		Watch:    pf.Watch,
		Trace:    config.GetTrace(),
		Debug:    *debug,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	defer game.Close()

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game exited")
	}
}
