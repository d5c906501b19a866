package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gunplay/config"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/ecs/entity"
	"github.com/milk9111/gunplay/ecs/system"
	"github.com/milk9111/gunplay/prefabs"
	"github.com/rs/zerolog/log"
)

type GameOptions struct {
	Width    int
	Height   int
	TickRate int
	Level    string
	Watch    bool
	Trace    config.Trace
	Debug    bool
}

type Game struct {
	world    *ecs.World
	combat   *system.Combat
	viewport *system.CameraViewport
	level    *entity.Level

	input    *InputReader
	effects  *Effects
	hud      *HUD
	renderer *Renderer
	watcher  *prefabs.Watcher

	dt     float64
	debug  bool
	paused bool
	quit   bool
}

func NewGame(opts GameOptions) (*Game, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	world := ecs.NewWorld()
	viewport := system.NewCameraViewport(opts.Width, opts.Height)
	combat := system.NewCombat(viewport, system.HitscanConfig{
		CrosshairBias: opts.Trace.CrosshairBias,
		FireRange:     opts.Trace.FireRange,
		MuzzleRange:   opts.Trace.MuzzleRange,
		ItemRange:     opts.Trace.ItemRange,
	}, nil)
	combat.Register(world)

	level, err := entity.LoadLevel(world, opts.Level, combat.Items)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	// Build-time state changes are not effects.
	world.Events().Drain()

	g := &Game{
		world:    world,
		combat:   combat,
		viewport: viewport,
		level:    level,
		input:    NewInputReader(),
		effects:  NewEffects(),
		renderer: NewRenderer(viewport, combat.Resolver),
		dt:       1.0 / float64(opts.TickRate),
		debug:    opts.Debug,
	}
	g.hud = NewHUD(g, opts.Width, opts.Height)

	if opts.Watch {
		if dir := prefabs.DiskDir(); dir != "" {
			watcher, err := prefabs.NewWatcher(dir)
			if err != nil {
				log.Warn().Err(err).Str("dir", dir).Msg("game: prefab watch disabled")
			} else {
				g.watcher = watcher
			}
		}
	}

	log.Info().Str("level", level.Name).Int("weapons", len(level.Weapons)).Msg("game: level loaded")
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("game: close watcher")
		}
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}

	g.pollReloads()

	if g.paused {
		g.hud.Update()
		return nil
	}

	g.input.Apply(g.world)
	g.world.Update(g.dt)
	g.dispatch(g.world.Events().Drain())
	g.effects.Update(g.world.Time())
	g.hud.Update()
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.input.Reset()
}

func (g *Game) dispatch(events []ecs.Event) {
	now := g.world.Time()
	for _, evt := range events {
		switch data := evt.Data.(type) {
		case ecs.SoundEvent:
			g.effects.PlaySound(data.Cue)
		case ecs.ParticleEvent:
			g.effects.AddParticle(data, now)
		case ecs.BeamEvent:
			g.effects.AddBeam(data, now)
		case ecs.WidgetVisibilityEvent:
			g.hud.SetPrompt(g.world, data.Entity, data.Visible)
		case ecs.MontageEvent:
			log.Debug().Str("montage", data.Montage).Str("section", data.Section).Msg("game: montage")
		case ecs.ImpulseEvent:
			log.Debug().Stringer("entity", data.Entity).Msg("game: impulse")
		case ecs.ItemStateEvent:
			log.Debug().Stringer("entity", data.Entity).Str("from", data.From).Str("to", data.To).Msg("game: item state")
		}
	}
}

func (g *Game) pollReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if _, err := entity.Reload(g.world, name); err != nil {
				log.Warn().Err(err).Str("prefab", name).Msg("game: reload failed")
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn().Err(err).Msg("game: prefab watcher")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world, g.effects)
	g.hud.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("FPS: %.2f  t: %.2f", ebiten.ActualFPS(), g.world.Time())
	shooter := g.level.Shooter
	if c, ok := ecs.Get(g.world, shooter, component.CrosshairComponent.Kind()); ok {
		text += fmt.Sprintf("\nspread: %.3f", c.SpreadMultiplier())
	}
	if f, ok := ecs.Get(g.world, shooter, component.FireComponent.Kind()); ok {
		text += fmt.Sprintf("  shots: %d", f.ShotsFired)
	}
	if s, ok := ecs.Get(g.world, shooter, component.ShooterComponent.Kind()); ok {
		if weapon, ok := ecs.Lookup(g.world, s.EquippedWeapon); ok {
			if item, ok := ecs.Get(g.world, weapon, component.ItemComponent.Kind()); ok {
				text += fmt.Sprintf("\nweapon: %s (%s)", item.Name, item.State)
			}
		}
	}
	return text
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
