package system

import (
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/rs/zerolog/log"
)

const fireCooldownTimer = "fire_cooldown"

// FireController owns the trigger and automatic fire cadence. It has no
// per-frame work; input and the cooldown timer drive it.
type FireController struct {
	resolver *HitscanResolver
}

func NewFireController(resolver *HitscanResolver) *FireController {
	return &FireController{resolver: resolver}
}

func (c *FireController) FireButtonPressed(w *ecs.World, e ecs.Entity) {
	fire, ok := ecs.Get(w, e, component.FireComponent.Kind())
	if !ok {
		return
	}
	fire.FireButtonHeld = true
	c.TryFire(w, e)
}

// FireButtonReleased stops automatic fire. A pending cooldown keeps running.
func (c *FireController) FireButtonReleased(w *ecs.World, e ecs.Entity) {
	fire, ok := ecs.Get(w, e, component.FireComponent.Kind())
	if !ok {
		return
	}
	fire.FireButtonHeld = false
}

// TryFire fires one shot if the cooldown allows it and reports whether it
// did. Missing assets or anchors only skip their own effect.
func (c *FireController) TryFire(w *ecs.World, e ecs.Entity) bool {
	fire, ok := ecs.Get(w, e, component.FireComponent.Kind())
	if !ok || !fire.CanFire {
		return false
	}

	shooter, _ := ecs.Get(w, e, component.ShooterComponent.Kind())
	if shooter == nil {
		shooter = &component.Shooter{}
	}
	events := w.Events()

	if shooter.FireSound != "" {
		events.Push(ecs.Event{Type: ecs.EventPlaySound, Data: ecs.SoundEvent{Source: e, Cue: shooter.FireSound}})
	}

	if muzzle, ok := MuzzleTransform(w, e); ok {
		if shooter.MuzzleFlash != "" {
			events.Push(ecs.Event{Type: ecs.EventSpawnParticle, Data: ecs.ParticleEvent{
				Template: shooter.MuzzleFlash,
				Location: muzzle.Position,
				Rotation: muzzle.Rotation,
			}})
		}

		impact := c.resolver.ResolveMuzzleImpact(w, e, muzzle.Position)
		if impact.Resolved {
			if impact.Hit && shooter.ImpactParticle != "" {
				events.Push(ecs.Event{Type: ecs.EventSpawnParticle, Data: ecs.ParticleEvent{
					Template: shooter.ImpactParticle,
					Location: impact.Point,
				}})
			}
			if shooter.BeamParticle != "" {
				events.Push(ecs.Event{Type: ecs.EventSpawnBeam, Data: ecs.BeamEvent{
					Template: shooter.BeamParticle,
					Start:    muzzle.Position,
					End:      impact.Point,
				}})
			}
		}
	} else {
		log.Debug().Stringer("entity", e).Msg("fire: no muzzle anchor")
	}

	if shooter.FireMontage != "" {
		events.Push(ecs.Event{Type: ecs.EventPlayMontage, Data: ecs.MontageEvent{
			Entity:  e,
			Montage: shooter.FireMontage,
			Section: shooter.FireSection,
		}})
	}

	StartFiringPulse(w, e)

	fire.CanFire = false
	fire.ShotsFired++
	fire.LastShotTime = w.Time()
	w.SetTimer(e, fireCooldownTimer, component.ClampFireInterval(fire.AutomaticFireInterval), func(w *ecs.World) {
		c.resetFireTimer(w, e)
	})
	return true
}

func (c *FireController) resetFireTimer(w *ecs.World, e ecs.Entity) {
	fire, ok := ecs.Get(w, e, component.FireComponent.Kind())
	if !ok {
		return
	}
	fire.CanFire = true
	if fire.FireButtonHeld {
		c.TryFire(w, e)
	}
}
