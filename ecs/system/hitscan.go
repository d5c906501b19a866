package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/rs/zerolog/log"
)

// HitscanConfig holds the crosshair bias in pixels and trace ranges in
// world units.
type HitscanConfig struct {
	CrosshairBias float64
	FireRange     float64
	MuzzleRange   float64
	ItemRange     float64
}

func DefaultHitscanConfig() HitscanConfig {
	return HitscanConfig{
		CrosshairBias: 50,
		FireRange:     50000,
		MuzzleRange:   50000,
		ItemRange:     5000,
	}
}

// AimResult is the outcome of a hitscan. Resolved is false when the view
// ray could not be built; Point is meaningless then. Hit reports a blocking
// collider, otherwise Point is the far end of the trace.
type AimResult struct {
	Point    mgl64.Vec3
	Hit      bool
	Entity   ecs.Entity
	Resolved bool
}

type HitscanResolver struct {
	viewport Viewport
	config   HitscanConfig
}

func NewHitscanResolver(vp Viewport, cfg HitscanConfig) *HitscanResolver {
	return &HitscanResolver{viewport: vp, config: cfg}
}

func (r *HitscanResolver) Config() HitscanConfig {
	if r == nil {
		return HitscanConfig{}
	}
	return r.config
}

func (r *HitscanResolver) SetConfig(cfg HitscanConfig) {
	if r == nil {
		return
	}
	r.config = cfg
}

// ResolveCrosshairTarget traces from the biased screen centre up to
// maxRange. The owner and its equipped weapon never block the trace.
func (r *HitscanResolver) ResolveCrosshairTarget(w *ecs.World, owner ecs.Entity, maxRange float64) AimResult {
	if r == nil || r.viewport == nil {
		return AimResult{}
	}
	width, height := r.viewport.Size()
	screen := mgl64.Vec2{width / 2, height/2 - r.config.CrosshairBias}

	origin, dir, err := r.viewport.Deproject(w, screen)
	if err != nil {
		log.Warn().Err(err).Stringer("entity", owner).Msg("hitscan: deproject crosshair")
		return AimResult{}
	}

	end := origin.Add(dir.Mul(maxRange))
	if hit, ok := ecs.LineTrace(w, origin, end, traceIgnores(w, owner)...); ok {
		return AimResult{Point: hit.Point, Hit: true, Entity: hit.Entity, Resolved: true}
	}
	return AimResult{Point: end, Resolved: true}
}

// ResolveMuzzleImpact resolves the crosshair target, then traces from the
// muzzle toward it so geometry between the barrel and the target wins.
func (r *HitscanResolver) ResolveMuzzleImpact(w *ecs.World, owner ecs.Entity, muzzle mgl64.Vec3) AimResult {
	target := r.ResolveCrosshairTarget(w, owner, r.Config().FireRange)
	if !target.Resolved {
		return target
	}

	end := target.Point
	if span := end.Sub(muzzle); r.config.MuzzleRange > 0 && span.Len() > r.config.MuzzleRange {
		end = muzzle.Add(span.Normalize().Mul(r.config.MuzzleRange))
	}
	if hit, ok := ecs.LineTrace(w, muzzle, end, traceIgnores(w, owner)...); ok {
		return AimResult{Point: hit.Point, Hit: true, Entity: hit.Entity, Resolved: true}
	}
	return target
}

func traceIgnores(w *ecs.World, owner ecs.Entity) []ecs.Entity {
	ignore := []ecs.Entity{owner}
	if shooter, ok := ecs.Get(w, owner, component.ShooterComponent.Kind()); ok {
		if weapon, ok := ecs.Lookup(w, shooter.EquippedWeapon); ok {
			ignore = append(ignore, weapon)
		}
	}
	return ignore
}
