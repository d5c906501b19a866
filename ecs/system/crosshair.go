package system

import (
	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

const crosshairShootTimer = "crosshair_shoot"

// CrosshairSystem recomputes every crosshair's spread factors from the
// owner's movement, aim and firing signals.
type CrosshairSystem struct{}

func NewCrosshairSystem() *CrosshairSystem {
	return &CrosshairSystem{}
}

func (s *CrosshairSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaSeconds()
	ecs.ForEach(w, component.CrosshairComponent.Kind(), func(e ecs.Entity, c *component.Crosshair) {
		var (
			speed    float64
			airborne bool
			aiming   bool
		)
		if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
			planar := mv.Velocity
			planar[2] = 0
			speed = planar.Len()
			airborne = mv.Airborne
		}
		if aim, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok {
			aiming = aim.Aiming
		}
		UpdateSpread(c, dt, speed, airborne, aiming, c.Firing)
	})
}

// UpdateSpread advances the spread factors by one frame.
func UpdateSpread(c *component.Crosshair, dt, speed float64, airborne, aiming, firing bool) {
	if c == nil {
		return
	}
	tune := c.Tuning

	c.VelocityFactor = common.MapRangeClamped(speed, 0, tune.MaxWalkSpeed, 0, 1)

	if airborne {
		c.AirborneFactor = common.InterpTo(c.AirborneFactor, tune.AirborneTarget, dt, tune.AirborneRiseSpeed)
	} else {
		c.AirborneFactor = common.InterpTo(c.AirborneFactor, 0, dt, tune.AirborneRecoverSpeed)
	}

	if aiming {
		c.AimFactor = common.InterpTo(c.AimFactor, tune.AimTarget, dt, tune.AimInSpeed)
	} else {
		c.AimFactor = common.InterpTo(c.AimFactor, 0, dt, tune.AimOutSpeed)
	}

	if firing {
		c.FiringFactor = common.InterpTo(c.FiringFactor, tune.FiringTarget, dt, tune.FiringSpeed)
	} else {
		c.FiringFactor = common.InterpTo(c.FiringFactor, 0, dt, tune.FiringSpeed)
	}
}

// StartFiringPulse holds the firing signal for ShootTimeDuration seconds.
// Calling it again restarts the window.
func StartFiringPulse(w *ecs.World, e ecs.Entity) {
	c, ok := ecs.Get(w, e, component.CrosshairComponent.Kind())
	if !ok {
		return
	}
	c.Firing = true
	w.SetTimer(e, crosshairShootTimer, c.Tuning.ShootTimeDuration, func(w *ecs.World) {
		if c, ok := ecs.Get(w, e, component.CrosshairComponent.Kind()); ok {
			c.Firing = false
		}
	})
}
