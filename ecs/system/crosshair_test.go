package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"pgregory.net/rapid"
)

const frame = 1.0 / 60.0

func TestVelocityFactor(t *testing.T) {
	cases := []struct {
		speed float64
		want  float64
	}{
		{0, 0},
		{300, 0.5},
		{600, 1},
		{1200, 1},
	}
	for _, tc := range cases {
		c := &component.Crosshair{Tuning: component.DefaultCrosshairTuning()}
		UpdateSpread(c, frame, tc.speed, false, false, false)
		if !approx(c.VelocityFactor, tc.want, 1e-12) {
			t.Fatalf("speed %v: factor %v, want %v", tc.speed, c.VelocityFactor, tc.want)
		}
	}
}

func TestSpreadConvergesToBase(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := &component.Crosshair{
			VelocityFactor: rapid.Float64Range(0, 1).Draw(rt, "velocity"),
			AirborneFactor: rapid.Float64Range(0, 2.25).Draw(rt, "airborne"),
			AimFactor:      rapid.Float64Range(-0.3, 0).Draw(rt, "aim"),
			FiringFactor:   rapid.Float64Range(0, 0.3).Draw(rt, "firing"),
			Tuning:         component.DefaultCrosshairTuning(),
		}
		dt := rapid.Float64Range(0.001, 0.05).Draw(rt, "dt")
		for elapsed := 0.0; elapsed < 5; elapsed += dt {
			UpdateSpread(c, dt, 0, false, false, false)
		}
		if !approx(c.SpreadMultiplier(), 0.5, 1e-3) {
			rt.Fatalf("spread %v did not settle at 0.5: %+v", c.SpreadMultiplier(), c)
		}
	})
}

func TestAimFactorMonotonic(t *testing.T) {
	c := &component.Crosshair{Tuning: component.DefaultCrosshairTuning()}

	prev := c.AimFactor
	var firstIn float64
	for i := 0; i < 600; i++ {
		UpdateSpread(c, frame, 0, false, true, false)
		if c.AimFactor > prev || c.AimFactor < -0.3 {
			t.Fatalf("frame %d: aim factor %v not moving monotonically toward -0.3", i, c.AimFactor)
		}
		if i == 0 {
			firstIn = prev - c.AimFactor
		}
		prev = c.AimFactor
	}
	if !approx(c.AimFactor, -0.3, 1e-6) {
		t.Fatalf("aim factor settled at %v", c.AimFactor)
	}

	var firstOut float64
	for i := 0; i < 600; i++ {
		UpdateSpread(c, frame, 0, false, false, false)
		if c.AimFactor < prev || c.AimFactor > 0 {
			t.Fatalf("frame %d: aim factor %v overshot on release", i, c.AimFactor)
		}
		if i == 0 {
			firstOut = c.AimFactor - prev
		}
		prev = c.AimFactor
	}
	if c.AimFactor != 0 {
		t.Fatalf("aim factor should return to 0, got %v", c.AimFactor)
	}
	if firstOut <= firstIn {
		t.Fatalf("release should recover faster: in %v, out %v", firstIn, firstOut)
	}
}

func TestAirborneAndFiringFactors(t *testing.T) {
	c := &component.Crosshair{Tuning: component.DefaultCrosshairTuning()}
	for i := 0; i < 600; i++ {
		UpdateSpread(c, frame, 0, true, false, true)
	}
	if !approx(c.AirborneFactor, 2.25, 1e-3) || !approx(c.FiringFactor, 0.3, 1e-6) {
		t.Fatalf("factors = %+v", c)
	}
	if !approx(c.SpreadMultiplier(), 0.5+2.25+0.3, 1e-3) {
		t.Fatalf("spread = %v", c.SpreadMultiplier())
	}
}

func TestCrosshairSystemReadsOwnerSignals(t *testing.T) {
	w := ecs.NewWorld()
	e := newTestShooter(t, w, mgl64.Vec3{})
	mustAdd(t, w, e, component.MovementComponent.Kind(), &component.Movement{
		Velocity: mgl64.Vec3{300, 0, -5000},
		Airborne: true,
	})
	w.AddSystem(NewCrosshairSystem())

	w.Update(frame)
	c, _ := ecs.Get(w, e, component.CrosshairComponent.Kind())
	if !approx(c.VelocityFactor, 0.5, 1e-12) {
		t.Fatalf("vertical speed leaked into velocity factor: %v", c.VelocityFactor)
	}
	if c.AirborneFactor <= 0 {
		t.Fatalf("airborne factor should start rising")
	}
}
