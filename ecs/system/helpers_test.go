package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

// fixedViewport deprojects every screen point onto the same ray.
type fixedViewport struct {
	origin     mgl64.Vec3
	dir        mgl64.Vec3
	err        error
	width      float64
	height     float64
	lastScreen mgl64.Vec2
	calls      int
}

func newFixedViewport(origin, dir mgl64.Vec3) *fixedViewport {
	return &fixedViewport{origin: origin, dir: dir.Normalize(), width: 1280, height: 720}
}

func (v *fixedViewport) Size() (float64, float64) {
	return v.width, v.height
}

func (v *fixedViewport) Deproject(_ *ecs.World, screen mgl64.Vec2) (mgl64.Vec3, mgl64.Vec3, error) {
	v.calls++
	v.lastScreen = screen
	if v.err != nil {
		return mgl64.Vec3{}, mgl64.Vec3{}, v.err
	}
	return v.origin, v.dir, nil
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], value *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, value); err != nil {
		t.Fatalf("add %v: %v", kind, err)
	}
}

func newTestShooter(t *testing.T, w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	mustAdd(t, w, e, component.ColliderComponent.Kind(), &component.Collider{
		Shape:           component.ColliderBox,
		HalfExtents:     mgl64.Vec3{20, 20, 90},
		BlockVisibility: true,
	})
	mustAdd(t, w, e, component.SocketsComponent.Kind(), &component.Sockets{ByName: map[string]component.Socket{
		"hand_r": {Offset: mgl64.Vec3{30, -20, 0}},
		"barrel": {Offset: mgl64.Vec3{60, 0, 10}},
	}})
	mustAdd(t, w, e, component.ShooterComponent.Kind(), &component.Shooter{
		WeaponSocket:   "hand_r",
		MuzzleSocket:   "barrel",
		FireSound:      "shot",
		MuzzleFlash:    "flash",
		ImpactParticle: "impact",
		BeamParticle:   "beam",
		FireMontage:    "hip_fire",
		FireSection:    "StartFire",
	})
	fire := component.NewFire(0.1)
	mustAdd(t, w, e, component.FireComponent.Kind(), &fire)
	mustAdd(t, w, e, component.CrosshairComponent.Kind(), &component.Crosshair{Tuning: component.DefaultCrosshairTuning()})
	mustAdd(t, w, e, component.AimComponent.Kind(), &component.Aim{
		CurrentFOV:      90,
		DefaultFOV:      90,
		ZoomedFOV:       component.DefaultZoomedFOV,
		ZoomInterpSpeed: component.DefaultZoomInterpSpeed,
	})
	mustAdd(t, w, e, component.ControllerComponent.Kind(), &component.Controller{
		BaseTurnRate:    component.DefaultBaseTurnRate,
		BaseLookUpRate:  component.DefaultBaseLookUpRate,
		MouseTurnRate:   component.DefaultMouseTurnRate,
		MouseLookUpRate: component.DefaultMouseLookUpRate,
	})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.ProximityTrackerComponent.Kind(), &component.ProximityTracker{})
	mustAdd(t, w, e, component.ProximitySensorComponent.Kind(), &component.ProximitySensor{Radius: 60})
	return e
}

func newTestWeapon(t *testing.T, w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos})
	mustAdd(t, w, e, component.ItemComponent.Kind(), &component.Item{Name: "rifle"})
	weapon := component.DefaultWeapon()
	weapon.MuzzleSocket = "muzzle"
	mustAdd(t, w, e, component.WeaponComponent.Kind(), &weapon)
	mustAdd(t, w, e, component.SocketsComponent.Kind(), &component.Sockets{ByName: map[string]component.Socket{
		"muzzle": {Offset: mgl64.Vec3{50, 0, 5}},
	}})
	mustAdd(t, w, e, component.ColliderComponent.Kind(), &component.Collider{
		Shape:       component.ColliderBox,
		HalfExtents: mgl64.Vec3{30, 5, 5},
	})
	mustAdd(t, w, e, component.PickupVolumeComponent.Kind(), &component.PickupVolume{Radius: 100})
	mustAdd(t, w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{
		Mass:         10,
		GravityScale: 1,
		Restitution:  0.2,
	})
	SetItemState(w, e, component.ItemStatePickup)
	w.Events().Drain()
	return e
}

func newTestWall(t *testing.T, w *ecs.World, center, half mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: center})
	mustAdd(t, w, e, component.ColliderComponent.Kind(), &component.Collider{
		Shape:           component.ColliderBox,
		HalfExtents:     half,
		BlockVisibility: true,
		BlockWorld:      true,
	})
	return e
}

func eventsOfType(events []ecs.Event, typ string) []ecs.Event {
	var out []ecs.Event
	for _, evt := range events {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a.X()-b.X()) <= eps && math.Abs(a.Y()-b.Y()) <= eps && math.Abs(a.Z()-b.Z()) <= eps
}

func vec2Near(a, b mgl64.Vec2, eps float64) bool {
	return math.Abs(a.X()-b.X()) <= eps && math.Abs(a.Y()-b.Y()) <= eps
}
