package ecs

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/ecs/component"
)

func addCollider(t *testing.T, w *World, pos mgl64.Vec3, col component.Collider) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: pos}); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := Add(w, e, component.ColliderComponent.Kind(), &col); err != nil {
		t.Fatalf("add collider: %v", err)
	}
	return e
}

func TestLineTrace(t *testing.T) {
	box := component.Collider{Shape: component.ColliderBox, HalfExtents: mgl64.Vec3{10, 10, 10}, BlockVisibility: true}
	sphere := component.Collider{Shape: component.ColliderSphere, Radius: 5, BlockVisibility: true}

	t.Run("closest_of_two", func(t *testing.T) {
		w := NewWorld()
		far := addCollider(t, w, mgl64.Vec3{200, 0, 0}, box)
		near := addCollider(t, w, mgl64.Vec3{100, 0, 0}, sphere)
		hit, ok := LineTrace(w, mgl64.Vec3{}, mgl64.Vec3{1000, 0, 0})
		if !ok || hit.Entity != near {
			t.Fatalf("expected sphere hit, got %+v ok=%v (far=%v)", hit, ok, far)
		}
		if !vecNear(hit.Point, mgl64.Vec3{95, 0, 0}, 1e-6) {
			t.Fatalf("hit point %v", hit.Point)
		}
	})

	t.Run("box_face", func(t *testing.T) {
		w := NewWorld()
		addCollider(t, w, mgl64.Vec3{100, 0, 0}, box)
		hit, ok := LineTrace(w, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{1000, 0, 5})
		if !ok || math.Abs(hit.Point.X()-90) > 1e-6 {
			t.Fatalf("expected face at x=90, got %+v ok=%v", hit, ok)
		}
	})

	t.Run("ignore_and_non_blocking", func(t *testing.T) {
		w := NewWorld()
		self := addCollider(t, w, mgl64.Vec3{50, 0, 0}, box)
		ghost := box
		ghost.BlockVisibility = false
		addCollider(t, w, mgl64.Vec3{150, 0, 0}, ghost)
		if _, ok := LineTrace(w, mgl64.Vec3{}, mgl64.Vec3{1000, 0, 0}, self); ok {
			t.Fatalf("ignored and non-blocking colliders must not hit")
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		w := NewWorld()
		addCollider(t, w, mgl64.Vec3{100, 0, 0}, box)
		if _, ok := LineTrace(w, mgl64.Vec3{}, mgl64.Vec3{50, 0, 0}); ok {
			t.Fatalf("segment ends before the box")
		}
		if _, ok := LineTrace(w, mgl64.Vec3{}, mgl64.Vec3{}); ok {
			t.Fatalf("zero-length segment must not hit")
		}
	})
}

// vecNear compares component-wise with an absolute tolerance.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a.X()-b.X()) <= eps && math.Abs(a.Y()-b.Y()) <= eps && math.Abs(a.Z()-b.Z()) <= eps
}
