package ecs

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/ecs/component"
)

// TraceHit describes the closest blocking collider along a segment.
type TraceHit struct {
	Point    mgl64.Vec3
	Entity   Entity
	Fraction float64
}

// LineTrace returns the first visibility-blocking collider between start
// and end, skipping the ignored entities.
func LineTrace(w *World, start, end mgl64.Vec3, ignore ...Entity) (TraceHit, bool) {
	if w == nil {
		return TraceHit{}, false
	}
	delta := end.Sub(start)
	if delta.LenSqr() == 0 {
		return TraceHit{}, false
	}

	closestT := math.Inf(1)
	var hitEntity Entity

	ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(e Entity, col *component.Collider, t *component.Transform) {
		if !col.BlockVisibility || ignored(e, ignore) {
			return
		}
		center := t.Position.Add(col.Offset)

		var (
			hit  bool
			tHit float64
		)
		switch col.Shape {
		case component.ColliderSphere:
			hit, tHit = segmentSphereHit(start, delta, center, col.Radius)
		default:
			hit, tHit = segmentAABBHit(start, delta, center.Sub(col.HalfExtents), center.Add(col.HalfExtents))
		}
		if hit && tHit < closestT {
			closestT = tHit
			hitEntity = e
		}
	})

	if math.IsInf(closestT, 1) {
		return TraceHit{}, false
	}
	return TraceHit{
		Point:    start.Add(delta.Mul(closestT)),
		Entity:   hitEntity,
		Fraction: closestT,
	}, true
}

func ignored(e Entity, ignore []Entity) bool {
	for _, other := range ignore {
		if other == e {
			return true
		}
	}
	return false
}

// segmentAABBHit runs the slab test over all three axes. A start point
// inside the box hits at t=0.
func segmentAABBHit(origin, delta, minB, maxB mgl64.Vec3) (bool, float64) {
	tmin := 0.0
	tmax := 1.0

	for axis := 0; axis < 3; axis++ {
		d := delta[axis]
		o := origin[axis]
		if d == 0 {
			if o < minB[axis] || o > maxB[axis] {
				return false, 0
			}
			continue
		}
		invD := 1.0 / d
		t1 := (minB[axis] - o) * invD
		t2 := (maxB[axis] - o) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmax < tmin {
			return false, 0
		}
	}
	return true, tmin
}

func segmentSphereHit(origin, delta, center mgl64.Vec3, r float64) (bool, float64) {
	if r <= 0 {
		return false, 0
	}
	f := origin.Sub(center)
	c := f.Dot(f) - r*r
	if c <= 0 {
		return true, 0
	}

	a := delta.Dot(delta)
	b := 2 * f.Dot(delta)
	disc := b*b - 4*a*c
	if disc < 0 || a == 0 {
		return false, 0
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	if t1 >= 0 && t1 <= 1 {
		return true, t1
	}
	if t2 >= 0 && t2 <= 1 {
		return true, t2
	}
	return false, 0
}
