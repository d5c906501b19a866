package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

const (
	// Gravity is world units per second squared along -Z.
	Gravity = -980.0
	// groundFriction bleeds planar speed from grounded bodies, per second.
	groundFriction = 6.0
	// restSpeed is the bounce speed below which a body settles.
	restSpeed = 20.0
)

// PhysicsSystem integrates simulated rigid bodies against the ground plane.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaSeconds()
	if dt <= 0 {
		return
	}
	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.RigidBody, t *component.Transform) {
		if !body.Simulate {
			return
		}
		integrateBody(body, t, groundClearance(w, e), dt)
	})
}

func integrateBody(body *component.RigidBody, t *component.Transform, clearance, dt float64) {
	body.Velocity[2] += Gravity * body.GravityScale * dt
	if body.LinearDamping > 0 {
		body.Velocity = body.Velocity.Mul(1 / (1 + dt*body.LinearDamping))
	}
	if body.AngularDamping > 0 {
		body.AngularVelocity = body.AngularVelocity.Scale(1 / (1 + dt*body.AngularDamping))
	}

	t.Position = t.Position.Add(body.Velocity.Mul(dt))
	t.Rotation = t.Rotation.Add(body.AngularVelocity.Scale(dt))

	body.Grounded = false
	if t.Position.Z() > clearance {
		return
	}
	t.Position[2] = clearance
	body.Grounded = true
	if body.Velocity.Z() < 0 {
		bounce := -body.Velocity.Z() * body.Restitution
		if bounce < restSpeed {
			bounce = 0
		}
		body.Velocity[2] = bounce
	}
	keep := math.Max(0, 1-groundFriction*dt)
	body.Velocity[0] *= keep
	body.Velocity[1] *= keep
	body.AngularVelocity = body.AngularVelocity.Scale(keep)
}

// ApplyImpulse changes a body's velocity by impulse/mass. Bodies with no
// mass are treated as unit mass.
func ApplyImpulse(w *ecs.World, e ecs.Entity, impulse mgl64.Vec3) {
	body, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind())
	if !ok {
		return
	}
	mass := body.Mass
	if mass <= 0 {
		mass = 1
	}
	body.Velocity = body.Velocity.Add(impulse.Mul(1 / mass))
	w.Events().Push(ecs.Event{Type: ecs.EventImpulse, Data: ecs.ImpulseEvent{Entity: e, Impulse: impulse}})
}

// groundClearance is how far above z=0 an entity's origin rests.
func groundClearance(w *ecs.World, e ecs.Entity) float64 {
	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return 0
	}
	switch col.Shape {
	case component.ColliderSphere:
		return col.Radius - col.Offset.Z()
	default:
		return col.HalfExtents.Z() - col.Offset.Z()
	}
}
