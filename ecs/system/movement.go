package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

// airControlRate scales Movement.AirControl into an approach speed.
const airControlRate = 10.0

// MovementSystem is kinematic locomotion on the ground plane. Movement is
// relative to the controller's yaw and the body turns with it.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaSeconds()
	ecs.ForEach2(w, component.MovementComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mv *component.Movement, t *component.Transform) {
		facing := t.Rotation.YawOnly()
		if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
			facing = ctrl.Rotation.YawOnly()
		}
		t.Rotation = facing

		var wish mgl64.Vec3
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			wish = facing.Forward().Mul(in.MoveForward).Add(facing.Right().Mul(in.MoveRight))
		}
		if wish.LenSqr() > 1 {
			wish = wish.Normalize()
		}
		stepMovement(mv, t, wish, groundClearance(w, e), dt)
	})
}

func stepMovement(mv *component.Movement, t *component.Transform, wish mgl64.Vec3, clearance, dt float64) {
	desired := wish.Mul(mv.MoveSpeed)
	mv.Acceleration = desired

	if mv.Airborne {
		speed := mv.AirControl * airControlRate
		mv.Velocity[0] = common.InterpTo(mv.Velocity[0], desired[0], dt, speed)
		mv.Velocity[1] = common.InterpTo(mv.Velocity[1], desired[1], dt, speed)
	} else {
		mv.Velocity[0], mv.Velocity[1] = desired[0], desired[1]
		if mv.JumpHeld && mv.JumpSpeed > 0 {
			mv.Velocity[2] = mv.JumpSpeed
			mv.Airborne = true
		}
	}

	if mv.Airborne {
		mv.Velocity[2] += mv.Gravity * dt
	}
	t.Position = t.Position.Add(mv.Velocity.Mul(dt))

	if t.Position.Z() <= clearance {
		t.Position[2] = clearance
		if mv.Velocity.Z() <= 0 {
			mv.Velocity[2] = 0
			mv.Airborne = false
		}
	} else {
		mv.Airborne = true
	}
}
