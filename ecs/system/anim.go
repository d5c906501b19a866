package system

import (
	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

// AnimStateSystem derives the locomotion and aim values an animation
// layer blends on.
type AnimStateSystem struct{}

func NewAnimStateSystem() *AnimStateSystem {
	return &AnimStateSystem{}
}

func (s *AnimStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimStateComponent.Kind(), component.MovementComponent.Kind(), func(e ecs.Entity, anim *component.AnimState, mv *component.Movement) {
		planar := mv.Velocity
		planar[2] = 0
		anim.Speed = planar.Len()
		anim.InAir = mv.Airborne
		anim.Accelerating = mv.Acceleration.Len() > 0

		var aimYaw float64
		if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
			aimYaw = ctrl.Rotation.Yaw
		} else if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			aimYaw = t.Rotation.Yaw
		}
		moveYaw := common.RotatorFromDirection(mv.Velocity).Yaw
		anim.MovementOffsetYaw = common.NormalizeAxis(moveYaw - aimYaw)
		if mv.Velocity.Len() > 0 {
			anim.LastMovementOffsetYaw = anim.MovementOffsetYaw
		}

		if aim, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok {
			anim.Aiming = aim.Aiming
		}
	})
}
