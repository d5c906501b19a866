package system

import (
	"math"

	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

// ControlSystem turns one frame of Input into look rotation and action
// callbacks, then clears the edge flags.
type ControlSystem struct {
	fire  *FireController
	items *ItemController
}

func NewControlSystem(fire *FireController, items *ItemController) *ControlSystem {
	return &ControlSystem{fire: fire, items: items}
}

func (s *ControlSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaSeconds()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
			ApplyLookInput(ctrl, in, dt)
		}

		if in.FirePressed && s.fire != nil {
			s.fire.FireButtonPressed(w, e)
		}
		if in.FireReleased && s.fire != nil {
			s.fire.FireButtonReleased(w, e)
		}
		if in.AimPressed {
			AimPressed(w, e)
		}
		if in.AimReleased {
			AimReleased(w, e)
		}
		if in.SelectPressed && s.items != nil {
			s.items.Select(w, e)
		}
		if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
			if in.JumpPressed {
				mv.JumpHeld = true
			}
			if in.JumpReleased {
				mv.JumpHeld = false
			}
		}

		in.FirePressed, in.FireReleased = false, false
		in.AimPressed, in.AimReleased = false, false
		in.SelectPressed, in.SelectReleased = false, false
		in.JumpPressed, in.JumpReleased = false, false
	})
}

// ApplyLookInput turns stick rates (scaled by dt) and pointer deltas into
// control rotation. Look-up input is inverted into pitch.
func ApplyLookInput(ctrl *component.Controller, in *component.Input, dt float64) {
	if ctrl == nil || in == nil {
		return
	}
	yaw := in.TurnRate*ctrl.BaseTurnRate*dt + in.MouseTurn*ctrl.MouseTurnRate
	pitch := -in.LookUpRate*ctrl.BaseLookUpRate*dt - in.MouseLookUp*ctrl.MouseLookUpRate

	ctrl.Rotation.Yaw = common.NormalizeAxis(ctrl.Rotation.Yaw + yaw)
	ctrl.Rotation.Pitch = math.Max(-component.MaxControlPitch, math.Min(component.MaxControlPitch, ctrl.Rotation.Pitch+pitch))
	ctrl.Rotation.Roll = 0
}
