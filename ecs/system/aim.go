package system

import (
	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

func AimPressed(w *ecs.World, e ecs.Entity) {
	if aim, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok {
		aim.Aiming = true
	}
}

func AimReleased(w *ecs.World, e ecs.Entity) {
	if aim, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok {
		aim.Aiming = false
	}
}

// AimSystem eases the field of view toward the zoomed or default value.
type AimSystem struct{}

func NewAimSystem() *AimSystem {
	return &AimSystem{}
}

func (s *AimSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaSeconds()
	ecs.ForEach(w, component.AimComponent.Kind(), func(_ ecs.Entity, aim *component.Aim) {
		target := aim.DefaultFOV
		if aim.Aiming {
			target = aim.ZoomedFOV
		}
		aim.CurrentFOV = common.InterpTo(aim.CurrentFOV, target, dt, aim.ZoomInterpSpeed)
	})
}
