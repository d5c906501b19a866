package system

import (
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

// CameraSystem places each camera on its target's boom and copies the
// target's zoom into the camera FOV.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, t *component.Transform) {
		target, ok := ecs.Lookup(w, cam.Target)
		if !ok {
			return
		}
		targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}

		rot := targetTransform.Rotation
		if ctrl, ok := ecs.Get(w, target, component.ControllerComponent.Kind()); ok {
			rot = ctrl.Rotation
		}
		t.Position = targetTransform.Position.Add(rot.Quat().Rotate(cam.BoomOffset))
		t.Rotation = rot

		if aim, ok := ecs.Get(w, target, component.AimComponent.Kind()); ok && aim.CurrentFOV > 0 {
			cam.FOV = aim.CurrentFOV
		}
	})
}
