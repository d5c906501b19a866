package entity

import (
	"fmt"

	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/prefabs"
)

// NewCamera builds the active camera following target.
func NewCamera(w *ecs.World, target ecs.Entity, spec prefabs.CameraSpec) (ecs.Entity, error) {
	if !ecs.IsAlive(w, target) {
		return 0, fmt.Errorf("camera: target: %w", component.ErrEntityNotAlive)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Target:     uint64(target),
		BoomOffset: vec3(spec.BoomOffset),
		FOV:        orDefault(spec.FOV, defaultCameraFOV),
		Near:       spec.Near,
		Far:        spec.Far,
		Active:     true,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: "camera"}); err != nil {
		return 0, fmt.Errorf("camera: add name: %w", err)
	}

	return camera, nil
}
