package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/prefabs"
)

func addComponent[T any](w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], value *T, owner, what string) error {
	if err := ecs.Add(w, e, kind, value); err != nil {
		return fmt.Errorf("%s: add %s: %w", owner, what, err)
	}
	return nil
}

func vec3(s prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{s.X, s.Y, s.Z}
}

func rotator(s prefabs.RotatorSpec) common.Rotator {
	return common.Rotator{Pitch: s.Pitch, Yaw: s.Yaw, Roll: s.Roll}
}

func collider(s prefabs.ColliderSpec) component.Collider {
	col := component.Collider{
		Shape:       component.ColliderBox,
		HalfExtents: vec3(s.HalfExtents),
		Radius:      s.Radius,
		Offset:      vec3(s.Offset),
	}
	if s.Shape == "sphere" {
		col.Shape = component.ColliderSphere
	}
	return col
}

func sockets(specs []prefabs.SocketSpec) *component.Sockets {
	out := &component.Sockets{ByName: make(map[string]component.Socket, len(specs))}
	for _, s := range specs {
		if s.Name == "" {
			continue
		}
		out.ByName[s.Name] = component.Socket{Offset: vec3(s.Offset), Rotation: rotator(s.Rotation)}
	}
	return out
}

// crosshairTuning overlays non-zero spread fields on the defaults.
func crosshairTuning(s *prefabs.SpreadSpec) component.CrosshairTuning {
	tune := component.DefaultCrosshairTuning()
	if s == nil {
		return tune
	}
	override := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	override(&tune.BaseSpread, s.BaseSpread)
	override(&tune.MaxWalkSpeed, s.MaxWalkSpeed)
	override(&tune.AirborneTarget, s.AirborneTarget)
	override(&tune.AirborneRiseSpeed, s.AirborneRiseSpeed)
	override(&tune.AirborneRecoverSpeed, s.AirborneRecoverSpeed)
	override(&tune.AimTarget, s.AimTarget)
	override(&tune.AimInSpeed, s.AimInSpeed)
	override(&tune.AimOutSpeed, s.AimOutSpeed)
	override(&tune.FiringTarget, s.FiringTarget)
	override(&tune.FiringSpeed, s.FiringSpeed)
	override(&tune.ShootTimeDuration, s.ShootTimeDuration)
	return tune
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
