package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/prefabs"
)

const defaultCameraFOV = 90.0

func NewShooter(w *ecs.World, specFile string) (ecs.Entity, error) {
	spec, err := prefabs.LoadShooterSpec(specFile)
	if err != nil {
		return 0, fmt.Errorf("shooter: load spec: %w", err)
	}
	return BuildShooter(w, specFile, spec)
}

func NewShooterAt(w *ecs.World, specFile string, pos mgl64.Vec3, yaw float64) (ecs.Entity, error) {
	shooter, err := NewShooter(w, specFile)
	if err != nil {
		return 0, err
	}
	transform, ok := ecs.Get(w, shooter, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("shooter: override transform: %w", component.ErrEntityNotAlive)
	}
	transform.Position = pos
	transform.Rotation = common.Rotator{Yaw: yaw}
	if ctrl, ok := ecs.Get(w, shooter, component.ControllerComponent.Kind()); ok {
		ctrl.Rotation = common.Rotator{Yaw: yaw}
	}
	return shooter, nil
}

// BuildShooter creates a player-controlled shooter from a loaded spec.
func BuildShooter(w *ecs.World, source string, spec *prefabs.ShooterSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	col := collider(spec.Collider)
	col.BlockVisibility = true
	col.BlockWorld = true

	fov := orDefault(spec.Camera.FOV, defaultCameraFOV)
	fire := component.NewFire(orDefault(spec.Fire.AutomaticFireInterval, component.DefaultAutomaticFireInterval))

	steps := []func() error{
		func() error {
			return addComponent(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}, "shooter", "player tag")
		},
		func() error {
			return addComponent(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}, "shooter", "name")
		},
		func() error {
			return addComponent(w, e, component.PrefabSourceComponent.Kind(), &component.PrefabSource{File: source}, "shooter", "prefab source")
		},
		func() error {
			return addComponent(w, e, component.TransformComponent.Kind(), &component.Transform{
				Position: vec3(spec.Transform.Position),
				Rotation: rotator(spec.Transform.Rotation).YawOnly(),
			}, "shooter", "transform")
		},
		func() error {
			return addComponent(w, e, component.ColliderComponent.Kind(), &col, "shooter", "collider")
		},
		func() error {
			return addComponent(w, e, component.SocketsComponent.Kind(), sockets(spec.Sockets), "shooter", "sockets")
		},
		func() error {
			return addComponent(w, e, component.ShooterComponent.Kind(), &component.Shooter{
				WeaponSocket:   spec.WeaponSocket,
				MuzzleSocket:   spec.MuzzleSocket,
				FireSound:      spec.Effects.FireSound,
				MuzzleFlash:    spec.Effects.MuzzleFlash,
				ImpactParticle: spec.Effects.ImpactParticle,
				BeamParticle:   spec.Effects.BeamParticle,
				FireMontage:    spec.Effects.FireMontage,
				FireSection:    spec.Effects.FireSection,
			}, "shooter", "shooter")
		},
		func() error { return addComponent(w, e, component.FireComponent.Kind(), &fire, "shooter", "fire") },
		func() error {
			return addComponent(w, e, component.CrosshairComponent.Kind(), &component.Crosshair{Tuning: crosshairTuning(spec.Spread)}, "shooter", "crosshair")
		},
		func() error {
			return addComponent(w, e, component.AimComponent.Kind(), &component.Aim{
				CurrentFOV:      fov,
				DefaultFOV:      fov,
				ZoomedFOV:       orDefault(spec.Aim.ZoomedFOV, component.DefaultZoomedFOV),
				ZoomInterpSpeed: orDefault(spec.Aim.ZoomInterpSpeed, component.DefaultZoomInterpSpeed),
			}, "shooter", "aim")
		},
		func() error {
			return addComponent(w, e, component.ControllerComponent.Kind(), &component.Controller{
				Rotation:        rotator(spec.Transform.Rotation),
				BaseTurnRate:    orDefault(spec.Look.BaseTurnRate, component.DefaultBaseTurnRate),
				BaseLookUpRate:  orDefault(spec.Look.BaseLookUpRate, component.DefaultBaseLookUpRate),
				MouseTurnRate:   orDefault(spec.Look.MouseTurnRate, component.DefaultMouseTurnRate),
				MouseLookUpRate: orDefault(spec.Look.MouseLookUpRate, component.DefaultMouseLookUpRate),
			}, "shooter", "controller")
		},
		func() error {
			return addComponent(w, e, component.InputComponent.Kind(), &component.Input{}, "shooter", "input")
		},
		func() error {
			return addComponent(w, e, component.MovementComponent.Kind(), &component.Movement{
				MoveSpeed:  spec.MoveSpeed,
				JumpSpeed:  spec.JumpSpeed,
				Gravity:    spec.Gravity,
				AirControl: spec.AirControl,
			}, "shooter", "movement")
		},
		func() error {
			return addComponent(w, e, component.AnimStateComponent.Kind(), &component.AnimState{}, "shooter", "anim state")
		},
		func() error {
			return addComponent(w, e, component.ProximityTrackerComponent.Kind(), &component.ProximityTracker{}, "shooter", "proximity tracker")
		},
		func() error {
			return addComponent(w, e, component.ProximitySensorComponent.Kind(), &component.ProximitySensor{Radius: spec.SensorRadius}, "shooter", "proximity sensor")
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}
	return e, nil
}

// ApplyShooterSpec re-applies tuning to a live shooter. Runtime state such
// as position, trigger and spread factors is left alone.
func ApplyShooterSpec(w *ecs.World, e ecs.Entity, spec *prefabs.ShooterSpec) error {
	if !ecs.IsAlive(w, e) {
		return fmt.Errorf("shooter: apply spec: %w", component.ErrEntityNotAlive)
	}

	if sock, ok := ecs.Get(w, e, component.SocketsComponent.Kind()); ok {
		*sock = *sockets(spec.Sockets)
	}
	if s, ok := ecs.Get(w, e, component.ShooterComponent.Kind()); ok {
		s.WeaponSocket = spec.WeaponSocket
		s.MuzzleSocket = spec.MuzzleSocket
		s.FireSound = spec.Effects.FireSound
		s.MuzzleFlash = spec.Effects.MuzzleFlash
		s.ImpactParticle = spec.Effects.ImpactParticle
		s.BeamParticle = spec.Effects.BeamParticle
		s.FireMontage = spec.Effects.FireMontage
		s.FireSection = spec.Effects.FireSection
	}
	if fire, ok := ecs.Get(w, e, component.FireComponent.Kind()); ok {
		fire.AutomaticFireInterval = component.ClampFireInterval(orDefault(spec.Fire.AutomaticFireInterval, component.DefaultAutomaticFireInterval))
	}
	if c, ok := ecs.Get(w, e, component.CrosshairComponent.Kind()); ok {
		c.Tuning = crosshairTuning(spec.Spread)
	}
	if aim, ok := ecs.Get(w, e, component.AimComponent.Kind()); ok {
		aim.DefaultFOV = orDefault(spec.Camera.FOV, defaultCameraFOV)
		aim.ZoomedFOV = orDefault(spec.Aim.ZoomedFOV, component.DefaultZoomedFOV)
		aim.ZoomInterpSpeed = orDefault(spec.Aim.ZoomInterpSpeed, component.DefaultZoomInterpSpeed)
	}
	if ctrl, ok := ecs.Get(w, e, component.ControllerComponent.Kind()); ok {
		ctrl.BaseTurnRate = orDefault(spec.Look.BaseTurnRate, component.DefaultBaseTurnRate)
		ctrl.BaseLookUpRate = orDefault(spec.Look.BaseLookUpRate, component.DefaultBaseLookUpRate)
		ctrl.MouseTurnRate = orDefault(spec.Look.MouseTurnRate, component.DefaultMouseTurnRate)
		ctrl.MouseLookUpRate = orDefault(spec.Look.MouseLookUpRate, component.DefaultMouseLookUpRate)
	}
	if mv, ok := ecs.Get(w, e, component.MovementComponent.Kind()); ok {
		mv.MoveSpeed = spec.MoveSpeed
		mv.JumpSpeed = spec.JumpSpeed
		mv.Gravity = spec.Gravity
		mv.AirControl = spec.AirControl
	}
	if sensor, ok := ecs.Get(w, e, component.ProximitySensorComponent.Kind()); ok {
		sensor.Radius = spec.SensorRadius
	}
	return nil
}
