package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/ecs/system"
	"github.com/milk9111/gunplay/prefabs"
	"github.com/rs/zerolog/log"
)

var defaultBoxColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// Level is what LoadLevel spawned.
type Level struct {
	Name    string
	Shooter ecs.Entity
	Camera  ecs.Entity
	Weapons []ecs.Entity
	Boxes   []ecs.Entity
}

// LoadLevel spawns the static boxes, the shooter with its camera and
// default weapon, and the loose weapons of a level prefab.
func LoadLevel(w *ecs.World, specFile string, items *system.ItemController) (*Level, error) {
	spec, err := prefabs.LoadLevelSpec(specFile)
	if err != nil {
		return nil, fmt.Errorf("level: load spec: %w", err)
	}

	level := &Level{Name: spec.Name}
	for _, box := range spec.Boxes {
		e, err := NewBox(w, box)
		if err != nil {
			return nil, fmt.Errorf("level: box %s: %w", box.Name, err)
		}
		level.Boxes = append(level.Boxes, e)
	}

	shooterFile := spec.Shooter.Prefab
	if shooterFile == "" {
		shooterFile = "shooter.yaml"
	}
	shooterSpec, err := prefabs.LoadShooterSpec(shooterFile)
	if err != nil {
		return nil, fmt.Errorf("level: load shooter: %w", err)
	}
	shooter, err := BuildShooter(w, shooterFile, shooterSpec)
	if err != nil {
		return nil, fmt.Errorf("level: build shooter: %w", err)
	}
	if tr, ok := ecs.Get(w, shooter, component.TransformComponent.Kind()); ok {
		tr.Position = vec3(spec.Shooter.Position)
		tr.Rotation.Yaw = spec.Shooter.Yaw
	}
	if ctrl, ok := ecs.Get(w, shooter, component.ControllerComponent.Kind()); ok {
		ctrl.Rotation.Yaw = spec.Shooter.Yaw
	}
	level.Shooter = shooter

	camera, err := NewCamera(w, shooter, shooterSpec.Camera)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}
	level.Camera = camera

	if shooterSpec.DefaultWeapon != "" {
		weapon, err := NewWeapon(w, shooterSpec.DefaultWeapon)
		if err != nil {
			return nil, fmt.Errorf("level: default weapon: %w", err)
		}
		if !items.Equip(w, shooter, weapon) {
			log.Warn().Str("weapon", shooterSpec.DefaultWeapon).Msg("level: could not equip default weapon")
		}
		level.Weapons = append(level.Weapons, weapon)
	}

	for _, placement := range spec.Weapons {
		weapon, err := NewWeaponAt(w, placement.Prefab, vec3(placement.Position), placement.Yaw)
		if err != nil {
			return nil, fmt.Errorf("level: weapon %s: %w", placement.Prefab, err)
		}
		level.Weapons = append(level.Weapons, weapon)
	}

	log.Info().Str("level", spec.Name).Int("boxes", len(level.Boxes)).Int("weapons", len(level.Weapons)).Msg("level: loaded")
	return level, nil
}

// NewBox spawns a static, solid box.
func NewBox(w *ecs.World, spec prefabs.BoxSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addComponent(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}, "box", "name"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.TransformComponent.Kind(), &component.Transform{Position: vec3(spec.Center)}, "box", "transform"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Shape:           component.ColliderBox,
		HalfExtents:     vec3(spec.HalfExtents),
		BlockVisibility: true,
		BlockWorld:      true,
	}, "box", "collider"); err != nil {
		return 0, err
	}

	tint := defaultBoxColor
	if spec.Color != nil && spec.Color.Color != nil {
		tint = color.NRGBAModel.Convert(spec.Color.Color).(color.NRGBA)
	}
	if err := addComponent(w, e, component.DebugColorComponent.Kind(), &component.DebugColor{Color: tint}, "box", "color"); err != nil {
		return 0, err
	}
	return e, nil
}
