package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/ecs/system"
	"github.com/milk9111/gunplay/prefabs"
)

func NewWeapon(w *ecs.World, specFile string) (ecs.Entity, error) {
	spec, err := prefabs.LoadWeaponSpec(specFile)
	if err != nil {
		return 0, fmt.Errorf("weapon: load spec: %w", err)
	}
	return BuildWeapon(w, specFile, spec)
}

// NewWeaponAt spawns a pickable weapon lying in the world.
func NewWeaponAt(w *ecs.World, specFile string, pos mgl64.Vec3, yaw float64) (ecs.Entity, error) {
	weapon, err := NewWeapon(w, specFile)
	if err != nil {
		return 0, err
	}
	transform, ok := ecs.Get(w, weapon, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("weapon: override transform: %w", component.ErrEntityNotAlive)
	}
	transform.Position = pos
	transform.Rotation = common.Rotator{Yaw: yaw}
	return weapon, nil
}

// BuildWeapon creates a weapon item in the Pickup state.
func BuildWeapon(w *ecs.World, source string, spec *prefabs.WeaponSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	col := collider(spec.Collider)
	weapon := weaponComponent(spec)

	if err := addComponent(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}, "weapon", "name"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.PrefabSourceComponent.Kind(), &component.PrefabSource{File: source}, "weapon", "prefab source"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.TransformComponent.Kind(), &component.Transform{}, "weapon", "transform"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.ItemComponent.Kind(), &component.Item{Name: spec.Name}, "weapon", "item"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.WeaponComponent.Kind(), &weapon, "weapon", "weapon"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.SocketsComponent.Kind(), sockets(spec.Sockets), "weapon", "sockets"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.ColliderComponent.Kind(), &col, "weapon", "collider"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.PickupVolumeComponent.Kind(), &component.PickupVolume{Radius: spec.PickupRadius}, "weapon", "pickup volume"); err != nil {
		return 0, err
	}
	if err := addComponent(w, e, component.RigidBodyComponent.Kind(), &component.RigidBody{
		Mass:           spec.Mass,
		GravityScale:   1,
		LinearDamping:  spec.LinearDamping,
		AngularDamping: spec.AngularDamping,
		Restitution:    spec.Restitution,
	}, "weapon", "rigid body"); err != nil {
		return 0, err
	}

	system.SetItemState(w, e, component.ItemStatePickup)
	return e, nil
}

func weaponComponent(spec *prefabs.WeaponSpec) component.Weapon {
	weapon := component.DefaultWeapon()
	weapon.MuzzleSocket = spec.MuzzleSocket
	weapon.ThrowWeaponTime = orDefault(spec.ThrowWeaponTime, weapon.ThrowWeaponTime)
	weapon.ThrowImpulse = orDefault(spec.ThrowImpulse, weapon.ThrowImpulse)
	weapon.ThrowTilt = orDefault(spec.ThrowTilt, weapon.ThrowTilt)
	weapon.ThrowYawJitter = orDefault(spec.ThrowYawJitter, weapon.ThrowYawJitter)
	return weapon
}

// ApplyWeaponSpec re-applies tuning to a live weapon. A throw in progress
// keeps its falling flag.
func ApplyWeaponSpec(w *ecs.World, e ecs.Entity, spec *prefabs.WeaponSpec) error {
	if !ecs.IsAlive(w, e) {
		return fmt.Errorf("weapon: apply spec: %w", component.ErrEntityNotAlive)
	}

	if wc, ok := ecs.Get(w, e, component.WeaponComponent.Kind()); ok {
		falling := wc.Falling
		*wc = weaponComponent(spec)
		wc.Falling = falling
	}
	if sock, ok := ecs.Get(w, e, component.SocketsComponent.Kind()); ok {
		*sock = *sockets(spec.Sockets)
	}
	if col, ok := ecs.Get(w, e, component.ColliderComponent.Kind()); ok {
		next := collider(spec.Collider)
		next.BlockVisibility, next.BlockWorld = col.BlockVisibility, col.BlockWorld
		*col = next
	}
	if vol, ok := ecs.Get(w, e, component.PickupVolumeComponent.Kind()); ok {
		vol.Radius = spec.PickupRadius
	}
	if body, ok := ecs.Get(w, e, component.RigidBodyComponent.Kind()); ok {
		body.Mass = spec.Mass
		body.LinearDamping = spec.LinearDamping
		body.AngularDamping = spec.AngularDamping
		body.Restitution = spec.Restitution
	}
	if item, ok := ecs.Get(w, e, component.ItemComponent.Kind()); ok {
		item.Name = spec.Name
	}
	return nil
}
