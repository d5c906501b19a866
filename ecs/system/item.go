package system

import (
	"math/rand/v2"

	"github.com/milk9111/gunplay/common"
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/rs/zerolog/log"
)

const throwWeaponTimer = "throw_weapon"

// SetItemState records a transition and applies the collision, trigger and
// physics settings of the new state.
func SetItemState(w *ecs.World, e ecs.Entity, state component.ItemState) {
	item, ok := ecs.Get(w, e, component.ItemComponent.Kind())
	if !ok {
		return
	}
	from := item.State
	item.State = state
	applyItemProperties(w, e, state)

	if state != component.ItemStatePickup && item.PromptVisible {
		setPromptVisible(w, e, false)
	}

	w.Events().Push(ecs.Event{Type: ecs.EventItemState, Data: ecs.ItemStateEvent{
		Entity: e,
		From:   from.String(),
		To:     state.String(),
	}})
	log.Debug().Stringer("entity", e).Str("from", from.String()).Str("state", state.String()).Msg("item: state changed")
}

func applyItemProperties(w *ecs.World, e ecs.Entity, state component.ItemState) {
	col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
	vol, _ := ecs.Get(w, e, component.PickupVolumeComponent.Kind())
	body, _ := ecs.Get(w, e, component.RigidBodyComponent.Kind())

	var blockVisibility, blockWorld, volume, simulate bool
	switch state {
	case component.ItemStatePickup:
		blockVisibility, volume = true, true
	case component.ItemStateFalling:
		blockWorld, simulate = true, true
	}

	if col != nil {
		col.BlockVisibility = blockVisibility
		col.BlockWorld = blockWorld
	}
	if vol != nil {
		vol.Enabled = volume
	}
	if body != nil {
		body.Simulate = simulate
		if !simulate {
			body.Velocity = body.Velocity.Mul(0)
			body.AngularVelocity = common.Rotator{}
			body.Grounded = false
		}
	}
}

// ItemController drives explicit item transitions: equip, drop, throw and
// pickup.
type ItemController struct {
	rng *rand.Rand
}

// NewItemController uses rng for the throw yaw jitter. A nil rng falls
// back to the package generator.
func NewItemController(rng *rand.Rand) *ItemController {
	return &ItemController{rng: rng}
}

func (c *ItemController) randFloat() float64 {
	if c == nil || c.rng == nil {
		return rand.Float64()
	}
	return c.rng.Float64()
}

// Equip attaches item to the shooter's weapon socket and marks it equipped.
// A different weapon already held is dropped and thrown first; a falling
// item stops falling.
func (c *ItemController) Equip(w *ecs.World, shooterEntity, item ecs.Entity) bool {
	shooter, ok := ecs.Get(w, shooterEntity, component.ShooterComponent.Kind())
	if !ok {
		return false
	}
	it, ok := ecs.Get(w, item, component.ItemComponent.Kind())
	if !ok {
		return false
	}

	if held, ok := ecs.Lookup(w, shooter.EquippedWeapon); ok && held != item {
		c.DropAndThrow(w, shooterEntity)
	}
	cancelFalling(w, item)

	it.Owner = uint64(shooterEntity)
	shooter.EquippedWeapon = uint64(item)
	if err := ecs.Add(w, item, component.AttachmentComponent.Kind(), &component.Attachment{
		Parent: uint64(shooterEntity),
		Socket: shooter.WeaponSocket,
	}); err != nil {
		log.Error().Err(err).Stringer("entity", item).Msg("item: attach to wielder")
	}
	if t, ok := SocketWorldTransform(w, shooterEntity, shooter.WeaponSocket); ok {
		if tr, ok := ecs.Get(w, item, component.TransformComponent.Kind()); ok {
			*tr = t
		}
	}

	SetItemState(w, item, component.ItemStateEquipped)
	log.Debug().Stringer("entity", shooterEntity).Stringer("weapon", item).Msg("item: equipped")
	return true
}

// Drop detaches the equipped item where it stands. The item keeps its
// current state; callers pick the follow-up (Throw or SetItemState).
func (c *ItemController) Drop(w *ecs.World, shooterEntity ecs.Entity) (ecs.Entity, bool) {
	shooter, ok := ecs.Get(w, shooterEntity, component.ShooterComponent.Kind())
	if !ok {
		return 0, false
	}
	item, ok := ecs.Lookup(w, shooter.EquippedWeapon)
	shooter.EquippedWeapon = 0
	if !ok {
		return 0, false
	}

	ecs.Remove(w, item, component.AttachmentComponent.Kind())
	if it, ok := ecs.Get(w, item, component.ItemComponent.Kind()); ok {
		it.Owner = 0
	}
	log.Debug().Stringer("entity", shooterEntity).Stringer("weapon", item).Msg("item: dropped")
	return item, true
}

// Throw levels the weapon, pushes it sideways with a random yaw and starts
// the falling window. Items without a Weapon are not throwable.
func (c *ItemController) Throw(w *ecs.World, item ecs.Entity) bool {
	weapon, ok := ecs.Get(w, item, component.WeaponComponent.Kind())
	if !ok {
		return false
	}
	t, ok := ecs.Get(w, item, component.TransformComponent.Kind())
	if !ok {
		return false
	}

	t.Rotation = t.Rotation.YawOnly()
	dir := common.RotateAngleAxis(t.Rotation.Right(), weapon.ThrowTilt, t.Rotation.Forward())
	dir = common.RotateAngleAxis(dir, c.randFloat()*weapon.ThrowYawJitter, common.AxisUp)

	SetItemState(w, item, component.ItemStateFalling)
	ApplyImpulse(w, item, dir.Mul(weapon.ThrowImpulse))

	weapon.Falling = true
	w.SetTimer(item, throwWeaponTimer, weapon.ThrowWeaponTime, func(w *ecs.World) {
		StopFalling(w, item)
	})
	log.Debug().Stringer("entity", item).Float64("settle", weapon.ThrowWeaponTime).Msg("item: thrown")
	return true
}

// StopFalling ends a throw and makes the item pickable again.
func StopFalling(w *ecs.World, item ecs.Entity) {
	cancelFalling(w, item)
	SetItemState(w, item, component.ItemStatePickup)
}

func cancelFalling(w *ecs.World, item ecs.Entity) {
	if weapon, ok := ecs.Get(w, item, component.WeaponComponent.Kind()); ok {
		weapon.Falling = false
	}
	w.ClearTimer(item, throwWeaponTimer)
}

// PickUp takes a world item into the shooter's hands. A falling weapon is
// caught immediately.
func (c *ItemController) PickUp(w *ecs.World, shooterEntity, item ecs.Entity) bool {
	it, ok := ecs.Get(w, item, component.ItemComponent.Kind())
	if !ok || !ecs.Has(w, shooterEntity, component.ShooterComponent.Kind()) {
		return false
	}
	if it.State == component.ItemStateFalling {
		StopFalling(w, item)
	}
	SetItemState(w, item, component.ItemStateEquipInterping)
	return c.Equip(w, shooterEntity, item)
}

// DropAndThrow drops the equipped weapon and throws it.
func (c *ItemController) DropAndThrow(w *ecs.World, shooterEntity ecs.Entity) (ecs.Entity, bool) {
	item, ok := c.Drop(w, shooterEntity)
	if !ok {
		return 0, false
	}
	if !c.Throw(w, item) {
		SetItemState(w, item, component.ItemStatePickup)
	}
	return item, true
}

// Select swaps the equipped weapon for the highlighted item, or throws the
// equipped weapon away when nothing is highlighted.
func (c *ItemController) Select(w *ecs.World, shooterEntity ecs.Entity) {
	var target ecs.Entity
	if tracker, ok := ecs.Get(w, shooterEntity, component.ProximityTrackerComponent.Kind()); ok {
		if item, ok := ecs.Lookup(w, tracker.LastTracedItem); ok && ecs.Has(w, item, component.ItemComponent.Kind()) {
			target = item
			tracker.LastTracedItem = 0
		}
	}

	c.DropAndThrow(w, shooterEntity)
	if target.Valid() {
		c.PickUp(w, shooterEntity, target)
	}
}

// ItemFallingSystem keeps falling weapons level. Physics may spin them, but
// only yaw survives.
type ItemFallingSystem struct{}

func NewItemFallingSystem() *ItemFallingSystem {
	return &ItemFallingSystem{}
}

func (s *ItemFallingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ItemComponent.Kind(), component.WeaponComponent.Kind(), func(e ecs.Entity, item *component.Item, weapon *component.Weapon) {
		if item.State != component.ItemStateFalling || !weapon.Falling {
			return
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Rotation = t.Rotation.YawOnly()
		}
	})
}
