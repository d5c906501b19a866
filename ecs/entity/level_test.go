package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/ecs/system"
	"github.com/milk9111/gunplay/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useEmbeddedPrefabs(t *testing.T) {
	t.Helper()
	prev := prefabs.DiskDir()
	prefabs.SetDiskDir("")
	t.Cleanup(func() { prefabs.SetDiskDir(prev) })
}

func TestLoadLevel(t *testing.T) {
	useEmbeddedPrefabs(t)
	w := ecs.NewWorld()

	level, err := LoadLevel(w, "level.yaml", system.NewItemController(nil))
	require.NoError(t, err)
	assert.Equal(t, "range", level.Name)
	assert.Len(t, level.Boxes, 5)
	require.Len(t, level.Weapons, 3)

	shooter, ok := ecs.Get(w, level.Shooter, component.ShooterComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, uint64(level.Weapons[0]), shooter.EquippedWeapon, "default weapon equipped")

	held, _ := ecs.Get(w, level.Weapons[0], component.ItemComponent.Kind())
	assert.Equal(t, component.ItemStateEquipped, held.State)
	assert.True(t, ecs.Has(w, level.Weapons[0], component.AttachmentComponent.Kind()))

	for _, weapon := range level.Weapons[1:] {
		item, _ := ecs.Get(w, weapon, component.ItemComponent.Kind())
		assert.Equal(t, component.ItemStatePickup, item.State)
		vol, _ := ecs.Get(w, weapon, component.PickupVolumeComponent.Kind())
		assert.True(t, vol.Enabled)
		col, _ := ecs.Get(w, weapon, component.ColliderComponent.Kind())
		assert.True(t, col.BlockVisibility)
	}

	cam, ok := ecs.Get(w, level.Camera, component.CameraComponent.Kind())
	require.True(t, ok)
	assert.True(t, cam.Active)
	assert.Equal(t, uint64(level.Shooter), cam.Target)

	fire, _ := ecs.Get(w, level.Shooter, component.FireComponent.Kind())
	assert.True(t, fire.CanFire)
	assert.Equal(t, 0.1, fire.AutomaticFireInterval)

	for _, box := range level.Boxes {
		tint, ok := ecs.Get(w, box, component.DebugColorComponent.Kind())
		require.True(t, ok)
		assert.Equal(t, uint8(0xff), tint.Color.A)
	}
}

func TestLoadLevelMissingPrefab(t *testing.T) {
	useEmbeddedPrefabs(t)
	_, err := LoadLevel(ecs.NewWorld(), "nope.yaml", system.NewItemController(nil))
	assert.ErrorContains(t, err, "level: load spec")
}

func TestReloadAppliesToLiveEntities(t *testing.T) {
	useEmbeddedPrefabs(t)
	w := ecs.NewWorld()
	level, err := LoadLevel(w, "level.yaml", system.NewItemController(nil))
	require.NoError(t, err)

	dir := t.TempDir()
	prefabs.SetDiskDir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rifle.yaml"), []byte(`
name: rifle_mk2
collider:
  shape: box
  half_extents: {x: 50, y: 4, z: 8}
muzzle_socket: muzzle
pickup_radius: 120
mass: 12
throw_weapon_time: 1.25
`), 0o644))

	n, err := Reload(w, "rifle.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "held and placed rifle")

	held, _ := ecs.Get(w, level.Weapons[0], component.WeaponComponent.Kind())
	assert.Equal(t, 1.25, held.ThrowWeaponTime)
	assert.Equal(t, component.DefaultThrowImpulse, held.ThrowImpulse)

	heldCol, _ := ecs.Get(w, level.Weapons[0], component.ColliderComponent.Kind())
	assert.False(t, heldCol.BlockVisibility, "state-driven collision flags survive reload")
	assert.Equal(t, 50.0, heldCol.HalfExtents.X())

	n, err = Reload(w, "unused.yaml")
	require.NoError(t, err)
	assert.Zero(t, n)
}
