package entity

import (
	"fmt"

	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
	"github.com/milk9111/gunplay/prefabs"
	"github.com/rs/zerolog/log"
)

// Reload re-reads a changed prefab and applies it to every live entity
// built from it. It returns the number of entities updated.
func Reload(w *ecs.World, specFile string) (int, error) {
	var targets []ecs.Entity
	ecs.ForEach(w, component.PrefabSourceComponent.Kind(), func(e ecs.Entity, src *component.PrefabSource) {
		if src.File == specFile {
			targets = append(targets, e)
		}
	})
	if len(targets) == 0 {
		return 0, nil
	}

	var (
		shooterSpec *prefabs.ShooterSpec
		weaponSpec  *prefabs.WeaponSpec
		err         error
	)
	updated := 0
	for _, e := range targets {
		switch {
		case ecs.Has(w, e, component.ShooterComponent.Kind()):
			if shooterSpec == nil {
				if shooterSpec, err = prefabs.LoadShooterSpec(specFile); err != nil {
					return updated, fmt.Errorf("reload: %w", err)
				}
			}
			err = ApplyShooterSpec(w, e, shooterSpec)
		case ecs.Has(w, e, component.WeaponComponent.Kind()):
			if weaponSpec == nil {
				if weaponSpec, err = prefabs.LoadWeaponSpec(specFile); err != nil {
					return updated, fmt.Errorf("reload: %w", err)
				}
			}
			err = ApplyWeaponSpec(w, e, weaponSpec)
		default:
			continue
		}
		if err != nil {
			return updated, fmt.Errorf("reload: %w", err)
		}
		updated++
	}

	log.Info().Str("prefab", specFile).Int("entities", updated).Msg("reload: applied")
	return updated, nil
}
