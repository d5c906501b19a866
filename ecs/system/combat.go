package system

import (
	"math/rand/v2"

	"github.com/milk9111/gunplay/ecs"
)

// Combat bundles the controllers the host and the input layer call into.
type Combat struct {
	Resolver *HitscanResolver
	Fire     *FireController
	Items    *ItemController
}

// NewCombat wires the controllers around one resolver.
func NewCombat(vp Viewport, cfg HitscanConfig, rng *rand.Rand) *Combat {
	resolver := NewHitscanResolver(vp, cfg)
	return &Combat{
		Resolver: resolver,
		Fire:     NewFireController(resolver),
		Items:    NewItemController(rng),
	}
}

// Register adds every gameplay system to w in frame order.
func (c *Combat) Register(w *ecs.World) {
	if w == nil || c == nil {
		return
	}
	if w.OverlapWorld() == nil {
		w.SetOverlapWorld(ecs.NewOverlapWorld())
	}

	w.AddSystem(NewControlSystem(c.Fire, c.Items))
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewPhysicsSystem())
	w.AddSystem(NewItemFallingSystem())
	w.AddSystem(NewAttachmentSystem())
	w.AddSystem(NewAimSystem())
	w.AddSystem(NewCameraSystem())
	w.AddSystem(NewOverlapSensorSystem())
	w.AddSystem(NewItemTraceSystem(c.Resolver))
	w.AddSystem(NewCrosshairSystem())
	w.AddSystem(NewAnimStateSystem())
}
