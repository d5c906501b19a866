package system

import (
	"github.com/milk9111/gunplay/ecs"
	"github.com/milk9111/gunplay/ecs/component"
)

// OnOverlapCountChange applies an enter (+1) or leave (-1) to e's tracker.
func OnOverlapCountChange(w *ecs.World, e ecs.Entity, delta int8) {
	tracker, ok := ecs.Get(w, e, component.ProximityTrackerComponent.Kind())
	if !ok {
		return
	}
	ApplyOverlapDelta(tracker, delta)
}

// ApplyOverlapDelta adds delta to the count, flooring at zero.
func ApplyOverlapDelta(t *component.ProximityTracker, delta int8) {
	if t == nil {
		return
	}
	t.OverlapCount += int(delta)
	if t.OverlapCount < 0 {
		t.OverlapCount = 0
	}
	t.ShouldTraceForItems = t.OverlapCount > 0
}

// OverlapSensorSystem mirrors pickup volumes and proximity sensors into the
// overlap world and feeds enter/leave changes to the trackers.
type OverlapSensorSystem struct{}

func NewOverlapSensorSystem() *OverlapSensorSystem {
	return &OverlapSensorSystem{}
}

func (s *OverlapSensorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ow := w.OverlapWorld()
	if ow == nil {
		return
	}

	ecs.ForEach2(w, component.PickupVolumeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, vol *component.PickupVolume, t *component.Transform) {
		ow.SetVolume(e, t.Position.X(), t.Position.Y(), vol.Radius, vol.Enabled)
	})
	ecs.ForEach2(w, component.ProximitySensorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, sensor *component.ProximitySensor, t *component.Transform) {
		ow.SetSensor(e, t.Position.X(), t.Position.Y(), sensor.Radius)
	})

	for _, change := range ow.Step(w.DeltaSeconds()) {
		OnOverlapCountChange(w, change.Sensor, change.Delta)
	}
}

// ItemTraceSystem highlights the item under the crosshair while the
// character stands near any item.
type ItemTraceSystem struct {
	resolver *HitscanResolver
}

func NewItemTraceSystem(resolver *HitscanResolver) *ItemTraceSystem {
	return &ItemTraceSystem{resolver: resolver}
}

func (s *ItemTraceSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ProximityTrackerComponent.Kind(), func(e ecs.Entity, tracker *component.ProximityTracker) {
		var current ecs.Entity
		if tracker.ShouldTraceForItems {
			res := s.resolver.ResolveCrosshairTarget(w, e, s.resolver.Config().ItemRange)
			if res.Hit && ecs.Has(w, res.Entity, component.ItemComponent.Kind()) {
				current = res.Entity
				setPromptVisible(w, current, true)
			}
		}

		if last, ok := ecs.Lookup(w, tracker.LastTracedItem); ok && last != current {
			setPromptVisible(w, last, false)
		}
		tracker.LastTracedItem = uint64(current)
	})
}

func setPromptVisible(w *ecs.World, e ecs.Entity, visible bool) {
	item, ok := ecs.Get(w, e, component.ItemComponent.Kind())
	if !ok || item.PromptVisible == visible {
		return
	}
	item.PromptVisible = visible
	w.Events().Push(ecs.Event{Type: ecs.EventWidgetVisibility, Data: ecs.WidgetVisibilityEvent{Entity: e, Visible: visible}})
}
