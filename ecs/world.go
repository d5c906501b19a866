package ecs

import "github.com/milk9111/gunplay/ecs/component"

// World owns entities, components, timers and system order. All mutation
// happens on the goroutine that calls Update.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler *Scheduler
	events    EventQueue
	timers    timerQueue

	// time is simulation seconds. While timers drain it holds the deadline
	// of the callback being run.
	time  float64
	dt    float64
	frame uint64

	overlap *OverlapWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		scheduler: NewScheduler(),
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update advances the clock by dt, fires due timers, then runs all systems
// once.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.frame++
	w.dt = dt
	w.fireTimers(w.time + dt)
	w.scheduler.Update(w)
}

// Time returns the current simulation time in seconds.
func (w *World) Time() float64 {
	if w == nil {
		return 0
	}
	return w.time
}

// DeltaSeconds returns the length of the frame being updated.
func (w *World) DeltaSeconds() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Frame returns the number of Update calls so far.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetOverlapWorld attaches the proximity volume space to this world.
func (w *World) SetOverlapWorld(ow *OverlapWorld) {
	if w == nil {
		return
	}
	w.overlap = ow
}

// OverlapWorld returns the attached overlap space, if any.
func (w *World) OverlapWorld() *OverlapWorld {
	if w == nil {
		return nil
	}
	return w.overlap
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

func (w *World) destroy(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.Remove(id)
	}
	w.timers.clearEntity(e)
	if w.overlap != nil {
		w.overlap.Remove(e)
	}
	return w.entities.destroy(e)
}
