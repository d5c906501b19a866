package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/gunplay/common"
)

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Side effects the core emits. Hosts drain them once per frame.
const (
	EventPlaySound        = "play_sound"
	EventSpawnParticle    = "spawn_particle"
	EventSpawnBeam        = "spawn_beam"
	EventPlayMontage      = "play_montage"
	EventWidgetVisibility = "widget_visibility"
	EventImpulse          = "impulse"
	EventItemState        = "item_state"
)

type SoundEvent struct {
	Source Entity
	Cue    string
}

type ParticleEvent struct {
	Template string
	Location mgl64.Vec3
	Rotation common.Rotator
}

// BeamEvent is a tracer from Start toward End.
type BeamEvent struct {
	Template string
	Start    mgl64.Vec3
	End      mgl64.Vec3
}

type MontageEvent struct {
	Entity  Entity
	Montage string
	Section string
}

type WidgetVisibilityEvent struct {
	Entity  Entity
	Visible bool
}

type ImpulseEvent struct {
	Entity  Entity
	Impulse mgl64.Vec3
}

type ItemStateEvent struct {
	Entity Entity
	From   string
	To     string
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
