package ecs

import "github.com/milk9111/gunplay/ecs/component"

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and cancels its timers.
func DestroyEntity(w *World, e Entity) bool {
	return w.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e.id())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	value, ok := w.store(kind.ID(), false).Get(e.id()).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// ForEach calls fn for every entity holding a T. fn may add or remove
// components on the visited entity; other structural changes should wait.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(kind.ID(), false)
	if s == nil {
		return
	}
	ids := append([]entityID(nil), s.IDs()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		value, ok := s.Get(id).(*T)
		if !ok || value == nil {
			continue
		}
		fn(e, value)
	}
}

// ForEach2 calls fn for every entity holding both an A and a B.
func ForEach2[A, B any](w *World, kindA component.ComponentKind[A], kindB component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sa := w.store(kindA.ID(), false)
	sb := w.store(kindB.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range intersect(sa, sb) {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if !okA || !okB || a == nil || b == nil {
			continue
		}
		fn(e, a, b)
	}
}

// First returns the first entity holding a T.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	s := w.store(kind.ID(), false)
	for _, id := range s.IDs() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

// Lookup turns a raw entity reference stored in a component back into a
// live handle.
func Lookup(w *World, ref uint64) (Entity, bool) {
	e := Entity(ref)
	if !IsAlive(w, e) {
		return 0, false
	}
	return e, true
}

// intersect returns entity ids present in both sets, iterating the smaller.
func intersect(a, b *SparseSet) []entityID {
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]entityID, 0, a.Len())
	for _, id := range a.IDs() {
		if b.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
