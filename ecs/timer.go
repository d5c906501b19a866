package ecs

import "github.com/rs/zerolog/log"

// maxTimerFiresPerFrame bounds catch-up work when callbacks keep re-arming
// with deadlines inside the current frame.
const maxTimerFiresPerFrame = 4096

// TimerFunc runs on the update goroutine when its deadline passes.
type TimerFunc func(w *World)

// TimerKey names one pending timer. At most one timer per key is pending.
type TimerKey struct {
	Entity Entity
	Name   string
}

type pendingTimer struct {
	deadline float64
	seq      uint64
	fn       TimerFunc
}

type timerQueue struct {
	pending map[TimerKey]*pendingTimer
	seq     uint64
}

func (q *timerQueue) set(key TimerKey, deadline float64, fn TimerFunc) {
	if q.pending == nil {
		q.pending = make(map[TimerKey]*pendingTimer)
	}
	q.seq++
	q.pending[key] = &pendingTimer{deadline: deadline, seq: q.seq, fn: fn}
}

func (q *timerQueue) clear(key TimerKey) bool {
	if _, ok := q.pending[key]; !ok {
		return false
	}
	delete(q.pending, key)
	return true
}

func (q *timerQueue) clearEntity(e Entity) {
	for key := range q.pending {
		if key.Entity == e {
			delete(q.pending, key)
		}
	}
}

// next pops the earliest timer due at or before until. Ties go to the
// timer armed first.
func (q *timerQueue) next(until float64) (*pendingTimer, bool) {
	var (
		bestKey TimerKey
		best    *pendingTimer
	)
	for key, t := range q.pending {
		if t.deadline > until {
			continue
		}
		if best == nil || t.deadline < best.deadline || (t.deadline == best.deadline && t.seq < best.seq) {
			bestKey, best = key, t
		}
	}
	if best == nil {
		return nil, false
	}
	delete(q.pending, bestKey)
	return best, true
}

// SetTimer arms a one-shot callback delay seconds from now, replacing any
// pending timer with the same entity and name.
func (w *World) SetTimer(e Entity, name string, delay float64, fn TimerFunc) {
	if w == nil || fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	w.timers.set(TimerKey{Entity: e, Name: name}, w.time+delay, fn)
}

// ClearTimer cancels a pending timer. It reports whether one was pending.
func (w *World) ClearTimer(e Entity, name string) bool {
	if w == nil {
		return false
	}
	return w.timers.clear(TimerKey{Entity: e, Name: name})
}

// TimerActive reports whether a timer is pending.
func (w *World) TimerActive(e Entity, name string) bool {
	if w == nil {
		return false
	}
	_, ok := w.timers.pending[TimerKey{Entity: e, Name: name}]
	return ok
}

// TimerRemaining returns the seconds left on a pending timer.
func (w *World) TimerRemaining(e Entity, name string) (float64, bool) {
	if w == nil {
		return 0, false
	}
	t, ok := w.timers.pending[TimerKey{Entity: e, Name: name}]
	if !ok {
		return 0, false
	}
	return t.deadline - w.time, true
}

// PendingTimers returns the number of armed timers.
func (w *World) PendingTimers() int {
	if w == nil {
		return 0
	}
	return len(w.timers.pending)
}

func (w *World) fireTimers(until float64) {
	for fired := 0; ; fired++ {
		if fired >= maxTimerFiresPerFrame {
			log.Warn().Int("pending", len(w.timers.pending)).Msg("ecs: timer budget exhausted, deferring to next frame")
			break
		}
		t, ok := w.timers.next(until)
		if !ok {
			break
		}
		if t.deadline > w.time {
			w.time = t.deadline
		}
		t.fn(w)
	}
	w.time = until
}
