package ecs

import (
	"math"
	"testing"
)

func TestTimerFiresAtFrameBoundary(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	fired := 0
	var firedAt float64
	w.SetTimer(e, "cooldown", 0.1, func(w *World) {
		fired++
		firedAt = w.Time()
	})

	w.Update(0.05)
	if fired != 0 {
		t.Fatalf("fired early")
	}
	if rem, ok := w.TimerRemaining(e, "cooldown"); !ok || math.Abs(rem-0.05) > 1e-9 {
		t.Fatalf("remaining = %v ok=%v", rem, ok)
	}
	w.Update(0.06)
	if fired != 1 {
		t.Fatalf("expected one fire, got %d", fired)
	}
	if math.Abs(firedAt-0.1) > 1e-9 {
		t.Fatalf("callback should observe its deadline, got %v", firedAt)
	}
	if math.Abs(w.Time()-0.11) > 1e-9 {
		t.Fatalf("clock should end at frame time, got %v", w.Time())
	}
	if w.TimerActive(e, "cooldown") {
		t.Fatalf("one-shot timer still pending")
	}
}

func TestTimerRearmReplaces(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	var calls []string
	w.SetTimer(e, "pulse", 0.5, func(*World) { calls = append(calls, "first") })
	w.Update(0.3)
	w.SetTimer(e, "pulse", 0.5, func(*World) { calls = append(calls, "second") })
	if w.PendingTimers() != 1 {
		t.Fatalf("re-arm must not stack, pending=%d", w.PendingTimers())
	}

	w.Update(0.3)
	if len(calls) != 0 {
		t.Fatalf("replaced timer fired: %v", calls)
	}
	w.Update(0.3)
	if len(calls) != 1 || calls[0] != "second" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestTimerOrderingAndCatchUp(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	var times []float64
	var tick TimerFunc
	tick = func(w *World) {
		times = append(times, w.Time())
		if len(times) < 4 {
			w.SetTimer(e, "tick", 0.1, tick)
		}
	}
	w.SetTimer(e, "tick", 0.1, tick)

	w.Update(0.35)
	if len(times) != 3 {
		t.Fatalf("expected 3 catch-up fires in one frame, got %v", times)
	}
	for i, at := range times {
		want := 0.1 * float64(i+1)
		if math.Abs(at-want) > 1e-9 {
			t.Fatalf("fire %d at %v, want %v", i, at, want)
		}
	}
}

func TestTimerClearAndDestroy(t *testing.T) {
	w := NewWorld()
	a := CreateEntity(w)
	b := CreateEntity(w)
	fired := map[Entity]bool{}
	w.SetTimer(a, "x", 0.1, func(*World) { fired[a] = true })
	w.SetTimer(b, "x", 0.1, func(*World) { fired[b] = true })
	w.SetTimer(b, "y", 0.1, func(*World) { fired[b] = true })

	if !w.ClearTimer(a, "x") {
		t.Fatalf("ClearTimer should report a pending timer")
	}
	if w.ClearTimer(a, "x") {
		t.Fatalf("second ClearTimer should report nothing pending")
	}
	DestroyEntity(w, b)
	if w.PendingTimers() != 0 {
		t.Fatalf("destroy must cancel timers, pending=%d", w.PendingTimers())
	}
	w.Update(1)
	if len(fired) != 0 {
		t.Fatalf("cancelled timers fired: %v", fired)
	}
}
