package gimmick

import (
	"time"
)

const (
	slowMotionTarget = 0.55
	slowMotionRamp   = 0.6 // per second
)

// Effects holds the remaining duration of every gimmick. Zero is inert.
type Effects struct {
	remaining [kindCount]time.Duration
	phase     float64
	speed     float64
}

type Status struct {
	Kind      Kind
	Remaining time.Duration
}

func NewEffects() *Effects {
	return &Effects{speed: 1}
}

// Set refreshes k, it never shortens a running effect.
func (e *Effects) Set(k Kind, d time.Duration) {
	if d > e.remaining[k] {
		e.remaining[k] = d
	}
}

func (e *Effects) Remaining(k Kind) time.Duration {
	return e.remaining[k]
}

func (e *Effects) Active(k Kind) bool {
	return e.remaining[k] > 0
}

// Decay counts every timer down by dt, floored at zero, and advances the
// visual phase.
func (e *Effects) Decay(dt time.Duration) {
	if dt <= 0 {
		return
	}
	for k := range e.remaining {
		if e.remaining[k] > dt {
			e.remaining[k] -= dt
		} else {
			e.remaining[k] = 0
		}
	}

	target := 1.0
	if e.Active(SlowMotion) {
		target = slowMotionTarget
	}
	step := slowMotionRamp * dt.Seconds()
	if step > 1 {
		step = 1
	}
	e.speed += (target - e.speed) * step
	e.phase += dt.Seconds() * e.speed
}

func (e *Effects) Reset() {
	*e = Effects{speed: 1}
}

func (e *Effects) Statuses() []Status {
	var statuses []Status
	for k, d := range e.remaining {
		if d > 0 {
			statuses = append(statuses, Status{Kind: Kind(k), Remaining: d})
		}
	}
	return statuses
}

// Overlay samples the active effects through the dispatch table.
func (e *Effects) Overlay(severity float64) Overlay {
	o := Overlay{Phase: e.phase, Speed: e.speed}
	for k, d := range e.remaining {
		if d <= 0 {
			continue
		}
		kinds[k].apply(&o, visual{remaining: d, phase: e.phase, severity: severity})
	}
	return o
}
