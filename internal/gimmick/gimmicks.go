package gimmick

import (
	"math"
	"math/rand"
	"time"
)

const (
	// NoticeDuration is how long the new gimmick notice stays up.
	NoticeDuration = 4 * time.Second

	// IntensityGain scales effect durations by the share of the miss limit used.
	IntensityGain = 1.5

	// DecoyRate is the mean number of decoys per second during a rush.
	DecoyRate = 1.8
)

// Gimmicks picks, times and samples the visual perturbations of a session.
type Gimmicks struct {
	Effects *Effects
	Log     Log

	rng      *rand.Rand
	notice   time.Duration
	attempts int
}

func New(rng *rand.Rand) *Gimmicks {
	return &Gimmicks{
		Effects: NewEffects(),
		rng:     rng,
	}
}

func Intensity(misses, limit int) float64 {
	if limit < 1 {
		limit = 1
	}
	return 1 + float64(misses)/float64(limit)*IntensityGain
}

// Trigger draws one of the kinds or the no-op outcome, all with equal
// weight, and arms it scaled by the miss count.
func (g *Gimmicks) Trigger(misses, limit int) (Kind, bool) {
	g.attempts++
	choice := g.rng.Intn(int(kindCount) + 1)
	if choice == int(kindCount) {
		return 0, false
	}
	k := Kind(choice)
	g.Arm(k, misses, limit)
	return k, true
}

// Arm starts k directly.
func (g *Gimmicks) Arm(k Kind, misses, limit int) {
	if g.Log.Record(k) {
		g.notice = NoticeDuration
	}
	d := time.Duration(math.Round(float64(k.Base()) * Intensity(misses, limit)))
	g.Effects.Set(k, d)
}

// Attempts counts every Trigger call, no-op outcomes included.
func (g *Gimmicks) Attempts() int {
	return g.attempts
}

func (g *Gimmicks) Notice() time.Duration {
	return g.notice
}

func (g *Gimmicks) Decay(dt time.Duration) {
	g.Effects.Decay(dt)
	if g.notice > dt {
		g.notice -= dt
	} else if dt > 0 {
		g.notice = 0
	}
}

// Decoy reports whether a decoy should be injected this frame. The chance
// integrates DecoyRate over dt so the count does not depend on frame rate.
func (g *Gimmicks) Decoy(dt time.Duration) bool {
	if !g.Effects.Active(DecoyRush) || dt <= 0 {
		return false
	}
	p := 1 - math.Exp(-DecoyRate*dt.Seconds())
	return g.rng.Float64() < p
}

// ResetRun clears the effect timers for a new run, the log survives.
func (g *Gimmicks) ResetRun() {
	g.Effects.Reset()
	g.notice = 0
	g.attempts = 0
}

// ResetSession clears everything including the log.
func (g *Gimmicks) ResetSession() {
	g.ResetRun()
	g.Log.Reset()
}
