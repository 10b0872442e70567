package gimmick

import (
	"math"
	"time"
)

// Overlay is everything the renderer needs from the active gimmicks. Offsets
// are in terminal cells. None of it feeds back into note timing.
type Overlay struct {
	ShakeX, ShakeY int
	Tilt           float64 // columns shifted per row above the hitline
	Wobble         float64 // per-note sway amplitude
	Phase          float64
	Ghost          bool
	Decoys         bool
	Flash          float64 // 0..1
	Blackout       float64 // 0..1
	Invert         float64 // 0..1
	Speed          float64 // visual animation rate, 1 is normal
}

const (
	wobbleBase     = 3.0
	wobbleSeverity = 1.2
	maxTilt        = 0.6
)

func strength(remaining time.Duration) float64 {
	return math.Min(1, remaining.Seconds())
}

func applyShakeSmall(o *Overlay, v visual) {
	o.ShakeX += int(math.Round(math.Sin(v.phase*8.0) * 2))
	o.ShakeY += int(math.Round(math.Cos(v.phase*7.0) * 1))
}

func applyShakeBig(o *Overlay, v visual) {
	o.ShakeX += int(math.Round(math.Sin(v.phase*10.0) * 4))
	o.ShakeY += int(math.Round(math.Cos(v.phase*8.5) * 2))
}

func applyTilt(o *Overlay, v visual) {
	o.Tilt = maxTilt * strength(v.remaining)
}

func applyFlash(o *Overlay, v visual) {
	o.Flash = strength(v.remaining)
}

// Slow motion works through the phase rate, see Effects.Decay.
func applySlowMotion(o *Overlay, v visual) {}

func applyLaneWobble(o *Overlay, v visual) {
	o.Wobble = wobbleBase * (1 + v.severity*wobbleSeverity)
	o.ShakeX += int(math.Round(math.Sin(v.phase*5.0) * o.Wobble * 0.25))
}

func applyGhost(o *Overlay, v visual) {
	o.Ghost = true
}

func applyDecoyRush(o *Overlay, v visual) {
	o.Decoys = true
}

func applyBlackout(o *Overlay, v visual) {
	o.Blackout = strength(v.remaining)
}

func applyInvert(o *Overlay, v visual) {
	o.Invert = strength(v.remaining)
}

// NoteOffset is the horizontal sway of one note, layered on top of its
// position at draw time.
func (o Overlay) NoteOffset(spawn time.Duration, y float64) int {
	if o.Wobble == 0 {
		return 0
	}
	phase := spawn.Seconds()*1.7 + y*4
	return int(math.Round(math.Sin(phase+o.Phase*2.5) * o.Wobble))
}
