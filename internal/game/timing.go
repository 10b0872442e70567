package game

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrTempo  = errors.New("tempo must be positive")
	ErrTravel = errors.New("travel duration must be positive")
	ErrPrep   = errors.New("prep delay must not be negative")
)

// Timing is the fixed clock configuration of a run. It never changes while
// notes are moving.
type Timing struct {
	BPM    float64
	Travel time.Duration // spawn -> hitline, constant linear speed
	Prep   time.Duration // countdown before the first beat
}

func (t Timing) Validate() error {
	if !(t.BPM > 0) || math.IsInf(t.BPM, 0) {
		return fmt.Errorf("%w: %v", ErrTempo, t.BPM)
	}
	if t.Travel <= 0 {
		return fmt.Errorf("%w: %v", ErrTravel, t.Travel)
	}
	if t.Prep < 0 {
		return fmt.Errorf("%w: %v", ErrPrep, t.Prep)
	}
	return nil
}

// SecondsPerBeat is rounded to the nanosecond once so every beat gap is
// exactly equal.
func (t Timing) SecondsPerBeat() time.Duration {
	return time.Duration(math.Round(float64(time.Minute) / t.BPM))
}

func (t Timing) Grid(anchor time.Duration) Grid {
	return Grid{Anchor: anchor, Beat: t.SecondsPerBeat(), Travel: t.Travel}
}
