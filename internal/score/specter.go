package score

import (
	"git.lost.host/meutraa/mokugyo/internal/game"
)

// HideStep is the miss count at which the specter slips out of view.
const HideStep = 4

const (
	specterBaseScale = 0.45
	specterGrowth    = 0.9
)

// Specter is the antagonist that creeps in as misses pile up.
type Specter struct {
	Visible bool
	Hidden  bool    // behind the play area, waiting for the finale
	Reveal  float64 // 0..1 progress towards the miss limit
}

func (s *Specter) Update(misses int, d game.Difficulty) {
	if misses <= 0 {
		return
	}
	limit := d.MissLimit()
	s.Visible = true
	if misses >= HideStep && misses < limit {
		s.Hidden = true
	}
	maxp := limit - 1
	if maxp < 1 {
		maxp = 1
	}
	s.Reveal = float64(misses) / float64(maxp)
	if s.Reveal > 1 {
		s.Reveal = 1
	}
}

func (s *Specter) Shown() bool {
	return s.Visible && !s.Hidden
}

func (s *Specter) Scale() float64 {
	return specterBaseScale + s.Reveal*specterGrowth
}
