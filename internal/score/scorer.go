package score

import (
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
)

type Scorer interface {
	// Judge classifies an absolute timing error
	Judge(abs time.Duration, d game.Difficulty) game.Judgement

	// Apply a hit at now against the closest judgeable note of the chart
	ApplyInputToChart(chart *game.Chart, now time.Duration, d game.Difficulty) Result

	Distance(n *game.Note, hitTime time.Duration) time.Duration
}

type Result struct {
	Note      *game.Note // nil when nothing was on the field
	Distance  time.Duration
	Judgement game.Judgement
}

func (r Result) Hit() bool {
	return r.Note != nil && r.Judgement.Grade != game.Miss
}
