package score

import (
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
)

type DefaultScorer struct{}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// Distance is positive when the hit was early
func (s *DefaultScorer) Distance(n *game.Note, hitTime time.Duration) time.Duration {
	return n.Target - hitTime
}

func (s *DefaultScorer) Judge(d time.Duration, difficulty game.Difficulty) game.Judgement {
	for i := 0; i < len(game.Judgements)-1; i++ {
		judgement := game.Judgements[i]
		if d <= difficulty.Scale(judgement.Time) {
			return judgement
		}
	}
	return game.Judgements[len(game.Judgements)-1]
}

// ApplyInputToChart picks the judgeable note nearest to now. There is no
// current note, any live note may be judged.
func (s *DefaultScorer) ApplyInputToChart(chart *game.Chart, now time.Duration, difficulty game.Difficulty) Result {
	var closestNote *game.Note
	absDistance := time.Hour * 24
	distance := time.Hour * 24

	for _, note := range chart.Judgeable() {
		dd := s.Distance(note, now)
		d := abs(dd)
		if d < absDistance {
			distance = dd
			absDistance = d
			closestNote = note
		}
	}

	miss := game.Judgements[len(game.Judgements)-1]
	if nil == closestNote {
		return Result{Judgement: miss}
	}

	judgement := s.Judge(absDistance, difficulty)
	if judgement.Grade != game.Miss {
		closestNote.State = game.Consumed
		closestNote.HitTime = now
	}
	return Result{Note: closestNote, Distance: distance, Judgement: judgement}
}
