package score

import (
	"math"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
)

// Tally is the combo and miss bookkeeping of a run, plus the hit error stats.
type Tally struct {
	Combo  int
	Misses int
	Counts [4]int // indexed by game.Grade

	totalHits     int
	sumOfDistance float64
	sumOfSquares  float64
}

func (t *Tally) Hit(r Result) {
	t.Combo++
	t.Counts[r.Judgement.Grade]++
	t.totalHits++
	d := float64(r.Distance)
	t.sumOfDistance += d
	t.sumOfSquares += d * d
}

func (t *Tally) Miss() {
	t.Combo = 0
	t.Misses++
	t.Counts[game.Miss]++
}

// Failed reports whether the miss limit of d has been reached.
func (t *Tally) Failed(d game.Difficulty) bool {
	return t.Misses >= d.MissLimit()
}

func (t *Tally) Mean() time.Duration {
	if t.totalHits == 0 {
		return 0
	}
	return time.Duration(t.sumOfDistance / float64(t.totalHits))
}

// Stdev is the sample standard deviation of the hit error.
func (t *Tally) Stdev() time.Duration {
	if t.totalHits < 2 {
		return 0
	}
	n := float64(t.totalHits)
	mean := t.sumOfDistance / n
	variance := (t.sumOfSquares - n*mean*mean) / (n - 1)
	if variance < 0 {
		variance = 0
	}
	return time.Duration(math.Sqrt(variance))
}
