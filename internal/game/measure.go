package game

import (
	"time"
)

// Grid is the infinite beat grid anchored at Anchor.
type Grid struct {
	Anchor time.Duration
	Beat   time.Duration
	Travel time.Duration
}

func (g Grid) Target(n int) time.Duration {
	return g.Anchor + time.Duration(n)*g.Beat
}

func (g Grid) Spawn(n int) time.Duration {
	return g.Target(n) - g.Travel
}
