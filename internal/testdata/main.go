package testdata

import (
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
)

// GetTiming is the stock 158 BPM setup.
func GetTiming() game.Timing {
	return game.Timing{
		BPM:    158,
		Travel: 1600 * time.Millisecond,
		Prep:   1600 * time.Millisecond,
	}
}

// Clock is a game.Clock that only moves when told to.
type Clock struct {
	T time.Duration
}

func (c *Clock) Now() time.Duration {
	return c.T
}

func (c *Clock) Set(t time.Duration) {
	c.T = t
}

func (c *Clock) Add(d time.Duration) time.Duration {
	c.T += d
	return c.T
}
