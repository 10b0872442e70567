package game

import (
	"time"
)

// Scheduler lazily walks the beat grid and materialises notes once their
// spawn time has passed.
type Scheduler struct {
	grid      Grid
	next      int
	count     int
	scheduled map[time.Duration]struct{}
}

func NewScheduler(grid Grid) *Scheduler {
	return &Scheduler{
		grid:      grid,
		scheduled: map[time.Duration]struct{}{},
	}
}

// Advance spawns every beat whose spawn time is at or before now. After a
// stall it catches up in beat order. Calling it again with the same now
// spawns nothing.
func (s *Scheduler) Advance(now time.Duration) []*Note {
	var spawned []*Note
	for s.grid.Spawn(s.next) <= now {
		target := s.grid.Target(s.next)
		if _, ok := s.scheduled[target]; !ok {
			s.scheduled[target] = struct{}{}
			s.count++
			spawned = append(spawned, &Note{
				Beat:   s.next,
				Seq:    s.count,
				Target: target,
				Spawn:  target - s.grid.Travel,
			})
		}
		s.next++
	}
	return spawned
}

// BeatIndex is the next beat that has not been spawned yet.
func (s *Scheduler) BeatIndex() int {
	return s.next
}

func (s *Scheduler) SpawnCount() int {
	return s.count
}
