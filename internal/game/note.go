package game

import (
	"time"
)

type NoteState uint8

const (
	Active NoteState = iota
	Consumed
	Expired
)

// Normalised vertical positions, the renderer maps these onto the play area.
const (
	SpawnY = 0.0
	HitY   = 1.0
)

type Note struct {
	Beat   int           // beat index on the grid, -1 for decoys
	Seq    int           // running spawn count when this note was created
	Target time.Duration // The time the note should be hit
	Spawn  time.Duration // The time the note enters the play area
	Decoy  bool

	// This is state
	State   NoteState
	HitTime time.Duration // When the note was hit
}

func NewNote(target, travel time.Duration) *Note {
	return &Note{Beat: -1, Target: target, Spawn: target - travel}
}

func NewDecoy(target, travel time.Duration) *Note {
	n := NewNote(target, travel)
	n.Decoy = true
	return n
}

func (n *Note) Travel() time.Duration {
	return n.Target - n.Spawn
}

func (n *Note) Progress(now time.Duration) float64 {
	travel := n.Travel()
	if travel <= 0 {
		return 1
	}
	p := float64(now-n.Spawn) / float64(travel)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Position is strictly linear between the spawn and hit positions.
func (n *Note) Position(now time.Duration) float64 {
	p := n.Progress(now)
	return SpawnY*(1-p) + HitY*p
}

func (n *Note) Overdue(now, grace time.Duration) bool {
	return now-n.Target > grace
}

func (n *Note) Live() bool {
	return n.State == Active
}
