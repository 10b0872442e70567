package game

import (
	"time"
)

type Grade uint8

const (
	Perfect Grade = iota
	Good
	Ok
	Miss
)

type Judgement struct {
	Grade Grade
	Time  time.Duration // base window before difficulty scaling, -1 for the catch-all miss
	Name  string
}

// Judgements are ordered from the tightest window outwards, the last entry
// catches everything else.
var Judgements = []Judgement{
	{Grade: Perfect, Time: 50 * time.Millisecond, Name: "PERFECT"},
	{Grade: Good, Time: 90 * time.Millisecond, Name: "GOOD"},
	{Grade: Ok, Time: 140 * time.Millisecond, Name: "OK"},
	{Grade: Miss, Time: -1, Name: "MISS"},
}

// GraceEpsilon is added to the widest window before an unhit note is dropped.
const GraceEpsilon = 10 * time.Millisecond

func (g Grade) String() string {
	return Judgements[g].Name
}

// Worst is the widest window that still counts as a hit.
func Worst() Judgement {
	return Judgements[len(Judgements)-2]
}

// Grace is how long past its target a note stays alive.
func Grace(d Difficulty) time.Duration {
	return d.Scale(Worst().Time) + GraceEpsilon
}
