package game

import (
	"time"
)

// Settings are the operator choices that survive between runs.
type Settings struct {
	Difficulty Difficulty
	Offset     time.Duration
	Hazard     bool // gimmicks keyed to spawn count instead of combo
}

func DefaultSettings() Settings {
	return Settings{Difficulty: Normal}
}
