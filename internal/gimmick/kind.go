package gimmick

import (
	"time"
)

// Kind is one of the closed set of gimmicks.
type Kind uint8

const (
	ShakeSmall Kind = iota
	ShakeBig
	Tilt
	Flash
	SlowMotion
	LaneWobble
	Ghost
	DecoyRush
	Blackout
	Invert

	kindCount
)

// Kinds lists every gimmick in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

type kindSpec struct {
	name        string
	description string
	base        time.Duration
	apply       func(o *Overlay, v visual)
}

// visual is what an effect sees when it is sampled for a frame.
type visual struct {
	remaining time.Duration
	phase     float64 // seconds of visual time, slowed by slow motion
	severity  float64 // misses / miss limit
}

var kinds = [kindCount]kindSpec{
	ShakeSmall: {
		name:        "shake_small",
		description: "light screen shake",
		base:        1600 * time.Millisecond,
		apply:       applyShakeSmall,
	},
	ShakeBig: {
		name:        "shake_big",
		description: "heavy screen shake",
		base:        2800 * time.Millisecond,
		apply:       applyShakeBig,
	},
	Tilt: {
		name:        "tilt",
		description: "the whole field leans over",
		base:        3600 * time.Millisecond,
		apply:       applyTilt,
	},
	Flash: {
		name:        "flash",
		description: "a red flash",
		base:        600 * time.Millisecond,
		apply:       applyFlash,
	},
	SlowMotion: {
		name:        "slowmo",
		description: "everything seems to slow down (display only)",
		base:        5000 * time.Millisecond,
		apply:       applySlowMotion,
	},
	LaneWobble: {
		name:        "lane_wobble",
		description: "the lane sways and the notes wobble",
		base:        4000 * time.Millisecond,
		apply:       applyLaneWobble,
	},
	Ghost: {
		name:        "ghost",
		description: "notes turn translucent",
		base:        4000 * time.Millisecond,
		apply:       applyGhost,
	},
	DecoyRush: {
		name:        "spawn_rush",
		description: "grey decoy notes appear",
		base:        6000 * time.Millisecond,
		apply:       applyDecoyRush,
	},
	Blackout: {
		name:        "blackout",
		description: "the lights go out for a moment",
		base:        3000 * time.Millisecond,
		apply:       applyBlackout,
	},
	Invert: {
		name:        "invert",
		description: "colours turn wrong",
		base:        4000 * time.Millisecond,
		apply:       applyInvert,
	},
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kinds[k].name
}

func (k Kind) Description() string {
	if k >= kindCount {
		return ""
	}
	return kinds[k].description
}

func (k Kind) Base() time.Duration {
	return kinds[k].base
}
