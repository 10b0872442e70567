package session

import (
	"git.lost.host/meutraa/mokugyo/internal/input"
)

type Scene uint8

const (
	Start Scene = iota
	SettingsScene
	Playing
	GameOver
	Cleared
)

var sceneNames = [...]string{
	Start:         "start",
	SettingsScene: "settings",
	Playing:       "playing",
	GameOver:      "gameover",
	Cleared:       "cleared",
}

func (s Scene) String() string {
	if int(s) >= len(sceneNames) {
		return "unknown"
	}
	return sceneNames[s]
}

// Phase is the substate of a run inside the Playing scene.
type Phase uint8

const (
	Idle Phase = iota
	Prep
	Active
	Failed
	Clear
)

var phaseNames = [...]string{
	Idle:   "idle",
	Prep:   "prep",
	Active: "active",
	Failed: "failed",
	Clear:  "cleared",
}

func (p Phase) String() string {
	if int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// transitions is driven by menu actions only. Leaving Playing happens
// through the run ending, never through input.
var transitions = map[Scene]map[input.Action]Scene{
	Start: {
		input.Confirm:  Playing,
		input.Settings: SettingsScene,
	},
	SettingsScene: {
		input.Confirm: Start,
		input.Back:    Start,
	},
	Playing: {},
	GameOver: {
		input.Confirm:  Playing,
		input.Settings: SettingsScene,
		input.Title:    Start,
		input.Back:     Start,
	},
	Cleared: {
		input.Confirm:  Playing,
		input.Settings: SettingsScene,
		input.Title:    Start,
		input.Back:     Start,
	},
}

// Next looks up the transition for a in s.
func Next(s Scene, a input.Action) (Scene, bool) {
	next, ok := transitions[s][a]
	return next, ok
}
