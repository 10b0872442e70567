package session

import (
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
	"git.lost.host/meutraa/mokugyo/internal/gimmick"
	"git.lost.host/meutraa/mokugyo/internal/score"
)

type NoteView struct {
	Y      float64 // game.SpawnY .. game.HitY
	Spawn  time.Duration
	Target time.Duration
	Decoy  bool
}

// Snapshot is a copy of everything the renderer draws for one frame.
type Snapshot struct {
	Scene     Scene
	Phase     Phase
	Settings  game.Settings
	Countdown time.Duration

	Combo     int
	Misses    int
	MissLimit int
	Counts    [4]int
	Mean      time.Duration
	Stdev     time.Duration

	Judgement     *game.Judgement
	JudgementLeft time.Duration

	Notes      []NoteView
	Effects    []gimmick.Status
	Overlay    gimmick.Overlay
	Log        []gimmick.Kind
	NewGimmick bool
	Bestiary   bool
	Specter    score.Specter
}

func (s *Session) Snapshot(now time.Duration) Snapshot {
	difficulty := s.settings.Difficulty
	if s.scene != Start && s.scene != SettingsScene {
		difficulty = s.run.Difficulty
	}
	limit := difficulty.MissLimit()

	snap := Snapshot{
		Scene:      s.scene,
		Phase:      s.phase,
		Settings:   s.settings,
		Combo:      s.tally.Combo,
		Misses:     s.tally.Misses,
		MissLimit:  limit,
		Counts:     s.tally.Counts,
		Mean:       s.tally.Mean(),
		Stdev:      s.tally.Stdev(),
		Effects:    s.gimmicks.Effects.Statuses(),
		Overlay:    s.gimmicks.Effects.Overlay(float64(s.tally.Misses) / float64(limit)),
		Log:        s.gimmicks.Log.Kinds(),
		NewGimmick: s.gimmicks.Notice() > 0,
		Bestiary:   s.bestiary,
		Specter:    s.specter,
	}
	if s.scene == Playing {
		snap.Countdown = s.run.Transport.Countdown(now)
	}
	if nil != s.judgement && now < s.judgementUntil {
		j := *s.judgement
		snap.Judgement = &j
		snap.JudgementLeft = s.judgementUntil - now
	}
	for _, n := range s.chart.Notes {
		if !n.Live() {
			continue
		}
		snap.Notes = append(snap.Notes, NoteView{
			Y:      n.Position(now),
			Spawn:  n.Spawn,
			Target: n.Target,
			Decoy:  n.Decoy,
		})
	}
	return snap
}

// Notes exposes the live notes, for inspection only.
func (s *Session) Notes() []*game.Note {
	return s.chart.Notes
}

func (s *Session) Run() RunState {
	return s.run
}

func (s *Session) Gimmicks() *gimmick.Gimmicks {
	return s.gimmicks
}
