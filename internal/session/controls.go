package session

import (
	"log"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/input"
)

func (s *Session) handle(action input.Action, now time.Duration) {
	if action == input.Bestiary && s.inRun() {
		s.bestiary = !s.bestiary
		return
	}
	switch s.scene {
	case Playing:
		if action == input.Hit {
			s.hit(now)
		}
		return
	case SettingsScene:
		if s.adjust(action) {
			return
		}
	}

	next, ok := Next(s.scene, action)
	if !ok {
		return
	}
	s.enter(next, action, now)
}

func (s *Session) enter(next Scene, action input.Action, now time.Duration) {
	if s.scene == SettingsScene {
		if err := s.prefs.Save(s.settings); nil != err {
			log.Println("unable to save settings", err)
		}
	}
	switch next {
	case Playing:
		s.startRun(now)
	case Start:
		s.ReturnToTitle()
	default:
		s.bestiary = false
		s.scene = next
	}
}

// inRun is true on the scenes that show the gimmicks of the current session.
func (s *Session) inRun() bool {
	return s.scene == Playing || s.scene == GameOver || s.scene == Cleared
}

// adjust applies the settings screen controls.
func (s *Session) adjust(action input.Action) bool {
	switch action {
	case input.Left:
		s.SelectDifficulty(s.settings.Difficulty.Easier())
	case input.Right:
		s.SelectDifficulty(s.settings.Difficulty.Harder())
	case input.OffsetDown:
		s.SetOffset(s.settings.Offset - OffsetStep)
	case input.OffsetUp:
		s.SetOffset(s.settings.Offset + OffsetStep)
	case input.Hazard:
		s.ToggleHazardMode(!s.settings.Hazard)
	default:
		return false
	}
	return true
}
