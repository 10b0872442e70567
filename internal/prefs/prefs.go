package prefs

import (
	"git.lost.host/meutraa/mokugyo/internal/game"
)

type Store interface {
	// Load the saved settings, false when nothing was saved yet
	Load() (game.Settings, bool, error)
	Save(settings game.Settings) error
	Close() error
}

// Memory keeps settings for the lifetime of the process only.
type Memory struct {
	settings game.Settings
	saved    bool
}

func (m *Memory) Load() (game.Settings, bool, error) {
	return m.settings, m.saved, nil
}

func (m *Memory) Save(settings game.Settings) error {
	m.settings = settings
	m.saved = true
	return nil
}

func (m *Memory) Close() error {
	return nil
}
