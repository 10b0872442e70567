package render

import (
	"time"

	"git.lost.host/meutraa/mokugyo/internal/session"
)

type Renderer interface {
	Init() error
	Deinit() error
	Draw(snap session.Snapshot)
	// Finale blocks for the closing sequence of a lost run
	Finale()
	RenderLoop(period time.Duration, frame func() bool)
}
