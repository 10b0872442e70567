package main

import (
	"git.lost.host/meutraa/mokugyo/internal/game"
	"git.lost.host/meutraa/mokugyo/internal/input"
	"git.lost.host/meutraa/mokugyo/internal/render"
	"git.lost.host/meutraa/mokugyo/internal/session"
)

// Program is the frame loop: one goroutine polls input, advances the
// session and draws it.
type Program struct {
	Session  *session.Session
	Renderer render.Renderer
	Input    input.Source
	Clock    game.Clock

	frames uint64
}

// Frame runs a single frame and reports whether the loop should continue.
func (p *Program) Frame() bool {
	p.frames++
	actions := p.Input.Poll()
	for _, a := range actions {
		if a == input.Quit {
			return false
		}
	}
	p.Session.Enqueue(actions...)

	now := p.Clock.Now()
	p.Session.Advance(now)
	if p.Session.TakeFinale() {
		p.Renderer.Finale()
		now = p.Clock.Now()
	}
	p.Renderer.Draw(p.Session.Snapshot(now))
	return true
}

func (p *Program) Frames() uint64 {
	return p.frames
}
