package main

import (
	"testing"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
	"git.lost.host/meutraa/mokugyo/internal/input"
	"git.lost.host/meutraa/mokugyo/internal/session"
	"git.lost.host/meutraa/mokugyo/internal/testdata"
)

type keys struct {
	pending [][]input.Action
}

func (k *keys) Poll() []input.Action {
	if len(k.pending) == 0 {
		return nil
	}
	a := k.pending[0]
	k.pending = k.pending[1:]
	return a
}

type recorder struct {
	draws   []session.Snapshot
	finales int
}

func (r *recorder) Init() error { return nil }
func (r *recorder) Deinit() error { return nil }
func (r *recorder) Draw(snap session.Snapshot) { r.draws = append(r.draws, snap) }
func (r *recorder) Finale() { r.finales++ }
func (r *recorder) RenderLoop(time.Duration, func() bool) {}

func program(t *testing.T, settings game.Settings, k *keys) (*Program, *recorder, *testdata.Clock) {
	clock := &testdata.Clock{}
	s, err := session.New(session.Config{Timing: testdata.GetTiming(), Clock: clock}, settings)
	if nil != err {
		t.Fatal(err)
	}
	r := &recorder{}
	return &Program{Session: s, Renderer: r, Input: k, Clock: clock}, r, clock
}

func TestFrameStartsRun(t *testing.T) {
	p, r, _ := program(t, game.DefaultSettings(), &keys{pending: [][]input.Action{{input.Confirm}}})
	if !p.Frame() {
		t.Fatal("loop stopped")
	}
	if len(r.draws) != 1 || r.draws[0].Scene != session.Playing {
		t.Log(r.draws)
		t.Fail()
	}
}

func TestFrameQuit(t *testing.T) {
	p, r, _ := program(t, game.DefaultSettings(), &keys{pending: [][]input.Action{{input.Quit}}})
	if p.Frame() {
		t.Error("quit did not stop the loop")
	}
	if len(r.draws) != 0 {
		t.Error("drew after quit")
	}
}

func TestFrameFinale(t *testing.T) {
	settings := game.DefaultSettings()
	settings.Difficulty = game.Hard
	p, r, clock := program(t, settings, &keys{pending: [][]input.Action{{input.Confirm}}})
	p.Frame()

	// one missed beat fails a hard run
	grid := testdata.GetTiming().Grid(p.Session.Run().Transport.Anchor)
	end := grid.Target(0) + time.Second
	for clock.T < end {
		clock.Add(16 * time.Millisecond)
		p.Frame()
	}
	if r.finales != 1 {
		t.Errorf("finale played %v times", r.finales)
	}
	if last := r.draws[len(r.draws)-1]; last.Scene != session.GameOver {
		t.Errorf("ended in %v", last.Scene)
	}
}
