package render_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
	"git.lost.host/meutraa/mokugyo/internal/gimmick"
	"git.lost.host/meutraa/mokugyo/internal/render"
	"git.lost.host/meutraa/mokugyo/internal/session"
	"git.lost.host/meutraa/mokugyo/internal/theme"
)

func draw(snap session.Snapshot) string {
	var out bytes.Buffer
	r := render.NewBufferRenderer(&theme.DefaultTheme{}, &out, 80, 24)
	r.Draw(snap)
	return out.String()
}

func playing() session.Snapshot {
	return session.Snapshot{
		Scene:     session.Playing,
		Phase:     session.Active,
		MissLimit: 6,
		Overlay:   gimmick.Overlay{Speed: 1},
		Notes: []session.NoteView{
			{Y: 0.5, Spawn: time.Second, Target: 2 * time.Second},
		},
	}
}

func TestDrawScenes(t *testing.T) {
	cases := []struct {
		scene session.Scene
		want  string
	}{
		{session.Start, "M O K U G Y O"},
		{session.SettingsScene, "Difficulty"},
		{session.GameOver, "GAME OVER"},
		{session.Cleared, "CLEAR!"},
		{session.Playing, "COMBO 0"},
	}
	for _, c := range cases {
		out := draw(session.Snapshot{Scene: c.scene, MissLimit: 6})
		if !strings.Contains(out, c.want) {
			t.Errorf("scene %v: missing %q", c.scene, c.want)
		}
	}
}

func TestDrawNotes(t *testing.T) {
	note := (&theme.DefaultTheme{}).RenderNote(false, false)
	if out := draw(playing()); !strings.Contains(out, note) {
		t.Error("note not drawn")
	}

	snap := playing()
	snap.Overlay.Blackout = 1
	if out := draw(snap); strings.Contains(out, note) {
		t.Error("note drawn during blackout")
	}
}

func TestDrawCountdownAndNotice(t *testing.T) {
	snap := playing()
	snap.Countdown = 1200 * time.Millisecond
	snap.NewGimmick = true
	out := draw(snap)
	if !strings.Contains(out, "Start in 2") {
		t.Error("countdown missing")
	}
	if !strings.Contains(out, "New gimmick appeared") {
		t.Error("notice missing")
	}
}

func TestDrawBestiary(t *testing.T) {
	seen := []gimmick.Kind{gimmick.Tilt, gimmick.Ghost}
	for _, scene := range []session.Scene{session.Playing, session.GameOver, session.Cleared} {
		snap := playing()
		snap.Scene = scene
		snap.Log = seen
		if out := draw(snap); strings.Contains(out, "Gimmicks seen") {
			t.Errorf("%v: panel drawn while closed", scene)
		}
		snap.Bestiary = true
		out := draw(snap)
		for _, k := range seen {
			if !strings.Contains(out, k.Description()) {
				t.Errorf("%v: %v missing from the panel", scene, k)
			}
		}
	}

	out := draw(session.Snapshot{Scene: session.Start, Bestiary: true, Log: seen})
	if strings.Contains(out, "Gimmicks seen") {
		t.Error("panel drawn on the title")
	}
}

func TestDrawJudgement(t *testing.T) {
	snap := playing()
	j := game.Judgements[0]
	snap.Judgement = &j
	snap.JudgementLeft = 500 * time.Millisecond
	if out := draw(snap); !strings.Contains(out, j.Name) {
		t.Errorf("judgement %v missing", j.Name)
	}
}

func TestLayout(t *testing.T) {
	l := render.NewLayout(80, 24)
	if l.NoteRow(game.SpawnY) != l.Top || l.NoteRow(game.HitY) != l.HitRow {
		t.Log(l.NoteRow(game.SpawnY), l.NoteRow(game.HitY))
		t.Fail()
	}
	if l.TiltShift(l.HitRow, 0.6) != 0 {
		t.Error("hitline must not tilt")
	}
	small := render.NewLayout(10, 5)
	if small.Width != 40 || small.Height != 16 {
		t.Error("layout not clamped")
	}
}
