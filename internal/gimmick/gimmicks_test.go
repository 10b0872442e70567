package gimmick

import (
	"math"
	"math/rand"
	"testing"
	"time"
)

func TestKindsTable(t *testing.T) {
	names := map[string]bool{}
	for _, k := range Kinds() {
		entry := kinds[k]
		if entry.name == "" || entry.apply == nil || entry.base <= 0 {
			t.Errorf("kind %d has an incomplete entry", k)
		}
		if names[entry.name] {
			t.Errorf("duplicate name %v", entry.name)
		}
		names[entry.name] = true
	}
	if len(Kinds()) != 10 {
		t.Errorf("expected 10 kinds, got %v", len(Kinds()))
	}
}

func TestTriggerIncludesNoop(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	noops := 0
	seen := map[Kind]bool{}
	for i := 0; i < 2000; i++ {
		k, ok := g.Trigger(0, 6)
		if !ok {
			noops++
			continue
		}
		seen[k] = true
	}
	if g.Attempts() != 2000 {
		t.Errorf("attempts %v", g.Attempts())
	}
	if noops == 0 {
		t.Error("no-op outcome never drawn")
	}
	if len(seen) != int(kindCount) {
		t.Errorf("only %v kinds drawn", len(seen))
	}
}

func TestIntensityScalesDuration(t *testing.T) {
	tests := map[int]time.Duration{
		0: 4000 * time.Millisecond,
		3: 7000 * time.Millisecond,
		6: 10000 * time.Millisecond,
	}
	for misses, expected := range tests {
		g := New(rand.New(rand.NewSource(1)))
		g.Arm(Ghost, misses, 6)
		if d := g.Effects.Remaining(Ghost); d != expected {
			t.Errorf("%v misses: ghost for %v, expected %v", misses, d, expected)
		}
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	g.Arm(Flash, 0, 6)
	g.Arm(Blackout, 0, 6)

	g.Decay(500 * time.Millisecond)
	if d := g.Effects.Remaining(Flash); d != 100*time.Millisecond {
		t.Errorf("flash remaining %v", d)
	}
	g.Decay(time.Second)
	if d := g.Effects.Remaining(Flash); d != 0 {
		t.Errorf("flash remaining %v, expected 0", d)
	}
	if d := g.Effects.Remaining(Blackout); d != 1500*time.Millisecond {
		t.Errorf("blackout remaining %v", d)
	}
	g.Decay(time.Hour)
	for _, s := range g.Effects.Statuses() {
		t.Errorf("%v still active with %v", s.Kind, s.Remaining)
	}
	if g.Notice() != 0 {
		t.Errorf("notice %v", g.Notice())
	}
}

func TestRetriggerLogsOnce(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	g.Arm(Invert, 0, 6)
	if g.Notice() != NoticeDuration || g.Log.Len() != 1 {
		t.Fatalf("first sighting: notice %v log %v", g.Notice(), g.Log.Kinds())
	}

	g.Decay(time.Minute)
	if g.Effects.Active(Invert) || g.Notice() != 0 {
		t.Fatal("expected everything to have decayed")
	}

	g.Arm(Invert, 0, 6)
	if !g.Effects.Active(Invert) {
		t.Error("re-trigger did not re-arm the effect")
	}
	if g.Notice() != 0 {
		t.Errorf("notice re-armed for a known gimmick: %v", g.Notice())
	}
	if g.Log.Len() != 1 {
		t.Errorf("log duplicated: %v", g.Log.Kinds())
	}

	g.ResetRun()
	if g.Log.Len() != 1 {
		t.Error("run reset must keep the log")
	}
	g.ResetSession()
	if g.Log.Len() != 0 || g.Log.Seen(Invert) {
		t.Error("session reset must clear the log")
	}
}

func TestSetNeverShortens(t *testing.T) {
	e := NewEffects()
	e.Set(Tilt, 3*time.Second)
	e.Set(Tilt, time.Second)
	if e.Remaining(Tilt) != 3*time.Second {
		t.Errorf("tilt shortened to %v", e.Remaining(Tilt))
	}
}

func TestDecoyRateIndependentOfFrameRate(t *testing.T) {
	count := func(fps int) int {
		g := New(rand.New(rand.NewSource(7)))
		n := 0
		dt := time.Second / time.Duration(fps)
		for i := 0; i < fps*200; i++ {
			g.Effects.Set(DecoyRush, time.Hour)
			if g.Decoy(dt) {
				n++
			}
		}
		return n
	}
	// 200s at DecoyRate per second is about 360 decoys either way
	for _, fps := range []int{30, 60, 240} {
		if n := count(fps); n < 290 || n > 430 {
			t.Errorf("%v fps: %v decoys", fps, n)
		}
	}

	g := New(rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		if g.Decoy(time.Second / 60) {
			t.Fatal("decoy injected without a rush")
		}
	}
}

func TestOverlayIsVisualOnly(t *testing.T) {
	e := NewEffects()
	if o := e.Overlay(0); o.Ghost || o.Wobble != 0 || o.Flash != 0 || o.ShakeX != 0 {
		t.Errorf("idle overlay %+v", o)
	}
	e.Set(Ghost, time.Second)
	e.Set(LaneWobble, time.Second)
	e.Set(Blackout, 2*time.Second)
	o := e.Overlay(0.5)
	if !o.Ghost || o.Blackout != 1 {
		t.Errorf("overlay %+v", o)
	}
	if math.Abs(o.Wobble-wobbleBase*1.6) > 1e-9 {
		t.Errorf("wobble %v", o.Wobble)
	}

	slow := NewEffects()
	slow.Set(SlowMotion, time.Minute)
	normal := NewEffects()
	for i := 0; i < 600; i++ {
		slow.Decay(time.Second / 60)
		normal.Decay(time.Second / 60)
	}
	if !(slow.phase < normal.phase) {
		t.Errorf("slow motion phase %v not behind %v", slow.phase, normal.phase)
	}
}
