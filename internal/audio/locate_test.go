package audio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"bgm.ogg", "SE_HIT.wav", "cover.png", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); nil != err {
			t.Fatal(err)
		}
	}

	found, err := Locate(dir)
	if nil != err {
		t.Fatal(err)
	}
	if found[BGM] != filepath.Join(dir, "bgm.ogg") {
		t.Errorf("bgm at %q", found[BGM])
	}
	if found[HitSound] != filepath.Join(dir, "SE_HIT.wav") {
		t.Errorf("hit sound at %q", found[HitSound])
	}
	if _, ok := found[MissSound]; ok {
		t.Errorf("miss sound should be missing")
	}
}

func TestLoadFallsBackToSilence(t *testing.T) {
	for _, dir := range []string{"", filepath.Join(t.TempDir(), "missing"), t.TempDir()} {
		p := Load(dir)
		if _, ok := p.(Silent); !ok {
			t.Errorf("%q: expected the silent player, got %T", dir, p)
		}
		if _, ok := p.Length(); ok {
			t.Errorf("%q: silent player has a length", dir)
		}
		p.Play(BGM)
		p.Loop(0.2)
		p.Stop()
		if err := p.Close(); nil != err {
			t.Error(err)
		}
	}
}
