package config

import (
	"errors"
	"testing"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if nil != err {
		t.Fatal(err)
	}
	expected := game.Timing{BPM: 158, Travel: 1600 * time.Millisecond, Prep: 1600 * time.Millisecond}
	if cfg.Timing != expected {
		t.Errorf("timing %+v", cfg.Timing)
	}
	if cfg.Settings != game.DefaultSettings() {
		t.Errorf("settings %+v", cfg.Settings)
	}
	if cfg.FramePeriod != time.Second/60 {
		t.Errorf("frame period %v", cfg.FramePeriod)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{"-b", "120", "--difficulty=hard", "--offset=-30ms", "--hazard", "-l", "90s"})
	if nil != err {
		t.Fatal(err)
	}
	if cfg.Timing.BPM != 120 || cfg.Timing.SecondsPerBeat() != 500*time.Millisecond {
		t.Errorf("timing %+v", cfg.Timing)
	}
	expected := game.Settings{Difficulty: game.Hard, Offset: -30 * time.Millisecond, Hazard: true}
	if cfg.Settings != expected {
		t.Errorf("settings %+v", cfg.Settings)
	}
	if cfg.SongLength != 90*time.Second {
		t.Errorf("song length %v", cfg.SongLength)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := map[string][]string{
		"zero bpm":      {"--bpm", "0"},
		"negative bpm":  {"--bpm=-10"},
		"zero travel":   {"--travel", "0s"},
		"bad offset":    {"--offset", "2s"},
		"bad enum":      {"--difficulty", "lunatic"},
		"negative prep": {"--prep=-1s"},
	}
	for name, args := range tests {
		if _, err := Load(args); nil == err {
			t.Errorf("%v: accepted %v", name, args)
		}
	}

	_, err := Load([]string{"--travel", "0s"})
	if !errors.Is(err, game.ErrTravel) {
		t.Errorf("expected ErrTravel, got %v", err)
	}
}

func TestOverrides(t *testing.T) {
	tests := []struct {
		args     []string
		expected Overrides
	}{
		{[]string{"--offset=10ms"}, Overrides{Offset: true}},
		{[]string{"-o", "20ms"}, Overrides{Offset: true}},
		{[]string{"-H"}, Overrides{Hazard: true}},
		{[]string{"--no-hazard"}, Overrides{Hazard: true}},
		{[]string{"-dhard", "--bpm", "120"}, Overrides{Difficulty: true}},
		{[]string{"--bpm", "120"}, Overrides{}},
	}
	for _, test := range tests {
		cfg, err := Load(test.args)
		if nil != err {
			t.Errorf("%v: %v", test.args, err)
			continue
		}
		if cfg.Overrides != test.expected {
			t.Errorf("%v: got %+v, expected %+v", test.args, cfg.Overrides, test.expected)
		}
	}
}

func TestMergeKeepsSavedFields(t *testing.T) {
	saved := game.Settings{Difficulty: game.Hard, Offset: 40 * time.Millisecond}
	cfg, err := Load([]string{"-H"})
	if nil != err {
		t.Fatal(err)
	}
	expected := game.Settings{Difficulty: game.Hard, Offset: 40 * time.Millisecond, Hazard: true}
	if merged := cfg.Merge(saved); merged != expected {
		t.Log(merged)
		t.Fail()
	}

	cfg, err = Load(nil)
	if nil != err {
		t.Fatal(err)
	}
	if merged := cfg.Merge(saved); merged != saved {
		t.Errorf("no flags must keep the saved settings, got %+v", merged)
	}
}
