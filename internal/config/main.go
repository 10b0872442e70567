package config

import (
	"fmt"
	"strings"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

type Config struct {
	Assets      string
	Timing      game.Timing
	Settings    game.Settings
	FramePeriod time.Duration
	SongLength  time.Duration
	Database    string
	LogFile     string
	Seed        int64
	Overrides   Overrides
}

type flags struct {
	assets     *string
	bpm        *float64
	travel     *time.Duration
	prep       *time.Duration
	offset     *time.Duration
	difficulty *string
	hazard     *bool
	fps        *float64
	songLength *time.Duration
	database   *string
	logFile    *string
	seed       *int64
}

func newApp() (*kingpin.Application, *flags) {
	app := kingpin.New("mokugyo", "Single lane rhythm game")
	app.Version("0.1.0")
	return app, &flags{
		assets:     app.Flag("assets", "Asset directory (bgm, se_hit, se_miss)").Default("assets").Short('a').String(),
		bpm:        app.Flag("bpm", "Tempo of the beat grid").Default("158").Short('b').Float64(),
		travel:     app.Flag("travel", "Time a note takes from spawn to the hitline").Default("1.6s").Short('t').Duration(),
		prep:       app.Flag("prep", "Countdown before the first beat").Default("1.6s").Short('p').Duration(),
		offset:     app.Flag("offset", "Global offset, -1s to 1s").Default("0ms").Short('o').Duration(),
		difficulty: app.Flag("difficulty", "Starting difficulty").Default("normal").Short('d').Enum(game.DifficultyNames...),
		hazard:     app.Flag("hazard", "Gimmicks every 10 notes instead of every 20 combo").Short('H').Bool(),
		fps:        app.Flag("fps", "Target frame rate").Default("60").Short('f').Float64(),
		songLength: app.Flag("song-length", "Run length, 0 uses the background track").Default("0s").Short('l').Duration(),
		database:   app.Flag("db", "Settings database").Default("./mokugyo.db").String(),
		logFile:    app.Flag("log", "Log file").Default("./mokugyo.log").String(),
		seed:       app.Flag("seed", "Gimmick random seed, 0 picks one").Default("0").Int64(),
	}
}

// Load parses args and refuses timing that would make motion undefined.
func Load(args []string) (*Config, error) {
	app, f := newApp()
	if _, err := app.Parse(args); nil != err {
		return nil, err
	}

	difficulty, err := game.ParseDifficulty(*f.difficulty)
	if nil != err {
		return nil, err
	}
	if *f.offset < -game.MaxOffset || *f.offset > game.MaxOffset {
		return nil, fmt.Errorf("offset %v outside of ±%v", *f.offset, game.MaxOffset)
	}
	if !(*f.fps > 0) {
		return nil, fmt.Errorf("frame rate must be positive: %v", *f.fps)
	}
	if *f.songLength < 0 {
		return nil, fmt.Errorf("song length must not be negative: %v", *f.songLength)
	}

	cfg := &Config{
		Assets: *f.assets,
		Timing: game.Timing{
			BPM:    *f.bpm,
			Travel: *f.travel,
			Prep:   *f.prep,
		},
		Settings: game.Settings{
			Difficulty: difficulty,
			Offset:     *f.offset,
			Hazard:     *f.hazard,
		},
		FramePeriod: time.Duration(float64(time.Second) / *f.fps),
		SongLength:  *f.songLength,
		Database:    *f.database,
		LogFile:     *f.logFile,
		Seed:        *f.seed,
		Overrides:   overrides(args),
	}
	if err := cfg.Timing.Validate(); nil != err {
		return nil, fmt.Errorf("invalid timing: %w", err)
	}
	return cfg, nil
}

// Overrides records which of the persisted settings were given on the
// command line.
type Overrides struct {
	Difficulty bool
	Offset     bool
	Hazard     bool
}

// Merge lays the settings given as flags over the saved ones, field by field.
func (c *Config) Merge(saved game.Settings) game.Settings {
	merged := saved
	if c.Overrides.Difficulty {
		merged.Difficulty = c.Settings.Difficulty
	}
	if c.Overrides.Offset {
		merged.Offset = c.Settings.Offset
	}
	if c.Overrides.Hazard {
		merged.Hazard = c.Settings.Hazard
	}
	return merged
}

func overrides(args []string) Overrides {
	var o Overrides
	for _, a := range args {
		if a == "--" {
			break
		}
		switch {
		case given(a, "--difficulty", "-d"):
			o.Difficulty = true
		case given(a, "--offset", "-o"):
			o.Offset = true
		case given(a, "--hazard", "-H"), a == "--no-hazard":
			o.Hazard = true
		}
	}
	return o
}

// given matches a long flag with or without =value, and a short flag with
// its value attached.
func given(arg, long, short string) bool {
	if arg == long || strings.HasPrefix(arg, long+"=") {
		return true
	}
	return !strings.HasPrefix(arg, "--") && strings.HasPrefix(arg, short)
}
