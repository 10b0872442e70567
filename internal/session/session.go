package session

import (
	"errors"
	"log"
	"math/rand"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/audio"
	"git.lost.host/meutraa/mokugyo/internal/game"
	"git.lost.host/meutraa/mokugyo/internal/gimmick"
	"git.lost.host/meutraa/mokugyo/internal/input"
	"git.lost.host/meutraa/mokugyo/internal/prefs"
	"git.lost.host/meutraa/mokugyo/internal/score"
)

var ErrInPlay = errors.New("not allowed during play")

const (
	// HazardEvery spawns trigger a gimmick in hazard mode.
	HazardEvery = 10
	// ComboEvery hits trigger a gimmick otherwise.
	ComboEvery = 20

	JudgementDisplay = 700 * time.Millisecond
	OffsetStep       = 20 * time.Millisecond
	clearedVolume    = 0.18
)

// RunState is the bookkeeping of one run, recreated on every start.
type RunState struct {
	Transport  game.Transport
	BeatIndex  int
	SpawnCount int
	Difficulty game.Difficulty
	Hazard     bool
}

type Config struct {
	Timing     game.Timing
	Clock      game.Clock
	Audio      audio.Player
	Prefs      prefs.Store
	Rand       *rand.Rand
	SongLength time.Duration // overrides the track length when positive
}

// Session is the context owned by the frame loop. Nothing in it is safe for
// use from more than one goroutine.
type Session struct {
	timing     game.Timing
	clock      game.Clock
	audio      audio.Player
	prefs      prefs.Store
	scorer     score.Scorer
	songLength time.Duration

	scene    Scene
	phase    Phase
	settings game.Settings
	bestiary bool

	run       RunState
	scheduler *game.Scheduler
	chart     game.Chart
	tally     score.Tally
	specter   score.Specter
	gimmicks  *gimmick.Gimmicks

	judgement      *game.Judgement
	judgementUntil time.Duration

	queue  input.Queue
	last   time.Duration
	finale bool
}

func New(cfg Config, settings game.Settings) (*Session, error) {
	if err := cfg.Timing.Validate(); nil != err {
		return nil, err
	}
	if nil == cfg.Clock {
		cfg.Clock = game.NewMonotonicClock()
	}
	if nil == cfg.Audio {
		cfg.Audio = audio.Silent{}
	}
	if nil == cfg.Prefs {
		cfg.Prefs = &prefs.Memory{}
	}
	if nil == cfg.Rand {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	settings.Offset = game.ClampOffset(settings.Offset)
	return &Session{
		timing:     cfg.Timing,
		clock:      cfg.Clock,
		audio:      cfg.Audio,
		prefs:      cfg.Prefs,
		scorer:     &score.DefaultScorer{},
		songLength: cfg.SongLength,
		scene:      Start,
		settings:   settings,
		gimmicks:   gimmick.New(cfg.Rand),
		last:       cfg.Clock.Now(),
	}, nil
}

func (s *Session) Scene() Scene {
	return s.scene
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Settings() game.Settings {
	return s.settings
}

func (s *Session) Enqueue(actions ...input.Action) {
	s.queue.Push(actions...)
}

// HitInput queues a hit, it is judged by the next Advance.
func (s *Session) HitInput() {
	s.Enqueue(input.Hit)
}

// Advance runs one frame at now: notes are scheduled and expired first,
// then queued input is judged against them, then effect timers decay.
func (s *Session) Advance(now time.Duration) {
	dt := now - s.last
	if dt < 0 {
		dt = 0
	}
	s.last = now

	pending := s.finale
	if s.scene == Playing {
		s.update(now, dt)
	}
	for _, action := range s.queue.Drain() {
		if s.finale && !pending {
			// the run was lost this frame, the rest of its input is dropped
			break
		}
		s.handle(action, now)
	}
	s.gimmicks.Decay(dt)
}

func (s *Session) update(now, dt time.Duration) {
	if s.phase != Prep && s.phase != Active {
		return
	}
	if s.run.Transport.InPrep(now) {
		return
	}
	s.phase = Active

	for _, note := range s.scheduler.Advance(now) {
		s.chart.Add(note)
		if s.run.Hazard && note.Seq%HazardEvery == 0 {
			s.trigger()
		}
	}
	s.run.BeatIndex = s.scheduler.BeatIndex()
	s.run.SpawnCount = s.scheduler.SpawnCount()

	grace := game.Grace(s.run.Difficulty)
	for _, note := range s.chart.Notes {
		if !note.Live() || !note.Overdue(now, grace) {
			continue
		}
		note.State = game.Expired
		if note.Decoy {
			continue
		}
		s.miss(now)
		if s.phase == Failed {
			break
		}
	}
	s.chart.Compact()
	if s.phase == Failed {
		return
	}

	if s.gimmicks.Decoy(dt) {
		s.chart.Add(game.NewDecoy(now+s.timing.Travel/2, s.timing.Travel))
	}

	if length, ok := s.length(); ok && now-s.run.Transport.Start > length+s.timing.Prep {
		s.clear()
	}
}

func (s *Session) length() (time.Duration, bool) {
	if s.songLength > 0 {
		return s.songLength, true
	}
	return s.audio.Length()
}

func (s *Session) trigger() {
	k, ok := s.gimmicks.Trigger(s.tally.Misses, s.run.Difficulty.MissLimit())
	if ok {
		log.Printf("gimmick %v at combo %v, %v misses\n", k, s.tally.Combo, s.tally.Misses)
	}
}

func (s *Session) hit(now time.Duration) {
	if s.scene != Playing || s.phase != Active {
		return
	}
	r := s.scorer.ApplyInputToChart(&s.chart, now, s.run.Difficulty)
	if !r.Hit() {
		s.miss(now)
		return
	}
	s.chart.Compact()
	s.tally.Hit(r)
	s.show(r.Judgement, now)
	s.audio.Play(audio.HitSound)
	if !s.run.Hazard && s.tally.Combo%ComboEvery == 0 {
		s.trigger()
	}
}

func (s *Session) miss(now time.Duration) {
	s.tally.Miss()
	s.specter.Update(s.tally.Misses, s.run.Difficulty)
	s.show(game.Judgements[game.Miss], now)
	s.audio.Play(audio.MissSound)
	if s.tally.Failed(s.run.Difficulty) {
		s.fail()
	}
}

func (s *Session) show(j game.Judgement, now time.Duration) {
	s.judgement = &j
	s.judgementUntil = now + JudgementDisplay
}

func (s *Session) fail() {
	log.Printf("run failed after %v misses\n", s.tally.Misses)
	s.phase = Failed
	s.specter.Hidden = true
	s.audio.Stop()
	s.scene = GameOver
	s.finale = true
}

func (s *Session) clear() {
	log.Println("run cleared")
	s.phase = Clear
	s.audio.Stop()
	s.audio.Loop(clearedVolume)
	s.scene = Cleared
}

// TakeFinale reports once that the run was just lost, so the renderer can
// play the closing sequence before the game over screen.
func (s *Session) TakeFinale() bool {
	f := s.finale
	s.finale = false
	return f
}

// StartSession begins a new run anchored at the current clock time.
func (s *Session) StartSession() {
	s.startRun(s.clock.Now())
}

func (s *Session) startRun(now time.Duration) {
	s.run = RunState{
		Transport:  game.NewTransport(now, s.timing.Prep, s.settings.Offset),
		Difficulty: s.settings.Difficulty,
		Hazard:     s.settings.Hazard,
	}
	s.scheduler = game.NewScheduler(s.timing.Grid(s.run.Transport.Anchor))
	s.chart.Reset()
	s.tally = score.Tally{}
	s.specter = score.Specter{}
	s.gimmicks.ResetRun()
	s.judgement = nil
	s.bestiary = false
	s.finale = false
	s.phase = Prep
	s.scene = Playing
	s.audio.Play(audio.BGM)
	log.Printf("run started: %v, offset %v, hazard %v\n", s.run.Difficulty, s.settings.Offset, s.run.Hazard)
}

// ReturnToTitle goes back to the start screen and forgets the gimmicks seen.
func (s *Session) ReturnToTitle() {
	s.audio.Stop()
	s.gimmicks.ResetSession()
	s.bestiary = false
	s.phase = Idle
	s.scene = Start
}

func (s *Session) SelectDifficulty(d game.Difficulty) error {
	if s.scene == Playing {
		return ErrInPlay
	}
	s.settings.Difficulty = d
	return nil
}

// SetOffset changes the latency compensation, clamped to one second either way.
func (s *Session) SetOffset(offset time.Duration) error {
	if s.scene == Playing {
		return ErrInPlay
	}
	s.settings.Offset = game.ClampOffset(offset)
	return nil
}

func (s *Session) ToggleHazardMode(on bool) error {
	if s.scene == Playing {
		return ErrInPlay
	}
	s.settings.Hazard = on
	return nil
}
