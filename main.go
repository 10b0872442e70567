package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"git.lost.host/meutraa/mokugyo/internal/audio"
	"git.lost.host/meutraa/mokugyo/internal/config"
	"git.lost.host/meutraa/mokugyo/internal/game"
	"git.lost.host/meutraa/mokugyo/internal/input"
	"git.lost.host/meutraa/mokugyo/internal/prefs"
	"git.lost.host/meutraa/mokugyo/internal/render"
	"git.lost.host/meutraa/mokugyo/internal/session"
	"git.lost.host/meutraa/mokugyo/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if nil != err {
		return err
	}

	// The terminal is the screen, everything else goes to a file
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	store, err := prefs.Open(cfg.Database)
	if nil != err {
		return err
	}
	defer func() {
		if err := store.Close(); nil != err {
			log.Println("unable to close settings database", err)
		}
	}()

	// Flags win over saved settings, one field at a time
	settings := cfg.Settings
	saved, ok, err := store.Load()
	if nil != err {
		log.Println("ignoring saved settings:", err)
	} else if ok {
		settings = cfg.Merge(saved)
	}

	player := audio.Load(cfg.Assets)
	defer player.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("gimmick seed %v\n", seed)

	clock := game.NewMonotonicClock()
	s, err := session.New(session.Config{
		Timing:     cfg.Timing,
		Clock:      clock,
		Audio:      player,
		Prefs:      store,
		Rand:       rand.New(rand.NewSource(seed)),
		SongLength: cfg.SongLength,
	}, settings)
	if nil != err {
		return err
	}

	keys, err := input.Open(128)
	if nil != err {
		return err
	}
	defer func() {
		if err := keys.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	// Ensure our Default implementations are used as interfaces
	var th theme.Theme = &theme.DefaultTheme{}
	var r render.Renderer = render.NewRenderer(th)

	if err := r.Init(); nil != err {
		return err
	}
	defer func() {
		// Restore the terminal state
		r.Deinit()
	}()

	p := &Program{
		Session:  s,
		Renderer: r,
		Input:    keys,
		Clock:    clock,
	}
	r.RenderLoop(cfg.FramePeriod, p.Frame)
	log.Printf("quit after %v frames\n", p.Frames())
	return nil
}
