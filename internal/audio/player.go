package audio

import (
	"time"
)

type Track uint8

const (
	BGM Track = iota
	HitSound
	MissSound

	trackCount
)

// trackNames are the asset base names looked up in the assets directory.
var trackNames = [trackCount]string{
	BGM:       "bgm",
	HitSound:  "se_hit",
	MissSound: "se_miss",
}

func (t Track) String() string {
	if t >= trackCount {
		return "unknown"
	}
	return trackNames[t]
}

type Player interface {
	// Play the track once from the start, sound effects overlap
	Play(track Track)
	Stop()

	// Loop the background track at volume in 0..1
	Loop(volume float64)

	// Length of the background track, false when there is none
	Length() (time.Duration, bool)

	Close() error
}

// Silent stands in when no audio device or files are available.
type Silent struct{}

func (Silent) Play(Track) {}
func (Silent) Stop() {}
func (Silent) Loop(float64) {}
func (Silent) Length() (time.Duration, bool) { return 0, false }
func (Silent) Close() error { return nil }
