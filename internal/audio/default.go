package audio

import (
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
	playVolume      = 0.95
)

type DefaultPlayer struct {
	bgm       beep.StreamSeekCloser
	bgmFormat beep.Format
	sounds    map[Track]*beep.Buffer
	ctrl      *beep.Ctrl
}

// Load decodes whatever tracks exist under dir. Anything missing or broken
// is logged and replaced by silence, the returned Player is never nil.
func Load(dir string) Player {
	paths, err := Locate(dir)
	if nil != err {
		log.Println(err)
		return Silent{}
	}
	if len(paths) == 0 {
		log.Printf("no audio found in %q, playing silently\n", dir)
		return Silent{}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); nil != err {
		log.Println("unable to open audio device, playing silently", err)
		return Silent{}
	}

	p := &DefaultPlayer{sounds: map[Track]*beep.Buffer{}}
	for track, file := range paths {
		streamer, format, err := decode(file)
		if nil != err {
			log.Printf("unable to decode %v: %v\n", file, err)
			continue
		}
		if track == BGM {
			p.bgm, p.bgmFormat = streamer, format
			log.Printf("Opening %v\n", file)
			continue
		}
		buffer := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buffer.Append(resample(format, streamer))
		streamer.Close()
		p.sounds[track] = buffer
	}
	return p
}

func decode(file string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(file)
	if nil != err {
		return nil, beep.Format{}, err
	}
	switch strings.ToLower(path.Ext(file)) {
	case ".mp3":
		return mp3.Decode(f)
	case ".ogg":
		return vorbis.Decode(f)
	case ".wav":
		return wav.Decode(f)
	}
	f.Close()
	return nil, beep.Format{}, fmt.Errorf("unsupported audio file %v", file)
}

func resample(format beep.Format, s beep.Streamer) beep.Streamer {
	if format.SampleRate == sampleRate {
		return s
	}
	return beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
}

func gain(volume float64) *effects.Volume {
	v := &effects.Volume{Base: 2}
	if volume <= 0 {
		v.Silent = true
	} else {
		v.Volume = math.Log2(volume)
	}
	return v
}

// start swaps the background streamer, the previous one is dropped by the
// mixer on its next pull.
func (p *DefaultPlayer) start(s beep.Streamer, volume float64) {
	v := gain(volume)
	v.Streamer = s
	ctrl := &beep.Ctrl{Streamer: v}

	speaker.Lock()
	if nil != p.ctrl {
		p.ctrl.Streamer = nil
	}
	p.ctrl = ctrl
	speaker.Unlock()

	speaker.Play(ctrl)
}

func (p *DefaultPlayer) rewind() bool {
	if nil == p.bgm {
		return false
	}
	speaker.Lock()
	err := p.bgm.Seek(0)
	speaker.Unlock()
	if nil != err {
		log.Println("unable to rewind background track", err)
		return false
	}
	return true
}

func (p *DefaultPlayer) Play(track Track) {
	if track == BGM {
		p.Stop()
		if p.rewind() {
			p.start(resample(p.bgmFormat, p.bgm), playVolume)
		}
		return
	}
	buffer, ok := p.sounds[track]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (p *DefaultPlayer) Stop() {
	speaker.Lock()
	if nil != p.ctrl {
		p.ctrl.Streamer = nil
		p.ctrl = nil
	}
	speaker.Unlock()
}

func (p *DefaultPlayer) Loop(volume float64) {
	p.Stop()
	if p.rewind() {
		p.start(resample(p.bgmFormat, beep.Loop(-1, p.bgm)), volume)
	}
}

func (p *DefaultPlayer) Length() (time.Duration, bool) {
	if nil == p.bgm {
		return 0, false
	}
	return p.bgmFormat.SampleRate.D(p.bgm.Len()), true
}

func (p *DefaultPlayer) Close() error {
	p.Stop()
	if nil != p.bgm {
		return p.bgm.Close()
	}
	return nil
}
