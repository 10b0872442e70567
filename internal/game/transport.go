package game

import (
	"time"
)

const MaxOffset = time.Second

// Transport anchors a run on the clock. Anchor is where beat 0 lands, it is
// shifted from the end of the countdown by the latency offset.
type Transport struct {
	Start   time.Duration
	PrepEnd time.Duration
	Anchor  time.Duration
}

func NewTransport(start, prep, offset time.Duration) Transport {
	prepEnd := start + prep
	return Transport{
		Start:   start,
		PrepEnd: prepEnd,
		Anchor:  prepEnd + offset,
	}
}

func (t Transport) InPrep(now time.Duration) bool {
	return now < t.PrepEnd
}

func (t Transport) Countdown(now time.Duration) time.Duration {
	if now >= t.PrepEnd {
		return 0
	}
	return t.PrepEnd - now
}

func ClampOffset(offset time.Duration) time.Duration {
	if offset > MaxOffset {
		return MaxOffset
	}
	if offset < -MaxOffset {
		return -MaxOffset
	}
	return offset
}
