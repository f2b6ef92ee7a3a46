package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue is a game event with a sound attached
type Cue int

const (
	CueEat Cue = iota
	CueCrash
	CueHazard
)

func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueCrash:
		return "crash"
	case CueHazard:
		return "hazard"
	}
	return "unknown"
}

// note is one tone of a cue; a zero freq is a rest
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueEat:    {{660, 60 * time.Millisecond}, {880, 60 * time.Millisecond}},
	CueCrash:  {{220, 120 * time.Millisecond}, {165, 120 * time.Millisecond}, {110, 240 * time.Millisecond}},
	CueHazard: {{1320, 40 * time.Millisecond}, {0, 40 * time.Millisecond}, {1320, 40 * time.Millisecond}},
}

// CueDuration is the total length of a cue
func CueDuration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

// NewCueStreamer renders a cue as a finite streamer at the given rate and
// linear volume
func NewCueStreamer(c Cue, rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(cueNotes[c]))
	for _, n := range cueNotes[c] {
		samples := rate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return newVolume(beep.Seq(parts...), vol), nil
}

// math.Log2(0) is -Inf, so zero volume is handled as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
