package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues. Frontends hold a Player so audio can be turned off.
type Player interface {
	Play(Cue)
}

// Nop is a Player that stays silent
type Nop struct{}

func (Nop) Play(Cue) {}

// SoundManager plays cues through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *slog.Logger
}

func NewSoundManager(volume float64, logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Initialize opens the speaker. The game runs silently if this fails.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Play(c Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s, err := NewCueStreamer(c, sampleRate, sm.volume)
	if err != nil {
		sm.logger.Warn("could not build cue", "cue", c.String(), "err", err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
