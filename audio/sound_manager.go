package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// speakerBuffer is the playback latency handed to the speaker
	speakerBuffer = 100 * time.Millisecond

	// waitLimit bounds Wait so a stalled device cannot hang shutdown
	waitLimit = 3 * time.Second
)

// SoundManager plays cues through the system speaker
// Without an initialized speaker every call is a no-op
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	pending     sync.WaitGroup
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Disabled configs succeed without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play implements Player
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(cue, sm.config)
	if s == nil {
		log.Printf("audio: unknown cue %q", cue)
		return
	}

	sm.pending.Add(1)
	speaker.Lock()
	sm.mixer.Add(beep.Seq(s, beep.Callback(sm.pending.Done)))
	speaker.Unlock()
}

// Wait implements Player
// Returns once every queued cue has played or the wait limit passes
func (sm *SoundManager) Wait() {
	done := make(chan struct{})
	go func() {
		sm.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(waitLimit):
		log.Printf("audio: gave up waiting for cues after %v", waitLimit)
	}
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
