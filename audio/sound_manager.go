package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/status"
)

// SoundManager plays one-shot effects through a single speaker mixer
// Safe for concurrent use; a disabled or muted manager drops every request
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	// Cached metric pointers
	statPlayed *atomic.Int64
	statMuted  *atomic.Bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig, reg *status.Registry) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config:     cfg,
		mixer:      &beep.Mixer{},
		statPlayed: reg.Ints.Get("audio.played"),
		statMuted:  reg.Bools.Get("audio.muted"),
	}
}

// Initialize sets up the speaker, a no-op when audio is disabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferPeriod)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences every queued sound
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a sound effect
func (sm *SoundManager) Play(sound SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(sound, sm.config)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.statPlayed.Add(1)
}

// PlayInversion queues the sweep matching the new direction of time
func (sm *SoundManager) PlayInversion(inverted bool) {
	if inverted {
		sm.Play(SoundRewind)
	} else {
		sm.Play(SoundForward)
	}
}

// SetMasterVolume rescales sounds queued after the call, clamped to [0, 1]
func (sm *SoundManager) SetMasterVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	cfg := *sm.config
	cfg.MasterVolume = min(max(v, 0), 1)
	sm.config = &cfg
}

// MasterVolume returns the current master volume
func (sm *SoundManager) MasterVolume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.config.MasterVolume
}

// SetMuted drops all further sounds while true
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	sm.statMuted.Store(muted)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

// IsMuted reports whether sounds are dropped
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Pending returns the number of sounds still streaming
func (sm *SoundManager) Pending() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
