package parameter

import "time"

// Audio
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = 100 * time.Millisecond
	AudioMasterVolume = 0.6
)

// Rewind sweep, played when time turns backward
const (
	RewindSoundDuration = 350 * time.Millisecond
	RewindSoundAttack   = 10 * time.Millisecond
	RewindSoundRelease  = 120 * time.Millisecond
	RewindSoundFromHz   = 880.0
	RewindSoundToHz     = 110.0
)

// Forward sweep, played when time turns forward again
const (
	ForwardSoundDuration = 250 * time.Millisecond
	ForwardSoundAttack   = 10 * time.Millisecond
	ForwardSoundRelease  = 80 * time.Millisecond
	ForwardSoundFromHz   = 220.0
	ForwardSoundToHz     = 660.0
)

// Timeout buzz, played when the clock reaches a limit
const (
	TimeoutSoundDuration = 400 * time.Millisecond
	TimeoutSoundAttack   = 5 * time.Millisecond
	TimeoutSoundRelease  = 150 * time.Millisecond
	TimeoutSoundHz       = 90.0
)

// Collect chime
const (
	CollectSoundDuration = 180 * time.Millisecond
	CollectSoundAttack   = 2 * time.Millisecond
	CollectSoundRelease  = 140 * time.Millisecond
	CollectSoundHz       = 1318.51
)
