package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundRewind  SoundType = iota // Time turns backward
	SoundForward                  // Time turns forward
	SoundTimeout                  // Clock limit reached
	SoundCollect                  // Collectible picked up
	soundTypeCount
)

// String returns the config key of the sound
func (s SoundType) String() string {
	switch s {
	case SoundRewind:
		return "rewind"
	case SoundForward:
		return "forward"
	case SoundTimeout:
		return "timeout"
	case SoundCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// ErrSpeakerInit wraps speaker initialization failures
var ErrSpeakerInit = errors.New("speaker init failed")
