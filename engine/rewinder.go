package engine

import "github.com/lixenwraith/rewind/timeline"

// RewindState is the record/playback phase of a Rewinder
type RewindState int

const (
	StateRecording RewindState = iota
	StatePlayingBack
)

// String returns the state name
func (s RewindState) String() string {
	switch s {
	case StateRecording:
		return "Recording"
	case StatePlayingBack:
		return "PlayingBack"
	default:
		return "Unknown"
	}
}

// Rewinder drives one log through Recording -> PlayingBack -> Recording
// An inversion freezes what was recorded and plays it back from where recording left off;
// reaching either bound, or an Interrupt, resumes recording from the cursor
type Rewinder[T any] struct {
	log   timeline.Cursor[T]
	state RewindState
}

// NewRewinder wraps log in recording state
func NewRewinder[T any](log timeline.Cursor[T]) *Rewinder[T] {
	return &Rewinder[T]{log: log}
}

// Tick records live while recording, otherwise returns the next played back value
func (r *Rewinder[T]) Tick(live T) T {
	if r.state == StateRecording {
		r.log.Append(live)
		return live
	}

	v := r.log.Next()
	if r.log.StartOfRecording() || r.log.EndOfRecording() {
		r.state = StateRecording
	}
	return v
}

// Invert is called by the clock coordinator on every inversion
// A recording log is pinned at its cursor and rewound to where recording left off
func (r *Rewinder[T]) Invert() {
	if r.state == StatePlayingBack || r.empty() {
		r.log.Invert()
		return
	}

	r.log.SetEndPoint(r.log.Inverted())
	r.log.Invert()
	r.log.StartPlaybackAtEnding()
	r.state = StatePlayingBack
}

// Interrupt stops playback at the cursor, discarding what lies beyond it,
// and resumes recording from there
func (r *Rewinder[T]) Interrupt() {
	if r.state != StatePlayingBack {
		return
	}
	r.log.SetEndPoint(r.log.Inverted())
	r.state = StateRecording
}

func (r *Rewinder[T]) empty() bool {
	return r.log.EndPoint()-r.log.StartPoint() <= 1
}

// State returns the current phase
func (r *Rewinder[T]) State() RewindState { return r.state }

// Recording reports whether live values are being captured
func (r *Rewinder[T]) Recording() bool { return r.state == StateRecording }

// Log returns the underlying cursor
func (r *Rewinder[T]) Log() timeline.Cursor[T] { return r.log }
