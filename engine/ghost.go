package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/rewind/timeline"
)

// track is the type-erased view a Ghost holds of each Track
type track interface {
	timeline.Invertible
	advance()
	bounded() bool
}

// Track replays one frozen log on behalf of a Ghost
type Track[T any] struct {
	log   timeline.Cursor[T]
	value T
}

// Value returns the sample produced by the last Step
func (t *Track[T]) Value() T { return t.value }

// Log returns the replayed cursor
func (t *Track[T]) Log() timeline.Cursor[T] { return t.log }

// Invert flips the track's playback direction
func (t *Track[T]) Invert() { t.log.Invert() }

func (t *Track[T]) advance() { t.value = t.log.Next() }

func (t *Track[T]) bounded() bool {
	return t.log.StartOfRecording() || t.log.EndOfRecording()
}

// Ghost replays logs handed over at an inversion, walking its recorded path backward
// relative to the direction it was recorded in
// The first attached track is primary and decides visibility and completion
type Ghost struct {
	ID      uuid.UUID
	tracks  []track
	visible bool
	steps   int
}

// NewGhost creates a ghost with no tracks
func NewGhost() *Ghost {
	return &Ghost{ID: uuid.New()}
}

// AddTrack transfers ownership of log to g and returns its typed handle
// The log is pinned at its cursor and rewound to where recording left off
func AddTrack[T any](g *Ghost, log timeline.Cursor[T]) *Track[T] {
	log.SetEndPoint(log.Inverted())
	log.Invert()
	log.StartPlaybackAtEnding()

	t := &Track[T]{log: log, value: log.Seek(0)}
	g.tracks = append(g.tracks, t)
	return t
}

// Step advances every track one tick and reports whether the ghost is visible
func (g *Ghost) Step() bool {
	if len(g.tracks) == 0 {
		g.visible = false
		return false
	}
	g.visible = !g.tracks[0].bounded()
	for _, t := range g.tracks {
		t.advance()
	}
	g.steps++
	return g.visible
}

// Invert flips every track, letting a ghost follow the global clock
func (g *Ghost) Invert() {
	for _, t := range g.tracks {
		t.Invert()
	}
}

// Done reports whether the primary cursor has left the recorded range
func (g *Ghost) Done() bool {
	return len(g.tracks) == 0 || g.tracks[0].bounded()
}

// Visible reports the visibility computed by the last Step
func (g *Ghost) Visible() bool { return g.visible }

// Steps returns the number of ticks replayed
func (g *Ghost) Steps() int { return g.steps }
