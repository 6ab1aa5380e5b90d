package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/timeline"
)

func tickAll[T any](r *Rewinder[T], live T, n int) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, r.Tick(live))
	}
	return out
}

func TestRewinderStateString(t *testing.T) {
	tests := []struct {
		state RewindState
		want  string
	}{
		{StateRecording, "Recording"},
		{StatePlayingBack, "PlayingBack"},
		{RewindState(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRewinderRecordsThenPlaysBack(t *testing.T) {
	r := NewRewinder[int](timeline.NewRecording[int]())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, r.Tick(i))
	}
	require.Equal(t, StateRecording, r.State())

	r.Invert()
	require.Equal(t, StatePlayingBack, r.State())

	assert.Equal(t, []int{4, 3, 2, 1, 0}, tickAll(r, 99, 5), "live values are ignored during playback")
	assert.True(t, r.Recording(), "reaching the start bound resumes recording")

	// Recording continues backward below the original start
	assert.Equal(t, 7, r.Tick(7))

	r.Invert()
	require.Equal(t, StatePlayingBack, r.State())
	assert.Equal(t, []int{7, 0, 1, 2, 3, 4}, tickAll(r, 99, 6))
	assert.True(t, r.Recording())
}

func TestRewinderEmptyInvertOnlyFlips(t *testing.T) {
	log := timeline.NewSchedule[bool]()
	r := NewRewinder[bool](log)

	r.Invert()
	assert.True(t, log.Inverted())
	assert.Equal(t, StateRecording, r.State())
}

func TestRewinderInvertDuringPlayback(t *testing.T) {
	r := NewRewinder[int](timeline.NewRecording[int]())
	for i := 0; i < 4; i++ {
		r.Tick(i)
	}
	r.Invert()
	assert.Equal(t, []int{3, 2}, tickAll(r, 0, 2))

	r.Invert()
	assert.Equal(t, StatePlayingBack, r.State())
	assert.Equal(t, []int{1, 2, 3}, tickAll(r, 0, 3))
	assert.True(t, r.Recording())
}

func TestRewinderInterrupt(t *testing.T) {
	log := timeline.NewRecording[int]()
	r := NewRewinder[int](log)
	for i := 0; i < 10; i++ {
		r.Tick(i)
	}
	r.Invert()
	require.Equal(t, []int{9, 8, 7}, tickAll(r, 0, 3))

	r.Interrupt()
	assert.Equal(t, StateRecording, r.State())
	// Everything not yet replayed is discarded
	assert.Equal(t, parameter.MidTick+6, log.StartPoint())
	assert.Equal(t, 7, log.Get(log.StartPoint()))

	assert.Equal(t, 42, r.Tick(42))
	assert.Equal(t, 42, log.Get(parameter.MidTick+6))
	assert.Equal(t, parameter.MidTick+5, log.StartPoint())

	// Interrupt outside playback is a no-op
	r.Interrupt()
	assert.Equal(t, parameter.MidTick+5, log.StartPoint())
}

func TestRewinderWorksOverSchedule(t *testing.T) {
	log := timeline.NewSchedule[bool]()
	r := NewRewinder[bool](log)
	pattern := []bool{true, true, true, false, false, true}
	for _, v := range pattern {
		r.Tick(v)
	}
	r.Invert()

	got := tickAll(r, false, len(pattern))
	for i, v := range got {
		assert.Equal(t, pattern[len(pattern)-1-i], v, "tick %d", i)
	}
	assert.True(t, r.Recording())
	assert.Equal(t, 3, log.Len())
}
