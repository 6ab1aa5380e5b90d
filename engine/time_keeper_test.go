package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/status"
	"github.com/lixenwraith/rewind/timeline"
)

func TestTimeKeeperDefaults(t *testing.T) {
	reg := status.NewRegistry()
	tk := NewTimeKeeper(DefaultClockSettings(), reg)

	assert.Equal(t, parameter.DefaultStartingMinute*parameter.TicksPerMinute, tk.Time())
	assert.Equal(t, parameter.DefaultStartingMinute, tk.Minutes())
	assert.Zero(t, tk.Seconds())
	assert.False(t, tk.Inverted())
	assert.InDelta(t, 0.5, tk.Progress(), 1e-9)
	assert.Equal(t, ">>", reg.Strings.Get("clock.direction").Load())
}

func TestTimeKeeperStepFollowsDirection(t *testing.T) {
	tk := NewTimeKeeper(DefaultClockSettings(), status.NewRegistry())
	start := tk.Time()

	for i := 0; i < 90; i++ {
		tk.Step()
	}
	assert.Equal(t, start+90, tk.Time())
	assert.Equal(t, 1, tk.Seconds())
	assert.Equal(t, 90, tk.Ticks())

	tk.Invert()
	for i := 0; i < 100; i++ {
		tk.Step()
	}
	assert.Equal(t, start-10, tk.Time())
	assert.Equal(t, parameter.DefaultStartingMinute-1, tk.Minutes())
}

func TestTimeKeeperTimeoutSaturates(t *testing.T) {
	tk := NewTimeKeeper(ClockSettings{StartingMinute: 0, TimeLimitLower: 0, TimeLimitUpper: 1}, status.NewRegistry())

	var fired []int
	tk.OnTimeout(func(time int) { fired = append(fired, time) })

	for i := 0; i < parameter.TicksPerMinute+50; i++ {
		tk.Step()
	}
	require.Equal(t, []int{parameter.TicksPerMinute}, fired, "timeout fires once on reaching the upper limit")
	assert.False(t, tk.Step(), "saturated counter reports no movement")
	assert.Equal(t, parameter.TicksPerMinute, tk.Time())
	assert.InDelta(t, 1.0, tk.Progress(), 1e-9)

	tk.Invert()
	for i := 0; i < parameter.TicksPerMinute+50; i++ {
		tk.Step()
	}
	assert.Equal(t, []int{parameter.TicksPerMinute, 0}, fired)
	assert.Zero(t, tk.Time())
	assert.Zero(t, tk.Elapsed())
}

func TestTimeKeeperPause(t *testing.T) {
	reg := status.NewRegistry()
	tk := NewTimeKeeper(DefaultClockSettings(), reg)
	start := tk.Time()

	tk.Pause()
	assert.False(t, tk.Step(), "paused counter does not move")
	assert.Equal(t, start, tk.Time())
	assert.True(t, tk.Paused())
	assert.True(t, reg.Bools.Get("clock.paused").Load())

	tk.Resume()
	assert.True(t, tk.Step())
	assert.Equal(t, start+1, tk.Time())
}

func TestTimeKeeperInvertBroadcast(t *testing.T) {
	reg := status.NewRegistry()
	tk := NewTimeKeeper(DefaultClockSettings(), reg)

	samples := timeline.NewRecording[int]()
	flags := timeline.NewSchedule[bool]()
	floats := timeline.NewRecording[float64]()

	for i := 0; i < 10; i++ {
		samples.Append(i)
		flags.Append(i%4 == 0)
		floats.Append(float64(i) / 2)
	}
	// Leave one cursor mid-recording
	samples.Previous()
	samples.Previous()
	samples.Previous()

	logs := []interface {
		timeline.Invertible
		Time() int
		EndPoint() int
		Inverted() bool
	}{samples, flags, floats}
	cursors := make([]int, len(logs))
	for i, l := range logs {
		cursors[i] = l.Time()
	}

	tk.Register(NewRewinder[int](samples))
	tk.Register(NewRewinder[bool](flags))
	tk.Register(NewRewinder[float64](floats))
	require.Equal(t, 3, tk.RecordingCount())

	var observed []bool
	tk.OnInvert(func(inverted bool) {
		// Every log has flipped before listeners run
		for _, l := range logs {
			assert.True(t, l.Inverted())
		}
		observed = append(observed, inverted)
	})

	tk.Invert()

	assert.True(t, tk.Inverted())
	assert.Equal(t, []bool{true}, observed)
	for i, l := range logs {
		assert.True(t, l.Inverted(), "log %d", i)
		assert.Equal(t, cursors[i], l.EndPoint(), "log %d end pinned at pre-inversion cursor", i)
	}
	assert.Equal(t, parameter.MidTick+7, samples.EndPoint())

	assert.Equal(t, int64(1), reg.Ints.Get("clock.inversions").Load())
	assert.Equal(t, int64(3), reg.Ints.Get("clock.logs").Load())
	assert.Equal(t, "<<", reg.Strings.Get("clock.direction").Load())
}
