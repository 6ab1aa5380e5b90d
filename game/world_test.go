package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rewind/audio"
	"github.com/lixenwraith/rewind/engine"
	"github.com/lixenwraith/rewind/event"
	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/status"
)

type recordingSound struct {
	played     []audio.SoundType
	inversions []bool
}

func (s *recordingSound) Play(sound audio.SoundType) { s.played = append(s.played, sound) }
func (s *recordingSound) PlayInversion(inverted bool) {
	s.inversions = append(s.inversions, inverted)
}

type harness struct {
	*World
	queue *event.EventQueue
	sound *recordingSound
	reg   *status.Registry
}

func newHarness(t *testing.T, modify func(*Settings)) *harness {
	t.Helper()
	settings := DefaultSettings()
	if modify != nil {
		modify(&settings)
	}
	h := &harness{
		queue: event.NewEventQueue(),
		sound: &recordingSound{},
		reg:   status.NewRegistry(),
	}
	h.World = NewWorld(settings, h.queue, h.sound, h.reg)
	return h
}

// tick pushes the given events and runs one update
func (h *harness) tick(types ...event.EventType) {
	for _, et := range types {
		h.queue.Push(event.GameEvent{Type: et})
	}
	h.Tick()
}

func (h *harness) repeat(n int, types ...event.EventType) {
	for i := 0; i < n; i++ {
		h.tick(types...)
	}
}

func TestWorldLayout(t *testing.T) {
	h := newHarness(t, nil)

	assert.Equal(t, parameter.DefaultStartingMinute*parameter.TicksPerMinute, h.Clock.Time())
	assert.Equal(t, 5, h.Clock.RecordingCount(), "crates and collectibles register with the clock")
	assert.Equal(t, Vec2{X: 2, Y: h.Ground()}, h.Player.Pos)
	assert.Len(t, h.Crates, 2)
	assert.Len(t, h.Collectibles, 3)
	assert.True(t, h.MirrorAt(h.Mirrors[0]))
	assert.Zero(t, h.Collected())
}

func TestPlayerMovement(t *testing.T) {
	h := newHarness(t, nil)
	start := h.Clock.Time()

	h.repeat(4, event.EventMoveRight)
	assert.InDelta(t, 4.0, h.Player.Pos.X, 1e-9)
	assert.Equal(t, h.Ground(), h.Player.Pos.Y)
	assert.True(t, h.Player.FacingRight)

	h.tick(event.EventMoveLeft)
	assert.InDelta(t, 3.5, h.Player.Pos.X, 1e-9)
	assert.False(t, h.Player.FacingRight)

	// Friction bleeds off velocity once input stops
	h.repeat(2)
	assert.InDelta(t, 3.25, h.Player.Pos.X, 1e-9)
	assert.Zero(t, h.Player.Vel.X)

	assert.Equal(t, 7, h.Player.History())
	assert.Equal(t, start+7, h.Clock.Time())

	h.tick(event.EventJump)
	assert.Less(t, h.Player.Pos.Y, h.Ground())
}

func TestInversionSpawnsGhost(t *testing.T) {
	h := newHarness(t, nil)
	start := h.Clock.Time()

	h.repeat(10, event.EventMoveRight)
	require.InDelta(t, 7.0, h.Player.Pos.X, 1e-9)

	h.tick(event.EventInvertTime)

	require.True(t, h.Clock.Inverted())
	assert.Equal(t, start+9, h.Clock.Time())
	assert.Equal(t, []bool{true}, h.sound.inversions)

	require.Len(t, h.Ghosts, 1)
	g := h.Ghosts[0]
	assert.False(t, g.RecordedInverted)
	assert.True(t, g.Visible())
	assert.InDelta(t, 7.0, g.Pos.X, 1e-9, "ghost starts where the player was")

	// Nudged along its facing, then friction
	assert.InDelta(t, 9.25, h.Player.Pos.X, 1e-9)
	assert.Equal(t, 1, h.Player.History(), "player records into fresh logs")

	for _, c := range h.Crates {
		assert.True(t, c.Rewinding())
	}

	h.tick()
	assert.InDelta(t, 6.5, g.Pos.X, 1e-9, "ghost walks its path backward")

	h.repeat(8)
	assert.InDelta(t, 2.5, g.Pos.X, 1e-9)
	assert.True(t, g.Visible())
	assert.True(t, g.Done())

	h.tick()
	assert.False(t, g.Visible(), "ghost hides once its history is exhausted")
	assert.Len(t, h.Ghosts, 1, "hidden ghosts stay for a later inversion")
	assert.Equal(t, int64(1), h.reg.Ints.Get("game.ghosts").Load())
}

func TestCollectibleReappearsOnRewind(t *testing.T) {
	h := newHarness(t, nil)
	c := h.Collectibles[0]
	c.Pos = Vec2{X: 4, Y: h.Ground()}

	h.repeat(3, event.EventMoveRight)
	require.False(t, c.Visible, "collected on touch")
	assert.Equal(t, 1, h.Collected())
	assert.Equal(t, []audio.SoundType{audio.SoundCollect}, h.sound.played)

	h.repeat(2, event.EventMoveRight)
	h.tick(event.EventInvertTime)
	assert.True(t, c.Rewinding())
	assert.False(t, c.Visible)

	for i := 0; i < 5 && !c.Visible; i++ {
		h.tick()
	}
	assert.True(t, c.Visible, "rewinding past the collection tick restores the collectible")
	assert.Zero(t, h.Collected())
	assert.Len(t, h.sound.played, 1)
}

func TestMirrorCrossingInverts(t *testing.T) {
	h := newHarness(t, nil)
	h.Mirrors = []int{4}

	h.repeat(3, event.EventMoveRight)
	require.True(t, h.Clock.Inverted())
	require.Len(t, h.Ghosts, 1)
	assert.InDelta(t, 5.5, h.Player.Pos.X, 1e-9)

	h.repeat(3, event.EventMoveLeft)
	assert.False(t, h.Clock.Inverted(), "crossing back turns time forward")
	assert.Len(t, h.Ghosts, 2)
	assert.True(t, h.Ghosts[1].RecordedInverted)
	assert.InDelta(t, 2.0, h.Player.Pos.X, 1e-9)
	assert.Equal(t, []bool{true, false}, h.sound.inversions)
}

func TestTimeoutFreezesClock(t *testing.T) {
	h := newHarness(t, func(s *Settings) {
		s.Clock = engine.ClockSettings{StartingMinute: 0, TimeLimitLower: 0, TimeLimitUpper: 1}
	})

	h.repeat(parameter.TicksPerMinute)
	require.True(t, h.TimedOut)
	assert.True(t, h.Clock.Paused())
	assert.Equal(t, parameter.TicksPerMinute, h.Clock.Time())
	assert.Equal(t, []audio.SoundType{audio.SoundTimeout}, h.sound.played)

	history := h.Player.History()
	h.repeat(5, event.EventMoveRight)
	assert.Equal(t, history, h.Player.History(), "nothing moves while frozen")

	h.tick(event.EventPauseToggle)
	assert.False(t, h.TimedOut)
	assert.False(t, h.Clock.Paused())
	assert.Equal(t, parameter.TicksPerMinute, h.Clock.Time(), "clock saturates at the limit")
	assert.Len(t, h.sound.played, 1)
}

func TestSaturatedClockHoldsLogs(t *testing.T) {
	h := newHarness(t, func(s *Settings) {
		s.Clock = engine.ClockSettings{StartingMinute: 0, TimeLimitLower: 0, TimeLimitUpper: 1}
	})

	h.repeat(parameter.TicksPerMinute)
	require.True(t, h.TimedOut)
	history := h.Player.History()
	crate := h.Crates[0].motion.Log().EndPoint()

	h.tick(event.EventPauseToggle)
	h.repeat(10, event.EventMoveRight)
	require.False(t, h.Clock.Paused())
	assert.Equal(t, parameter.TicksPerMinute, h.Clock.Time())
	assert.Equal(t, history, h.Player.History(), "player stops recording while the clock cannot move")
	assert.Equal(t, crate, h.Crates[0].motion.Log().EndPoint(), "crates stop recording too")

	h.tick(event.EventInvertTime)
	assert.Equal(t, parameter.TicksPerMinute-1, h.Clock.Time(), "inverting releases the clock")
	assert.Equal(t, 1, h.Player.History(), "player records into fresh logs after the inversion")
}

func TestPauseToggle(t *testing.T) {
	h := newHarness(t, nil)
	start := h.Clock.Time()

	h.tick(event.EventPauseToggle)
	h.repeat(3)
	assert.Equal(t, start, h.Clock.Time())

	h.tick(event.EventPauseToggle)
	assert.Equal(t, start+1, h.Clock.Time())
}

func TestWorldReset(t *testing.T) {
	h := newHarness(t, nil)
	start := h.Clock.Time()

	h.repeat(4, event.EventMoveRight)
	h.tick(event.EventInvertTime)
	require.Len(t, h.Ghosts, 1)

	h.tick(event.EventWorldReset)
	assert.Empty(t, h.Ghosts)
	assert.False(t, h.Clock.Inverted())
	assert.Equal(t, start+1, h.Clock.Time())
	assert.Equal(t, 5, h.Clock.RecordingCount())
	assert.InDelta(t, 2.0, h.Player.Pos.X, 1e-9)
	assert.Equal(t, int64(1), h.reg.Ints.Get("game.resets").Load())
}

func TestGhostCap(t *testing.T) {
	h := newHarness(t, func(s *Settings) { s.MaxGhosts = 2 })

	var ids []string
	for i := 0; i < 3; i++ {
		h.repeat(2, event.EventMoveRight)
		h.tick(event.EventInvertTime)
		ids = append(ids, h.Ghosts[len(h.Ghosts)-1].ID.String())
	}

	require.Len(t, h.Ghosts, 2)
	assert.Equal(t, ids[1], h.Ghosts[0].ID.String(), "oldest ghost is dropped first")
	assert.Equal(t, ids[2], h.Ghosts[1].ID.String())
}

func TestNoGhostsWhenCapIsZero(t *testing.T) {
	h := newHarness(t, func(s *Settings) { s.MaxGhosts = 0 })

	h.repeat(3, event.EventMoveRight)
	h.tick(event.EventInvertTime)
	assert.Empty(t, h.Ghosts)
	assert.Equal(t, 1, h.Player.History(), "history is discarded anyway")
}

func TestCratePushRewindAndInterrupt(t *testing.T) {
	h := newHarness(t, nil)
	c := h.Crates[0]
	c.Pos = Vec2{X: 3, Y: h.Ground()}

	h.repeat(4, event.EventMoveRight)
	require.InDelta(t, 4.5, c.Pos.X, 1e-9, "pushed while the player overlaps it")

	h.tick(event.EventInvertTime)
	require.True(t, c.Rewinding())
	assert.InDelta(t, 4.5, c.Pos.X, 1e-9)

	h.tick()
	assert.InDelta(t, 4.0, c.Pos.X, 1e-9)

	// Touching a rewinding crate pins it in place
	h.Player.Pos = c.Pos
	h.Player.Vel = Vec2{}
	h.tick()
	assert.False(t, c.Rewinding())
	assert.InDelta(t, 4.0, c.Pos.X, 1e-9)
}

func TestCrateReplaysToRecordingStart(t *testing.T) {
	h := newHarness(t, nil)
	c := h.Crates[0]
	c.Pos = Vec2{X: 3, Y: h.Ground()}

	h.repeat(4, event.EventMoveRight)
	h.tick(event.EventInvertTime)
	h.repeat(3)

	assert.InDelta(t, 3.5, c.Pos.X, 1e-9)
	assert.False(t, c.Rewinding(), "recording resumes at the start of its history")
}

func TestVec2Cell(t *testing.T) {
	tests := []struct {
		v    Vec2
		x, y int
	}{
		{Vec2{0, 0}, 0, 0},
		{Vec2{2.5, 3.49}, 3, 3},
		{Vec2{4.49, 14.08}, 4, 14},
	}
	for _, tt := range tests {
		x, y := tt.v.Cell()
		if x != tt.x || y != tt.y {
			t.Errorf("%v.Cell() = (%d, %d), want (%d, %d)", tt.v, x, y, tt.x, tt.y)
		}
	}
	if !(Vec2{3.4, 1}).SameCell(Vec2{2.6, 1}) {
		t.Error("SameCell(3.4, 2.6) should be true")
	}
}
