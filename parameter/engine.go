package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickLag is the number of tick intervals the scheduler may fall behind before it drops the backlog
	MaxTickLag = 2

	// InputQueueSize is the buffered capacity of the terminal event channel
	InputQueueSize = 100
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Clock Coordinator Defaults (minutes, converted to ticks at initialization)
const (
	// DefaultStartingMinute is where the global clock starts
	DefaultStartingMinute = 5

	// DefaultTimeLimitLower is the lower clock limit that triggers a timeout
	DefaultTimeLimitLower = 0

	// DefaultTimeLimitUpper is the upper clock limit that triggers a timeout
	DefaultTimeLimitUpper = 10
)
