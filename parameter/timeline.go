package parameter

// Recording Buffer Geometry
// Tick Range: MinTime (exclusive) to MaxTime (exclusive), 0 to 72000
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// TicksPerMinute is the size of one buffer chunk
	TicksPerMinute = TicksPerSecond * 60

	// BufferMinutes is the number of minute chunks a log can address
	BufferMinutes = 20

	// BufferMid is the minute a fresh log starts recording from, leaving room to grow both ways
	BufferMid = 10

	// MidTick is the tick index of the first sample of a fresh log
	MidTick = BufferMid * TicksPerMinute

	// MinTime is the lowest start bound; samples are never written at or below it
	MinTime = -1

	// MaxTime is the highest end bound; samples are never written at or above it
	MaxTime = BufferMinutes * TicksPerMinute
)
