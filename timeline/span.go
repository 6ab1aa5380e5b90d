package timeline

import "github.com/lixenwraith/rewind/parameter"

// span holds the cursor, bounds and direction shared by both log types
// Valid samples live strictly between start and end
// The cursor may wander anywhere; reads clamp it back into range
type span struct {
	time   int
	start  int
	end    int
	invert bool

	// Direction of the most recent append, decides which bound playback begins from
	appended         bool
	appendedInverted bool
}

func newSpan() span {
	var s span
	s.Reset()
	return s
}

// Reset restores cursor and bounds to the midpoint and clears direction
// Stored samples are kept as reusable capacity
func (s *span) Reset() {
	s.time = parameter.MidTick
	s.end = parameter.MidTick
	s.start = parameter.MidTick - 1
	s.invert = false
	s.appended = false
	s.appendedInverted = false
}

// Invert toggles playback direction without moving cursor or bounds
func (s *span) Invert() {
	s.invert = !s.invert
}

// Inverted reports whether appends and reads run backward
func (s *span) Inverted() bool { return s.invert }

// EndOfRecording reports whether the cursor is at or past the end bound
func (s *span) EndOfRecording() bool { return s.time >= s.end }

// StartOfRecording reports whether the cursor is at or before the start bound
func (s *span) StartOfRecording() bool { return s.time <= s.start }

// Empty reports whether no sample lies between the bounds
func (s *span) Empty() bool { return s.end-s.start <= 1 }

// Time returns the absolute cursor tick
func (s *span) Time() int { return s.time }

// TimeMinutes returns the minute chunk of the cursor
func (s *span) TimeMinutes() int { return Minute(s.time) }

// TimeTicks returns the cursor offset within its minute chunk
func (s *span) TimeTicks() int { return TickOf(s.time) }

// StartPoint returns the exclusive start bound
func (s *span) StartPoint() int { return s.start }

// EndPoint returns the exclusive end bound
func (s *span) EndPoint() int { return s.end }

// Length returns the number of recorded samples
func (s *span) Length() int { return s.end - s.start - 1 }

// LengthMinutes returns the whole minutes of recorded samples
func (s *span) LengthMinutes() int { return s.Length() / parameter.TicksPerMinute }

// LengthTicks returns the sub-minute remainder of recorded samples
func (s *span) LengthTicks() int { return s.Length() % parameter.TicksPerMinute }

// SetEndPoint pins the relative end bound to the cursor, truncating what lies beyond it
// inverted selects the start bound instead, matching the direction the log was recorded in
// Pinning only ever shrinks the range, a cursor outside it leaves the bound unchanged
func (s *span) SetEndPoint(inverted bool) {
	if !inverted {
		s.end = max(min(s.time, s.end), s.start+1)
	} else {
		s.start = min(max(s.time, s.start), s.end-1)
	}
}

// SetStartPoint pins the relative start bound to the cursor
func (s *span) SetStartPoint(inverted bool) {
	s.SetEndPoint(!inverted)
}

// StartPlaybackAtBeginning moves the cursor onto the first recorded sample
// A log recorded while inverted began at its end bound
func (s *span) StartPlaybackAtBeginning() {
	if s.recordedInverted() {
		s.time = s.end - 1
	} else {
		s.time = s.start + 1
	}
}

// StartPlaybackAtEnding moves the cursor onto the last recorded sample,
// where recording left off
func (s *span) StartPlaybackAtEnding() {
	if s.recordedInverted() {
		s.time = s.start + 1
	} else {
		s.time = s.end - 1
	}
}

func (s *span) recordedInverted() bool {
	if s.appended {
		return s.appendedInverted
	}
	return s.invert
}

// tickUpdate moves the cursor one tick, backward when inverted
func (s *span) tickUpdate(inverted bool) {
	if inverted {
		s.time--
	} else {
		s.time++
	}
}

// clamp maps t into the valid range, false when nothing is recorded
func (s *span) clamp(t int) (int, bool) {
	if s.Empty() {
		return 0, false
	}
	if t >= s.end {
		return s.end - 1, true
	}
	if t <= s.start {
		return s.start + 1, true
	}
	return t, true
}

// growEnd claims the end bound for a write, false when the buffer is saturated
// The cursor follows the frontier only if it was sitting on it
func (s *span) growEnd() (int, bool) {
	if s.end >= parameter.MaxTime {
		return 0, false
	}
	t := s.end
	if s.time == s.end || s.Empty() {
		s.time = s.end + 1
	}
	s.end++
	s.appended = true
	s.appendedInverted = false
	return t, true
}

// growStart claims the start bound for a write, false when the buffer is saturated
func (s *span) growStart() (int, bool) {
	if s.start <= parameter.MinTime {
		return 0, false
	}
	t := s.start
	if s.time == s.start || s.Empty() {
		s.time = s.start - 1
	}
	s.start--
	s.appended = true
	s.appendedInverted = true
	return t, true
}
