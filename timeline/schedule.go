package timeline

import "sort"

// Change is a run boundary: Value holds from Tick until the next change point
type Change[T comparable] struct {
	Tick  int
	Value T
}

// Schedule is a sparse, double-ended log storing only value changes
// Reads resolve to the nearest change point at or before the requested tick
// Suited to data that changes on an interval, like visibility or facing
type Schedule[T comparable] struct {
	span
	changes []Change[T] // Ascending by Tick, no two adjacent entries share a value
}

// NewSchedule creates an empty schedule positioned at the buffer midpoint
func NewSchedule[T comparable]() *Schedule[T] {
	return &Schedule[T]{span: newSpan()}
}

// Append writes data at the relative end of the schedule
func (s *Schedule[T]) Append(data T) {
	if s.invert {
		s.AppendAtStart(data)
	} else {
		s.AppendAtEnd(data)
	}
}

// AppendAtStart extends the schedule below the start bound
// Only a change of value stores a new entry; repeats just move the bound
func (s *Schedule[T]) AppendAtStart(data T) {
	if t, ok := s.growStart(); ok {
		s.assign(t, data)
	}
}

// AppendAtEnd extends the schedule above the end bound
func (s *Schedule[T]) AppendAtEnd(data T) {
	if t, ok := s.growEnd(); ok {
		s.assign(t, data)
	}
}

// assign sets the value at tick t, splitting or merging the surrounding runs
// Bounds must already include t
func (s *Schedule[T]) assign(t int, data T) {
	follow, hasFollow := s.lookup(t + 1)
	s.remove(t)

	if prev, ok := s.lookup(t - 1); !ok || prev != data {
		s.insert(t, data)
	}

	if i, ok := s.index(t + 1); ok {
		if s.changes[i].Value == data {
			s.remove(t + 1)
		}
	} else if hasFollow && follow != data && t+1 > s.start && t+1 < s.end {
		// The run that continued past t keeps its value from t+1 on
		s.insert(t+1, follow)
	}
}

// SetEndPoint pins the relative end bound to the cursor and drops change points outside the range
func (s *Schedule[T]) SetEndPoint(inverted bool) {
	s.span.SetEndPoint(inverted)
	s.prune()
}

// SetStartPoint pins the relative start bound to the cursor
func (s *Schedule[T]) SetStartPoint(inverted bool) {
	s.SetEndPoint(!inverted)
}

// Reset restores cursor and bounds to the midpoint and clears direction
// The change store keeps its capacity for the next recording
func (s *Schedule[T]) Reset() {
	s.span.Reset()
	s.changes = s.changes[:0]
}

// prune keeps only the runs covering the valid range
// The run covering start+1 is re-keyed to start exactly there
func (s *Schedule[T]) prune() {
	lo := s.floor(s.start + 1)
	if s.Empty() || lo < 0 {
		s.changes = s.changes[:0]
		return
	}
	hi := s.floor(s.end - 1)
	head := s.changes[lo].Value
	n := copy(s.changes[1:], s.changes[lo+1:hi+1])
	s.changes[0] = Change[T]{Tick: s.start + 1, Value: head}
	s.changes = s.changes[:n+1]
}

// floor returns the index of the greatest change point at or before t, -1 if none
func (s *Schedule[T]) floor(t int) int {
	return sort.Search(len(s.changes), func(i int) bool {
		return s.changes[i].Tick > t
	}) - 1
}

// lookup resolves t against the raw store, ignoring bounds
func (s *Schedule[T]) lookup(t int) (T, bool) {
	if i := s.floor(t); i >= 0 {
		return s.changes[i].Value, true
	}
	var zero T
	return zero, false
}

// index returns the position of the change point exactly at t
func (s *Schedule[T]) index(t int) (int, bool) {
	i := s.floor(t)
	if i >= 0 && s.changes[i].Tick == t {
		return i, true
	}
	return i, false
}

func (s *Schedule[T]) insert(t int, data T) {
	i := s.floor(t) + 1
	s.changes = append(s.changes, Change[T]{})
	copy(s.changes[i+1:], s.changes[i:])
	s.changes[i] = Change[T]{Tick: t, Value: data}
}

func (s *Schedule[T]) remove(t int) {
	if i, ok := s.index(t); ok {
		s.changes = append(s.changes[:i], s.changes[i+1:]...)
	}
}

// Get returns the value at time, holding the boundary value outside the recorded range
func (s *Schedule[T]) Get(time int) T {
	var zero T
	t, ok := s.clamp(time)
	if !ok {
		return zero
	}
	v, _ := s.lookup(t)
	return v
}

// GetAt returns the value at the given minute, second and sub-second tick
func (s *Schedule[T]) GetAt(minute, second, tick int) T {
	return s.Get(Compose(minute, second, tick))
}

// Next returns the value under the cursor, then advances the cursor in the playback direction
func (s *Schedule[T]) Next() T {
	data := s.Get(s.time)
	s.tickUpdate(s.invert)
	return data
}

// Previous returns the value under the cursor, then moves the cursor against the playback direction
func (s *Schedule[T]) Previous() T {
	data := s.Get(s.time)
	s.tickUpdate(!s.invert)
	return data
}

// Seek returns the value offset ticks from the cursor without moving it
func (s *Schedule[T]) Seek(offset int) T {
	return s.Get(s.time + offset)
}

// Len returns the number of stored change points
func (s *Schedule[T]) Len() int {
	return len(s.changes)
}

// Entries returns a copy of the stored change points in ascending tick order
func (s *Schedule[T]) Entries() []Change[T] {
	out := make([]Change[T], len(s.changes))
	copy(out, s.changes)
	return out
}
