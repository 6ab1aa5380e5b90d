package timeline

import "github.com/lixenwraith/rewind/parameter"

// Recording is a dense, double-ended sample log played back in either direction
// Storage is an arena of minute chunks, each allocated on first write
// Suited to data updated every tick, like a position or transform
type Recording[T any] struct {
	span
	buffer [parameter.BufferMinutes][]T
}

// NewRecording creates an empty recording positioned at the buffer midpoint
func NewRecording[T any]() *Recording[T] {
	r := &Recording[T]{span: newSpan()}
	r.buffer[parameter.BufferMid] = make([]T, parameter.TicksPerMinute)
	return r
}

// Append writes data at the relative end of the recording
func (r *Recording[T]) Append(data T) {
	if r.invert {
		r.AppendAtStart(data)
	} else {
		r.AppendAtEnd(data)
	}
}

// AppendAtStart writes data below the start bound, dropped once MinTime is reached
func (r *Recording[T]) AppendAtStart(data T) {
	if t, ok := r.growStart(); ok {
		r.write(t, data)
	}
}

// AppendAtEnd writes data above the end bound, dropped once MaxTime is reached
func (r *Recording[T]) AppendAtEnd(data T) {
	if t, ok := r.growEnd(); ok {
		r.write(t, data)
	}
}

func (r *Recording[T]) write(t int, data T) {
	m := Minute(t)
	if r.buffer[m] == nil {
		r.buffer[m] = make([]T, parameter.TicksPerMinute)
	}
	r.buffer[m][TickOf(t)] = data
}

// Get returns the sample at time, holding the boundary sample outside the recorded range
func (r *Recording[T]) Get(time int) T {
	var zero T
	t, ok := r.clamp(time)
	if !ok {
		return zero
	}
	chunk := r.buffer[Minute(t)]
	if chunk == nil {
		return zero
	}
	return chunk[TickOf(t)]
}

// GetAt returns the sample at the given minute, second and sub-second tick
func (r *Recording[T]) GetAt(minute, second, tick int) T {
	return r.Get(Compose(minute, second, tick))
}

// Next returns the sample under the cursor, then advances the cursor in the playback direction
func (r *Recording[T]) Next() T {
	data := r.Get(r.time)
	r.tickUpdate(r.invert)
	return data
}

// Previous returns the sample under the cursor, then moves the cursor against the playback direction
func (r *Recording[T]) Previous() T {
	data := r.Get(r.time)
	r.tickUpdate(!r.invert)
	return data
}

// Seek returns the sample offset ticks from the cursor without moving it
func (r *Recording[T]) Seek(offset int) T {
	return r.Get(r.time + offset)
}

// Chunks returns the number of allocated minute chunks
func (r *Recording[T]) Chunks() int {
	n := 0
	for _, c := range r.buffer {
		if c != nil {
			n++
		}
	}
	return n
}
