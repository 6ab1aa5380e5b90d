package timeline

import "github.com/lixenwraith/rewind/parameter"

// Minute returns the buffer chunk index addressing tick t (floor division)
func Minute(t int) int {
	m := t / parameter.TicksPerMinute
	if t%parameter.TicksPerMinute < 0 {
		m--
	}
	return m
}

// TickOf returns the offset of tick t within its minute chunk, always non-negative
func TickOf(t int) int {
	r := t % parameter.TicksPerMinute
	if r < 0 {
		r += parameter.TicksPerMinute
	}
	return r
}

// Compose converts a (minute, second, tick) triple into a tick index
func Compose(minute, second, tick int) int {
	return minute*parameter.TicksPerMinute + second*parameter.TicksPerSecond + tick
}

// Seconds returns the whole seconds elapsed within the minute of tick t
func Seconds(t int) int {
	return TickOf(t) / parameter.TicksPerSecond
}
