package engine

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/status"
	"github.com/lixenwraith/rewind/timeline"
)

// ClockSettings are the initialization parameters of the global clock, in minutes
type ClockSettings struct {
	StartingMinute int
	TimeLimitLower int
	TimeLimitUpper int
}

// DefaultClockSettings returns the compile-time clock defaults
func DefaultClockSettings() ClockSettings {
	return ClockSettings{
		StartingMinute: parameter.DefaultStartingMinute,
		TimeLimitLower: parameter.DefaultTimeLimitLower,
		TimeLimitUpper: parameter.DefaultTimeLimitUpper,
	}
}

// TimeKeeper owns the global tick counter and direction
// Inversion is broadcast synchronously to every registered log, in registration order,
// before Invert returns, so no log observes a tick half-inverted
// Not safe for concurrent use; callers serialize access through the tick loop
type TimeKeeper struct {
	time   int
	lower  int
	upper  int
	invert bool
	paused bool

	logs       []timeline.Invertible
	onInvert   []func(inverted bool)
	onTimeout  []func(time int)
	inversions int

	// Cached metric pointers
	statTicks      *atomic.Int64
	statInversions *atomic.Int64
	statLogs       *atomic.Int64
	statInverted   *atomic.Bool
	statPaused     *atomic.Bool
	statProgress   *status.AtomicFloat
	statDirection  *status.AtomicString
}

// NewTimeKeeper creates a clock positioned at the starting minute
func NewTimeKeeper(settings ClockSettings, reg *status.Registry) *TimeKeeper {
	tk := &TimeKeeper{
		time:           settings.StartingMinute * parameter.TicksPerMinute,
		lower:          settings.TimeLimitLower * parameter.TicksPerMinute,
		upper:          settings.TimeLimitUpper * parameter.TicksPerMinute,
		statTicks:      reg.Ints.Get("clock.ticks"),
		statInversions: reg.Ints.Get("clock.inversions"),
		statLogs:       reg.Ints.Get("clock.logs"),
		statInverted:   reg.Bools.Get("clock.inverted"),
		statPaused:     reg.Bools.Get("clock.paused"),
		statProgress:   reg.Floats.Get("clock.progress"),
		statDirection:  reg.Strings.Get("clock.direction"),
	}
	tk.publish()
	return tk
}

// Register adds a log to the inversion broadcast; logs are never removed
func (tk *TimeKeeper) Register(log timeline.Invertible) {
	tk.logs = append(tk.logs, log)
	tk.statLogs.Store(int64(len(tk.logs)))
}

// OnInvert subscribes fn to inversions, called after every registered log has flipped
func (tk *TimeKeeper) OnInvert(fn func(inverted bool)) {
	tk.onInvert = append(tk.onInvert, fn)
}

// OnTimeout subscribes fn to the counter reaching the lower or upper limit
func (tk *TimeKeeper) OnTimeout(fn func(time int)) {
	tk.onTimeout = append(tk.onTimeout, fn)
}

// Step advances the counter one tick in the current direction, false if it could not move
// The counter saturates at the limits; reaching one notifies timeout listeners once
func (tk *TimeKeeper) Step() bool {
	if tk.paused {
		return false
	}

	moved := false
	if tk.invert {
		if tk.time > tk.lower {
			tk.time--
			moved = true
		}
	} else if tk.time < tk.upper {
		tk.time++
		moved = true
	}

	tk.publish()

	if moved && (tk.time == tk.lower || tk.time == tk.upper) {
		log.Printf("Time limit reached at %d:%02d", tk.Minutes(), tk.Seconds())
		for _, fn := range tk.onTimeout {
			fn(tk.time)
		}
	}
	return moved
}

// Invert flips the direction and broadcasts it to every registered log, then to listeners
func (tk *TimeKeeper) Invert() {
	if tk.invert {
		log.Printf("Inverting time to forward at %d:%02d", tk.Minutes(), tk.Seconds())
	} else {
		log.Printf("Inverting time to backward at %d:%02d", tk.Minutes(), tk.Seconds())
	}

	tk.invert = !tk.invert
	for _, l := range tk.logs {
		l.Invert()
	}
	tk.inversions++
	tk.statInversions.Store(int64(tk.inversions))
	tk.publish()

	for _, fn := range tk.onInvert {
		fn(tk.invert)
	}
}

// Pause freezes the counter; inversion still works while paused
func (tk *TimeKeeper) Pause() {
	tk.paused = true
	tk.statPaused.Store(true)
}

// Resume lets the counter advance again
func (tk *TimeKeeper) Resume() {
	tk.paused = false
	tk.statPaused.Store(false)
}

func (tk *TimeKeeper) publish() {
	tk.statTicks.Store(int64(tk.time))
	tk.statInverted.Store(tk.invert)
	tk.statProgress.Set(tk.Progress())
	if tk.invert {
		tk.statDirection.Store("<<")
	} else {
		tk.statDirection.Store(">>")
	}
}

// Time returns the tick counter
func (tk *TimeKeeper) Time() int { return tk.time }

// Minutes returns the whole minutes of the counter
func (tk *TimeKeeper) Minutes() int { return timeline.Minute(tk.time) }

// Seconds returns the seconds within the current minute
func (tk *TimeKeeper) Seconds() int { return tk.Ticks() / parameter.TicksPerSecond }

// Ticks returns the ticks within the current minute
func (tk *TimeKeeper) Ticks() int { return timeline.TickOf(tk.time) }

// Inverted reports whether time runs backward
func (tk *TimeKeeper) Inverted() bool { return tk.invert }

// Paused reports whether the counter is frozen
func (tk *TimeKeeper) Paused() bool { return tk.paused }

// RecordingCount returns the number of registered logs
func (tk *TimeKeeper) RecordingCount() int { return len(tk.logs) }

// Inversions returns the number of inversions so far
func (tk *TimeKeeper) Inversions() int { return tk.inversions }

// Elapsed returns ticks between the lower limit and the counter
func (tk *TimeKeeper) Elapsed() int { return tk.time - tk.lower }

// Capacity returns the ticks between the lower and upper limits
func (tk *TimeKeeper) Capacity() int { return tk.upper - tk.lower }

// Progress returns the elapsed fraction of the clock's range, 0 to 1
func (tk *TimeKeeper) Progress() float64 {
	if tk.upper <= tk.lower {
		return 0
	}
	return float64(tk.Elapsed()) / float64(tk.Capacity())
}
