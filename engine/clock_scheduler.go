package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/rewind/core"
	"github.com/lixenwraith/rewind/parameter"
	"github.com/lixenwraith/rewind/status"
)

// ClockScheduler runs game logic on a fixed tick without busy-waiting
// Deadlines advance by whole intervals so the tick rate does not drift
// Pausing is the clock's concern: the scheduler keeps ticking so queued input is still drained
type ClockScheduler struct {
	tick  func()
	clock TimeProvider

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.Mutex // serializes ticks and guards the deadline

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks *atomic.Int64
}

// NewClockScheduler creates a scheduler calling tick every tickInterval as measured by clock
func NewClockScheduler(tick func(), clock TimeProvider, tickInterval time.Duration, reg *status.Registry) *ClockScheduler {
	return &ClockScheduler{
		tick:         tick,
		clock:        clock,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get("engine.ticks"),
	}
}

// Start begins the scheduler loop, later calls are no-ops
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for an in-flight tick
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks executed
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// TickInterval returns the configured tick period
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// Step executes one tick synchronously
func (cs *ClockScheduler) Step() {
	cs.processTick()
}

// schedulerLoop ticks whenever the clock reaches the next deadline and sleeps until then
func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		default:
		}

		if !cs.wait(timer, cs.untilDeadline()) {
			return
		}
	}
}

// untilDeadline runs a tick if one is due and returns how long to sleep before the next
func (cs *ClockScheduler) untilDeadline() time.Duration {
	now := cs.clock.Now()
	cs.mu.Lock()
	deadline := cs.nextTickDeadline
	cs.mu.Unlock()
	if now.Before(deadline) {
		return deadline.Sub(now)
	}

	cs.processTick()

	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
	// Fallen too far behind: drop the backlog rather than burst through it
	if now.Sub(cs.nextTickDeadline) > cs.tickInterval*parameter.MaxTickLag {
		cs.nextTickDeadline = now.Add(cs.tickInterval)
	}
	return max(cs.nextTickDeadline.Sub(cs.clock.Now()), 0)
}

// wait sleeps for d, false if the scheduler was stopped meanwhile
func (cs *ClockScheduler) wait(timer *time.Timer, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	timer.Reset(d)
	select {
	case <-timer.C:
		return true
	case <-cs.stopChan:
		return false
	}
}

// processTick executes one clock cycle; ticks never overlap
func (cs *ClockScheduler) processTick() {
	cs.mu.Lock()
	cs.tick()
	cs.mu.Unlock()

	ticks := cs.tickCount.Add(1)
	cs.statTicks.Store(int64(ticks))
}
