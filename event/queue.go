package event

import (
	"sync/atomic"

	"github.com/lixenwraith/rewind/parameter"
)

// slot is one ring entry; ready is set only after ev is fully written
type slot struct {
	ev    GameEvent
	ready atomic.Bool
}

// EventQueue carries input requests from the terminal goroutine to the clock tick
// Push may be called from any goroutine, Consume only from the tick
// A full ring drops its oldest entries
type EventQueue struct {
	ring [parameter.EventQueueSize]slot
	head atomic.Uint64 // next slot to read
	tail atomic.Uint64 // next slot to claim
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

func (eq *EventQueue) at(i uint64) *slot {
	return &eq.ring[i&parameter.EventBufferMask]
}

// Push claims the tail slot, writes ev, then marks it ready
func (eq *EventQueue) Push(ev GameEvent) {
	var claimed uint64
	for {
		claimed = eq.tail.Load()
		if eq.tail.CompareAndSwap(claimed, claimed+1) {
			break
		}
	}

	s := eq.at(claimed)
	s.ev = ev
	s.ready.Store(true)

	// Overwrote an unread entry: move the reader past it
	head := eq.head.Load()
	if end := claimed + 1; end-head > parameter.EventQueueSize {
		eq.head.CompareAndSwap(head, end-parameter.EventQueueSize)
	}
}

// Consume drains the ready prefix of the ring in FIFO order, nil when nothing is pending
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if head == tail {
			return nil
		}

		pending := tail - head
		if pending > parameter.EventQueueSize {
			pending = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, pending)
		for i := head; i < head+pending; i++ {
			s := eq.at(i)
			// Stop at a slot whose producer has not finished writing
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
			s.ready.Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len is the number of pending events, capped at the ring size
func (eq *EventQueue) Len() int {
	head, tail := eq.head.Load(), eq.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}
