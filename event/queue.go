package event

import "github.com/lixenwraith/food-drop/parameter"

// EventQueue is a fixed ring buffer for game events
// The engine pushes and the frontend consumes on the same goroutine, once per frame
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Next unread
	tail   uint64 // Next write
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest unread one when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}

	out := make([]GameEvent, n)
	for i := range out {
		out[i] = eq.events[(eq.head+uint64(i))&parameter.EventBufferMask]
	}
	eq.head = eq.tail
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Emit pushes ev when the queue is non-nil, so callers may hold an optional queue
func (eq *EventQueue) Emit(ev GameEvent) {
	if eq == nil {
		return
	}
	eq.Push(ev)
}
