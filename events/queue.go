package events

// DefaultQueueSize bounds pending events between two drains
const DefaultQueueSize = 256

// EventQueue is a bounded FIFO ring buffer for sketch events
// Single goroutine: the tick loop both pushes and consumes
//
// Overflow: oldest events overwritten when full
type EventQueue struct {
	events  []GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

// NewEventQueue creates a queue holding up to size events, rounded up to a power of two
func NewEventQueue(size int) *EventQueue {
	n := 1
	for n < size {
		n <<= 1
	}
	return &EventQueue{events: make([]GameEvent, n)}
}

func (eq *EventQueue) mask() uint64 { return uint64(len(eq.events) - 1) }

// Push appends an event, overwriting the oldest one when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&eq.mask()] = event
	eq.tail++
	if eq.tail-eq.head > uint64(len(eq.events)) {
		eq.head = eq.tail - uint64(len(eq.events))
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if eq.tail == eq.head {
		return nil
	}
	result := make([]GameEvent, 0, eq.tail-eq.head)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&eq.mask()])
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before being consumed
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
