package input

import "github.com/lixenwraith/term-snake/constants"

// Queue is a fixed-size FIFO ring buffer of raw key codes
// Single producer (key poller) and single consumer (game tick) on one goroutine, no locking
//
// Push suppresses a code equal to the most recent pending one
// Overflow: new codes are dropped when full, pending codes are never overwritten
type Queue struct {
	values [constants.InputQueueSize]Code
	head   uint64 // Read index
	tail   uint64 // Write index
}

// NewQueue creates an empty input queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends code unless it repeats the last pending code or the queue is full
// Reports whether the code was stored
func (q *Queue) Push(code Code) bool {
	pending := q.tail - q.head
	if pending == constants.InputQueueSize {
		return false
	}
	if pending > 0 && q.values[(q.tail-1)&constants.InputBufferMask] == code {
		return false
	}

	q.values[q.tail&constants.InputBufferMask] = code
	q.tail++
	return true
}

// Pop removes and returns the oldest pending code
// Returns CodeNone, false when nothing is pending
func (q *Queue) Pop() (Code, bool) {
	if q.head == q.tail {
		return CodeNone, false
	}
	code := q.values[q.head&constants.InputBufferMask]
	q.head++
	return code, true
}

// Len returns the number of pending codes
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Cap returns the fixed capacity
func (q *Queue) Cap() int {
	return constants.InputQueueSize
}

// Reset discards all pending codes
func (q *Queue) Reset() {
	q.head = 0
	q.tail = 0
}
