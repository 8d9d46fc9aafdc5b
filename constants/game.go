package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the wall-clock budget of one poll-then-tick cycle
	TickInterval = 80 * time.Millisecond

	// PollInterval is the sleep between empty key polls inside a cycle
	PollInterval = 2 * time.Millisecond
)

// Input Queue Limits
const (
	// InputQueueSize is the fixed capacity of the input ring buffer
	InputQueueSize = 256

	// InputBufferMask is the bitmask for fast modulo operations (256 - 1)
	InputBufferMask = 255
)

// Terminal poller channel depth
const KeyEventBufferSize = 256

// CellColumns is the number of terminal columns one grid cell occupies
const CellColumns = 2
