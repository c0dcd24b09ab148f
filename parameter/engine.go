package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the elapsed time fed to a single tick after a stall
	MaxFrameDelta = 250 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
