package domain

import "errors"

// Domain errors represent error conditions in the simulator domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidBitWidth is returned when a sequence space is requested
	// with fewer than one bit or more than MaxBitWidth bits.
	ErrInvalidBitWidth = errors.New("slidingwindow: invalid sequence number bit width")

	// ErrNegativePacketCount is returned when a run is asked to transmit
	// a negative number of packets.
	ErrNegativePacketCount = errors.New("slidingwindow: negative packet count")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("slidingwindow: invalid configuration")

	// ErrWindowFull is returned when a frame is pushed onto a saturated window.
	ErrWindowFull = errors.New("slidingwindow: window full")

	// ErrChannelClosed is returned when a frame is emitted to, or received
	// from, a channel that has been closed.
	ErrChannelClosed = errors.New("slidingwindow: channel closed")
)
