// Package arq provides an embeddable sliding-window ARQ simulator.
//
// A sender numbers packets modulo 2^n and keeps at most a window's worth of
// frames in flight; a receiver accepts frames strictly in order and
// acknowledges the last frame it accepted after every arrival.
//
// # Basic Usage
//
//	sim, err := arq.New(arq.Config{Packets: 5, Bits: 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := sim.Run(context.Background())
//
// # Modes
//
// [ModeSimulated] reproduces the classic exercise: the sender runs to
// completion, then the receiver runs against a channel that synthesizes the
// i-th frame as seq = i mod 2^n. [ModeLinked] runs both concurrently over a
// bounded FIFO that carries the frames the sender actually emitted.
//
// # Observing a run
//
// Use [WithNarration] to log every network/physical layer hand-off, or
// [WithObserver] to receive the events directly. Neither affects the outcome
// of a run.
package arq
