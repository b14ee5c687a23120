// Package ports defines the interfaces (ports) that connect the sender and
// receiver to the collaborators around them.
//
// # Port Interfaces
//
//   - [Source]: hands packets to the sender (the "network layer" above it)
//   - [FrameEmitter]: the send path of the channel
//   - [FrameReceiver]: the receive path of the channel
//   - [Sink]: accepts packets the receiver delivers upward
//   - [Observer]: optional narration of every protocol step
//
// The application layer (internal/app) depends only on these interfaces.
// Adapters (internal/adapters) provide the deterministic stubs, the bounded
// queue channel and the logging narrator.
package ports
