// Package domain contains the core entities and value objects of the
// sliding-window simulator.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (console, logging, configuration) and contains
// only the sequence-space arithmetic and the frame model.
//
// # Entities
//
//   - [SequenceSpace]: modulus and window capacity derived from a bit width
//   - [Packet]: one unit of upstream data
//   - [Frame]: a packet tagged with a sequence number
//
// # Design Principles
//
// Domain values are:
//   - Immutable after construction
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
