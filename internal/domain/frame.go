package domain

import "fmt"

// Packet is one unit of upstream data handed to the sender.
type Packet struct {
	// Data is the payload; the reference source uses the packet index.
	Data int
}

// Frame is a packet tagged with its sequence number.
// Frames are created by the sender at transmission time and are read-only thereafter.
type Frame struct {
	// Seq is the sequence number in [0, modulus)
	Seq int

	// Ack is the acknowledgment number. It is carried for completeness but
	// the simulator never piggy-backs acknowledgments.
	Ack int

	// Packet is the payload
	Packet Packet
}

// NewFrame creates a data frame for the given sequence number and packet.
func NewFrame(seq int, p Packet) Frame {
	return Frame{Seq: seq, Ack: -1, Packet: p}
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	return fmt.Sprintf("frame(seq=%d data=%d)", f.Seq, f.Packet.Data)
}
