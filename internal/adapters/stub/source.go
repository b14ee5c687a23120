// Package stub provides the deterministic collaborators of the original
// simulation: a source whose payload is the packet index, a channel whose
// receive path synthesizes frames from the index, and a recording sink.
package stub

import "github.com/bft-labs/slidingwindow/internal/domain"

// IndexSource yields packets whose payload equals their stream index.
type IndexSource struct{}

// NextPacket implements ports.Source.
func (IndexSource) NextPacket(index int) domain.Packet {
	return domain.Packet{Data: index}
}
