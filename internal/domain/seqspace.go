package domain

import "fmt"

// MaxBitWidth is the largest bit width accepted by NewSequenceSpace.
// It keeps 2^n comfortably inside an int on every supported platform.
const MaxBitWidth = 30

// TwoBitWindowCapacity is the fixed window used by the 2-bit variant.
const TwoBitWindowCapacity = 2

// SequenceSpace is the circular space of sequence numbers [0, 2^n).
type SequenceSpace struct {
	bits     int
	modulus  int
	capacity int
}

// NewSequenceSpace returns the generic n-bit sequence space with a
// window capacity of 2^(n-1).
func NewSequenceSpace(bits int) (SequenceSpace, error) {
	if bits < 1 || bits > MaxBitWidth {
		return SequenceSpace{}, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidBitWidth, bits, MaxBitWidth)
	}
	modulus := 1 << bits
	return SequenceSpace{
		bits:     bits,
		modulus:  modulus,
		capacity: modulus / 2,
	}, nil
}

// TwoBitSequenceSpace returns the fixed 2-bit space: sequence numbers 0..3
// and a window of TwoBitWindowCapacity frames.
func TwoBitSequenceSpace() SequenceSpace {
	return SequenceSpace{
		bits:     2,
		modulus:  4,
		capacity: TwoBitWindowCapacity,
	}
}

// Bits returns the bit width n.
func (s SequenceSpace) Bits() int { return s.bits }

// Modulus returns 2^n.
func (s SequenceSpace) Modulus() int { return s.modulus }

// WindowCapacity returns the maximum number of in-flight frames.
func (s SequenceSpace) WindowCapacity() int { return s.capacity }

// Valid reports whether the space was built by one of the constructors.
func (s SequenceSpace) Valid() bool { return s.modulus > 0 }

// Contains reports whether seq lies in [0, modulus).
func (s SequenceSpace) Contains(seq int) bool {
	return seq >= 0 && seq < s.modulus
}

// Next returns (seq + 1) mod modulus.
func (s SequenceSpace) Next(seq int) int {
	return (seq + 1) % s.modulus
}

// Prev returns (seq - 1 + modulus) mod modulus.
func (s SequenceSpace) Prev(seq int) int {
	return (seq - 1 + s.modulus) % s.modulus
}

// At returns the sequence number of the i-th frame of a stream, i mod modulus.
func (s SequenceSpace) At(i int) int {
	return i % s.modulus
}

// String implements fmt.Stringer.
func (s SequenceSpace) String() string {
	return fmt.Sprintf("%d-bit (modulus=%d window=%d)", s.bits, s.modulus, s.capacity)
}
