package domain

import (
	"errors"
	"testing"
)

func TestNewSequenceSpace(t *testing.T) {
	tests := []struct {
		bits         int
		wantModulus  int
		wantCapacity int
	}{
		{1, 2, 1},
		{2, 4, 2},
		{3, 8, 4},
		{4, 16, 8},
		{8, 256, 128},
		{MaxBitWidth, 1 << MaxBitWidth, 1 << (MaxBitWidth - 1)},
	}

	for _, tt := range tests {
		s, err := NewSequenceSpace(tt.bits)
		if err != nil {
			t.Fatalf("NewSequenceSpace(%d) error = %v", tt.bits, err)
		}
		if s.Modulus() != tt.wantModulus {
			t.Errorf("NewSequenceSpace(%d).Modulus() = %d, want %d", tt.bits, s.Modulus(), tt.wantModulus)
		}
		if s.WindowCapacity() != tt.wantCapacity {
			t.Errorf("NewSequenceSpace(%d).WindowCapacity() = %d, want %d", tt.bits, s.WindowCapacity(), tt.wantCapacity)
		}
		if s.Bits() != tt.bits {
			t.Errorf("Bits() = %d, want %d", s.Bits(), tt.bits)
		}
	}
}

func TestNewSequenceSpace_RejectsInvalidBitWidth(t *testing.T) {
	for _, bits := range []int{-3, -1, 0, MaxBitWidth + 1, 64} {
		s, err := NewSequenceSpace(bits)
		if !errors.Is(err, ErrInvalidBitWidth) {
			t.Errorf("NewSequenceSpace(%d) error = %v, want ErrInvalidBitWidth", bits, err)
		}
		if s.Valid() {
			t.Errorf("NewSequenceSpace(%d) returned a valid space on error", bits)
		}
	}
}

func TestTwoBitSequenceSpace(t *testing.T) {
	s := TwoBitSequenceSpace()

	if s.Modulus() != 4 {
		t.Errorf("Modulus() = %d, want 4", s.Modulus())
	}
	if s.WindowCapacity() != 2 {
		t.Errorf("WindowCapacity() = %d, want 2", s.WindowCapacity())
	}
	if !s.Valid() {
		t.Error("Valid() = false, want true")
	}
}

func TestSequenceSpace_NextCycles(t *testing.T) {
	s, _ := NewSequenceSpace(3)

	seq := 0
	for i := 1; i <= 3*s.Modulus(); i++ {
		seq = s.Next(seq)
		if want := i % s.Modulus(); seq != want {
			t.Fatalf("after %d increments seq = %d, want %d", i, seq, want)
		}
		if !s.Contains(seq) {
			t.Fatalf("seq %d escaped the space", seq)
		}
	}
}

func TestSequenceSpace_Prev(t *testing.T) {
	s := TwoBitSequenceSpace()

	tests := []struct{ in, want int }{
		{0, 3},
		{1, 0},
		{2, 1},
		{3, 2},
	}
	for _, tt := range tests {
		if got := s.Prev(tt.in); got != tt.want {
			t.Errorf("Prev(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if got := s.Next(s.Prev(tt.in)); got != tt.in {
			t.Errorf("Next(Prev(%d)) = %d", tt.in, got)
		}
	}
}

func TestSequenceSpace_Contains(t *testing.T) {
	s, _ := NewSequenceSpace(1)

	if !s.Contains(0) || !s.Contains(1) {
		t.Error("expected 0 and 1 inside a 1-bit space")
	}
	if s.Contains(2) || s.Contains(-1) {
		t.Error("expected 2 and -1 outside a 1-bit space")
	}
}

func TestSequenceSpace_At(t *testing.T) {
	s := TwoBitSequenceSpace()
	want := []int{0, 1, 2, 3, 0, 1}
	for i, w := range want {
		if got := s.At(i); got != w {
			t.Errorf("At(%d) = %d, want %d", i, got, w)
		}
	}
}
