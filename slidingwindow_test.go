package slidingwindow

import (
	"context"
	"errors"
	"testing"

	"github.com/bft-labs/slidingwindow/pkg/arq"
)

func TestRun(t *testing.T) {
	report, err := Run(context.Background(), Config{Packets: 3, Bits: 1})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := len(report.Sender.Acked); got != 3 {
		t.Errorf("len(Acked) = %d, want 3 (1-bit acks every frame)", got)
	}
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), Config{Packets: 3, Bits: 0})
	if !errors.Is(err, arq.ErrInvalidBitWidth) {
		t.Errorf("Run() error = %v, want ErrInvalidBitWidth", err)
	}
}
