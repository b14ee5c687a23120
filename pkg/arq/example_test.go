package arq_test

import (
	"context"
	"fmt"

	"github.com/bft-labs/slidingwindow/pkg/arq"
)

// ExampleNew runs the 2-bit scenario from the classic exercise.
func ExampleNew() {
	sim, err := arq.New(arq.Config{Packets: 5, TwoBit: true})
	if err != nil {
		fmt.Printf("failed to create simulator: %v\n", err)
		return
	}

	report, err := sim.Run(context.Background())
	if err != nil {
		fmt.Printf("run failed: %v\n", err)
		return
	}

	seqs := make([]int, 0, len(report.Sender.Frames))
	for _, f := range report.Sender.Frames {
		seqs = append(seqs, f.Seq)
	}
	fmt.Println("sent:", seqs)
	fmt.Println("sender acks:", report.Sender.Acked)
	fmt.Println("receiver acks:", report.Receiver.Acks)
	fmt.Println("discarded:", report.Receiver.Discarded)

	// Output:
	// sent: [0 1 2 3 0]
	// sender acks: [0 1 2 3]
	// receiver acks: [0 1 2 3 0]
	// discarded: 0
}

// Example_linked connects sender and receiver through a bounded queue.
func Example_linked() {
	sim, err := arq.New(arq.Config{Packets: 6, Bits: 1, Mode: arq.ModeLinked})
	if err != nil {
		fmt.Printf("failed to create simulator: %v\n", err)
		return
	}

	report, err := sim.Run(context.Background())
	if err != nil {
		fmt.Printf("run failed: %v\n", err)
		return
	}
	fmt.Println("accepted:", report.Receiver.Accepted, "window:", sim.WindowCapacity())

	// Output: accepted: 6 window: 1
}
