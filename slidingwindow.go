// Package slidingwindow simulates the sequence-number and window bookkeeping
// of a data-link sliding-window ARQ protocol.
//
// Example usage:
//
//	report, err := slidingwindow.Run(context.Background(), slidingwindow.Config{
//	    Packets: 5,
//	    Bits:    2,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Sender.Acked)
//
// See package pkg/arq for options such as narration and linked mode.
package slidingwindow

import (
	"context"

	"github.com/bft-labs/slidingwindow/pkg/arq"
)

// Config describes one simulation.
type Config = arq.Config

// Report summarizes a run.
type Report = arq.Report

// Run creates a simulator for cfg and executes a single run.
func Run(ctx context.Context, cfg Config, opts ...arq.Option) (Report, error) {
	sim, err := arq.New(cfg, opts...)
	if err != nil {
		return Report{}, err
	}
	return sim.Run(ctx)
}
