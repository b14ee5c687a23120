package arq

import (
	"github.com/bft-labs/slidingwindow/internal/adapters/narration"
	"github.com/bft-labs/slidingwindow/internal/ports"
	"github.com/bft-labs/slidingwindow/pkg/log"
)

// Re-exported collaborator interfaces. Implement them to replace the
// deterministic defaults.
type (
	Observer = ports.Observer
	Source   = ports.Source
	Sink     = ports.Sink
)

// Option configures optional behavior of a Simulator.
type Option func(*options)

type options struct {
	logger   log.Logger
	observer ports.Observer
	narrate  bool
	source   ports.Source
	sink     ports.Sink
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets the logger for run summaries and narration.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers an observer for every protocol event.
// It replaces narration enabled by WithNarration.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
		o.narrate = false
	}
}

// WithNarration logs the layer-by-layer narration through the configured logger.
func WithNarration() Option {
	return func(o *options) {
		o.narrate = true
	}
}

// WithSource replaces the default source, which uses the packet index as payload.
func WithSource(source Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithSink sets where accepted packets are delivered.
// If not provided, packets are kept in memory and reported.
func WithSink(sink Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

func (o *options) resolveObserver() ports.Observer {
	switch {
	case o.observer != nil:
		return o.observer
	case o.narrate:
		return narration.New(o.logger)
	default:
		return ports.NopObserver{}
	}
}
