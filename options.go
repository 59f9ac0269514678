package hashchain

import (
	"github.com/mgtv-tech/hashchain-go/stats"
)

const defaultName = "default"

type (
	// Options are used to store chain options.
	Options struct {
		name          string        // Chain name, used for log identification and stats reporting.
		statsDisabled bool          // Flag to disable lookup statistics.
		statsHandler  stats.Handler // Lookup stats collector. Default records nothing.
	}

	// Option defines the method to customize an Options.
	Option func(o *Options)
)

func newOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = defaultName
	}
	if o.statsHandler == nil {
		o.statsHandler = stats.NewHandles(o.statsDisabled)
	} else {
		o.statsHandler = stats.NewHandles(o.statsDisabled, o.statsHandler)
	}
	return o
}

func WithName(name string) Option {
	return func(o *Options) {
		o.name = name
	}
}

func WithStatsHandler(handler stats.Handler) Option {
	return func(o *Options) {
		o.statsHandler = handler
	}
}

func WithStatsDisabled(statsDisabled bool) Option {
	return func(o *Options) {
		o.statsDisabled = statsDisabled
	}
}
