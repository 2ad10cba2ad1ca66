package detkit

// options holds the configurable collaborators of a Table.
type options struct {
	logger  *Logger
	metrics MetricsCollector
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures Table construction.
type Option func(*options)

// WithLogger configures the structured logger used for handle lifecycle
// and operation events. If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics configures the metrics collector invoked after every
// dispatched operation. If nil is passed, collection stays disabled.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
