package nslog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Extra keys written by WithTrace.
const (
	TraceIDKey      = "trace_id"
	SpanIDKey       = "span_id"
	TraceSampledKey = "trace_sampled"
)

// TraceExtra returns the trace identifiers of the span in ctx as Extra, or nil
// when ctx carries no valid span context.
func TraceExtra(ctx context.Context) Extra {
	if ctx == nil {
		return nil
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}
	return Extra{
		TraceIDKey:      sc.TraceID().String(),
		SpanIDKey:       sc.SpanID().String(),
		TraceSampledKey: sc.IsSampled(),
	}
}

// WithTrace forks logger with the trace identifiers of the span in ctx. The
// logger is returned unchanged when there is no valid span.
func WithTrace(ctx context.Context, logger Logger) Logger {
	if logger == nil {
		return Noop()
	}
	extra := TraceExtra(ctx)
	if extra == nil {
		return logger
	}
	return logger.Fork(SubContext{Extra: extra})
}
