package events

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LogSink writes events to a structured logger. Fallbacks log at warn,
// failures at info and everything else at debug.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Emit implements Sink.
func (s *LogSink) Emit(ctx context.Context, event Event) {
	level := slog.LevelDebug
	switch {
	case event.Kind.Warning():
		level = slog.LevelWarn
	case event.Kind == KindDungeonFailed || event.Kind == KindDungeonCompleted:
		level = slog.LevelInfo
	}

	attrs := []slog.Attr{slog.String("composition", event.Composition)}
	if event.Floor > 0 {
		attrs = append(attrs, slog.Int("floor", event.Floor))
	}
	if event.Scaling > 0 {
		attrs = append(attrs, slog.Float64("scaling", event.Scaling))
	}
	if event.Detail != "" {
		attrs = append(attrs, slog.String("detail", event.Detail))
	}
	s.logger.LogAttrs(ctx, level, string(event.Kind), attrs...)
}

// SpanSink records events on the span carried by the context.
type SpanSink struct{}

// Emit implements Sink.
func (SpanSink) Emit(ctx context.Context, event Event) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(string(event.Kind), trace.WithAttributes(
		attribute.String("composition", event.Composition),
		attribute.Int("floor", event.Floor),
		attribute.Float64("scaling", event.Scaling),
		attribute.String("detail", event.Detail),
	))
}
