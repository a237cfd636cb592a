// Package observability owns the ambient concerns of the service: the zap
// logger, OTLP log/trace/metric pipelines, request IDs, HTTP middleware and
// centralised error recording.
package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var Logger *zap.Logger

func InitLogger() error {
	var err error

	Logger, err = zap.NewProduction()
	if err != nil {
		return err
	}

	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// It also embeds ctx itself as a zap.Any("context", ctx) field: the otelzap
// bridge detects a field whose value implements context.Context and passes it
// to log.Logger.Emit, which populates the native TraceID/SpanID on the
// exported OTLP record. Without that, every exported record carries an
// all-zero trace id and log/trace correlation in the backend breaks. The
// string fields are kept so stdout JSON stays greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
