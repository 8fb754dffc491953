package registry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "field-lookup/internal/registry"

// observer traces and measures the operations of one registry.
type observer struct {
	tracer trace.Tracer

	latency metric.Float64Histogram
	total   metric.Int64Counter
	size    metric.Int64Gauge
	matches metric.Int64Histogram
}

func newObserver(tp trace.TracerProvider, mp metric.MeterProvider, logger *slog.Logger) *observer {
	o := &observer{tracer: tp.Tracer(instrumentationName)}

	if err := o.instruments(mp.Meter(instrumentationName)); err != nil {
		logger.Error("failed to initialize registry metrics (observability degraded)",
			slog.String("error", err.Error()),
		)

		// the noop meter never fails
		_ = o.instruments(metricnoop.NewMeterProvider().Meter(instrumentationName))
	}

	return o
}

func (o *observer) instruments(m metric.Meter) error {
	var errs []error

	var err error

	o.latency, err = m.Float64Histogram("field_lookup_operation_duration_seconds",
		metric.WithDescription("Duration of field lookup registry operations"),
		metric.WithUnit("s"),
	)
	errs = append(errs, err)

	o.total, err = m.Int64Counter("field_lookup_operation_total",
		metric.WithDescription("Number of field lookup registry operations"),
	)
	errs = append(errs, err)

	o.size, err = m.Int64Gauge("field_lookup_size",
		metric.WithDescription("Number of concrete field types in the current lookup"),
	)
	errs = append(errs, err)

	o.matches, err = m.Int64Histogram("field_lookup_match_results",
		metric.WithDescription("Number of names matched per call"),
	)
	errs = append(errs, err)

	return errors.Join(errs...)
}

// start opens the span of operation op.
func (o *observer) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, "Registry."+op,
		trace.WithAttributes(append(attrs, attribute.String("registry.operation", op))...),
	)
}

// observe records the outcome of operation op and ends its span. n is the
// operation's result size: lookup size for writes, hits for reads.
func (o *observer) observe(ctx context.Context, span trace.Span, op string, start time.Time, n int, err error) {
	defer span.End()

	success := err == nil
	attrs := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.Bool("success", success),
	)

	o.latency.Record(ctx, time.Since(start).Seconds(), attrs)
	o.total.Add(ctx, 1, attrs)

	span.SetAttributes(
		attribute.Int("registry.result_count", n),
		attribute.Bool("registry.success", success),
	)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// published records the size of a newly published lookup.
func (o *observer) published(ctx context.Context, size int) {
	o.size.Record(ctx, int64(size))
}

// matched records the number of names a match call returned.
func (o *observer) matched(ctx context.Context, count int) {
	o.matches.Record(ctx, int64(count))
}
