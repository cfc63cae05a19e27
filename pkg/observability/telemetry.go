// Package observability provides OpenTelemetry tracing and metrics for
// the pipeline. Disabled by default; when disabled every recording
// method is a cheap no-op backed by the global no-op providers.
package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// Config configures the telemetry provider.
type Config struct {
	Enabled        bool
	ServiceName    string
	ServiceVersion string
	Environment    string
	OTLPEndpoint   string
	OTLPHeaders    map[string]string
	SampleRate     float64
	TracingEnabled bool
	MetricsEnabled bool
}

// DefaultConfig returns a disabled default configuration.
func DefaultConfig() *Config {
	return &Config{
		ServiceName:    "dispatchhub",
		ServiceVersion: "0.1.0",
		Environment:    "development",
		OTLPEndpoint:   "http://localhost:4318",
		SampleRate:     1.0,
		TracingEnabled: true,
		MetricsEnabled: true,
		Enabled:        false,
	}
}

// Telemetry provides tracing and pipeline metrics.
type Telemetry struct {
	config        *Config
	tracer        trace.Tracer
	meter         metric.Meter
	traceProvider *sdktrace.TracerProvider

	requestsTotal    metric.Int64Counter
	requestsRejected metric.Int64Counter
	deliveriesTotal  metric.Int64Counter
	deliveriesFailed metric.Int64Counter
	processDuration  metric.Float64Histogram
}

// New creates a telemetry provider. With cfg nil or disabled, the
// provider uses the global no-op tracer and meter.
func New(cfg *Config) (*Telemetry, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	t := &Telemetry{config: cfg}
	if !cfg.Enabled {
		t.tracer = otel.Tracer("dispatchhub")
		t.meter = otel.Meter("dispatchhub")
		return t, nil
	}

	if cfg.TracingEnabled {
		if err := t.initTracing(); err != nil {
			return nil, fmt.Errorf("init tracing: %w", err)
		}
	}
	if cfg.MetricsEnabled {
		if err := t.initMetrics(); err != nil {
			return nil, fmt.Errorf("init metrics: %w", err)
		}
	}
	return t, nil
}

func (t *Telemetry) initTracing() error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(t.config.ServiceName),
			semconv.ServiceVersion(t.config.ServiceVersion),
			semconv.DeploymentEnvironment(t.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("create resource: %w", err)
	}

	exporter, err := otlptrace.New(context.Background(),
		otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(t.config.OTLPEndpoint),
			otlptracehttp.WithHeaders(t.config.OTLPHeaders),
		),
	)
	if err != nil {
		return fmt.Errorf("create exporter: %w", err)
	}

	t.traceProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.TraceIDRatioBased(t.config.SampleRate)),
	)
	otel.SetTracerProvider(t.traceProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	t.tracer = otel.Tracer("dispatchhub",
		trace.WithInstrumentationVersion(t.config.ServiceVersion),
		trace.WithSchemaURL(semconv.SchemaURL),
	)
	return nil
}

func (t *Telemetry) initMetrics() error {
	t.meter = otel.Meter("dispatchhub",
		metric.WithInstrumentationVersion(t.config.ServiceVersion),
		metric.WithSchemaURL(semconv.SchemaURL),
	)

	var err error
	t.requestsTotal, err = t.meter.Int64Counter(
		"dispatchhub_requests_total",
		metric.WithDescription("Total pipeline requests processed"),
	)
	if err != nil {
		return err
	}
	t.requestsRejected, err = t.meter.Int64Counter(
		"dispatchhub_requests_rejected_total",
		metric.WithDescription("Requests rejected before any side effect"),
	)
	if err != nil {
		return err
	}
	t.deliveriesTotal, err = t.meter.Int64Counter(
		"dispatchhub_deliveries_total",
		metric.WithDescription("Total delivery attempts"),
	)
	if err != nil {
		return err
	}
	t.deliveriesFailed, err = t.meter.Int64Counter(
		"dispatchhub_deliveries_failed_total",
		metric.WithDescription("Failed delivery attempts"),
	)
	if err != nil {
		return err
	}
	t.processDuration, err = t.meter.Float64Histogram(
		"dispatchhub_process_duration_seconds",
		metric.WithDescription("End-to-end request processing duration"),
		metric.WithUnit("s"),
	)
	return err
}

// StartProcessSpan starts a span around one request's processing.
func (t *Telemetry) StartProcessSpan(ctx context.Context, kind, format string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "dispatchhub.process",
		trace.WithAttributes(
			attribute.String("request.kind", kind),
			attribute.String("request.format", format),
		),
	)
}

// EndProcessSpan finishes the span, recording the error if any.
func (t *Telemetry) EndProcessSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// RecordRequest counts one processed request.
func (t *Telemetry) RecordRequest(ctx context.Context, kind string) {
	if t.requestsTotal != nil {
		t.requestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// RecordRejection counts one rejected request.
func (t *Telemetry) RecordRejection(ctx context.Context, kind string) {
	if t.requestsRejected != nil {
		t.requestsRejected.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// RecordDelivery counts one delivery attempt.
func (t *Telemetry) RecordDelivery(ctx context.Context, method string, success bool) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.Bool("success", success),
	)
	if t.deliveriesTotal != nil {
		t.deliveriesTotal.Add(ctx, 1, attrs)
	}
	if !success && t.deliveriesFailed != nil {
		t.deliveriesFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method)))
	}
}

// RecordDuration records the end-to-end processing duration.
func (t *Telemetry) RecordDuration(ctx context.Context, kind string, d time.Duration) {
	if t.processDuration != nil {
		t.processDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// Shutdown flushes and stops the trace provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.traceProvider != nil {
		return t.traceProvider.Shutdown(ctx)
	}
	return nil
}
