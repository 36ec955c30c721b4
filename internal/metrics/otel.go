package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName = "sports-data-service"
	meterName          = "github.com/preston-bernstein/sports-data-service"
	otlpExportInterval = 15 * time.Second
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup installs an OTel meter provider backed by a Prometheus reader and, when an endpoint is
// configured, an OTLP/HTTP reader. The provider is also registered globally so otelhttp picks it up.
// Disabled telemetry yields an in-memory Recorder and a nil handler.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }
	if !cfg.Enabled {
		return NewRecorder(), nil, noop, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "prometheus exporter")
	}
	readers := []sdkmetric.Reader{promReader}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, errors.Wrapf(err, "otlp exporter %s", cfg.OtlpEndpoint)
		}
		readers = append(readers, otlpReader)
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "telemetry resource")
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, reader := range readers {
		opts = append(opts, sdkmetric.WithReader(reader))
	}
	provider := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(provider)

	inst, err := instrumentFactory(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, errors.Wrap(err, "metric instruments")
	}

	return newRecorder(inst), promHandler, provider.Shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpExportInterval)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg), promexporter.WithoutUnits())
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	failedResponses   metric.Int64Counter
}

// instrumentBuilder keeps the first creation error so construction reads as a flat list.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil && b.err == nil {
		b.err = errors.Wrapf(err, "counter %s", name)
	}
	return c
}

func (b *instrumentBuilder) histogramMs(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("ms"))
	if err != nil && b.err == nil {
		b.err = errors.Wrapf(err, "histogram %s", name)
	}
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(meterName)}
	inst := &otelInstruments{
		requests:          b.counter("http_requests_total", "Inbound requests by method, route and status."),
		requestLatencyMs:  b.histogramMs("http_request_duration_ms", "Inbound request latency."),
		providerAttempts:  b.counter("provider_attempts_total", "Upstream calls per provider."),
		providerErrors:    b.counter("provider_errors_total", "Failed upstream calls per provider."),
		providerLatencyMs: b.histogramMs("provider_duration_ms", "Upstream call latency."),
		rateLimitHits:     b.counter("provider_rate_limit_hits_total", "Upstream 429 responses."),
		retryAfterMs:      b.histogramMs("provider_retry_after_ms", "Retry-After advertised on 429 responses."),
		failedResponses:   b.counter("envelope_failures_total", "Failure envelopes served per league and resource."),
	}
	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, route string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, route),
		attribute.Int(AttrStatus, status),
	)
	ctx := context.Background()
	o.requests.Add(ctx, 1, attrs)
	o.requestLatencyMs.Record(ctx, float64(duration.Milliseconds()), attrs)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	ctx := context.Background()
	o.providerAttempts.Add(ctx, 1, attrs)
	o.providerLatencyMs.Record(ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.providerErrors.Add(ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	ctx := context.Background()
	o.rateLimitHits.Add(ctx, 1, attrs)
	if retryAfter > 0 {
		o.retryAfterMs.Record(ctx, float64(retryAfter.Milliseconds()), attrs)
	}
}

func (o *otelInstruments) recordFailedResponse(league, resource string) {
	if o == nil {
		return
	}
	o.failedResponses.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(AttrLeague, league),
		attribute.String(AttrResource, resource),
	))
}
