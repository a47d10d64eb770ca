// Package telemetry exports gefyra's network operation spans and counters to
// an OTLP/HTTP collector. With telemetry off, recording goes to the otel
// globals, which are noop.
package telemetry

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config is the telemetry section of gefyra's configuration.
type Config struct {
	Enabled         bool    `mapstructure:"enabled"`
	Endpoint        string  `mapstructure:"endpoint"`          // collector base URL, e.g. http://localhost:4318
	AuthToken       string  `mapstructure:"auth_token"`        // sent as "Authorization: Basic <token>"
	Traces          bool    `mapstructure:"traces"`
	Metrics         bool    `mapstructure:"metrics"`
	TraceSampleRate float64 `mapstructure:"trace_sample_rate"` // 0 never, 1 always
}

// Provider carries the SDK providers a run exports through.
// A nil field means that signal is off.
type Provider struct {
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
}

// collector is where both exporters send their payloads.
type collector struct {
	host     string
	basePath string
	insecure bool
	headers  map[string]string
}

// signalPath returns the OTLP path for a signal under the collector base path,
// or "" to keep the exporter default.
func (c *collector) signalPath(signal string) string {
	if c.basePath == "" {
		return ""
	}
	return c.basePath + "/v1/" + signal
}

// NewProvider builds the providers selected by cfg and installs them as the
// otel globals. The shutdown function flushes pending spans and metrics; a
// CLI invocation is short enough that nothing reaches the collector without it.
func NewProvider(ctx context.Context, cfg Config, serviceName, version string) (*Provider, func(context.Context), error) {
	noop := func(context.Context) {}
	if !cfg.Enabled || cfg.Endpoint == "" {
		return &Provider{}, noop, nil
	}

	target, err := parseEndpoint(cfg)
	if err != nil {
		return nil, noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		),
		resource.WithOS(),
		resource.WithHost(),
	)
	if err != nil {
		return nil, noop, fmt.Errorf("create resource: %w", err)
	}

	p := &Provider{}
	if cfg.Traces {
		if p.TracerProvider, err = newTracerProvider(ctx, target, cfg.TraceSampleRate, res); err != nil {
			return nil, noop, err
		}
		otel.SetTracerProvider(p.TracerProvider)
	}
	if cfg.Metrics {
		if p.MeterProvider, err = newMeterProvider(ctx, target, res); err != nil {
			p.shutdown(ctx)
			return nil, noop, err
		}
		otel.SetMeterProvider(p.MeterProvider)
	}

	return p, p.shutdown, nil
}

func (p *Provider) shutdown(ctx context.Context) {
	if p.MeterProvider != nil {
		_ = p.MeterProvider.Shutdown(ctx)
	}
	if p.TracerProvider != nil {
		_ = p.TracerProvider.Shutdown(ctx)
	}
}

func parseEndpoint(cfg Config) (*collector, error) {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse telemetry endpoint: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse telemetry endpoint: missing host in %q", cfg.Endpoint)
	}

	c := &collector{
		host:     u.Host,
		basePath: strings.TrimSuffix(u.Path, "/"),
		insecure: u.Scheme == "http",
		headers:  map[string]string{},
	}
	if cfg.AuthToken != "" {
		c.headers["Authorization"] = "Basic " + cfg.AuthToken
	}
	return c, nil
}

func newTracerProvider(ctx context.Context, c *collector, rate float64, res *resource.Resource) (*trace.TracerProvider, error) {
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(c.host),
		otlptracehttp.WithHeaders(c.headers),
	}
	if path := c.signalPath("traces"); path != "" {
		opts = append(opts, otlptracehttp.WithURLPath(path))
	}
	if c.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exp, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	return trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
		trace.WithSampler(sampler(rate)),
	), nil
}

// sampler turns trace_sample_rate into a sampler. Rates outside (0,1) pick
// the never or always sampler.
func sampler(rate float64) trace.Sampler {
	switch {
	case rate <= 0:
		return trace.NeverSample()
	case rate < 1.0:
		return trace.TraceIDRatioBased(rate)
	default:
		return trace.AlwaysSample()
	}
}

func newMeterProvider(ctx context.Context, c *collector, res *resource.Resource) (*metric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(c.host),
		otlpmetrichttp.WithHeaders(c.headers),
	}
	if path := c.signalPath("metrics"); path != "" {
		opts = append(opts, otlpmetrichttp.WithURLPath(path))
	}
	if c.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exp, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}
	return metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exp)),
		metric.WithResource(res),
	), nil
}
