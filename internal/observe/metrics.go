// Package observe provides application-wide observability primitives for
// SS9K: OpenTelemetry metrics, tracing helpers, and trace-aware structured
// logging.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped via a standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all SS9K metrics.
const meterName = "github.com/sqrew/ss9k"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use; the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// UtteranceDuration tracks the latency of one full interpretation
	// pass, transcript in to action list out.
	UtteranceDuration metric.Float64Histogram

	// ShellExecDuration tracks the latency of shell placeholder and custom
	// command executions.
	ShellExecDuration metric.Float64Histogram

	// Utterances counts interpretation passes.
	Utterances metric.Int64Counter

	// Commands counts resolved commands. Use with attribute:
	//   attribute.String("category", ...)
	Commands metric.Int64Counter

	// Fallbacks counts command segments that resolved nowhere and were
	// re-emitted as dictation.
	Fallbacks metric.Int64Counter

	// ShellErrors counts failed or timed-out shell substitutions.
	ShellErrors metric.Int64Counter

	// ConfigReloads counts accepted configuration reloads.
	ConfigReloads metric.Int64Counter

	// HeldKeys tracks the number of keys currently held by repeat tasks.
	HeldKeys metric.Int64UpDownCounter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) sized
// for text interpretation and short shell commands.
var latencyBuckets = []float64{
	0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.UtteranceDuration, err = m.Float64Histogram("ss9k.utterance.duration",
		metric.WithDescription("Latency of one interpretation pass."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ShellExecDuration, err = m.Float64Histogram("ss9k.shell.duration",
		metric.WithDescription("Latency of shell placeholder and custom command execution."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.Utterances, err = m.Int64Counter("ss9k.utterances",
		metric.WithDescription("Total interpretation passes."),
	); err != nil {
		return nil, err
	}
	if met.Commands, err = m.Int64Counter("ss9k.commands",
		metric.WithDescription("Total resolved commands by category."),
	); err != nil {
		return nil, err
	}
	if met.Fallbacks, err = m.Int64Counter("ss9k.fallbacks",
		metric.WithDescription("Total command segments re-emitted as dictation."),
	); err != nil {
		return nil, err
	}
	if met.ShellErrors, err = m.Int64Counter("ss9k.shell.errors",
		metric.WithDescription("Total failed or timed-out shell substitutions."),
	); err != nil {
		return nil, err
	}
	if met.ConfigReloads, err = m.Int64Counter("ss9k.config.reloads",
		metric.WithDescription("Total accepted configuration reloads."),
	); err != nil {
		return nil, err
	}

	if met.HeldKeys, err = m.Int64UpDownCounter("ss9k.held_keys",
		metric.WithDescription("Number of keys currently held by repeat tasks."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it
// on first call using [otel.GetMeterProvider]. Subsequent calls return the
// same pointer. Panics if instrument creation fails (should not happen
// with the global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordCommand records one resolved command with its category attribute.
func (m *Metrics) RecordCommand(ctx context.Context, category string) {
	m.Commands.Add(ctx, 1,
		metric.WithAttributes(attribute.String("category", category)),
	)
}
