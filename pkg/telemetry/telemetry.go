// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	tracer trace.Tracer = noop.NewTracerProvider().Tracer(shared.AppID)

	countersMu sync.RWMutex
	generated  metric.Int64Counter
)

// Init configures OpenTelemetry; call this early in main(). Spans go to a
// JSONL file in the state directory only when telemetry is switched on.
// The returned func flushes and closes the exporter.
func Init(service string) (func(context.Context) error, error) {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		tracer = tp.Tracer(service)
		mp := metricnoop.NewMeterProvider()
		otel.SetMeterProvider(mp)
		bindMeter(mp)
		return func(context.Context) error { return nil }, nil
	}

	path := xdg.StatePath("telemetry.jsonl")
	if err := xdg.EnsureDir(path); err != nil {
		return nil, cerr.Wrap(err, "failed to create telemetry directory")
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, shared.FilePermOwnerReadWrite)
	if err != nil {
		return nil, cerr.Wrap(err, "failed to open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		file.Close()
		return nil, cerr.Wrap(err, "failed to create file exporter")
	}

	metricExp, err := stdoutmetric.New(
		stdoutmetric.WithWriter(file),
		stdoutmetric.WithoutTimestamps(),
	)
	if err != nil {
		file.Close()
		return nil, cerr.Wrap(err, "failed to create metric exporter")
	}

	res := sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		attribute.String("service.name", service),
		attribute.String("service.version", shared.Version),
		attribute.String("user.anon_id", AnonTelemetryID()),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	tracer = tp.Tracer(service)
	bindMeter(mp)

	return func(ctx context.Context) error {
		defer file.Close()
		// Metric shutdown runs a final collect, so it goes first while the file is open.
		return cerr.CombineErrors(mp.Shutdown(ctx), tp.Shutdown(ctx))
	}, nil
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// bindMeter (re)creates the generation counter on mp.
func bindMeter(mp metric.MeterProvider) {
	c, err := mp.Meter(shared.AppID).Int64Counter(
		"pwgen.passwords.generated",
		metric.WithDescription("Passwords produced by the generator"),
		metric.WithUnit("{password}"),
	)
	if err != nil {
		c = nil
	}
	countersMu.Lock()
	generated = c
	countersMu.Unlock()
}

// RecordGeneration counts one generated password, labelled by strength.
func RecordGeneration(ctx context.Context, strength string, length int) {
	countersMu.RLock()
	c := generated
	countersMu.RUnlock()
	if c == nil {
		bindMeter(otel.GetMeterProvider())
		countersMu.RLock()
		c = generated
		countersMu.RUnlock()
	}
	if c == nil {
		return
	}
	c.Add(ctx, 1, metric.WithAttributes(
		attribute.String("strength", strength),
		attribute.Int("length", length),
	))
}

// IsEnabled reports whether the user opted in, either with
// PWGEN_TELEMETRY=1 or by creating <config dir>/telemetry_on.
func IsEnabled() bool {
	if v := os.Getenv(shared.EnvPrefix + "_TELEMETRY"); v != "" {
		return v == "1" || strings.EqualFold(v, "true")
	}
	_, err := os.Stat(xdg.ConfigPath("telemetry_on"))
	return err == nil
}

// AnonTelemetryID returns a stable anonymous ID, creating it on first use.
func AnonTelemetryID() string {
	path := xdg.ConfigPath("telemetry_id")

	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data))
	}

	id := "anon-" + uuid.New().String()
	_ = xdg.EnsureDir(path)
	_ = os.WriteFile(path, []byte(id), shared.FilePermOwnerReadWrite)

	return id
}
