// Package observability bundles the logger, tracer and metrics handed to every module.
package observability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/fantakl/votes-admin"

// Observability is passed to module constructors.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Metrics  OperationMetrics
	Registry *prometheus.Registry
}

// Config selects log level and whether prometheus collectors are registered.
type Config struct {
	Environment    string
	LogLevel       string
	MetricsEnabled bool
}

// New builds a JSON slog logger, the global otel tracer and, when enabled,
// a prometheus registry with the operation collectors.
func New(cfg Config) (Observability, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	if cfg.Environment != "" {
		logger = logger.With(slog.String("env", cfg.Environment))
	}

	obs := Observability{
		Logger:  logger,
		Tracer:  otel.Tracer(instrumentationName),
		Metrics: NewNoop(),
	}

	if !cfg.MetricsEnabled {
		return obs, nil
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := NewPrometheusMetrics(reg, "votes_admin")
	if err != nil {
		return Observability{}, err
	}
	obs.Metrics = metrics
	obs.Registry = reg
	return obs, nil
}

// NewTest returns a discard logger, noop tracer and noop metrics.
func NewTest() Observability {
	return Observability{
		Logger:  slog.New(slog.DiscardHandler),
		Tracer:  noop.NewTracerProvider().Tracer("test"),
		Metrics: NewNoop(),
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
