// Package instrumented decorates a world-state backend with tracing, logging
// and Prometheus metrics.
package instrumented

import (
	"context"
	"io"
	"log/slog"
	"time"

	"assettransfer/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "assettransfer/internal/adapters/out/instrumented"

var _ ports.Store = (*Store)(nil)

// Metrics are the Prometheus collectors a Store reports to. One set is
// enough per registerer; share it between stores.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	batchSize  prometheus.Histogram
}

// NewMetrics registers the store collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_store_operations_total",
			Help: "World-state operations by type and outcome",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ledger_store_operation_duration_seconds",
			Help:    "Duration of world-state operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		batchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_store_batch_mutations",
			Help:    "Mutations per applied batch",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}

// Store wraps another ports.Store.
type Store struct {
	inner   ports.Store
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics *Metrics
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Store) { s.tracer = tr }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

func New(inner ports.Store, opts ...Option) *Store {
	s := &Store{inner: inner}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "Store.Get", trace.WithAttributes(attribute.String("ledger.key", key)))
	defer span.End()
	defer s.observe("get", time.Now())

	value, err := s.inner.Get(ctx, key)
	if err != nil {
		return nil, s.handleError(ctx, span, "get", err, slog.String("key", key))
	}
	s.count("get", "ok")
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	ctx, span := s.tracer.Start(ctx, "Store.Put", trace.WithAttributes(
		attribute.String("ledger.key", key),
		attribute.Int("ledger.value.bytes", len(value)),
	))
	defer span.End()
	defer s.observe("put", time.Now())

	if err := s.inner.Put(ctx, key, value); err != nil {
		return s.handleError(ctx, span, "put", err, slog.String("key", key))
	}
	s.count("put", "ok")
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	ctx, span := s.tracer.Start(ctx, "Store.Delete", trace.WithAttributes(attribute.String("ledger.key", key)))
	defer span.End()
	defer s.observe("delete", time.Now())

	if err := s.inner.Delete(ctx, key); err != nil {
		return s.handleError(ctx, span, "delete", err, slog.String("key", key))
	}
	s.count("delete", "ok")
	return nil
}

func (s *Store) ScanRange(ctx context.Context, start, end string) ([]ports.KeyValue, error) {
	ctx, span := s.tracer.Start(ctx, "Store.ScanRange", trace.WithAttributes(
		attribute.String("ledger.range.start", start),
		attribute.String("ledger.range.end", end),
	))
	defer span.End()
	defer s.observe("scan", time.Now())

	entries, err := s.inner.ScanRange(ctx, start, end)
	if err != nil {
		return nil, s.handleError(ctx, span, "scan", err, slog.String("start", start), slog.String("end", end))
	}
	span.SetAttributes(attribute.Int("ledger.range.entries", len(entries)))
	s.count("scan", "ok")
	return entries, nil
}

func (s *Store) Apply(ctx context.Context, mutations []ports.Mutation) error {
	ctx, span := s.tracer.Start(ctx, "Store.Apply", trace.WithAttributes(attribute.Int("ledger.batch.size", len(mutations))))
	defer span.End()
	defer s.observe("apply", time.Now())

	if err := s.inner.Apply(ctx, mutations); err != nil {
		return s.handleError(ctx, span, "apply", err, slog.Int("mutations", len(mutations)))
	}
	if s.metrics != nil {
		s.metrics.batchSize.Observe(float64(len(mutations)))
	}
	s.count("apply", "ok")
	s.logger.LogAttrs(ctx, slog.LevelDebug, "batch applied", slog.Int("mutations", len(mutations)))
	return nil
}

func (s *Store) handleError(ctx context.Context, span trace.Span, operation string, err error, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.count(operation, "error")

	attrs = append(attrs, slog.String("operation", operation), slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, "world state operation failed", attrs...)
	return err
}

func (s *Store) count(operation, outcome string) {
	if s.metrics != nil {
		s.metrics.operations.WithLabelValues(operation, outcome).Inc()
	}
}

func (s *Store) observe(operation string, started time.Time) {
	if s.metrics != nil {
		s.metrics.duration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
	}
}
