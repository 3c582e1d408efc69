package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"assettransfer/internal/adapters/in/chaincode"
	httpadapter "assettransfer/internal/adapters/in/http"
	"assettransfer/internal/adapters/out/instrumented"
	"assettransfer/internal/adapters/out/kvrepo"
	"assettransfer/internal/adapters/out/kvstore"
	"assettransfer/internal/adapters/out/memory"
	"assettransfer/internal/adapters/out/postgres"
	"assettransfer/internal/adapters/out/redisstore"
	"assettransfer/internal/adapters/out/s3sink"
	"assettransfer/internal/adapters/out/sqlstore"
	"assettransfer/internal/core/application/usecases"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/ports"
	"assettransfer/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const serviceName = "assettransfer"

// CompositionRoot owns the process-wide dependencies of the gateway.
type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	clock    kernel.Clock
	registry *prometheus.Registry
	tracer   trace.Tracer
	metrics  *instrumented.Metrics
	store    ports.Store
	handlers usecases.Handlers
	closers  []func(context.Context) error
}

// NewCompositionRoot opens the configured backend and wires the use cases
// onto it. Call Close when done.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c, err := newInstrumentedRoot(config, logger)
	if err != nil {
		return nil, err
	}

	backend, err := c.openBackend(ctx)
	if err != nil {
		_ = c.Close(ctx)
		return nil, err
	}
	c.store = c.instrument(backend)
	c.handlers = usecases.NewHandlers(kvstore.NewUnitOfWorkFactory(c.store), kvrepo.NewProvider(c.store), c.clock)

	logger.InfoContext(ctx, "World state opened", "backend", config.StoreBackend)
	return c, nil
}

// NewChaincodeRoot wires metrics and tracing only. Chaincode transactions
// read and write the peer's world state through the stub, so no backend is
// opened.
func NewChaincodeRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	return newInstrumentedRoot(config, logger)
}

func newInstrumentedRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:   config,
		logger:   logger,
		clock:    kernel.SystemClock{},
		registry: prometheus.NewRegistry(),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.metrics = instrumented.NewMetrics(c.registry)

	if err := c.initTracing(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) Handlers() usecases.Handlers {
	return c.handlers
}

func (c *CompositionRoot) NewServer() *httpadapter.Server {
	return httpadapter.NewServer(c.handlers,
		httpadapter.WithGatherer(c.registry),
		httpadapter.WithLogger(c.logger),
	)
}

// NewJobManager schedules the overdue report and, when a bucket is
// configured, the world-state snapshot.
func (c *CompositionRoot) NewJobManager(ctx context.Context) (*jobs.JobManager, error) {
	overdue := jobs.NewOverdueOrdersJob(c.handlers.GetOverdueOrders, c.config.OverdueSchedule, c.logger)

	if c.config.SnapshotBucket == "" {
		return jobs.NewJobManager(overdue, nil), nil
	}

	sink, err := s3sink.New(ctx, s3sink.Config{
		Bucket:   c.config.SnapshotBucket,
		Region:   c.config.SnapshotRegion,
		Endpoint: c.config.SnapshotEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("create snapshot sink: %w", err)
	}
	snapshot := jobs.NewSnapshotJob(c.store, sink, c.clock, c.config.SnapshotSchedule, c.logger)
	return jobs.NewJobManager(overdue, snapshot), nil
}

// ChaincodeHandlers builds the per-transaction use cases of the chaincode,
// instrumented like the gateway's.
func (c *CompositionRoot) ChaincodeHandlers() chaincode.HandlersFactory {
	return func(store ports.Store, clock kernel.Clock) usecases.Handlers {
		return chaincode.NewLedgerHandlers(c.instrument(store), clock)
	}
}

// Close releases the backend and flushes pending spans.
func (c *CompositionRoot) Close(ctx context.Context) error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i](ctx))
	}
	c.closers = nil
	return err
}

func (c *CompositionRoot) instrument(store ports.Store) ports.Store {
	return instrumented.New(store,
		instrumented.WithLogger(c.logger.With("component", "world_state")),
		instrumented.WithTracer(c.tracer),
		instrumented.WithMetrics(c.metrics),
	)
}

func (c *CompositionRoot) initTracing() error {
	if !c.config.TracingEnabled {
		c.tracer = otel.Tracer(serviceName)
		return nil
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return fmt.Errorf("create trace exporter: %w", err)
	}
	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)

	c.tracer = provider.Tracer(serviceName)
	c.closers = append(c.closers, provider.Shutdown)
	return nil
}

func (c *CompositionRoot) openBackend(ctx context.Context) (ports.Store, error) {
	switch c.config.StoreBackend {
	case BackendMemory:
		return memory.NewStore(), nil

	case BackendPostgres:
		db, err := gorm.Open(gormpostgres.Open(c.config.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		c.closers = append(c.closers, func(context.Context) error { return sqlDB.Close() })

		store := postgres.NewStore(db)
		if err = store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate world state: %w", err)
		}
		return store, nil

	case BackendSQLite, BackendMySQL:
		dialect, dsn := sqlstore.SQLite, c.config.SQLitePath
		if c.config.StoreBackend == BackendMySQL {
			dialect, dsn = sqlstore.MySQL, c.config.MySQLDSN
		}
		store, err := sqlstore.Open(ctx, dialect, dsn)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, func(context.Context) error { return store.Close() })
		return store, nil

	case BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: c.config.RedisAddr})
		c.closers = append(c.closers, func(context.Context) error { return client.Close() })
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return redisstore.NewStore(client, serviceName), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", c.config.StoreBackend)
	}
}
