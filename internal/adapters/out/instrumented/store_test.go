package instrumented_test

import (
	"context"
	"errors"
	"testing"

	"assettransfer/internal/adapters/out/instrumented"
	"assettransfer/internal/adapters/out/memory"
	"assettransfer/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type failingStore struct {
	*memory.Store
}

func (failingStore) Apply(context.Context, []ports.Mutation) error {
	return errors.New("disk full")
}

func TestStore_RecordsMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	metrics := instrumented.NewMetrics(reg)
	store := instrumented.New(memory.NewStore(), instrumented.WithMetrics(metrics))

	require.NoError(t, store.Put(ctx, "asset:a1", []byte("x")))
	_, err := store.Get(ctx, "asset:a1")
	require.NoError(t, err)
	_, err = store.ScanRange(ctx, "asset:", "asset;")
	require.NoError(t, err)
	require.NoError(t, store.Apply(ctx, []ports.Mutation{{Op: ports.OpDelete, Key: "asset:a1"}}))

	count, err := testutil.GatherAndCount(reg, "ledger_store_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	value, err := store.Get(ctx, "asset:a1")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStore_TracesErrors(t *testing.T) {
	ctx := context.Background()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reg := prometheus.NewRegistry()

	store := instrumented.New(
		failingStore{Store: memory.NewStore()},
		instrumented.WithTracer(provider.Tracer("test")),
		instrumented.WithMetrics(instrumented.NewMetrics(reg)),
	)

	err := store.Apply(ctx, []ports.Mutation{{Op: ports.OpPut, Key: "asset:a1", Value: []byte("x")}})

	require.EqualError(t, err, "disk full")
	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Store.Apply", spans[0].Name())
	assert.Equal(t, "disk full", spans[0].Status().Description)

	failures, err := testutil.GatherAndCount(reg, "ledger_store_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 1, failures)
}
