package cmd_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"assettransfer/cmd"
	"assettransfer/internal/adapters/out/memory"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/application/usecases/queries"
	"assettransfer/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	config := cmd.Config{
		HTTPPort:         "8080",
		StoreBackend:     cmd.BackendMemory,
		LogLevel:         "info",
		OverdueSchedule:  "0 0 * * * *",
		SnapshotSchedule: "0 0 3 * * *",
	}

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(ctx) })

	t.Run("should serve the use cases over the configured backend", func(t *testing.T) {
		handlers := app.Handlers()
		create, err := commands.NewCreateAssetCommand("a1", "alice", 10)
		require.NoError(t, err)
		require.NoError(t, handlers.CreateAsset.Handle(ctx, create))

		all, err := handlers.GetAllAssets.Handle(ctx, queries.NewGetAllRecordsQuery())
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("should build the router", func(t *testing.T) {
		e, err := app.NewServer().Router(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, e.Routes())
	})

	t.Run("should schedule jobs without a snapshot bucket", func(t *testing.T) {
		manager, err := app.NewJobManager(ctx)
		require.NoError(t, err)
		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("should reject an unknown backend", func(t *testing.T) {
		bad := config
		bad.StoreBackend = "cassandra"
		_, err := cmd.NewCompositionRoot(ctx, bad, logger)
		require.ErrorContains(t, err, "unknown store backend")
	})
}

func TestChaincodeRoot(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should not connect to the configured backend", func(t *testing.T) {
		config := cmd.Config{
			HTTPPort:     "8080",
			StoreBackend: cmd.BackendRedis,
			RedisAddr:    "127.0.0.1:1",
			LogLevel:     "info",
		}

		app, err := cmd.NewChaincodeRoot(config, logger)
		require.NoError(t, err)
		t.Cleanup(func() { _ = app.Close(ctx) })

		handlers := app.ChaincodeHandlers()(memory.NewStore(), kernel.NewFixedClock(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
		create, err := commands.NewCreateAssetCommand("a1", "alice", 10)
		require.NoError(t, err)
		require.NoError(t, handlers.CreateAsset.Handle(ctx, create))

		query, err := queries.NewRecordExistsQuery(kernel.KindAsset, "a1")
		require.NoError(t, err)
		exists, err := handlers.RecordExists.Handle(ctx, query)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
