package postgres_test

import (
	"context"
	"testing"
	"time"

	"assettransfer/internal/adapters/out/kvstore"
	postgres_adapter "assettransfer/internal/adapters/out/postgres"
	"assettransfer/internal/core/domain/model/asset"
	"assettransfer/internal/core/ports"
	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// StoreIntegrationTestSuite runs the world-state store and the unit of work
// against a real PostgreSQL database.
type StoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *postgres_adapter.Store
	factory   ports.UnitOfWorkFactory
}

func (suite *StoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.store = postgres_adapter.NewStore(db)
	suite.Require().NoError(suite.store.Migrate(ctx))
	suite.factory = kvstore.NewUnitOfWorkFactory(suite.store)
}

func (suite *StoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE world_state").Error)
}

func (suite *StoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreIntegrationTestSuite) TestGet_MissingKey_ReturnsNil() {
	value, err := suite.store.Get(context.Background(), "asset:nope")

	suite.Require().NoError(err)
	suite.Nil(value)
}

func (suite *StoreIntegrationTestSuite) TestPut_Overwrites() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Put(ctx, "asset:a1", []byte("one")))
	suite.Require().NoError(suite.store.Put(ctx, "asset:a1", []byte("two")))

	value, err := suite.store.Get(ctx, "asset:a1")
	suite.Require().NoError(err)
	suite.Equal("two", string(value))
}

func (suite *StoreIntegrationTestSuite) TestScanRange_ByteOrder() {
	ctx := context.Background()
	for _, key := range []string{"asset:b", "asset:B", "asset:a", "asset;", "order:o1"} {
		suite.Require().NoError(suite.store.Put(ctx, key, []byte(key)))
	}

	entries, err := suite.store.ScanRange(ctx, "asset:", "asset;")
	suite.Require().NoError(err)

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	suite.Equal([]string{"asset:B", "asset:a", "asset:b"}, keys)

	all, err := suite.store.ScanRange(ctx, "", "")
	suite.Require().NoError(err)
	suite.Len(all, 5)
}

func (suite *StoreIntegrationTestSuite) TestApply_IsAtomic() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Put(ctx, "asset:a1", []byte("keep")))

	err := suite.store.Apply(ctx, []ports.Mutation{
		{Op: ports.OpDelete, Key: "asset:a1"},
		{Op: ports.OpType(42), Key: "asset:a2"},
	})
	suite.Require().Error(err)

	value, err := suite.store.Get(ctx, "asset:a1")
	suite.Require().NoError(err)
	suite.Equal("keep", string(value))
}

func (suite *StoreIntegrationTestSuite) TestUnitOfWork_CreateTransferDelete() {
	ctx := context.Background()
	a, err := asset.NewAsset("a1", "alice", 500)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AssetRepository().Add(ctx, a))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	previous, err := uow.AssetRepository().Transfer(ctx, "a1", "bob")
	suite.Require().NoError(err)
	suite.Equal("alice", previous)
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().AssetRepository().Get(ctx, "a1")
	suite.Require().NoError(err)
	suite.Equal("bob", stored.Owner())

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AssetRepository().Delete(ctx, "a1"))
	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().AssetRepository().Get(ctx, "a1")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(StoreIntegrationTestSuite))
}
