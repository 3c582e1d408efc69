package commands_test

import (
	"context"

	"assettransfer/internal/adapters/out/kvstore"
	"assettransfer/internal/adapters/out/memory"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRepository[E any] struct{ mock.Mock }

func (m *MockRepository[E]) Add(ctx context.Context, e E) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRepository[E]) Get(ctx context.Context, id string) (E, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(E)
	return e, args.Error(1)
}

func (m *MockRepository[E]) Update(ctx context.Context, e E) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockRepository[E]) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository[E]) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository[E]) Transfer(ctx context.Context, id, newHolder string) (string, error) {
	args := m.Called(ctx, id, newHolder)
	return args.String(0), args.Error(1)
}

func (m *MockRepository[E]) GetAll(ctx context.Context) ([]E, error) {
	args := m.Called(ctx)
	all, _ := args.Get(0).([]E)
	return all, args.Error(1)
}

// MockUoW satisfies every per-kind unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) AssetRepository() ports.AssetRepository {
	return m.Called().Get(0).(ports.AssetRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DistributionRepository() ports.DistributionRepository {
	return m.Called().Get(0).(ports.DistributionRepository)
}

func (m *MockUoW) SaleRepository() ports.SaleRepository {
	return m.Called().Get(0).(ports.SaleRepository)
}

func (m *MockUoW) Ledger(kind kernel.Kind) (ports.EntityLedger, error) {
	args := m.Called(kind)
	ledger, _ := args.Get(0).(ports.EntityLedger)
	return ledger, args.Error(1)
}

type (
	assetFactory        func() commands.AssetUoW
	orderFactory        func() commands.OrderUoW
	distributionFactory func() commands.DistributionUoW
	saleFactory         func() commands.SaleUoW
	ledgerFactory       func() commands.LedgerUoW
)

func (f assetFactory) Create() commands.AssetUoW               { return f() }
func (f orderFactory) Create() commands.OrderUoW               { return f() }
func (f distributionFactory) Create() commands.DistributionUoW { return f() }
func (f saleFactory) Create() commands.SaleUoW                 { return f() }
func (f ledgerFactory) Create() commands.LedgerUoW             { return f() }

// memoryLedger wires handlers to a real unit of work over an in-memory store.
type memoryLedger struct {
	store   *memory.Store
	factory *kvstore.UnitOfWorkFactory
}

func newMemoryLedger() memoryLedger {
	store := memory.NewStore()
	return memoryLedger{store: store, factory: kvstore.NewUnitOfWorkFactory(store)}
}

func (l memoryLedger) assets() assetFactory {
	return func() commands.AssetUoW { return l.factory.Create() }
}

func (l memoryLedger) orders() orderFactory {
	return func() commands.OrderUoW { return l.factory.Create() }
}

func (l memoryLedger) distributions() distributionFactory {
	return func() commands.DistributionUoW { return l.factory.Create() }
}

func (l memoryLedger) sales() saleFactory {
	return func() commands.SaleUoW { return l.factory.Create() }
}

func (l memoryLedger) ledger() ledgerFactory {
	return func() commands.LedgerUoW { return l.factory.Create() }
}

func (l memoryLedger) provider() ports.RepositoryProvider {
	return l.factory.Create()
}
