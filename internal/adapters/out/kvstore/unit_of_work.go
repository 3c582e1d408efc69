// Package kvstore provides the Unit of Work over a key-value world state.
//
// A unit of work buffers every write of one invocation in memory. Reads made
// through its repositories see the buffered writes. Commit hands the buffer
// to the backend's Apply as one batch; Rollback drops it. Nothing reaches
// the store before Commit, so a failed guard or a failed existence check
// leaves no partial write behind.
//
// Usage:
//
//	factory := kvstore.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.AssetRepository().Add(ctx, a); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin read and write the store directly.
package kvstore

import (
	"context"
	"errors"

	"assettransfer/internal/adapters/out/kvrepo"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	store ports.Store
}

func NewUnitOfWorkFactory(store ports.Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

type UnitOfWork struct {
	store ports.Store
	tx    *overlay
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = newOverlay(uow.store)
	return nil
}

func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	mutations := uow.tx.mutations()
	uow.tx = nil
	if len(mutations) == 0 {
		return nil
	}
	return uow.store.Apply(ctx, mutations)
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	uow.tx = nil
	return nil
}

func (uow *UnitOfWork) AssetRepository() ports.AssetRepository {
	return uow.provider().AssetRepository()
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.provider().OrderRepository()
}

func (uow *UnitOfWork) DistributionRepository() ports.DistributionRepository {
	return uow.provider().DistributionRepository()
}

func (uow *UnitOfWork) SaleRepository() ports.SaleRepository {
	return uow.provider().SaleRepository()
}

func (uow *UnitOfWork) Ledger(kind kernel.Kind) (ports.EntityLedger, error) {
	return uow.provider().Ledger(kind)
}

// Pending reports how many keys the active transaction has touched.
func (uow *UnitOfWork) Pending() int {
	if uow.tx == nil {
		return 0
	}
	return len(uow.tx.order)
}

func (uow *UnitOfWork) provider() *kvrepo.Provider {
	var view ports.KeyValueStore = uow.store
	if uow.tx != nil {
		view = uow.tx
	}
	return kvrepo.NewProvider(view)
}
