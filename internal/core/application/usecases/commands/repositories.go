// Package commands contains the submitted operations: the ones that modify the
// world state. Every handler follows the same pattern: validate the command,
// begin a unit of work, run existence checks and domain rules through the
// repositories, then commit. Any failure rolls the unit of work back, so a
// rejected command writes nothing.
package commands

import (
	"context"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/ports"
)

// Unit of Work interfaces give command handlers exactly the repositories
// they need inside one invocation.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	AssetRepoFactory interface {
		AssetRepository() ports.AssetRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DistributionRepoFactory interface {
		DistributionRepository() ports.DistributionRepository
	}

	SaleRepoFactory interface {
		SaleRepository() ports.SaleRepository
	}

	// LedgerFactory resolves the kind-agnostic operations for a record kind.
	LedgerFactory interface {
		Ledger(kind kernel.Kind) (ports.EntityLedger, error)
	}

	AssetUoW interface {
		TxManager
		AssetRepoFactory
	}

	AssetUoWFactory interface {
		Create() AssetUoW
	}

	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	DistributionUoW interface {
		TxManager
		DistributionRepoFactory
	}

	DistributionUoWFactory interface {
		Create() DistributionUoW
	}

	SaleUoW interface {
		TxManager
		SaleRepoFactory
	}

	SaleUoWFactory interface {
		Create() SaleUoW
	}

	// LedgerUoW serves commands that work on any kind: delete and transfer.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ledger, err := uow.Ledger(kernel.KindAsset)
	//   previous, err := ledger.Transfer(ctx, "a1", "bob")
	//
	//   err = uow.Commit(ctx)
	LedgerUoW interface {
		TxManager
		LedgerFactory
	}

	LedgerUoWFactory interface {
		Create() LedgerUoW
	}
)
