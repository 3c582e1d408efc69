package ports

import (
	"context"

	"assettransfer/internal/core/domain/model/asset"
	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/core/domain/model/sale"
)

// EntityLedger holds the operations that do not depend on a record's shape.
// Every method fails with errs.ObjectNotFoundError when the key is absent,
// except Exists which reports false.
type EntityLedger interface {
	// Delete removes the record permanently. Deleting twice fails the second time.
	Delete(ctx context.Context, id string) error

	// Exists is a pure probe.
	Exists(ctx context.Context, id string) (bool, error)

	// Transfer rewrites the record's holder (owner, or shipper for
	// distributions) and returns the previous holder.
	Transfer(ctx context.Context, id, newHolder string) (string, error)
}

// Repository is the existence-checked persistence contract shared by every
// record kind. Each Add, Update, Delete and Transfer performs exactly one
// store write; reads perform none.
type Repository[E any] interface {
	EntityLedger

	// Add stores a new record and fails with errs.ObjectAlreadyExistsError if
	// its key is taken.
	Add(ctx context.Context, entity E) error

	// Get returns the stored record or errs.ObjectNotFoundError. Stored bytes
	// of the wrong shape yield errs.DecodeError.
	Get(ctx context.Context, id string) (E, error)

	// Update overwrites the whole record and fails with
	// errs.ObjectNotFoundError if it does not exist.
	Update(ctx context.Context, entity E) error

	// GetAll returns every record of the kind in key order.
	GetAll(ctx context.Context) ([]E, error)
}

type (
	AssetRepository        = Repository[*asset.Asset]
	OrderRepository        = Repository[*order.Order]
	DistributionRepository = Repository[*distribution.Distribution]
	SaleRepository         = Repository[*sale.Sale]
)

// RepositoryProvider hands out repositories bound to one store view.
type RepositoryProvider interface {
	AssetRepository() AssetRepository
	OrderRepository() OrderRepository
	DistributionRepository() DistributionRepository
	SaleRepository() SaleRepository

	// Ledger returns the kind-agnostic operations for kind.
	Ledger(kind kernel.Kind) (EntityLedger, error)
}
