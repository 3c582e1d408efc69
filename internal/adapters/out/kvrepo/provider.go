package kvrepo

import (
	"fmt"

	"assettransfer/internal/adapters/out/codec"
	"assettransfer/internal/core/domain/model/asset"
	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/core/domain/model/sale"
	"assettransfer/internal/core/ports"
	"assettransfer/internal/pkg/errs"
)

var (
	_ ports.AssetRepository        = (*Repository[*asset.Asset])(nil)
	_ ports.OrderRepository        = (*Repository[*order.Order])(nil)
	_ ports.DistributionRepository = (*Repository[*distribution.Distribution])(nil)
	_ ports.SaleRepository         = (*Repository[*sale.Sale])(nil)
	_ ports.RepositoryProvider     = (*Provider)(nil)
)

// Provider builds the repositories of every kind over one store view.
type Provider struct {
	store ports.KeyValueStore
}

// NewProvider creates a provider over store.
func NewProvider(store ports.KeyValueStore) *Provider {
	return &Provider{store: store}
}

func (p *Provider) AssetRepository() ports.AssetRepository {
	return NewRepository(p.store, codec.Assets())
}

func (p *Provider) OrderRepository() ports.OrderRepository {
	return NewRepository(p.store, codec.Orders())
}

func (p *Provider) DistributionRepository() ports.DistributionRepository {
	return NewRepository(p.store, codec.Distributions())
}

func (p *Provider) SaleRepository() ports.SaleRepository {
	return NewRepository(p.store, codec.Sales())
}

// Ledger returns the repository of kind as a ports.EntityLedger.
func (p *Provider) Ledger(kind kernel.Kind) (ports.EntityLedger, error) {
	//nolint:exhaustive // KindUnknown is rejected below
	switch kind {
	case kernel.KindAsset:
		return p.AssetRepository(), nil
	case kernel.KindOrder:
		return p.OrderRepository(), nil
	case kernel.KindDistribution:
		return p.DistributionRepository(), nil
	case kernel.KindSale:
		return p.SaleRepository(), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%s has no repository", kind))
	}
}
