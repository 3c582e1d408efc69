// Package usecases bundles the command and query handlers that the inbound
// adapters drive.
package usecases

import (
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/application/usecases/queries"
	"assettransfer/internal/core/domain/model/asset"
	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/core/domain/model/sale"
	"assettransfer/internal/core/ports"
)

// Handlers holds one handler per exposed operation.
type Handlers struct {
	CreateAsset commands.CreateAssetCommandHandler
	UpdateAsset commands.UpdateAssetCommandHandler

	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler

	CreateDistribution  commands.CreateDistributionCommandHandler
	UpdateDistribution  commands.UpdateDistributionCommandHandler
	RerouteDistribution commands.RerouteDistributionCommandHandler

	CreateSale commands.CreateSaleCommandHandler
	UpdateSale commands.UpdateSaleCommandHandler

	DeleteRecord   commands.DeleteRecordCommandHandler
	TransferRecord commands.TransferRecordCommandHandler

	GetAsset        queries.GetRecordQueryHandler[*asset.Asset]
	GetOrder        queries.GetRecordQueryHandler[*order.Order]
	GetDistribution queries.GetRecordQueryHandler[*distribution.Distribution]
	GetSale         queries.GetRecordQueryHandler[*sale.Sale]

	GetAllAssets        queries.GetAllRecordsQueryHandler[*asset.Asset]
	GetAllOrders        queries.GetAllRecordsQueryHandler[*order.Order]
	GetAllDistributions queries.GetAllRecordsQueryHandler[*distribution.Distribution]
	GetAllSales         queries.GetAllRecordsQueryHandler[*sale.Sale]

	RecordExists     queries.RecordExistsQueryHandler
	GetOverdueOrders queries.GetOverdueOrdersQueryHandler
}

// NewHandlers wires commands to units of work from uowFactory and queries
// to the repositories of readers.
func NewHandlers(uowFactory ports.UnitOfWorkFactory, readers ports.RepositoryProvider, clock kernel.Clock) Handlers {
	assets := FuncAssetUoWFactory(func() commands.AssetUoW { return uowFactory.Create() })
	orders := FuncOrderUoWFactory(func() commands.OrderUoW { return uowFactory.Create() })
	distributions := FuncDistributionUoWFactory(func() commands.DistributionUoW { return uowFactory.Create() })
	sales := FuncSaleUoWFactory(func() commands.SaleUoW { return uowFactory.Create() })
	ledger := FuncLedgerUoWFactory(func() commands.LedgerUoW { return uowFactory.Create() })

	return Handlers{
		CreateAsset: commands.NewCreateAssetCommandHandler(assets),
		UpdateAsset: commands.NewUpdateAssetCommandHandler(assets),

		CreateOrder: commands.NewCreateOrderCommandHandler(orders),
		UpdateOrder: commands.NewUpdateOrderCommandHandler(orders, clock),

		CreateDistribution:  commands.NewCreateDistributionCommandHandler(distributions),
		UpdateDistribution:  commands.NewUpdateDistributionCommandHandler(distributions),
		RerouteDistribution: commands.NewRerouteDistributionCommandHandler(distributions),

		CreateSale: commands.NewCreateSaleCommandHandler(sales),
		UpdateSale: commands.NewUpdateSaleCommandHandler(sales),

		DeleteRecord:   commands.NewDeleteRecordCommandHandler(ledger),
		TransferRecord: commands.NewTransferRecordCommandHandler(ledger),

		GetAsset:        queries.NewGetRecordQueryHandler(readers.AssetRepository()),
		GetOrder:        queries.NewGetRecordQueryHandler(readers.OrderRepository()),
		GetDistribution: queries.NewGetRecordQueryHandler(readers.DistributionRepository()),
		GetSale:         queries.NewGetRecordQueryHandler(readers.SaleRepository()),

		GetAllAssets:        queries.NewGetAllRecordsQueryHandler(readers.AssetRepository()),
		GetAllOrders:        queries.NewGetAllRecordsQueryHandler(readers.OrderRepository()),
		GetAllDistributions: queries.NewGetAllRecordsQueryHandler(readers.DistributionRepository()),
		GetAllSales:         queries.NewGetAllRecordsQueryHandler(readers.SaleRepository()),

		RecordExists:     queries.NewRecordExistsQueryHandler(readers),
		GetOverdueOrders: queries.NewGetOverdueOrdersQueryHandler(readers.OrderRepository(), clock),
	}
}

type FuncAssetUoWFactory func() commands.AssetUoW

func (f FuncAssetUoWFactory) Create() commands.AssetUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDistributionUoWFactory func() commands.DistributionUoW

func (f FuncDistributionUoWFactory) Create() commands.DistributionUoW {
	return f()
}

type FuncSaleUoWFactory func() commands.SaleUoW

func (f FuncSaleUoWFactory) Create() commands.SaleUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}
