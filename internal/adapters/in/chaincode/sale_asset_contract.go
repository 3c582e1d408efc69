package chaincode

import (
	"context"

	"assettransfer/internal/adapters/out/codec"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/sale"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

type SaleAssetContract struct {
	contractapi.Contract
	ledger *ledger
}

func (c *SaleAssetContract) CreateSaleAsset(
	ctx contractapi.TransactionContextInterface,
	saleID, owner, product string,
	quantity int,
	contractor string,
) (*codec.SaleRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCreateSaleCommand(saleID, saleDetails(owner, product, quantity, contractor))
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.CreateSale.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetSale, saleID, codec.SaleFromDomain)
}

func (c *SaleAssetContract) ReadSaleAsset(ctx contractapi.TransactionContextInterface, saleID string) (*codec.SaleRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}
	return readRecord(h.GetSale, saleID, codec.SaleFromDomain)
}

func (c *SaleAssetContract) UpdateSaleAsset(
	ctx contractapi.TransactionContextInterface,
	saleID, owner, product string,
	quantity int,
	contractor string,
) (*codec.SaleRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewUpdateSaleCommand(saleID, saleDetails(owner, product, quantity, contractor))
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.UpdateSale.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetSale, saleID, codec.SaleFromDomain)
}

func (c *SaleAssetContract) DeleteSaleAsset(ctx contractapi.TransactionContextInterface, saleID string) error {
	return c.ledger.delete(ctx, kernel.KindSale, saleID)
}

func (c *SaleAssetContract) SaleAssetExists(ctx contractapi.TransactionContextInterface, saleID string) (bool, error) {
	return c.ledger.exists(ctx, kernel.KindSale, saleID)
}

func (c *SaleAssetContract) TransferSaleAsset(ctx contractapi.TransactionContextInterface, saleID, newOwner string) (string, error) {
	return c.ledger.transfer(ctx, kernel.KindSale, saleID, newOwner)
}

func (c *SaleAssetContract) GetAllSaleAssets(ctx contractapi.TransactionContextInterface) ([]*codec.SaleRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}
	return listRecords(h.GetAllSales, codec.SaleFromDomain)
}

func saleDetails(owner, product string, quantity int, contractor string) sale.Details {
	return sale.Details{
		Owner:      owner,
		Product:    product,
		Quantity:   quantity,
		Contractor: contractor,
	}
}
