package chaincode

import (
	"context"

	"assettransfer/internal/adapters/out/codec"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/domain/model/kernel"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// AssetContract manages products and their owners.
type AssetContract struct {
	contractapi.Contract
	ledger *ledger
}

// CreateAsset issues a new asset with the given details to the world state.
func (c *AssetContract) CreateAsset(ctx contractapi.TransactionContextInterface, productID, owner string, price int) (*codec.AssetRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCreateAssetCommand(productID, owner, price)
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.CreateAsset.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetAsset, productID, codec.AssetFromDomain)
}

// ReadAsset returns the asset stored with the given id.
func (c *AssetContract) ReadAsset(ctx contractapi.TransactionContextInterface, productID string) (*codec.AssetRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}
	return readRecord(h.GetAsset, productID, codec.AssetFromDomain)
}

// UpdateAsset replaces an existing asset.
func (c *AssetContract) UpdateAsset(ctx contractapi.TransactionContextInterface, productID, owner string, price int) (*codec.AssetRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewUpdateAssetCommand(productID, owner, price)
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.UpdateAsset.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetAsset, productID, codec.AssetFromDomain)
}

func (c *AssetContract) DeleteAsset(ctx contractapi.TransactionContextInterface, productID string) error {
	return c.ledger.delete(ctx, kernel.KindAsset, productID)
}

func (c *AssetContract) AssetExists(ctx contractapi.TransactionContextInterface, productID string) (bool, error) {
	return c.ledger.exists(ctx, kernel.KindAsset, productID)
}

// TransferAsset changes the owner and returns the previous one.
func (c *AssetContract) TransferAsset(ctx contractapi.TransactionContextInterface, productID, newOwner string) (string, error) {
	return c.ledger.transfer(ctx, kernel.KindAsset, productID, newOwner)
}

func (c *AssetContract) GetAllAssets(ctx contractapi.TransactionContextInterface) ([]*codec.AssetRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}
	return listRecords(h.GetAllAssets, codec.AssetFromDomain)
}
