package chaincode

import (
	"context"

	"assettransfer/internal/adapters/out/codec"
	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/core/domain/model/kernel"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// DistributionContract tracks shipments of sold products. Transfer on a
// distribution hands it to a new shipper.
type DistributionContract struct {
	contractapi.Contract
	ledger *ledger
}

func (c *DistributionContract) CreateDistribution(
	ctx contractapi.TransactionContextInterface,
	distributionID, owner, salesID, productID string,
	quantity int,
	shipper, location string,
	shippingCost int,
) (*codec.DistributionRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	details := distributionDetails(owner, salesID, productID, quantity, shipper, location, shippingCost)
	cmd, err := commands.NewCreateDistributionCommand(distributionID, details)
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.CreateDistribution.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetDistribution, distributionID, codec.DistributionFromDomain)
}

func (c *DistributionContract) ReadDistribution(ctx contractapi.TransactionContextInterface, distributionID string) (*codec.DistributionRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}
	return readRecord(h.GetDistribution, distributionID, codec.DistributionFromDomain)
}

func (c *DistributionContract) UpdateDistribution(
	ctx contractapi.TransactionContextInterface,
	distributionID, owner, salesID, productID string,
	quantity int,
	shipper, location string,
	shippingCost int,
) (*codec.DistributionRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	details := distributionDetails(owner, salesID, productID, quantity, shipper, location, shippingCost)
	cmd, err := commands.NewUpdateDistributionCommand(distributionID, details)
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.UpdateDistribution.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetDistribution, distributionID, codec.DistributionFromDomain)
}

// RerouteDistribution changes only the shipper and location. It fails when
// neither value changes.
func (c *DistributionContract) RerouteDistribution(
	ctx contractapi.TransactionContextInterface,
	distributionID, shipper, location string,
) (*codec.DistributionRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewRerouteDistributionCommand(distributionID, shipper, location)
	if err != nil {
		return nil, chaincodeError(err)
	}
	if err = h.RerouteDistribution.Handle(context.Background(), cmd); err != nil {
		return nil, chaincodeError(err)
	}

	return readRecord(h.GetDistribution, distributionID, codec.DistributionFromDomain)
}

func (c *DistributionContract) DeleteDistribution(ctx contractapi.TransactionContextInterface, distributionID string) error {
	return c.ledger.delete(ctx, kernel.KindDistribution, distributionID)
}

func (c *DistributionContract) DistributionExists(ctx contractapi.TransactionContextInterface, distributionID string) (bool, error) {
	return c.ledger.exists(ctx, kernel.KindDistribution, distributionID)
}

// TransferDistribution replaces the shipper and returns the previous one.
func (c *DistributionContract) TransferDistribution(ctx contractapi.TransactionContextInterface, distributionID, newShipper string) (string, error) {
	return c.ledger.transfer(ctx, kernel.KindDistribution, distributionID, newShipper)
}

func (c *DistributionContract) GetAllDistributions(ctx contractapi.TransactionContextInterface) ([]*codec.DistributionRecord, error) {
	h, err := c.ledger.open(ctx)
	if err != nil {
		return nil, err
	}
	return listRecords(h.GetAllDistributions, codec.DistributionFromDomain)
}

func distributionDetails(owner, salesID, productID string, quantity int, shipper, location string, shippingCost int) distribution.Details {
	return distribution.Details{
		Owner:        owner,
		SalesID:      salesID,
		ProductID:    productID,
		Quantity:     quantity,
		Shipper:      shipper,
		Location:     location,
		ShippingCost: shippingCost,
	}
}
