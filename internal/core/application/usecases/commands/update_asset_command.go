package commands

import (
	"errors"

	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrUpdateAssetCommandIsNotConstructed = errors.New(
	"UpdateAssetCommand must be created via NewUpdateAssetCommand constructor",
)

// UpdateAssetCommand replaces every attribute of an existing asset.
type UpdateAssetCommand struct { //nolint:recvcheck //using for validation
	productID string
	owner     string
	price     int

	guard guard.ConstructorGuard
}

func NewUpdateAssetCommand(productID, owner string, price int) (UpdateAssetCommand, error) {
	if productID == "" {
		return UpdateAssetCommand{}, errs.NewValueIsRequiredError("productID")
	}

	return UpdateAssetCommand{
		productID: productID,
		owner:     owner,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAssetCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAssetCommandIsNotConstructed)
}

func (c UpdateAssetCommand) ProductID() string {
	return c.productID
}

func (c UpdateAssetCommand) Owner() string {
	return c.owner
}

func (c UpdateAssetCommand) Price() int {
	return c.price
}
