package commands

import (
	"errors"

	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrCreateAssetCommandIsNotConstructed = errors.New(
	"CreateAssetCommand must be created via NewCreateAssetCommand constructor",
)

// CreateAssetCommand registers a new product asset on the ledger.
//
// Example:
//
//	cmd, err := NewCreateAssetCommand("a1", "alice", 300)
//	if err != nil {
//	    return fmt.Errorf("invalid asset: %w", err)
//	}
//
//	handler := NewCreateAssetCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create asset: %w", err)
//	}
type CreateAssetCommand struct { //nolint:recvcheck //using for validation
	productID string
	owner     string
	price     int

	guard guard.ConstructorGuard
}

// NewCreateAssetCommand requires a product identifier. Owner and price are
// stored as given.
func NewCreateAssetCommand(productID, owner string, price int) (CreateAssetCommand, error) {
	cmd := CreateAssetCommand{
		owner: owner,
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return CreateAssetCommand{}, err
	}

	return cmd, nil
}

func (c CreateAssetCommand) Validate() error {
	return c.guard.Validate(ErrCreateAssetCommandIsNotConstructed)
}

func (c CreateAssetCommand) ProductID() string {
	return c.productID
}

func (c CreateAssetCommand) Owner() string {
	return c.owner
}

func (c CreateAssetCommand) Price() int {
	return c.price
}

func (c *CreateAssetCommand) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}

	c.productID = productID
	return nil
}
