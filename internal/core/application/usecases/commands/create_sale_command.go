package commands

import (
	"errors"

	"assettransfer/internal/core/domain/model/sale"
	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var (
	ErrCreateSaleCommandIsNotConstructed = errors.New(
		"CreateSaleCommand must be created via NewCreateSaleCommand constructor",
	)
	ErrUpdateSaleCommandIsNotConstructed = errors.New(
		"UpdateSaleCommand must be created via NewUpdateSaleCommand constructor",
	)
)

// CreateSaleCommand records a sale of products to a contractor.
type CreateSaleCommand struct { //nolint:recvcheck //using for validation
	saleID  string
	details sale.Details

	guard guard.ConstructorGuard
}

func NewCreateSaleCommand(saleID string, details sale.Details) (CreateSaleCommand, error) {
	if saleID == "" {
		return CreateSaleCommand{}, errs.NewValueIsRequiredError("saleID")
	}

	return CreateSaleCommand{saleID: saleID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateSaleCommand) Validate() error {
	return c.guard.Validate(ErrCreateSaleCommandIsNotConstructed)
}

func (c CreateSaleCommand) SaleID() string {
	return c.saleID
}

func (c CreateSaleCommand) Details() sale.Details {
	return c.details
}

// UpdateSaleCommand replaces every attribute of a sale.
type UpdateSaleCommand struct { //nolint:recvcheck //using for validation
	saleID  string
	details sale.Details

	guard guard.ConstructorGuard
}

func NewUpdateSaleCommand(saleID string, details sale.Details) (UpdateSaleCommand, error) {
	if saleID == "" {
		return UpdateSaleCommand{}, errs.NewValueIsRequiredError("saleID")
	}

	return UpdateSaleCommand{saleID: saleID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateSaleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSaleCommandIsNotConstructed)
}

func (c UpdateSaleCommand) SaleID() string {
	return c.saleID
}

func (c UpdateSaleCommand) Details() sale.Details {
	return c.details
}
