package commands

import (
	"errors"

	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var (
	ErrCreateDistributionCommandIsNotConstructed = errors.New(
		"CreateDistributionCommand must be created via NewCreateDistributionCommand constructor",
	)
	ErrUpdateDistributionCommandIsNotConstructed = errors.New(
		"UpdateDistributionCommand must be created via NewUpdateDistributionCommand constructor",
	)
)

// CreateDistributionCommand registers a shipment of a sold product.
type CreateDistributionCommand struct { //nolint:recvcheck //using for validation
	distributionID string
	details        distribution.Details

	guard guard.ConstructorGuard
}

func NewCreateDistributionCommand(distributionID string, details distribution.Details) (CreateDistributionCommand, error) {
	if distributionID == "" {
		return CreateDistributionCommand{}, errs.NewValueIsRequiredError("distributionId")
	}

	return CreateDistributionCommand{
		distributionID: distributionID,
		details:        details,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDistributionCommand) Validate() error {
	return c.guard.Validate(ErrCreateDistributionCommandIsNotConstructed)
}

func (c CreateDistributionCommand) DistributionID() string {
	return c.distributionID
}

func (c CreateDistributionCommand) Details() distribution.Details {
	return c.details
}

// UpdateDistributionCommand replaces every attribute of a distribution.
type UpdateDistributionCommand struct { //nolint:recvcheck //using for validation
	distributionID string
	details        distribution.Details

	guard guard.ConstructorGuard
}

func NewUpdateDistributionCommand(distributionID string, details distribution.Details) (UpdateDistributionCommand, error) {
	if distributionID == "" {
		return UpdateDistributionCommand{}, errs.NewValueIsRequiredError("distributionId")
	}

	return UpdateDistributionCommand{
		distributionID: distributionID,
		details:        details,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDistributionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDistributionCommandIsNotConstructed)
}

func (c UpdateDistributionCommand) DistributionID() string {
	return c.distributionID
}

func (c UpdateDistributionCommand) Details() distribution.Details {
	return c.details
}
