package commands

import (
	"errors"

	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrRerouteDistributionCommandIsNotConstructed = errors.New(
	"RerouteDistributionCommand must be created via NewRerouteDistributionCommand constructor",
)

// RerouteDistributionCommand changes who carries a distribution and where it
// goes. An empty shipper or location keeps the stored value.
type RerouteDistributionCommand struct { //nolint:recvcheck //using for validation
	distributionID string
	shipper        string
	location       string

	guard guard.ConstructorGuard
}

func NewRerouteDistributionCommand(distributionID, shipper, location string) (RerouteDistributionCommand, error) {
	if distributionID == "" {
		return RerouteDistributionCommand{}, errs.NewValueIsRequiredError("distributionId")
	}
	if shipper == "" && location == "" {
		return RerouteDistributionCommand{}, errs.NewValueIsRequiredError("shipper or location")
	}

	return RerouteDistributionCommand{
		distributionID: distributionID,
		shipper:        shipper,
		location:       location,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RerouteDistributionCommand) Validate() error {
	return c.guard.Validate(ErrRerouteDistributionCommandIsNotConstructed)
}

func (c RerouteDistributionCommand) DistributionID() string {
	return c.distributionID
}

func (c RerouteDistributionCommand) Shipper() string {
	return c.shipper
}

func (c RerouteDistributionCommand) Location() string {
	return c.location
}
