// Package distribution holds the Distribution record: a shipment of sold
// product handled by a shipper.
//
// A distribution references a sale and a product by ID only. Nothing checks
// that they exist.
package distribution

import (
	"errors"

	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrDistributionIsNotConstructed = errors.New("Distribution must be created via NewDistribution constructor")

// Details are the attributes of a distribution besides its ID.
type Details struct {
	Owner        string
	SalesID      string
	ProductID    string
	Quantity     int
	Shipper      string
	Location     string
	ShippingCost int
}

// Distribution is an immutable ledger record keyed by its distribution ID.
type Distribution struct {
	distributionID string
	details        Details

	guard guard.ConstructorGuard
}

// NewDistribution validates and builds a Distribution. Only distributionID is
// mandatory.
func NewDistribution(distributionID string, details Details) (*Distribution, error) {
	if distributionID == "" {
		return nil, errs.NewValueIsRequiredError("distributionId")
	}

	return &Distribution{
		distributionID: distributionID,
		details:        details,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (d *Distribution) Validate() error {
	if d == nil {
		return ErrDistributionIsNotConstructed
	}
	return d.guard.Validate(ErrDistributionIsNotConstructed)
}

func (d *Distribution) IsEqual(other *Distribution) bool {
	return other != nil && d.distributionID == other.distributionID
}

func (d *Distribution) ID() string             { return d.distributionID }
func (d *Distribution) DistributionID() string { return d.distributionID }
func (d *Distribution) Owner() string          { return d.details.Owner }
func (d *Distribution) SalesID() string        { return d.details.SalesID }
func (d *Distribution) ProductID() string      { return d.details.ProductID }
func (d *Distribution) Quantity() int          { return d.details.Quantity }
func (d *Distribution) Shipper() string        { return d.details.Shipper }
func (d *Distribution) Location() string       { return d.details.Location }
func (d *Distribution) ShippingCost() int      { return d.details.ShippingCost }
func (d *Distribution) Details() Details       { return d.details }

// Holder is the value rewritten by a transfer. For distributions that is the
// shipper, not the owner.
func (d *Distribution) Holder() string {
	return d.details.Shipper
}

// TransferTo returns a copy of the distribution handed over to newShipper.
func (d *Distribution) TransferTo(newShipper string) (*Distribution, error) {
	if newShipper == "" {
		return nil, errs.NewValueIsRequiredError("newOwner")
	}
	details := d.details
	details.Shipper = newShipper
	return NewDistribution(d.distributionID, details)
}

// Reroute returns a copy with a new shipper and/or delivery location. An empty
// argument keeps the current value. It fails with ObjectNotModifiedError when
// the result would equal the current record.
func (d *Distribution) Reroute(shipper, location string) (*Distribution, error) {
	details := d.details
	if shipper != "" {
		details.Shipper = shipper
	}
	if location != "" {
		details.Location = location
	}

	if details == d.details {
		return nil, errs.NewObjectNotModifiedError("distribution", d.distributionID)
	}

	return NewDistribution(d.distributionID, details)
}
