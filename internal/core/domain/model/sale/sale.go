// Package sale holds the SaleAsset record: a quantity of product sold to a
// contractor.
package sale

import (
	"errors"

	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrSaleIsNotConstructed = errors.New("Sale must be created via NewSale constructor")

// Details are the attributes of a sale besides its ID.
type Details struct {
	Owner      string
	Product    string
	Quantity   int
	Contractor string
}

// Sale is an immutable ledger record keyed by its sale ID.
type Sale struct {
	saleID  string
	details Details

	guard guard.ConstructorGuard
}

// NewSale validates and builds a Sale. Only saleID is mandatory.
func NewSale(saleID string, details Details) (*Sale, error) {
	if saleID == "" {
		return nil, errs.NewValueIsRequiredError("saleID")
	}

	return &Sale{
		saleID:  saleID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (s *Sale) Validate() error {
	if s == nil {
		return ErrSaleIsNotConstructed
	}
	return s.guard.Validate(ErrSaleIsNotConstructed)
}

func (s *Sale) IsEqual(other *Sale) bool {
	return other != nil && s.saleID == other.saleID
}

func (s *Sale) ID() string         { return s.saleID }
func (s *Sale) SaleID() string     { return s.saleID }
func (s *Sale) Owner() string      { return s.details.Owner }
func (s *Sale) Product() string    { return s.details.Product }
func (s *Sale) Quantity() int      { return s.details.Quantity }
func (s *Sale) Contractor() string { return s.details.Contractor }
func (s *Sale) Details() Details   { return s.details }

// Holder is the value rewritten by a transfer, the owner.
func (s *Sale) Holder() string {
	return s.details.Owner
}

// TransferTo returns a copy of the sale owned by newOwner.
func (s *Sale) TransferTo(newOwner string) (*Sale, error) {
	if newOwner == "" {
		return nil, errs.NewValueIsRequiredError("newOwner")
	}
	details := s.details
	details.Owner = newOwner
	return NewSale(s.saleID, details)
}
