// Package asset holds the Asset record: a product held by an owner at a price.
package asset

import (
	"errors"

	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrAssetIsNotConstructed = errors.New("Asset must be created via NewAsset constructor")

// Asset is an immutable ledger record keyed by its product ID. Price carries no
// sign constraint.
type Asset struct {
	productID string
	owner     string
	price     int

	guard guard.ConstructorGuard
}

// NewAsset validates and builds an Asset. Only productID is mandatory.
func NewAsset(productID, owner string, price int) (*Asset, error) {
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("productID")
	}

	return &Asset{
		productID: productID,
		owner:     owner,
		price:     price,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrAssetIsNotConstructed for assets not built by NewAsset.
func (a *Asset) Validate() error {
	if a == nil {
		return ErrAssetIsNotConstructed
	}
	return a.guard.Validate(ErrAssetIsNotConstructed)
}

// IsEqual compares assets by product ID.
func (a *Asset) IsEqual(other *Asset) bool {
	return other != nil && a.productID == other.productID
}

func (a *Asset) ID() string {
	return a.productID
}

func (a *Asset) ProductID() string {
	return a.productID
}

func (a *Asset) Owner() string {
	return a.owner
}

func (a *Asset) Price() int {
	return a.price
}

// Holder is the value rewritten by a transfer, the owner.
func (a *Asset) Holder() string {
	return a.owner
}

// TransferTo returns a copy of the asset owned by newOwner.
func (a *Asset) TransferTo(newOwner string) (*Asset, error) {
	if newOwner == "" {
		return nil, errs.NewValueIsRequiredError("newOwner")
	}
	return NewAsset(a.productID, newOwner, a.price)
}
