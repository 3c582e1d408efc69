package commands

import (
	"errors"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrTransferRecordCommandIsNotConstructed = errors.New(
	"TransferRecordCommand must be created via NewTransferRecordCommand constructor",
)

// TransferRecordCommand hands a record to a new holder: the owner of an
// asset, order or sale, or the shipper of a distribution.
//
// Example:
//
//	cmd, _ := NewTransferRecordCommand(kernel.KindAsset, "a1", "bob")
//	previous, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("asset a1 moved from %s to bob\n", previous)
type TransferRecordCommand struct { //nolint:recvcheck //using for validation
	kind      kernel.Kind
	id        string
	newHolder string

	guard guard.ConstructorGuard
}

func NewTransferRecordCommand(kind kernel.Kind, id, newHolder string) (TransferRecordCommand, error) {
	var idErr, holderErr error
	if id == "" {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if newHolder == "" {
		holderErr = errs.NewValueIsRequiredError("newOwner")
	}
	if err := errors.Join(kind.Validate(), idErr, holderErr); err != nil {
		return TransferRecordCommand{}, err
	}

	return TransferRecordCommand{
		kind:      kind,
		id:        id,
		newHolder: newHolder,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c TransferRecordCommand) Validate() error {
	return c.guard.Validate(ErrTransferRecordCommandIsNotConstructed)
}

func (c TransferRecordCommand) Kind() kernel.Kind {
	return c.kind
}

func (c TransferRecordCommand) ID() string {
	return c.id
}

func (c TransferRecordCommand) NewHolder() string {
	return c.newHolder
}
