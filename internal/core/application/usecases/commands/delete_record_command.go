package commands

import (
	"errors"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrDeleteRecordCommandIsNotConstructed = errors.New(
	"DeleteRecordCommand must be created via NewDeleteRecordCommand constructor",
)

// DeleteRecordCommand permanently removes a record of any kind.
type DeleteRecordCommand struct { //nolint:recvcheck //using for validation
	kind kernel.Kind
	id   string

	guard guard.ConstructorGuard
}

func NewDeleteRecordCommand(kind kernel.Kind, id string) (DeleteRecordCommand, error) {
	var idErr error
	if id == "" {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if err := errors.Join(kind.Validate(), idErr); err != nil {
		return DeleteRecordCommand{}, err
	}

	return DeleteRecordCommand{kind: kind, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteRecordCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRecordCommandIsNotConstructed)
}

func (c DeleteRecordCommand) Kind() kernel.Kind {
	return c.kind
}

func (c DeleteRecordCommand) ID() string {
	return c.id
}
