package commands

import (
	"context"
)

// DeleteRecordCommandHandler deletes a record. Deleting an absent record
// fails with errs.ObjectNotFoundError, so a second delete of the same key
// fails.
type DeleteRecordCommandHandler struct {
	uowFactory LedgerUoWFactory
}

func NewDeleteRecordCommandHandler(uowFactory LedgerUoWFactory) DeleteRecordCommandHandler {
	return DeleteRecordCommandHandler{uowFactory: uowFactory}
}

func (h DeleteRecordCommandHandler) Handle(ctx context.Context, cmd DeleteRecordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledger, err := uow.Ledger(cmd.Kind())
	if err != nil {
		return err
	}

	if err = ledger.Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
