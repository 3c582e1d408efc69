package commands

import (
	"context"
)

// TransferRecordCommandHandler rewrites the holder of a record and returns
// the previous one. Concurrent transfers are last-write-wins.
type TransferRecordCommandHandler struct {
	uowFactory LedgerUoWFactory
}

func NewTransferRecordCommandHandler(uowFactory LedgerUoWFactory) TransferRecordCommandHandler {
	return TransferRecordCommandHandler{uowFactory: uowFactory}
}

func (h TransferRecordCommandHandler) Handle(ctx context.Context, cmd TransferRecordCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledger, err := uow.Ledger(cmd.Kind())
	if err != nil {
		return "", err
	}

	previous, err := ledger.Transfer(ctx, cmd.ID(), cmd.NewHolder())
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return previous, nil
}
