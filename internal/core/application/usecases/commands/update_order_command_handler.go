package commands

import (
	"context"

	"assettransfer/internal/core/domain/model/kernel"
)

// UpdateOrderCommandHandler runs the order lifecycle on every update.
//
// Example:
//
//	handler := NewUpdateOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	cmd, _ := NewUpdateOrderCommand("o1", details)
//
//	var invalid *errs.InvalidOrderError
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.As(err, &invalid):
//	    log.Printf("order rejected: %s", invalid.Reason)
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("no such order")
//	case err != nil:
//	    log.Printf("update failed: %v", err)
//	}
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewUpdateOrderCommandHandler uses clock to date the delivery guards.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle reads the stored order, applies the revision and writes the result.
// A failed guard returns errs.InvalidOrderError and nothing is written.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	repo := uow.OrderRepository()
	stored, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	revised, err := stored.Revise(cmd.Details(), kernel.Today(h.clock))
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, revised); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
