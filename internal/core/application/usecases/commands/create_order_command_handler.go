package commands

import (
	"context"

	"assettransfer/internal/core/domain/model/order"
)

// CreateOrderCommandHandler stores a new order with the caller's status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ObjectAlreadyExistsError when the ID is taken.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.StatusLabel(), cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
