package commands

import (
	"errors"

	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand revises an existing order and advances it one stage.
// It carries no status: the next status is derived from the stored one.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID string
	details order.Details

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID string, details order.Details) (UpdateOrderCommand, error) {
	var idErr, dateErr error
	if orderID == "" {
		idErr = errs.NewValueIsRequiredError("ID")
	}
	if err := details.DeliveryDate.Validate(); err != nil {
		dateErr = errs.NewValueIsRequiredErrorWithCause("deliveryDate", err)
	}
	if err := errors.Join(idErr, dateErr); err != nil {
		return UpdateOrderCommand{}, err
	}

	return UpdateOrderCommand{
		orderID: orderID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderCommand) Details() order.Details {
	return c.details
}
