package commands

import (
	"errors"

	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new production order. The status label is
// stored exactly as given; no lifecycle rule runs on creation.
//
// Example:
//
//	details := order.Details{
//	    ProductName:  "womanPurse",
//	    Quantity:     300,
//	    DeliveryDate: kernel.NewDate(2024, time.March, 11),
//	    Price:        1000,
//	    Orderer:      "boutique",
//	    Owner:        "boutique",
//	}
//	cmd, err := NewCreateOrderCommand("o1", "ORDERED", details)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     string
	statusLabel string
	details     order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand requires an order ID and a delivery date.
func NewCreateOrderCommand(orderID, statusLabel string, details order.Details) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		statusLabel: statusLabel,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// StatusLabel returns the status as the caller wrote it.
func (c CreateOrderCommand) StatusLabel() string {
	return c.statusLabel
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("ID")
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if err := details.DeliveryDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryDate", err)
	}

	c.details = details
	return nil
}
