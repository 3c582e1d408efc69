package order

import (
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"
)

// Admission rules applied when an order is advanced.
const (
	// OfferedProduct is the only product the workshop makes.
	OfferedProduct = "womanPurse"

	// UnitPrice is the only accepted price per product.
	UnitPrice = 1000

	// MaxUnitsPerDay bounds quantity / daysToDelivery.
	MaxUnitsPerDay = 100

	// MinCollectedQuantity is the smallest order that leaves material collection.
	MinCollectedQuantity = 200

	// MinDeliveryLeadDays is the shortest delivery window accepted once
	// materials are collected.
	MinDeliveryLeadDays = 14
)

// Guard failure reasons.
const (
	ReasonUnknownProduct     = "We do not have such product in our offer"
	ReasonWrongPrice         = "Price per one product should be 1000"
	ReasonThroughputTooHigh  = "Quantity/days to delivery should be less than 100"
	ReasonOrderTooSmall      = "Order is too small"
	ReasonDeliveryTooSoon    = "Delivery date too soon"
	reasonNoValidTransitions = "No valid transition from status %s"
)

// Revise applies an update to the order and advances it one stage.
//
// The stored status is the starting point; every other attribute comes from
// details. The guards of the current stage run against the revised
// attributes, with daysToDelivery counted from today to the revised delivery
// date:
//
//	ORDERED              product, price, throughput           -> COLLECTING_MATERIALS
//	COLLECTING_MATERIALS quantity, throughput                 -> MATERIALS_COLLECTED,
//	                                                             or unchanged while materials are missing
//	MATERIALS_COLLECTED  lead time                            -> MATERIALS_DELIVERED
//	MATERIALS_DELIVERED  product, throughput                  -> PRODUCED
//
// The first failing guard is returned as an *errs.InvalidOrderError and the
// receiver is left untouched. PRODUCED and unknown statuses always fail.
//
// Because today comes from the caller's clock, the same stored order can pass
// on one day and fail on another.
func (o *Order) Revise(details Details, today kernel.Date) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	revised, err := NewOrder(o.id, o.StatusLabel(), details)
	if err != nil {
		return nil, err
	}

	next, err := revised.nextStatus(today)
	if err != nil {
		return nil, err
	}

	revised.setStatus(next)
	return revised, nil
}

// DaysToDelivery is the signed number of calendar days from today to the
// delivery date.
func (o *Order) DaysToDelivery(today kernel.Date) int {
	return o.details.DeliveryDate.DaysSince(today)
}

// MaterialsComplete reports whether leather and metal were collected for
// every unit.
func (o *Order) MaterialsComplete() bool {
	return o.details.LeatherCount == o.details.Quantity && o.details.MetalCount == o.details.Quantity
}

// IsOverdue reports whether the delivery date has passed without the order
// being produced.
func (o *Order) IsOverdue(today kernel.Date) bool {
	return o.status != Produced && o.details.DeliveryDate.Before(today)
}

func (o *Order) nextStatus(today kernel.Date) (Status, error) {
	days := o.DaysToDelivery(today)

	//nolint:exhaustive // Produced and Unknown fall through to the error
	switch o.status {
	case Ordered:
		if err := firstViolation(
			o.checkProduct,
			o.checkPrice,
			func() error { return o.checkThroughput(days) },
		); err != nil {
			return 0, err
		}
		return o.status.Next()

	case CollectingMaterials:
		if err := firstViolation(
			o.checkQuantity,
			func() error { return o.checkThroughput(days) },
		); err != nil {
			return 0, err
		}
		if !o.MaterialsComplete() {
			return o.status, nil
		}
		return o.status.Next()

	case MaterialsCollected:
		if days < MinDeliveryLeadDays {
			return 0, errs.NewInvalidOrderError(ReasonDeliveryTooSoon)
		}
		return o.status.Next()

	case MaterialsDelivered:
		if err := firstViolation(
			o.checkProduct,
			func() error { return o.checkThroughput(days) },
		); err != nil {
			return 0, err
		}
		return o.status.Next()

	default:
		return 0, errs.NewInvalidOrderErrorf(reasonNoValidTransitions, o.StatusLabel())
	}
}

func (o *Order) checkProduct() error {
	if o.details.ProductName != OfferedProduct {
		return errs.NewInvalidOrderError(ReasonUnknownProduct)
	}
	return nil
}

func (o *Order) checkPrice() error {
	if o.details.Price != UnitPrice {
		return errs.NewInvalidOrderError(ReasonWrongPrice)
	}
	return nil
}

func (o *Order) checkQuantity() error {
	if o.details.Quantity < MinCollectedQuantity {
		return errs.NewInvalidOrderError(ReasonOrderTooSmall)
	}
	return nil
}

// checkThroughput uses integer division. A delivery date today or in the past
// can never be met, so it fails the check as well.
func (o *Order) checkThroughput(days int) error {
	if days <= 0 || o.details.Quantity/days > MaxUnitsPerDay {
		return errs.NewInvalidOrderError(ReasonThroughputTooHigh)
	}
	return nil
}

func firstViolation(checks ...func() error) error {
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}
