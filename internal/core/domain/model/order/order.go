package order

import (
	"errors"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details are the caller-supplied attributes of an order. Updates always
// carry a full Details value; there are no partial updates.
type Details struct {
	ProductName  string
	Quantity     int
	DeliveryDate kernel.Date
	Price        int
	Orderer      string
	Assembler    string
	LeatherCount int
	MetalCount   int
	Owner        string
}

// Order is a production order moving through the fulfilment stages described
// on Status. Orders are immutable: Revise and TransferTo return new values.
type Order struct {
	// id is the ledger key of the order
	id string

	details Details

	// status is the parsed stage, Unknown for labels outside the enumeration
	status Status

	// statusLabel keeps the label exactly as it was supplied so that unknown
	// labels survive a round trip through the ledger
	statusLabel string

	guard guard.ConstructorGuard
}

// NewOrder creates an Order with the given status label.
//
// The label is not validated: creating an order stores whatever label the
// caller supplies, and labels outside the enumeration parse to Unknown.
//
// Parameters:
//   - id: ledger key of the order (required)
//   - statusLabel: wire label such as "ORDERED"
//   - details: the remaining attributes; DeliveryDate must be constructed
//
// Example:
//
//	due, _ := kernel.ParseDate("2024-07-01")
//	o, err := order.NewOrder("o1", order.Ordered.String(), order.Details{
//	    ProductName:  order.OfferedProduct,
//	    Quantity:     300,
//	    DeliveryDate: due,
//	    Price:        order.UnitPrice,
//	})
func NewOrder(id, statusLabel string, details Details) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	o.status = ParseStatus(statusLabel)
	o.statusLabel = statusLabel
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() string                { return o.id }
func (o *Order) ProductName() string       { return o.details.ProductName }
func (o *Order) Quantity() int             { return o.details.Quantity }
func (o *Order) DeliveryDate() kernel.Date { return o.details.DeliveryDate }
func (o *Order) Price() int                { return o.details.Price }
func (o *Order) Orderer() string           { return o.details.Orderer }
func (o *Order) Assembler() string         { return o.details.Assembler }
func (o *Order) LeatherCount() int         { return o.details.LeatherCount }
func (o *Order) MetalCount() int           { return o.details.MetalCount }
func (o *Order) Owner() string             { return o.details.Owner }
func (o *Order) Details() Details          { return o.details }

// Status returns the parsed lifecycle stage.
func (o *Order) Status() Status {
	return o.status
}

// StatusLabel returns the label written to the ledger.
func (o *Order) StatusLabel() string {
	return o.statusLabel
}

// Holder is the value rewritten by a transfer, the owner.
func (o *Order) Holder() string {
	return o.details.Owner
}

// TransferTo returns a copy of the order owned by newOwner. The status is
// kept as is; ownership changes do not run the lifecycle.
func (o *Order) TransferTo(newOwner string) (*Order, error) {
	if newOwner == "" {
		return nil, errs.NewValueIsRequiredError("newOwner")
	}
	details := o.details
	details.Owner = newOwner
	return NewOrder(o.id, o.statusLabel, details)
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("ID")
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.DeliveryDate.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryDate", err)
	}
	o.details = details
	return nil
}

func (o *Order) setStatus(status Status) {
	o.status = status
	o.statusLabel = status.String()
}
