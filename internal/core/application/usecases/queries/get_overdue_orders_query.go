package queries

import (
	"errors"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds orders whose delivery date has passed while
// they are still not produced.
//
// Example:
//
//	handler := NewGetOverdueOrdersQueryHandler(provider.OrderRepository(), kernel.SystemClock{})
//	overdue, err := handler.Handle(ctx, NewGetOverdueOrdersQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to find overdue orders: %w", err)
//	}
//
//	for _, o := range overdue {
//	    fmt.Printf("Order %s is %d days late (%s)\n", o.ID, o.DaysOverdue, o.Status)
//	}
type GetOverdueOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery() GetOverdueOrdersQuery {
	return GetOverdueOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// GetOverdueOrdersQueryResponse is the read model of one overdue order.
type GetOverdueOrdersQueryResponse struct {
	ID           string
	Owner        string
	Assembler    string
	Status       string
	DeliveryDate kernel.Date
	DaysOverdue  int
}
