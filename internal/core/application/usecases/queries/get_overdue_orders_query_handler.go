package queries

import (
	"context"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/ports"
)

type GetOverdueOrdersQueryHandler struct {
	repo  ports.OrderRepository
	clock kernel.Clock
}

func NewGetOverdueOrdersQueryHandler(repo ports.OrderRepository, clock kernel.Clock) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{repo: repo, clock: clock}
}

// Handle returns the overdue orders in key order. An order due today is not
// overdue.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	today := kernel.Today(h.clock)
	overdue := make([]GetOverdueOrdersQueryResponse, 0)
	for _, o := range orders {
		if !o.IsOverdue(today) {
			continue
		}
		overdue = append(overdue, GetOverdueOrdersQueryResponse{
			ID:           o.ID(),
			Owner:        o.Owner(),
			Assembler:    o.Assembler(),
			Status:       o.StatusLabel(),
			DeliveryDate: o.DeliveryDate(),
			DaysOverdue:  today.DaysSince(o.DeliveryDate()),
		})
	}

	return overdue, nil
}
