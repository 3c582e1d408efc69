package queries

import (
	"context"

	"assettransfer/internal/core/ports"
)

type GetAllRecordsQueryHandler[E any] struct {
	repo ports.Repository[E]
}

func NewGetAllRecordsQueryHandler[E any](repo ports.Repository[E]) GetAllRecordsQueryHandler[E] {
	return GetAllRecordsQueryHandler[E]{repo: repo}
}

// Handle never returns nil on success; an empty kind yields an empty slice.
func (h GetAllRecordsQueryHandler[E]) Handle(ctx context.Context, query GetAllRecordsQuery) ([]E, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = make([]E, 0)
	}

	return records, nil
}
