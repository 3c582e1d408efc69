package queries

import (
	"context"

	"assettransfer/internal/core/ports"
)

// GetRecordQueryHandler reads records of one kind.
type GetRecordQueryHandler[E any] struct {
	repo ports.Repository[E]
}

func NewGetRecordQueryHandler[E any](repo ports.Repository[E]) GetRecordQueryHandler[E] {
	return GetRecordQueryHandler[E]{repo: repo}
}

// Handle fails with errs.ObjectNotFoundError for an unknown ID and with
// errs.DecodeError when the stored bytes are not a record of the kind.
func (h GetRecordQueryHandler[E]) Handle(ctx context.Context, query GetRecordQuery) (E, error) {
	if err := query.Validate(); err != nil {
		var zero E
		return zero, err
	}

	return h.repo.Get(ctx, query.ID())
}
