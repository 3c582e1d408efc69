// Package queries contains the evaluated operations: reads that never write
// to the world state. Handlers read through the repositories directly, with
// no unit of work around them.
package queries

import (
	"errors"

	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrGetRecordQueryIsNotConstructed = errors.New(
	"GetRecordQuery must be created via NewGetRecordQuery constructor",
)

// GetRecordQuery reads one record by its ID. The record kind is fixed by the
// handler the query is given to.
//
// Example:
//
//	query, err := NewGetRecordQuery("a1")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetRecordQueryHandler(provider.AssetRepository())
//	a, err := handler.Handle(ctx, query)
type GetRecordQuery struct {
	id string

	guard guard.ConstructorGuard
}

func NewGetRecordQuery(id string) (GetRecordQuery, error) {
	if id == "" {
		return GetRecordQuery{}, errs.NewValueIsRequiredError("id")
	}

	return GetRecordQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetRecordQueryIsNotConstructed)
}

func (q GetRecordQuery) ID() string {
	return q.id
}
