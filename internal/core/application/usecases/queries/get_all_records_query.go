package queries

import (
	"errors"

	"assettransfer/internal/pkg/guard"
)

var ErrGetAllRecordsQueryIsNotConstructed = errors.New(
	"GetAllRecordsQuery must be created via NewGetAllRecordsQuery constructor",
)

// GetAllRecordsQuery lists every live record of one kind in key order.
// The result is unbounded.
type GetAllRecordsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllRecordsQuery() GetAllRecordsQuery {
	return GetAllRecordsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRecordsQueryIsNotConstructed)
}
