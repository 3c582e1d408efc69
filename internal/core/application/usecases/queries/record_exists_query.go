package queries

import (
	"errors"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

var ErrRecordExistsQueryIsNotConstructed = errors.New(
	"RecordExistsQuery must be created via NewRecordExistsQuery constructor",
)

// RecordExistsQuery probes whether a record of kind is stored under id.
type RecordExistsQuery struct {
	kind kernel.Kind
	id   string

	guard guard.ConstructorGuard
}

func NewRecordExistsQuery(kind kernel.Kind, id string) (RecordExistsQuery, error) {
	var idErr error
	if id == "" {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if err := errors.Join(kind.Validate(), idErr); err != nil {
		return RecordExistsQuery{}, err
	}

	return RecordExistsQuery{kind: kind, id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q RecordExistsQuery) Validate() error {
	return q.guard.Validate(ErrRecordExistsQueryIsNotConstructed)
}

func (q RecordExistsQuery) Kind() kernel.Kind {
	return q.kind
}

func (q RecordExistsQuery) ID() string {
	return q.id
}
