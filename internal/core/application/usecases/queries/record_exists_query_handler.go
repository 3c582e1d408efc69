package queries

import (
	"context"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/ports"
)

// LedgerProvider resolves the kind-agnostic operations for a kind.
type LedgerProvider interface {
	Ledger(kind kernel.Kind) (ports.EntityLedger, error)
}

type RecordExistsQueryHandler struct {
	provider LedgerProvider
}

func NewRecordExistsQueryHandler(provider LedgerProvider) RecordExistsQueryHandler {
	return RecordExistsQueryHandler{provider: provider}
}

// Handle reports false for an absent key. Store failures are errors.
func (h RecordExistsQueryHandler) Handle(ctx context.Context, query RecordExistsQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	ledger, err := h.provider.Ledger(query.Kind())
	if err != nil {
		return false, err
	}

	return ledger.Exists(ctx, query.ID())
}
