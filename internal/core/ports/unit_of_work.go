package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each invocation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the boundary of one submitted invocation. Repositories
// obtained after Begin read their own writes; nothing reaches the store
// until Commit.
type UnitOfWork interface {
	// Begin starts buffering writes. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit applies the buffered writes as one batch.
	// Returns error if no active transaction or the store rejects the batch.
	Commit(ctx context.Context) error

	// Rollback discards the buffered writes.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	RepositoryProvider
}
