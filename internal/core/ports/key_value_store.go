// Package ports defines the contracts between the ledger core and the
// infrastructure around it: the key-value world state, the repositories
// built on top of it and the unit of work that groups their writes.
package ports

import (
	"context"
)

// KeyValue is one entry of the world state.
type KeyValue struct {
	Key   string
	Value []byte
}

// KeyValueStore is the world state the repositories read and write.
//
// Get returns (nil, nil) for an absent key; callers treat an empty value the
// same way. ScanRange returns every entry with start <= key < end in lexical
// key order; an empty start or end leaves that side unbounded.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	ScanRange(ctx context.Context, start, end string) ([]KeyValue, error)
}

// OpType is the kind of a buffered write.
type OpType int

const (
	OpPut OpType = iota + 1
	OpDelete
)

func (o OpType) String() string {
	switch o {
	case OpPut:
		return "PUT"
	case OpDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Mutation is a single write waiting to be applied. Value is nil for deletes.
type Mutation struct {
	Op    OpType
	Key   string
	Value []byte
}

// Batcher applies a set of mutations as one unit. Backends with transactions
// apply all or nothing.
type Batcher interface {
	Apply(ctx context.Context, mutations []Mutation) error
}

// Store is what a world-state backend provides.
type Store interface {
	KeyValueStore
	Batcher
}
