// Package fabricstore adapts a Hyperledger Fabric chaincode stub to the
// world-state port. A Store lives for one transaction: writes go to the
// stub's write set and become visible only after the peer commits the block.
package fabricstore

import (
	"context"
	"fmt"

	"assettransfer/internal/core/ports"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

var _ ports.Store = (*Store)(nil)

type Store struct {
	stub shim.ChaincodeStubInterface
}

func NewStore(stub shim.ChaincodeStubInterface) *Store {
	return &Store{stub: stub}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	value, err := s.stub.GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read from world state: %w", err)
	}
	return value, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	if err := s.stub.PutState(key, value); err != nil {
		return fmt.Errorf("failed to put to world state: %w", err)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	if err := s.stub.DelState(key); err != nil {
		return fmt.Errorf("failed to delete from world state: %w", err)
	}
	return nil
}

func (s *Store) ScanRange(_ context.Context, start, end string) ([]ports.KeyValue, error) {
	iterator, err := s.stub.GetStateByRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to scan world state: %w", err)
	}
	defer func() { _ = iterator.Close() }()

	var entries []ports.KeyValue
	for iterator.HasNext() {
		kv, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to scan world state: %w", err)
		}
		entries = append(entries, ports.KeyValue{Key: kv.GetKey(), Value: kv.GetValue()})
	}
	return entries, nil
}

// Apply writes the batch into the transaction's write set in order. The
// peer validates and commits the write set atomically.
func (s *Store) Apply(ctx context.Context, mutations []ports.Mutation) error {
	for _, m := range mutations {
		if m.Op != ports.OpPut && m.Op != ports.OpDelete {
			return fmt.Errorf("apply %q: unsupported operation %s", m.Key, m.Op)
		}
	}

	for _, m := range mutations {
		var err error
		if m.Op == ports.OpDelete {
			err = s.Delete(ctx, m.Key)
		} else {
			err = s.Put(ctx, m.Key, m.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
