package kvstore

import (
	"context"

	"assettransfer/internal/core/ports"
)

var _ ports.Store = (*Session)(nil)

// Session is a store view whose reads see every batch it has applied. It
// serves backends where a write becomes readable only after the surrounding
// transaction ends, as on a Fabric peer, so a use case can read back a record
// it has just committed.
type Session struct {
	base    ports.Store
	applied *overlay
}

func NewSession(base ports.Store) *Session {
	return &Session{base: base, applied: newOverlay(base)}
}

func (s *Session) Get(ctx context.Context, key string) ([]byte, error) {
	return s.applied.Get(ctx, key)
}

func (s *Session) ScanRange(ctx context.Context, start, end string) ([]ports.KeyValue, error) {
	return s.applied.ScanRange(ctx, start, end)
}

func (s *Session) Put(ctx context.Context, key string, value []byte) error {
	return s.Apply(ctx, []ports.Mutation{{Op: ports.OpPut, Key: key, Value: value}})
}

func (s *Session) Delete(ctx context.Context, key string) error {
	return s.Apply(ctx, []ports.Mutation{{Op: ports.OpDelete, Key: key}})
}

// Apply forwards the batch and remembers its effect once the base accepted it.
func (s *Session) Apply(ctx context.Context, mutations []ports.Mutation) error {
	if err := s.base.Apply(ctx, mutations); err != nil {
		return err
	}

	for _, m := range mutations {
		if m.Op == ports.OpDelete {
			_ = s.applied.Delete(ctx, m.Key)
			continue
		}
		_ = s.applied.Put(ctx, m.Key, m.Value)
	}
	return nil
}
