package kvstore

import (
	"bytes"
	"context"
	"slices"

	"assettransfer/internal/core/ports"
)

// pendingWrite is the latest buffered state of one key.
type pendingWrite struct {
	value   []byte
	deleted bool
}

// overlay is a write buffer in front of a read-only view of the store. Reads
// see buffered writes first, so a unit of work reads its own writes.
type overlay struct {
	base    ports.KeyValueStore
	pending map[string]pendingWrite
	order   []string
}

var _ ports.KeyValueStore = (*overlay)(nil)

func newOverlay(base ports.KeyValueStore) *overlay {
	return &overlay{
		base:    base,
		pending: make(map[string]pendingWrite),
	}
}

func (o *overlay) Get(ctx context.Context, key string) ([]byte, error) {
	if w, ok := o.pending[key]; ok {
		if w.deleted {
			return nil, nil
		}
		return bytes.Clone(w.value), nil
	}
	return o.base.Get(ctx, key)
}

func (o *overlay) Put(_ context.Context, key string, value []byte) error {
	o.record(key, pendingWrite{value: bytes.Clone(value)})
	return nil
}

func (o *overlay) Delete(_ context.Context, key string) error {
	o.record(key, pendingWrite{deleted: true})
	return nil
}

// ScanRange merges the base range with the buffered writes falling inside it.
func (o *overlay) ScanRange(ctx context.Context, start, end string) ([]ports.KeyValue, error) {
	entries, err := o.base.ScanRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	if len(o.pending) == 0 {
		return entries, nil
	}

	merged := make(map[string][]byte, len(entries)+len(o.pending))
	for _, e := range entries {
		merged[e.Key] = e.Value
	}
	for key, w := range o.pending {
		if !inRange(key, start, end) {
			continue
		}
		if w.deleted {
			delete(merged, key)
			continue
		}
		merged[key] = bytes.Clone(w.value)
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	result := make([]ports.KeyValue, 0, len(keys))
	for _, key := range keys {
		result = append(result, ports.KeyValue{Key: key, Value: merged[key]})
	}
	return result, nil
}

// mutations returns one mutation per touched key, in order of first write,
// carrying the key's final state.
func (o *overlay) mutations() []ports.Mutation {
	result := make([]ports.Mutation, 0, len(o.order))
	for _, key := range o.order {
		w := o.pending[key]
		if w.deleted {
			result = append(result, ports.Mutation{Op: ports.OpDelete, Key: key})
			continue
		}
		result = append(result, ports.Mutation{Op: ports.OpPut, Key: key, Value: w.value})
	}
	return result
}

func (o *overlay) record(key string, w pendingWrite) {
	if _, seen := o.pending[key]; !seen {
		o.order = append(o.order, key)
	}
	o.pending[key] = w
}

func inRange(key, start, end string) bool {
	return (start == "" || key >= start) && (end == "" || key < end)
}
