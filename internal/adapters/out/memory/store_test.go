package memory_test

import (
	"context"
	"testing"

	"assettransfer/internal/adapters/out/memory"
	"assettransfer/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetPutDelete(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	value, err := s.Get(ctx, "asset:a1")
	require.NoError(t, err)
	assert.Nil(t, value)

	payload := []byte(`{"owner":"alice"}`)
	require.NoError(t, s.Put(ctx, "asset:a1", payload))
	payload[2] = 'X'

	value, err = s.Get(ctx, "asset:a1")
	require.NoError(t, err)
	assert.Equal(t, `{"owner":"alice"}`, string(value), "stored value must not alias the caller's slice")

	require.NoError(t, s.Delete(ctx, "asset:a1"))
	value, err = s.Get(ctx, "asset:a1")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestStore_ScanRange(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	for _, key := range []string{"order:o1", "asset:b", "asset:a", "sale:s1", "asset:c"} {
		require.NoError(t, s.Put(ctx, key, []byte(key)))
	}

	t.Run("should return the half-open range in key order", func(t *testing.T) {
		entries, err := s.ScanRange(ctx, "asset:", "asset;")
		require.NoError(t, err)

		assert.Equal(t, []string{"asset:a", "asset:b", "asset:c"}, keysOf(entries))
	})

	t.Run("should treat empty bounds as unbounded", func(t *testing.T) {
		entries, err := s.ScanRange(ctx, "", "")
		require.NoError(t, err)

		assert.Equal(t, []string{"asset:a", "asset:b", "asset:c", "order:o1", "sale:s1"}, keysOf(entries))
	})
}

func TestStore_Apply(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Put(ctx, "asset:a", []byte("old")))

	t.Run("should apply puts and deletes", func(t *testing.T) {
		err := s.Apply(ctx, []ports.Mutation{
			{Op: ports.OpDelete, Key: "asset:a"},
			{Op: ports.OpPut, Key: "asset:b", Value: []byte("new")},
		})
		require.NoError(t, err)

		entries, err := s.ScanRange(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"asset:b"}, keysOf(entries))
	})

	t.Run("should reject the whole batch on an unknown operation", func(t *testing.T) {
		err := s.Apply(ctx, []ports.Mutation{
			{Op: ports.OpPut, Key: "asset:c", Value: []byte("x")},
			{Op: ports.OpType(99), Key: "asset:d"},
		})
		require.Error(t, err)

		value, err := s.Get(ctx, "asset:c")
		require.NoError(t, err)
		assert.Nil(t, value)
	})
}

func keysOf(entries []ports.KeyValue) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}
