package fabricstore_test

import (
	"context"
	"testing"

	"assettransfer/internal/adapters/out/fabricstore"
	"assettransfer/internal/core/ports"

	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WithMockStub(t *testing.T) {
	ctx := context.Background()
	stub := shimtest.NewMockStub("assettransfer", nil)
	store := fabricstore.NewStore(stub)

	stub.MockTransactionStart("tx1")
	require.NoError(t, store.Apply(ctx, []ports.Mutation{
		{Op: ports.OpPut, Key: "asset:b", Value: []byte("b")},
		{Op: ports.OpPut, Key: "asset:a", Value: []byte("a")},
		{Op: ports.OpPut, Key: "order:o1", Value: []byte("o")},
	}))
	stub.MockTransactionEnd("tx1")

	t.Run("should read a committed key", func(t *testing.T) {
		value, err := store.Get(ctx, "asset:a")
		require.NoError(t, err)
		assert.Equal(t, "a", string(value))

		missing, err := store.Get(ctx, "asset:zz")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("should scan one kind in key order", func(t *testing.T) {
		entries, err := store.ScanRange(ctx, "asset:", "asset;")
		require.NoError(t, err)
		assert.Equal(t, []ports.KeyValue{
			{Key: "asset:a", Value: []byte("a")},
			{Key: "asset:b", Value: []byte("b")},
		}, entries)
	})

	t.Run("should delete", func(t *testing.T) {
		stub.MockTransactionStart("tx2")
		require.NoError(t, store.Apply(ctx, []ports.Mutation{{Op: ports.OpDelete, Key: "asset:a"}}))
		stub.MockTransactionEnd("tx2")

		value, err := store.Get(ctx, "asset:a")
		require.NoError(t, err)
		assert.Nil(t, value)
	})

	t.Run("should refuse an unknown operation before writing", func(t *testing.T) {
		stub.MockTransactionStart("tx3")
		err := store.Apply(ctx, []ports.Mutation{
			{Op: ports.OpPut, Key: "asset:c", Value: []byte("c")},
			{Op: ports.OpType(5), Key: "asset:d"},
		})
		stub.MockTransactionEnd("tx3")

		require.Error(t, err)
		value, err := store.Get(ctx, "asset:c")
		require.NoError(t, err)
		assert.Nil(t, value)
	})
}
