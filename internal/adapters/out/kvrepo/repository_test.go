package kvrepo_test

import (
	"context"
	"testing"
	"time"

	"assettransfer/internal/adapters/out/kvrepo"
	"assettransfer/internal/adapters/out/memory"
	"assettransfer/internal/core/domain/model/asset"
	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/core/domain/model/sale"
	"assettransfer/internal/core/ports"
	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore counts the writes reaching the wrapped store.
type countingStore struct {
	ports.KeyValueStore
	writes int
}

func (s *countingStore) Put(ctx context.Context, key string, value []byte) error {
	s.writes++
	return s.KeyValueStore.Put(ctx, key, value)
}

func (s *countingStore) Delete(ctx context.Context, key string) error {
	s.writes++
	return s.KeyValueStore.Delete(ctx, key)
}

func newAsset(t *testing.T, id, owner string) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(id, owner, 100)
	require.NoError(t, err)
	return a
}

func TestRepository_CreateAndExists(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{KeyValueStore: memory.NewStore()}
	repo := kvrepo.NewProvider(store).AssetRepository()

	t.Run("should report a created record as existing", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, newAsset(t, "a1", "alice")))

		exists, err := repo.Exists(ctx, "a1")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 1, store.writes)
	})

	t.Run("should refuse to create the same key twice", func(t *testing.T) {
		err := repo.Add(ctx, newAsset(t, "a1", "bob"))

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Equal(t, 1, store.writes)

		stored, err := repo.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "alice", stored.Owner())
	})

	t.Run("should reject a record not built by its constructor", func(t *testing.T) {
		err := repo.Add(ctx, &asset.Asset{})
		require.ErrorIs(t, err, asset.ErrAssetIsNotConstructed)
	})
}

func TestRepository_MissingKey(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{KeyValueStore: memory.NewStore()}
	repo := kvrepo.NewProvider(store).AssetRepository()

	_, err := repo.Get(ctx, "ghost")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	err = repo.Update(ctx, newAsset(t, "ghost", "alice"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	err = repo.Delete(ctx, "ghost")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = repo.Transfer(ctx, "ghost", "bob")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	exists, err := repo.Exists(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Zero(t, store.writes)
}

func TestRepository_EmptyValueIsAbsent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Put(ctx, "asset:a1", []byte{}))
	repo := kvrepo.NewProvider(store).AssetRepository()

	_, err := repo.Get(ctx, "a1")
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	exists, err := repo.Exists(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Add(ctx, newAsset(t, "a1", "alice")))
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{KeyValueStore: memory.NewStore()}
	repo := kvrepo.NewProvider(store).AssetRepository()
	require.NoError(t, repo.Add(ctx, newAsset(t, "a1", "alice")))

	t.Run("should overwrite the whole record", func(t *testing.T) {
		updated, err := asset.NewAsset("a1", "carol", 999)
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, updated))

		stored, err := repo.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, updated, stored)
		assert.Equal(t, 2, store.writes)
	})

	t.Run("delete is not idempotent", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "a1"))
		require.ErrorIs(t, repo.Delete(ctx, "a1"), errs.ErrObjectNotFound)
		assert.Equal(t, 3, store.writes)
	})
}

func TestRepository_Transfer(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the previous owner", func(t *testing.T) {
		store := &countingStore{KeyValueStore: memory.NewStore()}
		repo := kvrepo.NewProvider(store).AssetRepository()
		require.NoError(t, repo.Add(ctx, newAsset(t, "a1", "alice")))

		previous, err := repo.Transfer(ctx, "a1", "bob")

		require.NoError(t, err)
		assert.Equal(t, "alice", previous)
		stored, err := repo.Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "bob", stored.Owner())
		assert.Equal(t, 2, store.writes)
	})

	t.Run("should move the shipper of a distribution", func(t *testing.T) {
		repo := kvrepo.NewProvider(memory.NewStore()).DistributionRepository()
		d, err := distribution.NewDistribution("d1", distribution.Details{Owner: "shop", Shipper: "dhl"})
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, d))

		previous, err := repo.Transfer(ctx, "d1", "ups")

		require.NoError(t, err)
		assert.Equal(t, "dhl", previous)
		stored, err := repo.Get(ctx, "d1")
		require.NoError(t, err)
		assert.Equal(t, "ups", stored.Shipper())
		assert.Equal(t, "shop", stored.Owner())
	})
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	provider := kvrepo.NewProvider(store)
	assets := provider.AssetRepository()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, assets.Add(ctx, newAsset(t, id, "alice")))
	}
	require.NoError(t, assets.Delete(ctx, "b"))

	o, err := order.NewOrder("a", "ORDERED", order.Details{DeliveryDate: kernel.NewDate(2030, time.January, 1)})
	require.NoError(t, err)
	require.NoError(t, provider.OrderRepository().Add(ctx, o))

	s, err := sale.NewSale("a0", sale.Details{Owner: "shop"})
	require.NoError(t, err)
	require.NoError(t, provider.SaleRepository().Add(ctx, s))

	t.Run("should list only the kind's live records in key order", func(t *testing.T) {
		all, err := assets.GetAll(ctx)
		require.NoError(t, err)

		ids := make([]string, 0, len(all))
		for _, a := range all {
			ids = append(ids, a.ID())
		}
		assert.Equal(t, []string{"a", "c"}, ids)
	})

	t.Run("same identifier in two kinds does not collide", func(t *testing.T) {
		a, err := assets.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "alice", a.Owner())

		orders, err := provider.OrderRepository().GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "a", orders[0].ID())
	})

	t.Run("should fail on a corrupted record", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "asset:zz", []byte(`{"nope":true}`)))
		defer func() { _ = store.Delete(ctx, "asset:zz") }()

		_, err := assets.GetAll(ctx)
		require.ErrorIs(t, err, errs.ErrValueIsNotDecodable)
	})
}

func TestRepository_KeyMismatch(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Put(ctx, "asset:a1", []byte(`{"owner":"alice","price":1,"productID":"a2"}`)))

	_, err := kvrepo.NewProvider(store).AssetRepository().Get(ctx, "a1")

	require.ErrorIs(t, err, errs.ErrValueIsNotDecodable)
}

func TestProvider_Ledger(t *testing.T) {
	ctx := context.Background()
	provider := kvrepo.NewProvider(memory.NewStore())
	require.NoError(t, provider.AssetRepository().Add(ctx, newAsset(t, "a1", "alice")))

	t.Run("should dispatch by kind", func(t *testing.T) {
		ledger, err := provider.Ledger(kernel.KindAsset)
		require.NoError(t, err)

		exists, err := ledger.Exists(ctx, "a1")
		require.NoError(t, err)
		assert.True(t, exists)

		orders, err := provider.Ledger(kernel.KindOrder)
		require.NoError(t, err)
		exists, err = orders.Exists(ctx, "a1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("should reject an unknown kind", func(t *testing.T) {
		_, err := provider.Ledger(kernel.KindUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
