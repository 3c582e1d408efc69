package kernel_test

import (
	"testing"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Key(t *testing.T) {
	tests := []struct {
		kind kernel.Kind
		id   string
		want string
	}{
		{kernel.KindAsset, "a1", "asset:a1"},
		{kernel.KindOrder, "o1", "order:o1"},
		{kernel.KindDistribution, "d1", "distribution:d1"},
		{kernel.KindSale, "s1", "sale:s1"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Key(tc.id))

			id, ok := tc.kind.IDFromKey(tc.want)
			require.True(t, ok)
			assert.Equal(t, tc.id, id)
			assert.Equal(t, tc.kind, kernel.KindOfKey(tc.want))
		})
	}
}

func TestKind_Range(t *testing.T) {
	t.Run("should contain every key of the kind and nothing of the others", func(t *testing.T) {
		start, end := kernel.KindAsset.Range()

		inside := []string{"asset:", "asset:a", "asset:zzz", "asset:~~"}
		for _, key := range inside {
			assert.True(t, key >= start && key < end, key)
		}

		outside := []string{"asse", "assets:x", "distribution:d1", "order:asset:a1", "sale:s1"}
		for _, key := range outside {
			assert.False(t, key >= start && key < end, key)
		}
	})
}

func TestParseKind(t *testing.T) {
	t.Run("should parse every kind tag", func(t *testing.T) {
		for _, kind := range kernel.Kinds() {
			parsed, err := kernel.ParseKind(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("should reject an unknown tag", func(t *testing.T) {
		kind, err := kernel.ParseKind("invoice")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, kernel.KindUnknown, kind)
		assert.Equal(t, kernel.KindUnknown, kernel.KindOfKey("invoice:1"))
		assert.Equal(t, kernel.KindUnknown, kernel.KindOfKey("no-separator"))
	})
}

func TestKind_Labels(t *testing.T) {
	assert.Equal(t, "Sale asset", kernel.KindSale.Title())
	assert.Equal(t, "SALE_ASSET", kernel.KindSale.Code())
	assert.Equal(t, "Distribution", kernel.KindDistribution.Title())
	assert.Equal(t, "unknown", kernel.KindUnknown.String())
	require.Error(t, kernel.KindUnknown.Validate())
	require.NoError(t, kernel.KindOrder.Validate())
}
