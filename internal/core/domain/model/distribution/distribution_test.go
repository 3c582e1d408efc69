package distribution_test

import (
	"testing"

	"assettransfer/internal/core/domain/model/distribution"
	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDistribution(t *testing.T) *distribution.Distribution {
	t.Helper()
	d, err := distribution.NewDistribution("d1", distribution.Details{
		Owner:        "shop",
		SalesID:      "s1",
		ProductID:    "a1",
		Quantity:     5,
		Shipper:      "dhl",
		Location:     "Warsaw",
		ShippingCost: 40,
	})
	require.NoError(t, err)
	return d
}

func TestNewDistribution(t *testing.T) {
	t.Run("should require a distribution id", func(t *testing.T) {
		_, err := distribution.NewDistribution("", distribution.Details{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should keep references without checking them", func(t *testing.T) {
		d := newDistribution(t)
		assert.Equal(t, "s1", d.SalesID())
		assert.Equal(t, "a1", d.ProductID())
	})
}

func TestDistribution_TransferTo(t *testing.T) {
	d := newDistribution(t)

	moved, err := d.TransferTo("ups")

	require.NoError(t, err)
	assert.Equal(t, "ups", moved.Shipper())
	assert.Equal(t, "shop", moved.Owner(), "owner is not what a distribution transfer rewrites")
	assert.Equal(t, "dhl", d.Holder())
}

func TestDistribution_Reroute(t *testing.T) {
	tests := []struct {
		name         string
		shipper      string
		location     string
		wantShipper  string
		wantLocation string
		wantErr      error
	}{
		{"should change both", "ups", "Berlin", "ups", "Berlin", nil},
		{"should change the location only", "", "Berlin", "dhl", "Berlin", nil},
		{"should change the shipper only", "ups", "Warsaw", "ups", "Warsaw", nil},
		{"should refuse a no-op", "dhl", "Warsaw", "", "", errs.ErrObjectNotModified},
		{"should refuse empty arguments", "", "", "", "", errs.ErrObjectNotModified},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rerouted, err := newDistribution(t).Reroute(tc.shipper, tc.location)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantShipper, rerouted.Shipper())
			assert.Equal(t, tc.wantLocation, rerouted.Location())
			assert.Equal(t, 40, rerouted.ShippingCost())
		})
	}
}
