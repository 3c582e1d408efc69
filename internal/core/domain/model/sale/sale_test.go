package sale_test

import (
	"testing"

	"assettransfer/internal/core/domain/model/sale"
	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale(t *testing.T) {
	t.Run("should build a sale", func(t *testing.T) {
		s, err := sale.NewSale("s1", sale.Details{Owner: "shop", Product: "a1", Quantity: 5, Contractor: "acme"})

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "s1", s.SaleID())
		assert.Equal(t, "a1", s.Product())
		assert.Equal(t, 5, s.Quantity())
		assert.Equal(t, "acme", s.Contractor())
	})

	t.Run("should require a sale id", func(t *testing.T) {
		_, err := sale.NewSale("", sale.Details{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSale_TransferTo(t *testing.T) {
	s, _ := sale.NewSale("s1", sale.Details{Owner: "shop", Product: "a1", Quantity: 5, Contractor: "acme"})

	moved, err := s.TransferTo("outlet")

	require.NoError(t, err)
	assert.Equal(t, "outlet", moved.Owner())
	assert.Equal(t, "shop", s.Owner())
	assert.Equal(t, "acme", moved.Contractor())

	_, err = s.TransferTo("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
