package order_test

import (
	"testing"
	"time"

	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/core/domain/model/order"
	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = kernel.NewDate(2024, time.March, 1)

func purseDetails(quantity, daysOut int) order.Details {
	return order.Details{
		ProductName:  order.OfferedProduct,
		Quantity:     quantity,
		DeliveryDate: today.AddDays(daysOut),
		Price:        order.UnitPrice,
		Orderer:      "boutique",
		Assembler:    "workshop",
		Owner:        "boutique",
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should keep a known status", func(t *testing.T) {
		o, err := order.NewOrder("o1", "ORDERED", purseDetails(300, 10))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "o1", o.ID())
		assert.Equal(t, order.Ordered, o.Status())
		assert.Equal(t, "ORDERED", o.StatusLabel())
		assert.Equal(t, 300, o.Quantity())
		assert.Equal(t, "boutique", o.Holder())
	})

	t.Run("should store an unknown status label verbatim", func(t *testing.T) {
		o, err := order.NewOrder("o1", "on hold", purseDetails(300, 10))

		require.NoError(t, err)
		assert.Equal(t, order.Unknown, o.Status())
		assert.Equal(t, "on hold", o.StatusLabel())
	})

	t.Run("should require an id and a delivery date", func(t *testing.T) {
		_, err := order.NewOrder("", "ORDERED", order.Details{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "ID")
		assert.Contains(t, err.Error(), "deliveryDate")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		var nilOrder *order.Order
		require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_TransferTo(t *testing.T) {
	o, err := order.NewOrder("o1", "MATERIALS_COLLECTED", purseDetails(300, 30))
	require.NoError(t, err)

	t.Run("should change only the owner", func(t *testing.T) {
		moved, err := o.TransferTo("retailer")

		require.NoError(t, err)
		assert.Equal(t, "retailer", moved.Owner())
		assert.Equal(t, "boutique", o.Owner())
		assert.Equal(t, order.MaterialsCollected, moved.Status())
		assert.Equal(t, o.DeliveryDate(), moved.DeliveryDate())
		assert.True(t, moved.IsEqual(o))
	})

	t.Run("should require a new owner", func(t *testing.T) {
		_, err := o.TransferTo("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_IsOverdue(t *testing.T) {
	late, _ := order.NewOrder("o1", "ORDERED", purseDetails(300, -1))
	due, _ := order.NewOrder("o2", "ORDERED", purseDetails(300, 0))
	produced, _ := order.NewOrder("o3", "PRODUCED", purseDetails(300, -30))

	assert.True(t, late.IsOverdue(today))
	assert.False(t, due.IsOverdue(today))
	assert.False(t, produced.IsOverdue(today))
}
