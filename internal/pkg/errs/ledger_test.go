package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("asset", "a1")

	assert.Equal(t, "asset", err.ParamName)
	assert.Equal(t, "a1", err.ID)
	assert.Equal(t, "object already exists: a1", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestObjectNotModifiedError(t *testing.T) {
	err := errs.NewObjectNotModifiedError("distribution", "d1")

	assert.Equal(t, "object not modified: d1", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectNotModified)
}

func TestInvalidOrderError(t *testing.T) {
	t.Run("message is the reason", func(t *testing.T) {
		err := errs.NewInvalidOrderError("Order is too small")

		assert.Equal(t, "Order is too small", err.Error())
		require.ErrorIs(t, err, errs.ErrInvalidOrder)
	})

	t.Run("formatted reason", func(t *testing.T) {
		err := errs.NewInvalidOrderErrorf("No valid transition from status %s", "PRODUCED")

		assert.Equal(t, "No valid transition from status PRODUCED", err.Error())
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("update order: %w", errs.NewInvalidOrderError("Delivery date too soon"))

		var invalid *errs.InvalidOrderError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "Delivery date too soon", invalid.Reason)
	})
}

func TestDecodeError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		err := errs.NewDecodeError("asset:a1", errors.New("unexpected end of JSON input"))

		assert.Equal(t,
			"value is not decodable: asset:a1 (cause: unexpected end of JSON input)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsNotDecodable)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewDecodeError("bad\nkey", nil)

		assert.Equal(t, "value is not decodable: bad key", err.Error())
	})
}
