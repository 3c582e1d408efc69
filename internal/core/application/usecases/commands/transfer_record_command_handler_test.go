package commands_test

import (
	"context"
	"errors"
	"testing"

	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/domain/model/asset"
	"assettransfer/internal/core/domain/model/kernel"
	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewTransferRecordCommand(t *testing.T) {
	t.Run("should collect every problem", func(t *testing.T) {
		_, err := commands.NewTransferRecordCommand(kernel.KindUnknown, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should build a valid command", func(t *testing.T) {
		cmd, err := commands.NewTransferRecordCommand(kernel.KindSale, "s1", "outlet")

		require.NoError(t, err)
		assert.Equal(t, kernel.KindSale, cmd.Kind())
		assert.Equal(t, "s1", cmd.ID())
		assert.Equal(t, "outlet", cmd.NewHolder())
	})
}

func TestTransferRecordCommandHandler(t *testing.T) {
	ctx := context.Background()
	ledger := newMemoryLedger()
	createAsset, _ := commands.NewCreateAssetCommand("a1", "alice", 300)
	require.NoError(t, commands.NewCreateAssetCommandHandler(ledger.assets()).Handle(ctx, createAsset))
	h := commands.NewTransferRecordCommandHandler(ledger.ledger())

	t.Run("should return the previous owner", func(t *testing.T) {
		cmd, _ := commands.NewTransferRecordCommand(kernel.KindAsset, "a1", "bob")

		previous, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "alice", previous)
		stored, err := ledger.provider().AssetRepository().Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "bob", stored.Owner())
	})

	t.Run("should keep kinds apart", func(t *testing.T) {
		cmd, _ := commands.NewTransferRecordCommand(kernel.KindOrder, "a1", "bob")

		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should move the shipper of a distribution", func(t *testing.T) {
		seedDistribution(t, ledger)
		cmd, _ := commands.NewTransferRecordCommand(kernel.KindDistribution, "d1", "ups")

		previous, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "dhl", previous)
	})
}

func TestTransferRecordCommandHandler_CommitError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository[*asset.Asset])
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Ledger", kernel.KindAsset).Return(repo, nil).Once(),
		repo.On("Transfer", ctx, "a1", "bob").Return("alice", nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	cmd, _ := commands.NewTransferRecordCommand(kernel.KindAsset, "a1", "bob")
	previous, err := commands.NewTransferRecordCommandHandler(ledgerFactory(func() commands.LedgerUoW { return uow })).Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	assert.Empty(t, previous)
	uow.AssertExpectations(t)
}

func TestDeleteRecordCommandHandler(t *testing.T) {
	ctx := context.Background()
	ledger := newMemoryLedger()
	createSale, _ := commands.NewCreateSaleCommand("s1", saleDetails())
	require.NoError(t, commands.NewCreateSaleCommandHandler(ledger.sales()).Handle(ctx, createSale))
	h := commands.NewDeleteRecordCommandHandler(ledger.ledger())
	cmd, err := commands.NewDeleteRecordCommand(kernel.KindSale, "s1")
	require.NoError(t, err)

	t.Run("should delete once", func(t *testing.T) {
		require.NoError(t, h.Handle(ctx, cmd))
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("should allow recreating a deleted key", func(t *testing.T) {
		require.NoError(t, commands.NewCreateSaleCommandHandler(ledger.sales()).Handle(ctx, createSale))
	})

	t.Run("should reject an invalid command", func(t *testing.T) {
		_, err := commands.NewDeleteRecordCommand(kernel.Kind(42), "s1")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		require.ErrorIs(t, h.Handle(ctx, commands.DeleteRecordCommand{}), commands.ErrDeleteRecordCommandIsNotConstructed)
	})
}
