package commands_test

import (
	"context"
	"errors"
	"testing"

	"assettransfer/internal/core/application/usecases/commands"
	"assettransfer/internal/core/domain/model/asset"
	"assettransfer/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAssetCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreateAssetCommand("a1", "alice", 300)

	repo := new(MockRepository[*asset.Asset])
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssetRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(a *asset.Asset) bool {
			return a.ProductID() == "a1" && a.Owner() == "alice" && a.Price() == 300
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateAssetCommandHandler(assetFactory(func() commands.AssetUoW { return uow }))
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateAssetCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewCreateAssetCommandHandler(assetFactory(func() commands.AssetUoW {
		t.Fatal("unit of work must not be created")
		return nil
	}))

	err := h.Handle(context.Background(), commands.CreateAssetCommand{})

	require.ErrorIs(t, err, commands.ErrCreateAssetCommandIsNotConstructed)
}

func TestCreateAssetCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreateAssetCommand("a1", "alice", 300)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewCreateAssetCommandHandler(assetFactory(func() commands.AssetUoW { return uow }))
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
}

func TestCreateAssetCommandHandler_Handle_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreateAssetCommand("a1", "alice", 300)

	repo := new(MockRepository[*asset.Asset])
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssetRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*asset.Asset")).
			Return(errs.NewObjectAlreadyExistsError("asset", "a1")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateAssetCommandHandler(assetFactory(func() commands.AssetUoW { return uow }))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertNotCalled(t, "Commit", ctx)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateAssetCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewCreateAssetCommand("a1", "alice", 300)

	repo := new(MockRepository[*asset.Asset])
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssetRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*asset.Asset")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateAssetCommandHandler(assetFactory(func() commands.AssetUoW { return uow }))
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}

func TestAssetHandlers_AgainstMemoryLedger(t *testing.T) {
	ctx := context.Background()
	ledger := newMemoryLedger()
	create := commands.NewCreateAssetCommandHandler(ledger.assets())
	update := commands.NewUpdateAssetCommandHandler(ledger.assets())

	t.Run("should create once", func(t *testing.T) {
		cmd, _ := commands.NewCreateAssetCommand("a1", "alice", 300)
		require.NoError(t, create.Handle(ctx, cmd))
		require.ErrorIs(t, create.Handle(ctx, cmd), errs.ErrObjectAlreadyExists)
	})

	t.Run("should overwrite an existing asset", func(t *testing.T) {
		cmd, _ := commands.NewUpdateAssetCommand("a1", "carol", 450)
		require.NoError(t, update.Handle(ctx, cmd))

		stored, err := ledger.provider().AssetRepository().Get(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "carol", stored.Owner())
		assert.Equal(t, 450, stored.Price())
	})

	t.Run("should not update an unknown asset", func(t *testing.T) {
		cmd, _ := commands.NewUpdateAssetCommand("ghost", "carol", 450)
		require.ErrorIs(t, update.Handle(ctx, cmd), errs.ErrObjectNotFound)

		exists, err := ledger.provider().AssetRepository().Exists(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
