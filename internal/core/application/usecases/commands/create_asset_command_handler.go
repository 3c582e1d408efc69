package commands

import (
	"context"

	"assettransfer/internal/core/domain/model/asset"
)

// CreateAssetCommandHandler stores a new asset. It fails with
// errs.ObjectAlreadyExistsError when the product identifier is taken.
type CreateAssetCommandHandler struct {
	uowFactory AssetUoWFactory
}

func NewCreateAssetCommandHandler(uowFactory AssetUoWFactory) CreateAssetCommandHandler {
	return CreateAssetCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateAssetCommandHandler) Handle(ctx context.Context, cmd CreateAssetCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	a, err := asset.NewAsset(cmd.ProductID(), cmd.Owner(), cmd.Price())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AssetRepository().Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
