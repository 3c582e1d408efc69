package commands

import (
	"context"

	"assettransfer/internal/core/domain/model/asset"
)

// UpdateAssetCommandHandler overwrites an asset. It fails with
// errs.ObjectNotFoundError when the asset does not exist.
type UpdateAssetCommandHandler struct {
	uowFactory AssetUoWFactory
}

func NewUpdateAssetCommandHandler(uowFactory AssetUoWFactory) UpdateAssetCommandHandler {
	return UpdateAssetCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateAssetCommandHandler) Handle(ctx context.Context, cmd UpdateAssetCommand) error {
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

	if err = uow.AssetRepository().Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
