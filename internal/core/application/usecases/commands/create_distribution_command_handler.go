package commands

import (
	"context"

	"assettransfer/internal/core/domain/model/distribution"
)

type CreateDistributionCommandHandler struct {
	uowFactory DistributionUoWFactory
}

func NewCreateDistributionCommandHandler(uowFactory DistributionUoWFactory) CreateDistributionCommandHandler {
	return CreateDistributionCommandHandler{uowFactory: uowFactory}
}

func (h CreateDistributionCommandHandler) Handle(ctx context.Context, cmd CreateDistributionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := distribution.NewDistribution(cmd.DistributionID(), cmd.Details())
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

	if err = uow.DistributionRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateDistributionCommandHandler struct {
	uowFactory DistributionUoWFactory
}

func NewUpdateDistributionCommandHandler(uowFactory DistributionUoWFactory) UpdateDistributionCommandHandler {
	return UpdateDistributionCommandHandler{uowFactory: uowFactory}
}

func (h UpdateDistributionCommandHandler) Handle(ctx context.Context, cmd UpdateDistributionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := distribution.NewDistribution(cmd.DistributionID(), cmd.Details())
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

	if err = uow.DistributionRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
