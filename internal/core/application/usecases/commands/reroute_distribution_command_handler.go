package commands

import (
	"context"
)

// RerouteDistributionCommandHandler applies a partial shipper/location
// change. It fails with errs.ObjectNotModifiedError when the stored record
// already carries the requested values.
type RerouteDistributionCommandHandler struct {
	uowFactory DistributionUoWFactory
}

func NewRerouteDistributionCommandHandler(uowFactory DistributionUoWFactory) RerouteDistributionCommandHandler {
	return RerouteDistributionCommandHandler{uowFactory: uowFactory}
}

func (h RerouteDistributionCommandHandler) Handle(ctx context.Context, cmd RerouteDistributionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DistributionRepository()
	stored, err := repo.Get(ctx, cmd.DistributionID())
	if err != nil {
		return err
	}

	rerouted, err := stored.Reroute(cmd.Shipper(), cmd.Location())
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, rerouted); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
