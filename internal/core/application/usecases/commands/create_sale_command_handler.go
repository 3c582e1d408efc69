package commands

import (
	"context"

	"assettransfer/internal/core/domain/model/sale"
)

type CreateSaleCommandHandler struct {
	uowFactory SaleUoWFactory
}

func NewCreateSaleCommandHandler(uowFactory SaleUoWFactory) CreateSaleCommandHandler {
	return CreateSaleCommandHandler{uowFactory: uowFactory}
}

func (h CreateSaleCommandHandler) Handle(ctx context.Context, cmd CreateSaleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := sale.NewSale(cmd.SaleID(), cmd.Details())
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

	if err = uow.SaleRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type UpdateSaleCommandHandler struct {
	uowFactory SaleUoWFactory
}

func NewUpdateSaleCommandHandler(uowFactory SaleUoWFactory) UpdateSaleCommandHandler {
	return UpdateSaleCommandHandler{uowFactory: uowFactory}
}

func (h UpdateSaleCommandHandler) Handle(ctx context.Context, cmd UpdateSaleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := sale.NewSale(cmd.SaleID(), cmd.Details())
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

	if err = uow.SaleRepository().Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
