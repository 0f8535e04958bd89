package commands

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/product"
	"pos/internal/pkg/errs"
)

// SaveProductCommandHandler handles catalog writes with upsert semantics:
// an existing product is updated in place, an unknown id creates a new one.
type SaveProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSaveProductCommandHandler creates a handler for catalog writes.
func NewSaveProductCommandHandler(uowFactory ProductUoWFactory) SaveProductCommandHandler {
	return SaveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save product command.
func (h SaveProductCommandHandler) Handle(ctx context.Context, command SaveProductCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	price, err := kernel.NewMoney(command.Price())
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

	productRepo := uow.ProductRepository()

	existing, err := productRepo.Get(ctx, command.ProductID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		created, buildErr := product.NewProduct(command.ProductID(), command.Name(),
			price, command.Stock(), command.Category(), command.Attrs())
		if buildErr != nil {
			return buildErr
		}
		if err = productRepo.Add(ctx, created); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = existing.Update(command.Name(), price, command.Stock(),
			command.Category(), command.Attrs()); err != nil {
			return err
		}
		if err = productRepo.Update(ctx, existing); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
