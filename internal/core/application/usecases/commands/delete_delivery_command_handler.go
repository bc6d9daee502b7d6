package commands

import (
	"context"
)

// DeleteDeliveryCommandHandler removes deliveries without checking that they exist.
type DeleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewDeleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) DeleteDeliveryCommandHandler {
	return DeleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes by identifier inside a transaction.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
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

	if err := uow.DeliveryRepository().DeleteByID(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
