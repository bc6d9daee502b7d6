package commands

import (
	"context"

	"crown/internal/core/domain/model/delivery"
)

// UpdateDeliveryCommandHandler replaces stored deliveries (upsert, full replace).
type UpdateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewUpdateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryCommandHandler {
	return UpdateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle saves the delivery inside a transaction and returns the stored state.
func (h *UpdateDeliveryCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return saveInUnitOfWork(ctx, h.uowFactory, cmd.Delivery())
}
