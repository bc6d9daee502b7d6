package commands

import (
	"context"

	"crown/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler stores new deliveries.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	saved, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	fmt.Println(saved.ID()) // generated by the repository
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle saves the delivery inside a transaction and returns it with its new identifier.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return saveInUnitOfWork(ctx, h.uowFactory, cmd.Delivery())
}

// saveInUnitOfWork performs exactly one Save inside its own transaction.
func saveInUnitOfWork(ctx context.Context, factory DeliveryUoWFactory, d *delivery.Delivery) (*delivery.Delivery, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saved, err := uow.DeliveryRepository().Save(ctx, d)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
