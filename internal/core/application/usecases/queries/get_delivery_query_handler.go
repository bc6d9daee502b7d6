package queries

import (
	"context"

	"crown/internal/core/domain/model/delivery"
	"crown/internal/core/ports"
)

// GetDeliveryQueryHandler reads one delivery from the repository.
// Absence is reported through the found flag, not as an error.
type GetDeliveryQueryHandler struct {
	repo ports.DeliveryRepository
}

func NewGetDeliveryQueryHandler(repo ports.DeliveryRepository) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{repo: repo}
}

func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (*delivery.Delivery, bool, error) {
	if err := query.Validate(); err != nil {
		return nil, false, err
	}

	return h.repo.FindByID(ctx, query.ID())
}
