package queries

import (
	"context"

	"crown/internal/core/domain/model/delivery"
	"crown/internal/core/ports"
	"crown/internal/pkg/pagination"
)

// ListDeliveriesQueryHandler reads a page of deliveries from the repository.
//
// Example:
//
//	req, _ := pagination.NewPageRequest(0, 20, pagination.DefaultMaxSize, nil)
//	query, _ := NewListDeliveriesQuery(req)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d of %d deliveries\n", len(page.Content), page.TotalElements)
type ListDeliveriesQueryHandler struct {
	repo ports.DeliveryRepository
}

func NewListDeliveriesQueryHandler(repo ports.DeliveryRepository) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{repo: repo}
}

func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) (pagination.Page[*delivery.Delivery], error) {
	if err := query.Validate(); err != nil {
		return pagination.Page[*delivery.Delivery]{}, err
	}

	return h.repo.FindAll(ctx, query.Page())
}
