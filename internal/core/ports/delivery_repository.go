// Package ports defines the persistence contracts of the delivery domain.
// Adapters under internal/adapters/out implement them; the application layer depends
// only on these interfaces.
package ports

import (
	"context"

	"crown/internal/core/domain/model/delivery"
	"crown/internal/pkg/pagination"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Save inserts or replaces a delivery and returns the stored state.
	// A delivery without an identifier receives a newly generated one.
	Save(ctx context.Context, d *delivery.Delivery) (*delivery.Delivery, error)

	// FindAll returns one page of deliveries ordered as requested, together with
	// the total number of stored deliveries.
	FindAll(ctx context.Context, req pagination.PageRequest) (pagination.Page[*delivery.Delivery], error)

	// FindByID reports found=false, with a nil error, when no delivery has the id.
	FindByID(ctx context.Context, id string) (d *delivery.Delivery, found bool, err error)

	// DeleteByID removes the delivery if it exists. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id string) error
}
