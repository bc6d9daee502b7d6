// Package memory provides in-process implementations of the delivery persistence ports.
// It backs the "memory" storage driver and the HTTP tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"crown/internal/core/domain/model/delivery"
	"crown/internal/core/domain/model/kernel"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/pagination"
)

// DeliveryRepository keeps deliveries in a map guarded by a RWMutex.
// Stored values are immutable aggregates, so they are shared without copying.
type DeliveryRepository struct {
	mu         sync.RWMutex
	deliveries map[string]*delivery.Delivery
}

func NewDeliveryRepository() *DeliveryRepository {
	return &DeliveryRepository{
		deliveries: make(map[string]*delivery.Delivery),
	}
}

func (r *DeliveryRepository) Save(ctx context.Context, d *delivery.Delivery) (*delivery.Delivery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	stored := d
	if !d.HasID() {
		var err error
		if stored, err = d.WithID(kernel.NewUUID().String()); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.deliveries[stored.ID()] = stored

	return stored, nil
}

func (r *DeliveryRepository) FindAll(
	ctx context.Context,
	req pagination.PageRequest,
) (pagination.Page[*delivery.Delivery], error) {
	if err := ctx.Err(); err != nil {
		return pagination.Page[*delivery.Delivery]{}, err
	}
	if err := req.Validate(); err != nil {
		return pagination.Page[*delivery.Delivery]{}, err
	}

	compare, err := comparatorFor(req.Sort())
	if err != nil {
		return pagination.Page[*delivery.Delivery]{}, err
	}

	r.mu.RLock()
	all := make([]*delivery.Delivery, 0, len(r.deliveries))
	for _, d := range r.deliveries {
		all = append(all, d)
	}
	r.mu.RUnlock()

	slices.SortStableFunc(all, compare)

	total := int64(len(all))
	start := min(req.Offset(), len(all))
	end := min(start+req.Size(), len(all))

	return pagination.NewPage(all[start:end], req, total), nil
}

func (r *DeliveryRepository) FindByID(ctx context.Context, id string) (*delivery.Delivery, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.deliveries[id]
	return d, ok, nil
}

func (r *DeliveryRepository) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.deliveries, id)
	return nil
}

type deliveryComparator func(a, b *delivery.Delivery) int

// comparatorFor chains the requested orders and breaks remaining ties by id,
// which keeps pages stable across requests.
func comparatorFor(orders []pagination.Order) (deliveryComparator, error) {
	chain := make([]deliveryComparator, 0, len(orders)+1)
	for _, order := range orders {
		c, ok := propertyComparators[order.Property]
		if !ok {
			return nil, errs.NewValueIsInvalidError("sort: " + order.Property)
		}
		if order.Direction == pagination.Desc {
			asc := c
			c = func(a, b *delivery.Delivery) int { return asc(b, a) }
		}
		chain = append(chain, c)
	}
	chain = append(chain, propertyComparators[delivery.PropertyID])

	return func(a, b *delivery.Delivery) int {
		for _, c := range chain {
			if result := c(a, b); result != 0 {
				return result
			}
		}
		return 0
	}, nil
}

var propertyComparators = map[string]deliveryComparator{
	delivery.PropertyID:          byString((*delivery.Delivery).ID),
	delivery.PropertyOrderNumber: byString((*delivery.Delivery).OrderNumber),
	delivery.PropertyRecipient:   byString((*delivery.Delivery).Recipient),
	delivery.PropertyAddress:     byString((*delivery.Delivery).Address),
	delivery.PropertyStatus: byString(func(d *delivery.Delivery) string {
		return d.Status().String()
	}),
	delivery.PropertyCourier:     byString((*delivery.Delivery).Courier),
	delivery.PropertyScheduledAt: byTime((*delivery.Delivery).ScheduledAt),
	delivery.PropertyDeliveredAt: byTime((*delivery.Delivery).DeliveredAt),
}

func byString(get func(*delivery.Delivery) string) deliveryComparator {
	return func(a, b *delivery.Delivery) int {
		return cmp.Compare(get(a), get(b))
	}
}

// byTime orders unset timestamps last, as PostgreSQL does for ascending NULLs.
func byTime(get func(*delivery.Delivery) *time.Time) deliveryComparator {
	return func(a, b *delivery.Delivery) int {
		ta, tb := get(a), get(b)
		switch {
		case ta == nil && tb == nil:
			return 0
		case ta == nil:
			return 1
		case tb == nil:
			return -1
		default:
			return ta.Compare(*tb)
		}
	}
}
