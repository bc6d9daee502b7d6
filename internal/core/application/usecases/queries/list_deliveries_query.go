package queries

import (
	"errors"
	"fmt"
	"slices"

	"crown/internal/core/domain/model/delivery"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/guard"
	"crown/internal/pkg/pagination"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery requests one page of deliveries. Sorting is limited to
// delivery.SortableProperties.
type ListDeliveriesQuery struct { //nolint:recvcheck //using for validation
	page pagination.PageRequest

	guard guard.ConstructorGuard
}

func NewListDeliveriesQuery(page pagination.PageRequest) (ListDeliveriesQuery, error) {
	query := ListDeliveriesQuery{guard: guard.NewConstructorGuard()}
	if err := query.setPage(page); err != nil {
		return ListDeliveriesQuery{}, err
	}
	return query, nil
}

func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

func (q ListDeliveriesQuery) Page() pagination.PageRequest {
	return q.page
}

func (q *ListDeliveriesQuery) setPage(page pagination.PageRequest) error {
	if err := page.Validate(); err != nil {
		return err
	}

	sortable := delivery.SortableProperties()
	for _, order := range page.Sort() {
		if !slices.Contains(sortable, order.Property) {
			return errs.NewValueIsInvalidErrorWithCause("sort",
				fmt.Errorf("no property %q found for type Delivery", order.Property))
		}
	}

	q.page = page
	return nil
}
