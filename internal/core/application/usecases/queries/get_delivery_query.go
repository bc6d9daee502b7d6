// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
package queries

import (
	"errors"
	"strings"

	"crown/internal/pkg/errs"
	"crown/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery looks up a single delivery by identifier.
//
// Example:
//
//	query, err := NewGetDeliveryQuery(id)
//	if err != nil {
//	    return err
//	}
//	d, found, err := handler.Handle(ctx, query)
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	id string

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(id string) (GetDeliveryQuery, error) {
	query := GetDeliveryQuery{guard: guard.NewConstructorGuard()}
	if err := query.setID(id); err != nil {
		return GetDeliveryQuery{}, err
	}
	return query, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) ID() string {
	return q.id
}

func (q *GetDeliveryQuery) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}
	q.id = id
	return nil
}
