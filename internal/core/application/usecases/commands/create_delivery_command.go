package commands

import (
	"errors"

	"crown/internal/core/domain/model/delivery"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrNewDeliveryHasID = errors.New("a new delivery cannot already have an ID")
)

// CreateDeliveryCommand requests that a delivery without an identifier be stored.
//
// Example:
//
//	d, _ := delivery.NewDelivery(attrs)
//	cmd, err := NewCreateDeliveryCommand(d)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery: %w", err)
//	}
//	saved, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	delivery *delivery.Delivery

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand rejects deliveries that already carry an identifier.
func NewCreateDeliveryCommand(d *delivery.Delivery) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDelivery(d); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

func (c CreateDeliveryCommand) Delivery() *delivery.Delivery {
	return c.delivery
}

func (c *CreateDeliveryCommand) setDelivery(d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.HasID() {
		return errs.NewValueIsInvalidErrorWithCause("id", ErrNewDeliveryHasID)
	}

	c.delivery = d
	return nil
}
