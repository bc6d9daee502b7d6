package commands

import (
	"errors"

	"crown/internal/core/domain/model/delivery"
	"crown/internal/pkg/errs"
	"crown/internal/pkg/guard"
)

var ErrUpdateDeliveryCommandIsNotConstructed = errors.New(
	"UpdateDeliveryCommand must be created via NewUpdateDeliveryCommand constructor",
)

// UpdateDeliveryCommand replaces the stored state of the delivery with the same identifier,
// or stores it under that identifier when none exists yet.
type UpdateDeliveryCommand struct { //nolint:recvcheck //using for validation
	delivery *delivery.Delivery

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryCommand requires a delivery that carries an identifier.
func NewUpdateDeliveryCommand(d *delivery.Delivery) (UpdateDeliveryCommand, error) {
	cmd := UpdateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDelivery(d); err != nil {
		return UpdateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryCommandIsNotConstructed)
}

func (c UpdateDeliveryCommand) Delivery() *delivery.Delivery {
	return c.delivery
}

func (c *UpdateDeliveryCommand) setDelivery(d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.HasID() {
		return errs.NewValueIsRequiredError("id")
	}

	c.delivery = d
	return nil
}
