package commands

import (
	"errors"
	"strings"

	"crown/internal/pkg/errs"
	"crown/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand removes a delivery by identifier. The identifier does not
// have to exist.
type DeleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	id string

	guard guard.ConstructorGuard
}

func NewDeleteDeliveryCommand(id string) (DeleteDeliveryCommand, error) {
	cmd := DeleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setID(id); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

func (c DeleteDeliveryCommand) ID() string {
	return c.id
}

func (c *DeleteDeliveryCommand) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errs.NewValueIsRequiredError("id")
	}

	c.id = id
	return nil
}
