package commands

import (
	"errors"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/guard"
)

var ErrValidateOrderCommandIsNotConstructed = errors.New(
	"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
)

// ValidateOrderCommand represents a request to validate a pending order.
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewValidateOrderCommand creates a command to validate an order.
func NewValidateOrderCommand(orderID kernel.UUID) (ValidateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ValidateOrderCommand{}, err
	}

	return ValidateOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

// OrderID returns the order to validate.
func (c ValidateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
