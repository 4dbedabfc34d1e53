package commands

import (
	"errors"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/pkg/guard"
)

var ErrPrepareOrderCommandIsNotConstructed = errors.New(
	"PrepareOrderCommand must be created via NewPrepareOrderCommand constructor",
)

// PrepareOrderCommand represents a request to mark a validated order as
// picked by the warehouse teams.
type PrepareOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPrepareOrderCommand creates a command to prepare an order.
func NewPrepareOrderCommand(orderID kernel.UUID) (PrepareOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PrepareOrderCommand{}, err
	}

	return PrepareOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PrepareOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareOrderCommandIsNotConstructed)
}

// OrderID returns the order to prepare.
func (c PrepareOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
