package commands

import (
	"errors"
	"fmt"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/services"
	"supply/internal/pkg/errs"
	"supply/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to replace a pending order's line
// set as a whole. Partial line patching is not supported: the full
// replacement set is validated and gated exactly like a new order.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []services.LineRequest

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to replace an order's lines.
func NewEditOrderCommand(orderID kernel.UUID, lines []services.LineRequest) (EditOrderCommand, error) {
	command := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setLines(lines),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns the replacement line requests.
func (c EditOrderCommand) Lines() []services.LineRequest {
	return c.lines
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setLines(lines []services.LineRequest) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order must contain at least one line")
	}

	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("lines[%d].productID is required", i), err)
		}
		if err := line.WarehouseID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("lines[%d].warehouseID is required", i), err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("lines[%d].quantity is invalid", i),
				fmt.Errorf("%d is not greater than 0", line.Quantity),
			)
		}
	}

	c.lines = make([]services.LineRequest, len(lines))
	copy(c.lines, lines)
	return nil
}
