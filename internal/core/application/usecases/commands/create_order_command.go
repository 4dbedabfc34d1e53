package commands

import (
	"errors"
	"fmt"
	"time"

	"supply/internal/core/domain/model/kernel"
	"supply/internal/core/domain/services"
	"supply/internal/pkg/errs"
	"supply/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a franchise's request to place a supply
// order: the requested lines plus delivery details. Prices and warehouse
// kinds are deliberately absent; the handler snapshots them from the
// catalog so the client can never dictate them.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, franchiseID,
//	    "12 rue de la Halle, 75001 Paris", deliveryDate, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	franchiseID     kernel.UUID
	deliveryAddress string
	deliveryDate    time.Time
	lines           []services.LineRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new supply order.
// Validates identifiers, the delivery address, and that every requested
// line carries valid references and a positive quantity. The delivery date
// may be zero, meaning "as soon as possible".
func NewCreateOrderCommand(
	orderID kernel.UUID,
	franchiseID kernel.UUID,
	deliveryAddress string,
	deliveryDate time.Time,
	lines []services.LineRequest,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		deliveryDate: deliveryDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setFranchiseID(franchiseID),
		command.setDeliveryAddress(deliveryAddress),
		command.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FranchiseID returns the ordering franchise.
func (c CreateOrderCommand) FranchiseID() kernel.UUID {
	return c.franchiseID
}

// DeliveryAddress returns the full delivery address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryDate returns the requested delivery date, possibly zero.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []services.LineRequest {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setFranchiseID(franchiseID kernel.UUID) error {
	if err := franchiseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("franchiseID is required", err)
	}

	c.franchiseID = franchiseID
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress is required")
	}

	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.LineRequest) error {
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
