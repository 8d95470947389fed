package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLineItemsAreRequired = errors.New("at least one line item is required")
)

// OrderLine describes one line item of a new order. A nil UnitPrice takes the
// family's base price.
type OrderLine struct {
	LineItemID kernel.UUID
	FamilyID   kernel.UUID
	Quantity   int
	UnitPrice  *kernel.Money
}

// CreateOrderCommand represents a request to open a new order for a customer.
// The order number is assigned by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(),
//	    customerID,
//	    []OrderLine{{LineItemID: kernel.NewUUID(), FamilyID: utmID, Quantity: 2}},
//	    time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
//	    "Export packing",
//	    "planner",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	customerID           kernel.UUID
	lines                []OrderLine
	expectedDeliveryDate time.Time
	notes                string
	userID               string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	lines []OrderLine,
	expectedDeliveryDate time.Time,
	notes, userID string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setExpectedDeliveryDate(expectedDeliveryDate),
		cmd.setUserID(userID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the requested line items in the order they will be created.
func (c CreateOrderCommand) Lines() []OrderLine {
	return slices.Clone(c.lines)
}

func (c CreateOrderCommand) ExpectedDeliveryDate() time.Time {
	return c.expectedDeliveryDate
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c CreateOrderCommand) UserID() string {
	return c.userID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLineItemsAreRequired
	}

	var lineErrs []error
	for i, line := range lines {
		if err := errors.Join(line.LineItemID.Validate(), line.FamilyID.Validate()); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i+1, err))
		}
		if line.Quantity <= 0 {
			lineErrs = append(lineErrs, fmt.Errorf(
				"line %d: %w", i+1, errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, "unbounded"),
			))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = slices.Clone(lines)
	return nil
}

func (c *CreateOrderCommand) setExpectedDeliveryDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("expected delivery date")
	}
	c.expectedDeliveryDate = date
	return nil
}

func (c *CreateOrderCommand) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	c.userID = userID
	return nil
}
