package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrUpdateLineItemCommandIsNotConstructed = errors.New(
	"UpdateLineItemCommand must be created via NewUpdateLineItemCommand constructor",
)

// UpdateLineItemCommand changes the quantity of a line item and, when
// unitPrice is not nil, its unit price.
type UpdateLineItemCommand struct { //nolint:recvcheck //using for validation
	lineItemID kernel.UUID
	quantity   int
	unitPrice  *kernel.Money

	guard guard.ConstructorGuard
}

func NewUpdateLineItemCommand(
	lineItemID kernel.UUID,
	quantity int,
	unitPrice *kernel.Money,
) (UpdateLineItemCommand, error) {
	var quantityErr, priceErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if unitPrice != nil {
		priceErr = unitPrice.Validate()
	}

	if err := errors.Join(lineItemID.Validate(), quantityErr, priceErr); err != nil {
		return UpdateLineItemCommand{}, err
	}

	return UpdateLineItemCommand{
		lineItemID: lineItemID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemCommandIsNotConstructed)
}

func (c UpdateLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c UpdateLineItemCommand) Quantity() int {
	return c.quantity
}

func (c UpdateLineItemCommand) UnitPrice() *kernel.Money {
	return c.unitPrice
}
