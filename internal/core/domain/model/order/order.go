package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/event"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	errDispatchPolicyIsRequired = errs.NewValueIsRequiredError("dispatch policy")
)

// DispatchPolicy decides whether an order may enter a dispatch-class status
// and whether one of its line items may move onto the dispatch production
// step. A non-nil error blocks the move.
type DispatchPolicy interface {
	Check(o *Order) error
	CheckLineItem(o *Order, item *LineItem) error
}

// Order is the aggregate root of a customer order. It owns its line items,
// their item accessories and all three audit trails.
//
// Order follows these invariants:
//   - status equals the To side of the last status history row
//   - every line item's step pointer equals the ToStep of its last production row
//   - total amount is the sum of line item totals and is kept up to date eagerly
//   - line items change only before production starts
type Order struct {
	event.Recorder

	id                   kernel.UUID
	number               Number
	customerID           kernel.UUID
	orderDate            time.Time
	expectedDeliveryDate time.Time
	status               Status
	totalAmount          kernel.Money
	notes                string
	lineItems            []*LineItem
	statusHistory        []StatusChange
	version              int

	isConstructed bool
}

// NewOrder creates a Draft order and writes the first status history row.
// Line items are added afterwards with AddLineItem.
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	orderDate time.Time,
	expectedDeliveryDate time.Time,
	notes string,
	userID string,
) (*Order, error) {
	o := &Order{
		status:        Draft,
		totalAmount:   kernel.ZeroMoney(),
		notes:         strings.TrimSpace(notes),
		lineItems:     make([]*LineItem, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setDates(orderDate, expectedDeliveryDate),
		requireUser(userID),
	); err != nil {
		return nil, err
	}

	o.statusHistory = []StatusChange{{
		ID:        kernel.NewUUID(),
		From:      Unknown,
		To:        Draft,
		UserID:    userID,
		Notes:     "Order created",
		ChangedAt: orderDate,
	}}
	o.Record(CreatedEvent{
		Base:       event.NewBase(CreatedEventType, id, orderDate),
		Number:     number.String(),
		CustomerID: customerID,
	})

	return o, nil
}

// Record carries the stored scalar fields of an order.
type Record struct {
	ID                   kernel.UUID
	Number               Number
	CustomerID           kernel.UUID
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	Status               Status
	Notes                string
	Version              int
}

// RestoreOrder rehydrates an order. The total is recomputed from the line items.
func RestoreOrder(r Record, lineItems []*LineItem, statusHistory []StatusChange) (*Order, error) {
	o := &Order{
		notes:         r.Notes,
		version:       r.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(r.ID),
		o.setNumber(r.Number),
		o.setCustomerID(r.CustomerID),
		o.setDates(r.OrderDate, r.ExpectedDeliveryDate),
		r.Status.Validate(),
	); err != nil {
		return nil, err
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = r.Status
	o.lineItems = slices.Clone(lineItems)
	slices.SortFunc(o.lineItems, func(a, b *LineItem) int {
		return a.position - b.position
	})
	o.statusHistory = slices.Clone(statusHistory)
	o.recalculateTotal()

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) Number() Number                  { return o.number }
func (o *Order) CustomerID() kernel.UUID         { return o.customerID }
func (o *Order) OrderDate() time.Time            { return o.orderDate }
func (o *Order) ExpectedDeliveryDate() time.Time { return o.expectedDeliveryDate }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) TotalAmount() kernel.Money       { return o.totalAmount }
func (o *Order) Notes() string                   { return o.notes }
func (o *Order) Version() int                    { return o.version }
func (o *Order) StatusHistory() []StatusChange   { return slices.Clone(o.statusHistory) }

// LineItems returns the line items in creation order.
func (o *Order) LineItems() []*LineItem {
	return slices.Clone(o.lineItems)
}

func (o *Order) LineItem(id kernel.UUID) (*LineItem, error) {
	for _, item := range o.lineItems {
		if item.id.IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line item", id.String())
}

// ItemAccessory finds an item accessory on any line item of the order.
func (o *Order) ItemAccessory(id kernel.UUID) (*LineItem, *ItemAccessory, error) {
	for _, item := range o.lineItems {
		if a, err := item.Accessory(id); err == nil {
			return item, a, nil
		}
	}
	return nil, nil, errs.NewObjectNotFoundError("item accessory", id.String())
}

// IsDelayed reports whether the order is past its expected delivery date at asOf
// without having been dispatched.
func (o *Order) IsDelayed(asOf time.Time) bool {
	return o.status.IsDelayable() && o.expectedDeliveryDate.Before(asOf)
}

// MarkPersisted is called by the repository after a successful save.
func (o *Order) MarkPersisted(version int) {
	o.version = version
}

// TransitionTo moves the order to target and appends a status history row.
// Moves into ReadyForDispatch or Dispatched, and skips straight to Completed,
// must pass policy first.
func (o *Order) TransitionTo(target Status, userID, notes string, at time.Time, policy DispatchPolicy) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if o.status.RequiresDispatchGate(next) {
		if policy == nil {
			return errDispatchPolicyIsRequired
		}
		if err = policy.Check(o); err != nil {
			return err
		}
	}

	previous := o.status
	o.status = next
	o.statusHistory = append(o.statusHistory, StatusChange{
		ID:        kernel.NewUUID(),
		From:      previous,
		To:        next,
		UserID:    userID,
		Notes:     strings.TrimSpace(notes),
		ChangedAt: at,
	})
	o.Record(StatusChangedEvent{
		Base:   event.NewBase(StatusChangedEventType, o.id, at),
		Number: o.number.String(),
		From:   previous.String(),
		To:     next.String(),
		UserID: userID,
	})
	return nil
}

// AddLineItem adds a line item for family, starting on firstStep, and copies the
// family's default accessories scaled by quantity. A nil unitPrice takes the
// family's base price.
func (o *Order) AddLineItem(
	id kernel.UUID,
	family *catalog.MachineFamily,
	quantity int,
	unitPrice *kernel.Money,
	firstStep *production.Step,
	userID string,
	at time.Time,
) (*LineItem, error) {
	if err := o.ensureLineItemsEditable(); err != nil {
		return nil, err
	}
	if err := errors.Join(requireUser(userID), family.Validate()); err != nil {
		return nil, err
	}
	if _, err := o.LineItem(id); err == nil {
		return nil, errs.NewDuplicateError("line item", id.String())
	}

	price := family.BasePrice()
	if unitPrice != nil {
		price = *unitPrice
	}

	item, err := newLineItem(id, family, o.nextLineItemPosition(), quantity, price, firstStep, userID, at)
	if err != nil {
		return nil, err
	}

	o.lineItems = append(o.lineItems, item)
	o.recalculateTotal()
	return item, nil
}

// RemoveLineItem drops a line item. The last line item cannot be removed.
func (o *Order) RemoveLineItem(id kernel.UUID) error {
	if err := o.ensureLineItemsEditable(); err != nil {
		return err
	}

	idx := slices.IndexFunc(o.lineItems, func(item *LineItem) bool { return item.id.IsEqual(id) })
	if idx < 0 {
		return errs.NewObjectNotFoundError("line item", id.String())
	}
	if len(o.lineItems) == 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"line items are invalid",
			errors.New("an order must keep at least one line item"),
		)
	}

	o.lineItems = slices.Delete(o.lineItems, idx, idx+1)
	o.recalculateTotal()
	return nil
}

// UpdateLineItem changes quantity and optionally unit price, rescales catalog
// accessories and recalculates totals.
func (o *Order) UpdateLineItem(id kernel.UUID, quantity int, unitPrice *kernel.Money) (*LineItem, error) {
	if err := o.ensureLineItemsEditable(); err != nil {
		return nil, err
	}

	item, err := o.LineItem(id)
	if err != nil {
		return nil, err
	}
	if err = item.update(quantity, unitPrice); err != nil {
		return nil, err
	}

	o.recalculateTotal()
	return item, nil
}

// AdvanceLineItem moves a line item to stepName (forward or same step) with state.
// Moving onto the dispatch step must pass policy for that line item first.
func (o *Order) AdvanceLineItem(
	lineItemID kernel.UUID,
	seq production.Sequence,
	stepName string,
	state ProductionState,
	userID, notes string,
	at time.Time,
	policy DispatchPolicy,
) (*LineItem, error) {
	if err := o.ensureOpen("line item"); err != nil {
		return nil, err
	}
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	item, err := o.LineItem(lineItemID)
	if err != nil {
		return nil, err
	}
	gate := func() error {
		if policy == nil {
			return errDispatchPolicyIsRequired
		}
		return policy.CheckLineItem(o, item)
	}
	if err = item.advance(seq, stepName, state, userID, notes, at, gate); err != nil {
		return nil, err
	}
	return item, nil
}

// AddCustomAccessory attaches an accessory that is not a catalog default.
// Attaching an accessory already on the line item fails with a DuplicateError.
func (o *Order) AddCustomAccessory(
	lineItemID, id, accessoryID kernel.UUID,
	quantity int,
	requiredForDispatch bool,
	userID string,
	at time.Time,
) (*ItemAccessory, error) {
	if err := o.ensureOpen("item accessory"); err != nil {
		return nil, err
	}
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	item, err := o.LineItem(lineItemID)
	if err != nil {
		return nil, err
	}
	return item.addCustomAccessory(id, accessoryID, quantity, requiredForDispatch, userID, at)
}

// ChangeCustomAccessoryQuantity sets the required quantity of a custom accessory.
func (o *Order) ChangeCustomAccessoryQuantity(itemAccessoryID kernel.UUID, quantity int) (*ItemAccessory, error) {
	if err := o.ensureOpen("item accessory"); err != nil {
		return nil, err
	}

	_, a, err := o.ItemAccessory(itemAccessoryID)
	if err != nil {
		return nil, err
	}
	if err = a.changeQuantity(quantity); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateItemAccessory sets the status and, for variable accessories, the value.
func (o *Order) UpdateItemAccessory(
	itemAccessoryID kernel.UUID,
	status AccessoryStatus,
	variableValue *string,
	userID, notes string,
	at time.Time,
) (*ItemAccessory, error) {
	if err := o.ensureOpen("item accessory"); err != nil {
		return nil, err
	}
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	_, a, err := o.ItemAccessory(itemAccessoryID)
	if err != nil {
		return nil, err
	}
	if err = a.changeStatus(status, variableValue, userID, notes, at); err != nil {
		return nil, err
	}
	return a, nil
}

func (o *Order) recalculateTotal() {
	total := kernel.ZeroMoney()
	for _, item := range o.lineItems {
		total = total.Add(item.totalPrice)
	}
	o.totalAmount = total
}

func (o *Order) ensureLineItemsEditable() error {
	if !o.status.AllowsLineItemChanges() {
		return errs.NewInvalidTransitionError("line items", o.status, stepLabel("edited"))
	}
	return nil
}

func (o *Order) ensureOpen(subject string) error {
	if o.status.IsClosed() {
		return errs.NewInvalidTransitionError(subject, o.status, stepLabel("changed"))
	}
	return nil
}

func (o *Order) nextLineItemPosition() int {
	highest := 0
	for _, item := range o.lineItems {
		highest = max(highest, item.position)
	}
	return highest + 1
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDates(orderDate, expectedDeliveryDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	if expectedDeliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("expected delivery date")
	}

	orderDay := orderDate.Truncate(24 * time.Hour)
	if expectedDeliveryDate.Before(orderDay) {
		return errs.NewValueIsInvalidErrorWithCause(
			"expected delivery date is invalid",
			fmt.Errorf("%s is before order date %s",
				expectedDeliveryDate.Format(time.DateOnly), orderDate.Format(time.DateOnly)),
		)
	}

	o.orderDate = orderDate
	o.expectedDeliveryDate = expectedDeliveryDate
	return nil
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errUserIsRequired
	}
	return nil
}
