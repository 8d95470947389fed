package order

import (
	"errors"
	"slices"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/production"
	"orderflow/internal/pkg/errs"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via Order.AddLineItem")

// LineItem is one machine family ordered in a given quantity. It progresses
// through the production sequence independently of its siblings.
type LineItem struct {
	id              kernel.UUID
	familyID        kernel.UUID
	position        int
	quantity        int
	unitPrice       kernel.Money
	totalPrice      kernel.Money
	currentStepID   kernel.UUID
	currentStepName string
	productionState ProductionState
	accessories     []*ItemAccessory
	history         []ProductionChange

	isConstructed bool
}

// LineItemRecord carries the stored fields of a line item.
type LineItemRecord struct {
	ID              kernel.UUID
	FamilyID        kernel.UUID
	Position        int
	Quantity        int
	UnitPrice       kernel.Money
	CurrentStepID   kernel.UUID
	CurrentStepName string
	ProductionState ProductionState
}

func newLineItem(
	id kernel.UUID,
	family *catalog.MachineFamily,
	position int,
	quantity int,
	unitPrice kernel.Money,
	firstStep *production.Step,
	userID string,
	at time.Time,
) (*LineItem, error) {
	if err := errors.Join(
		id.Validate(),
		family.Validate(),
		firstStep.Validate(),
		validatePositive("quantity", quantity),
		unitPrice.Validate(),
	); err != nil {
		return nil, err
	}

	item := &LineItem{
		id:              id,
		familyID:        family.ID(),
		position:        position,
		quantity:        quantity,
		unitPrice:       unitPrice,
		currentStepID:   firstStep.ID(),
		currentStepName: firstStep.Name(),
		productionState: Active,
		isConstructed:   true,
	}
	item.recalculateTotal()
	item.materializeDefaultAccessories(family.DefaultAccessories(), userID, at)
	item.history = append(item.history, ProductionChange{
		ID:        kernel.NewUUID(),
		ToStep:    firstStep.Name(),
		State:     Active,
		UserID:    userID,
		Notes:     "Line item created",
		ChangedAt: at,
	})

	return item, nil
}

func RestoreLineItem(r LineItemRecord, accessories []*ItemAccessory, history []ProductionChange) (*LineItem, error) {
	if err := errors.Join(
		r.ID.Validate(),
		r.FamilyID.Validate(),
		r.CurrentStepID.Validate(),
		r.ProductionState.Validate(),
		validatePositive("quantity", r.Quantity),
		r.UnitPrice.Validate(),
	); err != nil {
		return nil, err
	}
	for _, a := range accessories {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	item := &LineItem{
		id:              r.ID,
		familyID:        r.FamilyID,
		position:        r.Position,
		quantity:        r.Quantity,
		unitPrice:       r.UnitPrice,
		currentStepID:   r.CurrentStepID,
		currentStepName: r.CurrentStepName,
		productionState: r.ProductionState,
		accessories:     slices.Clone(accessories),
		history:         slices.Clone(history),
		isConstructed:   true,
	}
	slices.SortFunc(item.accessories, func(a, b *ItemAccessory) int {
		return a.position - b.position
	})
	item.recalculateTotal()

	return item, nil
}

func (l *LineItem) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

func (l *LineItem) ID() kernel.UUID                       { return l.id }
func (l *LineItem) FamilyID() kernel.UUID                 { return l.familyID }
func (l *LineItem) Position() int                         { return l.position }
func (l *LineItem) Quantity() int                         { return l.quantity }
func (l *LineItem) UnitPrice() kernel.Money               { return l.unitPrice }
func (l *LineItem) TotalPrice() kernel.Money              { return l.totalPrice }
func (l *LineItem) CurrentStepID() kernel.UUID            { return l.currentStepID }
func (l *LineItem) CurrentStepName() string               { return l.currentStepName }
func (l *LineItem) ProductionState() ProductionState      { return l.productionState }
func (l *LineItem) ProductionHistory() []ProductionChange { return slices.Clone(l.history) }

// Accessories returns the item accessories in creation order.
func (l *LineItem) Accessories() []*ItemAccessory {
	return slices.Clone(l.accessories)
}

func (l *LineItem) Accessory(id kernel.UUID) (*ItemAccessory, error) {
	for _, a := range l.accessories {
		if a.id.IsEqual(id) {
			return a, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("item accessory", id.String())
}

func (l *LineItem) materializeDefaultAccessories(defaults []*catalog.DefaultAccessory, userID string, at time.Time) {
	for _, d := range defaults {
		a := &ItemAccessory{
			id:                    kernel.NewUUID(),
			accessoryID:           d.AccessoryID(),
			position:              l.nextAccessoryPosition(),
			unitQuantity:          d.DefaultQuantity(),
			requiredQuantity:      d.DefaultQuantity() * l.quantity,
			isVariable:            d.IsVariable(),
			variablePlaceholder:   d.VariablePlaceholder(),
			isRequiredForDispatch: d.IsRequiredForDispatch(),
			status:                Pending,
			isConstructed:         true,
		}
		a.history = []AccessoryChange{{
			ID:        kernel.NewUUID(),
			From:      UnknownAccessoryStatus,
			To:        Pending,
			UserID:    userID,
			Notes:     "Materialized from catalog",
			ChangedAt: at,
		}}
		l.accessories = append(l.accessories, a)
	}
}

func (l *LineItem) addCustomAccessory(
	id, accessoryID kernel.UUID,
	quantity int,
	requiredForDispatch bool,
	userID string,
	at time.Time,
) (*ItemAccessory, error) {
	if err := errors.Join(
		id.Validate(),
		accessoryID.Validate(),
		validatePositive("quantity", quantity),
	); err != nil {
		return nil, err
	}

	for _, existing := range l.accessories {
		if existing.accessoryID.IsEqual(accessoryID) {
			return nil, errs.NewDuplicateError("accessory", accessoryID.String())
		}
	}

	a := &ItemAccessory{
		id:                    id,
		accessoryID:           accessoryID,
		position:              l.nextAccessoryPosition(),
		requiredQuantity:      quantity,
		isRequiredForDispatch: requiredForDispatch,
		isCustom:              true,
		status:                Pending,
		history: []AccessoryChange{{
			ID:        kernel.NewUUID(),
			From:      UnknownAccessoryStatus,
			To:        Pending,
			UserID:    userID,
			Notes:     "Custom accessory added",
			ChangedAt: at,
		}},
		isConstructed: true,
	}
	l.accessories = append(l.accessories, a)
	return a, nil
}

// advance moves the step pointer forward (or keeps it) and records the change.
// dispatchGate runs before the pointer moves onto the dispatch step.
func (l *LineItem) advance(
	seq production.Sequence,
	stepName string,
	state ProductionState,
	userID, notes string,
	at time.Time,
	dispatchGate func() error,
) error {
	if err := state.Validate(); err != nil {
		return err
	}

	target, err := seq.StepByName(strings.TrimSpace(stepName))
	if err != nil {
		return err
	}
	current, err := seq.StepByID(l.currentStepID)
	if err != nil {
		return err
	}

	if target.OrderIndex() < current.OrderIndex() {
		return errs.NewInvalidTransitionError("line item", stepLabel(current.Name()), stepLabel(target.Name()))
	}
	sameStep := target.IsEqual(current)
	if state == OnHold && !sameStep {
		return errs.NewInvalidTransitionError("line item", stepLabel(current.Name()), stepLabel(target.Name()+" (On Hold)"))
	}
	if sameStep && state == l.productionState {
		return errs.NewInvalidTransitionError("line item", stepLabel(current.Name()), stepLabel(target.Name()))
	}
	if target.IsDispatchStep() && !sameStep {
		if err = dispatchGate(); err != nil {
			return err
		}
	}

	l.history = append(l.history, ProductionChange{
		ID:        kernel.NewUUID(),
		FromStep:  current.Name(),
		ToStep:    target.Name(),
		State:     state,
		UserID:    userID,
		Notes:     strings.TrimSpace(notes),
		ChangedAt: at,
	})
	l.currentStepID = target.ID()
	l.currentStepName = target.Name()
	l.productionState = state
	return nil
}

func (l *LineItem) update(quantity int, unitPrice *kernel.Money) error {
	if err := validatePositive("quantity", quantity); err != nil {
		return err
	}
	if unitPrice != nil {
		if err := unitPrice.Validate(); err != nil {
			return err
		}
		l.unitPrice = *unitPrice
	}

	l.quantity = quantity
	for _, a := range l.accessories {
		a.rescale(quantity)
	}
	l.recalculateTotal()
	return nil
}

func (l *LineItem) recalculateTotal() {
	l.totalPrice = l.unitPrice.Times(l.quantity)
}

func (l *LineItem) nextAccessoryPosition() int {
	highest := 0
	for _, a := range l.accessories {
		highest = max(highest, a.position)
	}
	return highest + 1
}
