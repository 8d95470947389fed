package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var ErrItemAccessoryIsNotConstructed = errors.New("ItemAccessory must be created through its line item")

// ItemAccessory is an accessory or document required by one line item.
// Entries materialized from catalog defaults keep the per-unit quantity so they
// can be rescaled when the line quantity changes; custom entries carry an
// absolute quantity.
type ItemAccessory struct {
	id                    kernel.UUID
	accessoryID           kernel.UUID
	position              int
	unitQuantity          int
	requiredQuantity      int
	isVariable            bool
	variablePlaceholder   string
	variableValue         string
	isRequiredForDispatch bool
	isCustom              bool
	status                AccessoryStatus
	history               []AccessoryChange

	isConstructed bool
}

// ItemAccessoryRecord carries the stored fields of an item accessory.
type ItemAccessoryRecord struct {
	ID                    kernel.UUID
	AccessoryID           kernel.UUID
	Position              int
	UnitQuantity          int
	RequiredQuantity      int
	IsVariable            bool
	VariablePlaceholder   string
	VariableValue         string
	IsRequiredForDispatch bool
	IsCustom              bool
	Status                AccessoryStatus
}

func RestoreItemAccessory(r ItemAccessoryRecord, history []AccessoryChange) (*ItemAccessory, error) {
	if err := errors.Join(
		r.ID.Validate(),
		r.AccessoryID.Validate(),
		r.Status.Validate(),
		validatePositive("required quantity", r.RequiredQuantity),
	); err != nil {
		return nil, err
	}

	return &ItemAccessory{
		id:                    r.ID,
		accessoryID:           r.AccessoryID,
		position:              r.Position,
		unitQuantity:          r.UnitQuantity,
		requiredQuantity:      r.RequiredQuantity,
		isVariable:            r.IsVariable,
		variablePlaceholder:   r.VariablePlaceholder,
		variableValue:         r.VariableValue,
		isRequiredForDispatch: r.IsRequiredForDispatch,
		isCustom:              r.IsCustom,
		status:                r.Status,
		history:               slices.Clone(history),
		isConstructed:         true,
	}, nil
}

func (a *ItemAccessory) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrItemAccessoryIsNotConstructed
	}
	return nil
}

func (a *ItemAccessory) ID() kernel.UUID             { return a.id }
func (a *ItemAccessory) AccessoryID() kernel.UUID    { return a.accessoryID }
func (a *ItemAccessory) Position() int               { return a.position }
func (a *ItemAccessory) UnitQuantity() int           { return a.unitQuantity }
func (a *ItemAccessory) RequiredQuantity() int       { return a.requiredQuantity }
func (a *ItemAccessory) IsVariable() bool            { return a.isVariable }
func (a *ItemAccessory) VariablePlaceholder() string { return a.variablePlaceholder }
func (a *ItemAccessory) VariableValue() string       { return a.variableValue }
func (a *ItemAccessory) IsRequiredForDispatch() bool { return a.isRequiredForDispatch }
func (a *ItemAccessory) IsCustom() bool              { return a.isCustom }
func (a *ItemAccessory) Status() AccessoryStatus     { return a.status }
func (a *ItemAccessory) IsComplete() bool            { return a.status == Complete }
func (a *ItemAccessory) History() []AccessoryChange  { return slices.Clone(a.history) }
func (a *ItemAccessory) BlocksDispatch() bool        { return a.isRequiredForDispatch && !a.IsComplete() }

func (a *ItemAccessory) changeStatus(
	newStatus AccessoryStatus,
	variableValue *string,
	userID, notes string,
	at time.Time,
) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	value := a.variableValue
	if variableValue != nil {
		if !a.isVariable {
			return errs.NewValueIsInvalidErrorWithCause(
				"variable value is invalid",
				fmt.Errorf("accessory %s is not variable", a.accessoryID),
			)
		}
		value = strings.TrimSpace(*variableValue)
	}

	if newStatus == Complete && a.isVariable && value == "" {
		return errs.NewValueIsRequiredErrorWithCause(
			"variable value",
			fmt.Errorf("accessory %s cannot be completed without its value", a.accessoryID),
		)
	}

	if newStatus == a.status && value == a.variableValue {
		return errs.NewInvalidTransitionError("item accessory", a.status, newStatus)
	}

	a.history = append(a.history, AccessoryChange{
		ID:            kernel.NewUUID(),
		From:          a.status,
		To:            newStatus,
		VariableValue: value,
		UserID:        userID,
		Notes:         strings.TrimSpace(notes),
		ChangedAt:     at,
	})
	a.status = newStatus
	a.variableValue = value
	return nil
}

// rescale recomputes the required quantity of catalog-derived entries.
func (a *ItemAccessory) rescale(lineQuantity int) {
	if a.isCustom {
		return
	}
	a.requiredQuantity = a.unitQuantity * lineQuantity
}

func (a *ItemAccessory) changeQuantity(quantity int) error {
	if !a.isCustom {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			errors.New("catalog accessories follow the line item quantity"),
		)
	}
	if err := validatePositive("quantity", quantity); err != nil {
		return err
	}
	a.requiredQuantity = quantity
	return nil
}

func validatePositive(param string, value int) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			param+" is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return nil
}
