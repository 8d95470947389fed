package catalog

import (
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var ErrDefaultAccessoryIsNotConstructed = errors.New(
	"DefaultAccessory must be created via MachineFamily.LinkAccessory",
)

// LinkTerms carries the attributes of a family to accessory link.
type LinkTerms struct {
	DefaultQuantity       int
	IsVariable            bool
	VariablePlaceholder   string
	IsRequiredForDispatch bool
}

// DefaultAccessory links a machine family to an accessory every unit of the
// family ships with. Position records link order so materialization is stable.
type DefaultAccessory struct {
	id          kernel.UUID
	accessoryID kernel.UUID
	position    int
	terms       LinkTerms

	isConstructed bool
}

func newDefaultAccessory(id, accessoryID kernel.UUID, position int, terms LinkTerms) (*DefaultAccessory, error) {
	link := &DefaultAccessory{
		position:      position,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		accessoryID.Validate(),
		link.setTerms(terms),
	); err != nil {
		return nil, err
	}

	link.id = id
	link.accessoryID = accessoryID
	return link, nil
}

// RestoreDefaultAccessory rehydrates a link loaded from storage.
func RestoreDefaultAccessory(id, accessoryID kernel.UUID, position int, terms LinkTerms) (*DefaultAccessory, error) {
	return newDefaultAccessory(id, accessoryID, position, terms)
}

func (d *DefaultAccessory) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDefaultAccessoryIsNotConstructed
	}
	return nil
}

func (d *DefaultAccessory) ID() kernel.UUID {
	return d.id
}

func (d *DefaultAccessory) AccessoryID() kernel.UUID {
	return d.accessoryID
}

func (d *DefaultAccessory) Position() int {
	return d.position
}

func (d *DefaultAccessory) DefaultQuantity() int {
	return d.terms.DefaultQuantity
}

func (d *DefaultAccessory) IsVariable() bool {
	return d.terms.IsVariable
}

func (d *DefaultAccessory) VariablePlaceholder() string {
	return d.terms.VariablePlaceholder
}

func (d *DefaultAccessory) IsRequiredForDispatch() bool {
	return d.terms.IsRequiredForDispatch
}

func (d *DefaultAccessory) Terms() LinkTerms {
	return d.terms
}

func (d *DefaultAccessory) setTerms(terms LinkTerms) error {
	if terms.DefaultQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"default quantity is invalid",
			fmt.Errorf("%d is not greater than 0", terms.DefaultQuantity),
		)
	}

	terms.VariablePlaceholder = strings.TrimSpace(terms.VariablePlaceholder)
	if !terms.IsVariable && terms.VariablePlaceholder != "" {
		return errs.NewValueIsInvalidErrorWithCause(
			"variable placeholder is invalid",
			errors.New("placeholder is only allowed on variable accessories"),
		)
	}

	d.terms = terms
	return nil
}
