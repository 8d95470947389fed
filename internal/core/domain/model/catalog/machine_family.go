package catalog

import (
	"errors"
	"slices"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var ErrMachineFamilyIsNotConstructed = errors.New("MachineFamily must be created via NewMachineFamily constructor")

// MachineFamily is a catalog product such as "UTM" or a grouping such as a
// documents bundle (IsProduct false). It owns its default accessory links.
type MachineFamily struct {
	id          kernel.UUID
	name        string
	description string
	isProduct   bool
	basePrice   kernel.Money
	defaults    []*DefaultAccessory
	version     int

	isConstructed bool
}

func NewMachineFamily(
	id kernel.UUID,
	name string,
	description string,
	isProduct bool,
	basePrice kernel.Money,
) (*MachineFamily, error) {
	f := &MachineFamily{
		isProduct:     isProduct,
		defaults:      make([]*DefaultAccessory, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}
	f.description = strings.TrimSpace(description)

	return f, nil
}

// RestoreMachineFamily rehydrates a family with its links and the version it
// was stored at.
func RestoreMachineFamily(
	id kernel.UUID,
	name string,
	description string,
	isProduct bool,
	basePrice kernel.Money,
	defaults []*DefaultAccessory,
	version int,
) (*MachineFamily, error) {
	f, err := NewMachineFamily(id, name, description, isProduct, basePrice)
	if err != nil {
		return nil, err
	}

	for _, d := range defaults {
		if err = d.Validate(); err != nil {
			return nil, err
		}
	}
	f.defaults = slices.Clone(defaults)
	f.sortDefaults()
	f.version = version

	return f, nil
}

func (f *MachineFamily) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrMachineFamilyIsNotConstructed
	}
	return nil
}

func (f *MachineFamily) IsEqual(other *MachineFamily) bool {
	return other != nil && f.id.IsEqual(other.id)
}

func (f *MachineFamily) ID() kernel.UUID {
	return f.id
}

func (f *MachineFamily) Name() string {
	return f.name
}

func (f *MachineFamily) Description() string {
	return f.description
}

func (f *MachineFamily) IsProduct() bool {
	return f.isProduct
}

func (f *MachineFamily) BasePrice() kernel.Money {
	return f.basePrice
}

// Version is the stored version the family was loaded at, 0 before the first save.
func (f *MachineFamily) Version() int {
	return f.version
}

// MarkPersisted is called by the repository after a successful save.
func (f *MachineFamily) MarkPersisted(version int) {
	f.version = version
}

// DefaultAccessories returns the links in the order they were first created.
func (f *MachineFamily) DefaultAccessories() []*DefaultAccessory {
	return slices.Clone(f.defaults)
}

// UpdateDetails changes everything but the name, which is the upsert key.
func (f *MachineFamily) UpdateDetails(description string, isProduct bool, basePrice kernel.Money) error {
	if err := f.setBasePrice(basePrice); err != nil {
		return err
	}
	f.description = strings.TrimSpace(description)
	f.isProduct = isProduct
	return nil
}

// LinkAccessory creates the link to accessoryID or, when it already exists,
// overwrites its attributes. It returns the resulting link.
func (f *MachineFamily) LinkAccessory(id, accessoryID kernel.UUID, terms LinkTerms) (*DefaultAccessory, error) {
	if existing := f.findDefault(accessoryID); existing != nil {
		if err := existing.setTerms(terms); err != nil {
			return nil, err
		}
		return existing, nil
	}

	link, err := newDefaultAccessory(id, accessoryID, f.nextPosition(), terms)
	if err != nil {
		return nil, err
	}
	f.defaults = append(f.defaults, link)
	return link, nil
}

func (f *MachineFamily) UnlinkAccessory(accessoryID kernel.UUID) error {
	for i, d := range f.defaults {
		if d.accessoryID.IsEqual(accessoryID) {
			f.defaults = slices.Delete(f.defaults, i, i+1)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("default accessory", accessoryID.String())
}

func (f *MachineFamily) findDefault(accessoryID kernel.UUID) *DefaultAccessory {
	for _, d := range f.defaults {
		if d.accessoryID.IsEqual(accessoryID) {
			return d
		}
	}
	return nil
}

func (f *MachineFamily) nextPosition() int {
	highest := 0
	for _, d := range f.defaults {
		highest = max(highest, d.position)
	}
	return highest + 1
}

func (f *MachineFamily) sortDefaults() {
	slices.SortFunc(f.defaults, func(a, b *DefaultAccessory) int {
		return a.position - b.position
	})
}

func (f *MachineFamily) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *MachineFamily) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("family name")
	}
	f.name = name
	return nil
}

func (f *MachineFamily) setBasePrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	f.basePrice = price
	return nil
}
