package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/event"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var ErrAccessoryIsNotConstructed = errors.New("Accessory must be created via NewAccessory constructor")

// Details are the catalog attributes of an accessory that an upsert may change.
type Details struct {
	Name          string
	Description   string
	Category      string
	UnitOfMeasure string
	MinStockLevel int
	Price         kernel.Money
}

// Accessory is an inventory item: a part, bought-out component or document.
//
// currentStockLevel only changes through RecordMovement, which also produces the
// ledger entry explaining the change. Version is bumped by the repository on
// every successful save and guards against concurrent movements.
type Accessory struct {
	event.Recorder

	id                kernel.UUID
	sku               string
	details           Details
	currentStockLevel int
	version           int

	pendingMovements []*StockMovement

	isConstructed bool
}

func NewAccessory(id kernel.UUID, sku string, details Details) (*Accessory, error) {
	a := &Accessory{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setSKU(sku),
		a.setDetails(details),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccessory rehydrates an accessory with its cached level and version.
func RestoreAccessory(id kernel.UUID, sku string, details Details, currentStockLevel, version int) (*Accessory, error) {
	a, err := NewAccessory(id, sku, details)
	if err != nil {
		return nil, err
	}
	a.currentStockLevel = currentStockLevel
	a.version = version
	return a, nil
}

func (a *Accessory) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccessoryIsNotConstructed
	}
	return nil
}

func (a *Accessory) IsEqual(other *Accessory) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Accessory) ID() kernel.UUID        { return a.id }
func (a *Accessory) SKU() string            { return a.sku }
func (a *Accessory) Name() string           { return a.details.Name }
func (a *Accessory) Description() string    { return a.details.Description }
func (a *Accessory) Category() string       { return a.details.Category }
func (a *Accessory) UnitOfMeasure() string  { return a.details.UnitOfMeasure }
func (a *Accessory) MinStockLevel() int     { return a.details.MinStockLevel }
func (a *Accessory) Price() kernel.Money    { return a.details.Price }
func (a *Accessory) Details() Details       { return a.details }
func (a *Accessory) CurrentStockLevel() int { return a.currentStockLevel }
func (a *Accessory) Version() int           { return a.version }
func (a *Accessory) IsLowStock() bool       { return a.currentStockLevel < a.details.MinStockLevel }
func (a *Accessory) IsStockAvailable() bool { return a.currentStockLevel >= 0 }

// PendingMovements are the movements recorded since the accessory was loaded.
func (a *Accessory) PendingMovements() []*StockMovement {
	out := make([]*StockMovement, len(a.pendingMovements))
	copy(out, a.pendingMovements)
	return out
}

// MarkPersisted is called by the repository after a successful save.
func (a *Accessory) MarkPersisted(version int) {
	a.version = version
	a.pendingMovements = nil
}

// UpdateDetails replaces the catalog attributes. The SKU and the stock level are untouched.
func (a *Accessory) UpdateDetails(details Details) error {
	return a.setDetails(details)
}

// RecordMovement applies a signed quantity change and returns the ledger entry.
// On error nothing changes.
func (a *Accessory) RecordMovement(
	id kernel.UUID,
	changeType ChangeType,
	quantityChange int,
	reason string,
	orderID *kernel.UUID,
	userID string,
	at time.Time,
) (*StockMovement, error) {
	if err := errors.Join(id.Validate(), changeType.Validate()); err != nil {
		return nil, err
	}
	if err := changeType.validateQuantity(quantityChange); err != nil {
		return nil, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	if changeType == Out && -quantityChange > a.currentStockLevel {
		return nil, &InsufficientStockError{
			AccessoryID: a.id,
			SKU:         a.sku,
			Requested:   -quantityChange,
			Available:   a.currentStockLevel,
		}
	}

	movement := &StockMovement{
		id:             id,
		accessoryID:    a.id,
		changeType:     changeType,
		quantityChange: quantityChange,
		newStockLevel:  a.currentStockLevel + quantityChange,
		reason:         strings.TrimSpace(reason),
		orderID:        orderID,
		userID:         strings.TrimSpace(userID),
		recordedAt:     at,
		isConstructed:  true,
	}

	a.currentStockLevel = movement.newStockLevel
	a.pendingMovements = append(a.pendingMovements, movement)
	a.Record(newStockMovedEvent(a, movement, at))

	return movement, nil
}

func (a *Accessory) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Accessory) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	a.sku = sku
	return nil
}

func (a *Accessory) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	d.UnitOfMeasure = strings.TrimSpace(d.UnitOfMeasure)
	d.Description = strings.TrimSpace(d.Description)
	if d.UnitOfMeasure == "" {
		d.UnitOfMeasure = "pcs"
	}

	var problems []error
	if d.Name == "" {
		problems = append(problems, errs.NewValueIsRequiredError("accessory name"))
	}
	if d.Category == "" {
		problems = append(problems, errs.NewValueIsRequiredError("category"))
	}
	if d.MinStockLevel < 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"min stock level is invalid",
			fmt.Errorf("%d is negative", d.MinStockLevel),
		))
	}
	if err := d.Price.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	a.details = d
	return nil
}
