// Package orderrepo maps the order aggregate onto relational tables: orders,
// line items, item accessories and the three append-only history tables.
// History rows carry a Seq column holding their position in the owning
// aggregate so they reload in append order.
package orderrepo

import (
	"time"

	"orderflow/internal/adapters/out/postgres/productionrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. The number is unique per prefix.
type OrderDTO struct {
	ID                   uuid.UUID         `gorm:"type:uuid;primaryKey"`
	NumberPrefix         string            `gorm:"type:varchar(16);not null;uniqueIndex:idx_order_number"`
	NumberSequence       int               `gorm:"type:int;not null;uniqueIndex:idx_order_number"`
	CustomerID           uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderDate            time.Time         `gorm:"not null"`
	ExpectedDeliveryDate time.Time         `gorm:"not null;index"`
	Status               string            `gorm:"type:varchar(32);not null;index"`
	TotalAmount          decimal.Decimal   `gorm:"type:numeric(14,2);not null"`
	Notes                string            `gorm:"type:text"`
	Version              int               `gorm:"type:int;not null"`
	LineItems            []LineItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	StatusHistory        []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the order_line_items row. CurrentStep is only read.
type LineItemDTO struct {
	ID                uuid.UUID                         `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID                         `gorm:"type:uuid;not null;index"`
	FamilyID          uuid.UUID                         `gorm:"type:uuid;not null;index"`
	Position          int                               `gorm:"type:int;not null"`
	Quantity          int                               `gorm:"type:int;not null"`
	UnitPrice         decimal.Decimal                   `gorm:"type:numeric(12,2);not null"`
	TotalPrice        decimal.Decimal                   `gorm:"type:numeric(14,2);not null"`
	CurrentStepID     uuid.UUID                         `gorm:"type:uuid;not null;index"`
	CurrentStep       *productionrepo.ProductionStepDTO `gorm:"foreignKey:CurrentStepID"`
	ProductionState   string                            `gorm:"type:varchar(16);not null"`
	Accessories       []ItemAccessoryDTO                `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
	ProductionHistory []ProductionChangeDTO             `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// ItemAccessoryDTO is the order_item_accessories row. An accessory appears at
// most once per line item.
type ItemAccessoryDTO struct {
	ID                    uuid.UUID            `gorm:"type:uuid;primaryKey"`
	LineItemID            uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_line_item_accessory"`
	AccessoryID           uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_line_item_accessory;index"`
	Position              int                  `gorm:"type:int;not null"`
	UnitQuantity          int                  `gorm:"type:int;not null"`
	RequiredQuantity      int                  `gorm:"type:int;not null"`
	IsVariable            bool                 `gorm:"not null"`
	VariablePlaceholder   string               `gorm:"type:varchar(255)"`
	VariableValue         string               `gorm:"type:varchar(255)"`
	IsRequiredForDispatch bool                 `gorm:"not null"`
	IsCustom              bool                 `gorm:"not null"`
	Status                string               `gorm:"type:varchar(16);not null"`
	History               []AccessoryChangeDTO `gorm:"foreignKey:ItemAccessoryID;constraint:OnDelete:CASCADE"`
}

func (ItemAccessoryDTO) TableName() string {
	return "order_item_accessories"
}

// StatusChangeDTO is one order_status_history row. StatusFrom is empty on the
// creation row.
type StatusChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq        int       `gorm:"type:int;not null"`
	StatusFrom string    `gorm:"type:varchar(32);not null"`
	StatusTo   string    `gorm:"type:varchar(32);not null"`
	UserID     string    `gorm:"type:varchar(128);not null"`
	Notes      string    `gorm:"type:text"`
	ChangedAt  time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

type ProductionChangeDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq        int       `gorm:"type:int;not null"`
	FromStep   string    `gorm:"type:varchar(128);not null"`
	ToStep     string    `gorm:"type:varchar(128);not null"`
	State      string    `gorm:"type:varchar(16);not null"`
	UserID     string    `gorm:"type:varchar(128);not null"`
	Notes      string    `gorm:"type:text"`
	ChangedAt  time.Time `gorm:"not null"`
}

func (ProductionChangeDTO) TableName() string {
	return "production_status_history"
}

type AccessoryChangeDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemAccessoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq             int       `gorm:"type:int;not null"`
	StatusFrom      string    `gorm:"type:varchar(16);not null"`
	StatusTo        string    `gorm:"type:varchar(16);not null"`
	VariableValue   string    `gorm:"type:varchar(255)"`
	UserID          string    `gorm:"type:varchar(128);not null"`
	Notes           string    `gorm:"type:text"`
	ChangedAt       time.Time `gorm:"not null"`
}

func (AccessoryChangeDTO) TableName() string {
	return "accessory_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                   o.ID().Bytes(),
		NumberPrefix:         o.Number().Prefix(),
		NumberSequence:       o.Number().Sequence(),
		CustomerID:           o.CustomerID().Bytes(),
		OrderDate:            o.OrderDate(),
		ExpectedDeliveryDate: o.ExpectedDeliveryDate(),
		Status:               o.Status().String(),
		TotalAmount:          o.TotalAmount().Amount(),
		Notes:                o.Notes(),
		Version:              o.Version(),
	}

	for i, h := range o.StatusHistory() {
		dto.StatusHistory = append(dto.StatusHistory, StatusChangeDTO{
			ID:         h.ID.Bytes(),
			OrderID:    dto.ID,
			Seq:        i,
			StatusFrom: statusText(h.From),
			StatusTo:   statusText(h.To),
			UserID:     h.UserID,
			Notes:      h.Notes,
			ChangedAt:  h.ChangedAt,
		})
	}

	for _, item := range o.LineItems() {
		dto.LineItems = append(dto.LineItems, lineItemFromDomain(dto.ID, item))
	}

	return dto
}

func lineItemFromDomain(orderID uuid.UUID, item *order.LineItem) LineItemDTO {
	dto := LineItemDTO{
		ID:              item.ID().Bytes(),
		OrderID:         orderID,
		FamilyID:        item.FamilyID().Bytes(),
		Position:        item.Position(),
		Quantity:        item.Quantity(),
		UnitPrice:       item.UnitPrice().Amount(),
		TotalPrice:      item.TotalPrice().Amount(),
		CurrentStepID:   item.CurrentStepID().Bytes(),
		ProductionState: item.ProductionState().String(),
	}

	for i, h := range item.ProductionHistory() {
		dto.ProductionHistory = append(dto.ProductionHistory, ProductionChangeDTO{
			ID:         h.ID.Bytes(),
			LineItemID: dto.ID,
			Seq:        i,
			FromStep:   h.FromStep,
			ToStep:     h.ToStep,
			State:      h.State.String(),
			UserID:     h.UserID,
			Notes:      h.Notes,
			ChangedAt:  h.ChangedAt,
		})
	}

	for _, a := range item.Accessories() {
		dto.Accessories = append(dto.Accessories, itemAccessoryFromDomain(dto.ID, a))
	}

	return dto
}

func itemAccessoryFromDomain(lineItemID uuid.UUID, a *order.ItemAccessory) ItemAccessoryDTO {
	dto := ItemAccessoryDTO{
		ID:                    a.ID().Bytes(),
		LineItemID:            lineItemID,
		AccessoryID:           a.AccessoryID().Bytes(),
		Position:              a.Position(),
		UnitQuantity:          a.UnitQuantity(),
		RequiredQuantity:      a.RequiredQuantity(),
		IsVariable:            a.IsVariable(),
		VariablePlaceholder:   a.VariablePlaceholder(),
		VariableValue:         a.VariableValue(),
		IsRequiredForDispatch: a.IsRequiredForDispatch(),
		IsCustom:              a.IsCustom(),
		Status:                a.Status().String(),
	}

	for i, h := range a.History() {
		dto.History = append(dto.History, AccessoryChangeDTO{
			ID:              h.ID.Bytes(),
			ItemAccessoryID: dto.ID,
			Seq:             i,
			StatusFrom:      accessoryStatusText(h.From),
			StatusTo:        accessoryStatusText(h.To),
			VariableValue:   h.VariableValue,
			UserID:          h.UserID,
			Notes:           h.Notes,
			ChangedAt:       h.ChangedAt,
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	number, err := order.NewNumber(dto.NumberPrefix, dto.NumberSequence)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dto.StatusHistory))
	for _, h := range dto.StatusHistory {
		change, changeErr := statusChangeToDomain(h)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, change)
	}

	items := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Record{
		ID:                   id,
		Number:               number,
		CustomerID:           customerID,
		OrderDate:            dto.OrderDate,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
		Status:               status,
		Notes:                dto.Notes,
		Version:              dto.Version,
	}, items, history)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	familyID, err := kernel.UUIDFromBytes(dto.FamilyID[:])
	if err != nil {
		return nil, err
	}
	stepID, err := kernel.UUIDFromBytes(dto.CurrentStepID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	state, err := order.ParseProductionState(dto.ProductionState)
	if err != nil {
		return nil, err
	}

	var stepName string
	if dto.CurrentStep != nil {
		stepName = dto.CurrentStep.Name
	}

	accessories := make([]*order.ItemAccessory, 0, len(dto.Accessories))
	for _, a := range dto.Accessories {
		accessory, accessoryErr := itemAccessoryToDomain(a)
		if accessoryErr != nil {
			return nil, accessoryErr
		}
		accessories = append(accessories, accessory)
	}

	history := make([]order.ProductionChange, 0, len(dto.ProductionHistory))
	for _, h := range dto.ProductionHistory {
		changeID, changeErr := kernel.UUIDFromBytes(h.ID[:])
		if changeErr != nil {
			return nil, changeErr
		}
		changeState, changeErr := order.ParseProductionState(h.State)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, order.ProductionChange{
			ID:        changeID,
			FromStep:  h.FromStep,
			ToStep:    h.ToStep,
			State:     changeState,
			UserID:    h.UserID,
			Notes:     h.Notes,
			ChangedAt: h.ChangedAt,
		})
	}

	return order.RestoreLineItem(order.LineItemRecord{
		ID:              id,
		FamilyID:        familyID,
		Position:        dto.Position,
		Quantity:        dto.Quantity,
		UnitPrice:       unitPrice,
		CurrentStepID:   stepID,
		CurrentStepName: stepName,
		ProductionState: state,
	}, accessories, history)
}

func itemAccessoryToDomain(dto ItemAccessoryDTO) (*order.ItemAccessory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	accessoryID, err := kernel.UUIDFromBytes(dto.AccessoryID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseAccessoryStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]order.AccessoryChange, 0, len(dto.History))
	for _, h := range dto.History {
		changeID, changeErr := kernel.UUIDFromBytes(h.ID[:])
		if changeErr != nil {
			return nil, changeErr
		}
		from, changeErr := parseAccessoryStatusText(h.StatusFrom)
		if changeErr != nil {
			return nil, changeErr
		}
		to, changeErr := parseAccessoryStatusText(h.StatusTo)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, order.AccessoryChange{
			ID:            changeID,
			From:          from,
			To:            to,
			VariableValue: h.VariableValue,
			UserID:        h.UserID,
			Notes:         h.Notes,
			ChangedAt:     h.ChangedAt,
		})
	}

	return order.RestoreItemAccessory(order.ItemAccessoryRecord{
		ID:                    id,
		AccessoryID:           accessoryID,
		Position:              dto.Position,
		UnitQuantity:          dto.UnitQuantity,
		RequiredQuantity:      dto.RequiredQuantity,
		IsVariable:            dto.IsVariable,
		VariablePlaceholder:   dto.VariablePlaceholder,
		VariableValue:         dto.VariableValue,
		IsRequiredForDispatch: dto.IsRequiredForDispatch,
		IsCustom:              dto.IsCustom,
		Status:                status,
	}, history)
}

func statusChangeToDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusChange{}, err
	}
	from, err := parseStatusText(dto.StatusFrom)
	if err != nil {
		return order.StatusChange{}, err
	}
	to, err := parseStatusText(dto.StatusTo)
	if err != nil {
		return order.StatusChange{}, err
	}

	return order.StatusChange{
		ID:        id,
		From:      from,
		To:        to,
		UserID:    dto.UserID,
		Notes:     dto.Notes,
		ChangedAt: dto.ChangedAt,
	}, nil
}

// statusText stores Unknown as an empty string.
func statusText(s order.Status) string {
	if s == order.Unknown {
		return ""
	}
	return s.String()
}

func parseStatusText(s string) (order.Status, error) {
	if s == "" {
		return order.Unknown, nil
	}
	return order.ParseStatus(s)
}

func accessoryStatusText(s order.AccessoryStatus) string {
	if s == order.UnknownAccessoryStatus {
		return ""
	}
	return s.String()
}

func parseAccessoryStatusText(s string) (order.AccessoryStatus, error) {
	if s == "" {
		return order.UnknownAccessoryStatus, nil
	}
	return order.ParseAccessoryStatus(s)
}
