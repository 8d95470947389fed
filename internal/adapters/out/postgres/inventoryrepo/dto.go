// Package inventoryrepo persists inventory accessories and the append-only
// stock ledger with GORM.
package inventoryrepo

import (
	"time"

	"orderflow/internal/core/domain/model/inventory"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccessoryDTO is the accessories table row. CurrentStockLevel caches the sum
// of the accessory's ledger and is only written together with a movement.
type AccessoryDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SKU               string          `gorm:"column:sku;type:varchar(64);not null;uniqueIndex"`
	Name              string          `gorm:"type:varchar(255);not null"`
	Description       string          `gorm:"type:text"`
	Category          string          `gorm:"type:varchar(128);not null;index"`
	UnitOfMeasure     string          `gorm:"type:varchar(32);not null"`
	MinStockLevel     int             `gorm:"type:int;not null"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CurrentStockLevel int             `gorm:"type:int;not null"`
	Version           int             `gorm:"type:int;not null"`
}

func (AccessoryDTO) TableName() string {
	return "accessories"
}

// StockMovementDTO is one stock_movements row. AccessoryVersion and Seq give
// the append order: the accessory version the save produced and the position
// within that save.
type StockMovementDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AccessoryID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_movement_order"`
	AccessoryVersion int        `gorm:"type:int;not null;uniqueIndex:idx_movement_order"`
	Seq              int        `gorm:"type:int;not null;uniqueIndex:idx_movement_order"`
	ChangeType       string     `gorm:"type:varchar(16);not null"`
	QuantityChange   int        `gorm:"type:int;not null"`
	NewStockLevel    int        `gorm:"type:int;not null"`
	Reason           string     `gorm:"type:text"`
	OrderID          *uuid.UUID `gorm:"type:uuid;index"`
	UserID           string     `gorm:"type:varchar(128)"`
	RecordedAt       time.Time  `gorm:"not null;index"`
}

func (StockMovementDTO) TableName() string {
	return "stock_movements"
}

func fromDomain(a *inventory.Accessory) AccessoryDTO {
	return AccessoryDTO{
		ID:                a.ID().Bytes(),
		SKU:               a.SKU(),
		Name:              a.Name(),
		Description:       a.Description(),
		Category:          a.Category(),
		UnitOfMeasure:     a.UnitOfMeasure(),
		MinStockLevel:     a.MinStockLevel(),
		Price:             a.Price().Amount(),
		CurrentStockLevel: a.CurrentStockLevel(),
		Version:           a.Version(),
	}
}

func toDomain(dto AccessoryDTO) (*inventory.Accessory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreAccessory(id, dto.SKU, inventory.Details{
		Name:          dto.Name,
		Description:   dto.Description,
		Category:      dto.Category,
		UnitOfMeasure: dto.UnitOfMeasure,
		MinStockLevel: dto.MinStockLevel,
		Price:         price,
	}, dto.CurrentStockLevel, dto.Version)
}

func movementsFromDomain(movements []*inventory.StockMovement, version int) []StockMovementDTO {
	dtos := make([]StockMovementDTO, 0, len(movements))
	for i, m := range movements {
		var orderID *uuid.UUID
		if id := m.OrderID(); id != nil {
			raw := id.Bytes()
			orderID = &raw
		}

		dtos = append(dtos, StockMovementDTO{
			ID:               m.ID().Bytes(),
			AccessoryID:      m.AccessoryID().Bytes(),
			AccessoryVersion: version,
			Seq:              i,
			ChangeType:       m.ChangeType().String(),
			QuantityChange:   m.QuantityChange(),
			NewStockLevel:    m.NewStockLevel(),
			Reason:           m.Reason(),
			OrderID:          orderID,
			UserID:           m.UserID(),
			RecordedAt:       m.RecordedAt(),
		})
	}
	return dtos
}
