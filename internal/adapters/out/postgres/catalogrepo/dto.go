// Package catalogrepo persists machine families and their default accessory
// links with GORM.
package catalogrepo

import (
	"orderflow/internal/core/domain/model/catalog"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MachineFamilyDTO is the machine_families table row. Defaults are deleted
// together with their family.
type MachineFamilyDTO struct {
	ID          uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Name        string                `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string                `gorm:"type:text"`
	IsProduct   bool                  `gorm:"not null;default:true"`
	BasePrice   decimal.Decimal       `gorm:"type:numeric(12,2);not null"`
	Version     int                   `gorm:"type:int;not null;default:1"`
	Defaults    []DefaultAccessoryDTO `gorm:"foreignKey:FamilyID;constraint:OnDelete:CASCADE"`
}

func (MachineFamilyDTO) TableName() string {
	return "machine_families"
}

// DefaultAccessoryDTO is one family_accessory_defaults row. A family links an
// accessory at most once.
type DefaultAccessoryDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FamilyID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_family_accessory"`
	AccessoryID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_family_accessory;index"`
	Position              int       `gorm:"type:int;not null"`
	DefaultQuantity       int       `gorm:"type:int;not null"`
	IsVariable            bool      `gorm:"not null"`
	VariablePlaceholder   string    `gorm:"type:varchar(255)"`
	IsRequiredForDispatch bool      `gorm:"not null"`
}

func (DefaultAccessoryDTO) TableName() string {
	return "family_accessory_defaults"
}

func fromDomain(f *catalog.MachineFamily) MachineFamilyDTO {
	defaults := f.DefaultAccessories()
	dto := MachineFamilyDTO{
		ID:          f.ID().Bytes(),
		Name:        f.Name(),
		Description: f.Description(),
		IsProduct:   f.IsProduct(),
		BasePrice:   f.BasePrice().Amount(),
		Version:     f.Version(),
		Defaults:    make([]DefaultAccessoryDTO, 0, len(defaults)),
	}

	for _, d := range defaults {
		dto.Defaults = append(dto.Defaults, DefaultAccessoryDTO{
			ID:                    d.ID().Bytes(),
			FamilyID:              dto.ID,
			AccessoryID:           d.AccessoryID().Bytes(),
			Position:              d.Position(),
			DefaultQuantity:       d.DefaultQuantity(),
			IsVariable:            d.IsVariable(),
			VariablePlaceholder:   d.VariablePlaceholder(),
			IsRequiredForDispatch: d.IsRequiredForDispatch(),
		})
	}

	return dto
}

func toDomain(dto MachineFamilyDTO) (*catalog.MachineFamily, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.BasePrice)
	if err != nil {
		return nil, err
	}

	defaults := make([]*catalog.DefaultAccessory, 0, len(dto.Defaults))
	for _, d := range dto.Defaults {
		linkID, linkErr := kernel.UUIDFromBytes(d.ID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		accessoryID, linkErr := kernel.UUIDFromBytes(d.AccessoryID[:])
		if linkErr != nil {
			return nil, linkErr
		}

		link, linkErr := catalog.RestoreDefaultAccessory(linkID, accessoryID, d.Position, catalog.LinkTerms{
			DefaultQuantity:       d.DefaultQuantity,
			IsVariable:            d.IsVariable,
			VariablePlaceholder:   d.VariablePlaceholder,
			IsRequiredForDispatch: d.IsRequiredForDispatch,
		})
		if linkErr != nil {
			return nil, linkErr
		}
		defaults = append(defaults, link)
	}

	return catalog.RestoreMachineFamily(id, dto.Name, dto.Description, dto.IsProduct, price, defaults, dto.Version)
}
