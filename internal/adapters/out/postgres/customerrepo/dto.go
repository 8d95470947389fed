// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"orderflow/internal/core/domain/model/customer"
	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the customers table row.
type CustomerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Company         string    `gorm:"type:varchar(255)"`
	ContactPerson   string    `gorm:"type:varchar(255)"`
	ContactNumber   string    `gorm:"type:varchar(64)"`
	Email           string    `gorm:"type:varchar(255)"`
	BillingAddress  string    `gorm:"type:text"`
	ShippingAddress string    `gorm:"type:text"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	contact := c.Contact()
	return CustomerDTO{
		ID:              c.ID().Bytes(),
		Name:            c.Name(),
		Company:         contact.Company,
		ContactPerson:   contact.ContactPerson,
		ContactNumber:   contact.ContactNumber,
		Email:           contact.Email,
		BillingAddress:  contact.BillingAddress,
		ShippingAddress: contact.ShippingAddress,
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, customer.Contact{
		Company:         dto.Company,
		ContactPerson:   dto.ContactPerson,
		ContactNumber:   dto.ContactNumber,
		Email:           dto.Email,
		BillingAddress:  dto.BillingAddress,
		ShippingAddress: dto.ShippingAddress,
	})
}
