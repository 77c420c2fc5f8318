package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/taxpractice/backend/internal/domain/clients"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// ClientModel is the persistence model for the Client domain entity.
type ClientModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	FirstName string    `gorm:"type:varchar(100);not null"`
	LastName  string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(200);index"`
	Phone     string    `gorm:"type:varchar(50)"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	AuditModel
	SoftDeleteModel
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *clients.Client {
	return &clients.Client{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		AuditInfo:  m.AuditModel.ToDomain(),
		SoftDelete: m.SoftDeleteModel.ToDomain(),
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *clients.Client) {
	m.ID = c.ID
	m.FirstName = c.FirstName
	m.LastName = c.LastName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
	m.AuditModel.FromDomain(c.AuditInfo)
	m.SoftDeleteModel.FromDomain(c.SoftDelete)
}

// ClientModelFromDomain creates a new persistence model from a domain Client.
func ClientModelFromDomain(c *clients.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
