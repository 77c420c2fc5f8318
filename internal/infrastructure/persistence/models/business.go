package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taxpractice/backend/internal/domain/business"
)

// BusinessModel is the persistence model for the Business domain entity.
// Benefits and Entities are checklist collections stored as jsonb.
type BusinessModel struct {
	ID             int64            `gorm:"primaryKey;autoIncrement"`
	ClientID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"type:varchar(200);not null"`
	FilingType     string           `gorm:"type:varchar(100);index"`
	Ownership      *int64
	Employees      *int64
	GrossSales     *decimal.Decimal `gorm:"type:decimal(18,2)"`
	NetSales       *decimal.Decimal `gorm:"type:decimal(18,2)"`
	ProjectedSales *decimal.Decimal `gorm:"type:decimal(18,2)"`
	K1             *decimal.Decimal `gorm:"type:decimal(18,2)"`
	W2             *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Industry       string           `gorm:"type:varchar(200);index"`
	Year           *int             `gorm:"index"`
	Benefits       string           `gorm:"type:jsonb"`
	Entities       string           `gorm:"type:jsonb"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
	AuditModel
	SoftDeleteModel
}

// TableName returns the table name for GORM
func (BusinessModel) TableName() string {
	return "client_businesses"
}

// ToDomain converts the persistence model to a domain Business entity.
// Malformed checklist JSON yields an empty checklist rather than an error.
func (m *BusinessModel) ToDomain() *business.Business {
	return &business.Business{
		ID:             m.ID,
		ClientID:       m.ClientID,
		Name:           m.Name,
		FilingType:     m.FilingType,
		Ownership:      m.Ownership,
		Employees:      m.Employees,
		GrossSales:     m.GrossSales,
		NetSales:       m.NetSales,
		ProjectedSales: m.ProjectedSales,
		K1:             m.K1,
		W2:             m.W2,
		Industry:       m.Industry,
		Year:           m.Year,
		Benefits:       unmarshalChecklist(m.Benefits),
		Entities:       unmarshalChecklist(m.Entities),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		AuditInfo:      m.AuditModel.ToDomain(),
		SoftDelete:     m.SoftDeleteModel.ToDomain(),
	}
}

// FromDomain populates the persistence model from a domain Business entity.
func (m *BusinessModel) FromDomain(b *business.Business) {
	m.ID = b.ID
	m.ClientID = b.ClientID
	m.Name = b.Name
	m.FilingType = b.FilingType
	m.Ownership = b.Ownership
	m.Employees = b.Employees
	m.GrossSales = b.GrossSales
	m.NetSales = b.NetSales
	m.ProjectedSales = b.ProjectedSales
	m.K1 = b.K1
	m.W2 = b.W2
	m.Industry = b.Industry
	m.Year = b.Year
	m.Benefits = marshalChecklist(b.Benefits)
	m.Entities = marshalChecklist(b.Entities)
	m.CreatedAt = b.CreatedAt
	m.UpdatedAt = b.UpdatedAt
	m.AuditModel.FromDomain(b.AuditInfo)
	m.SoftDeleteModel.FromDomain(b.SoftDelete)
}

// BusinessModelFromDomain creates a new persistence model from a domain Business.
func BusinessModelFromDomain(b *business.Business) *BusinessModel {
	m := &BusinessModel{}
	m.FromDomain(b)
	return m
}

func marshalChecklist(items []business.ChecklistItem) string {
	if items == nil {
		return "[]"
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func unmarshalChecklist(raw string) []business.ChecklistItem {
	if raw == "" {
		return nil
	}
	var items []business.ChecklistItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// FilingTypeModel is the persistence model for the filing-type lookup.
type FilingTypeModel struct {
	Name        string    `gorm:"type:varchar(100);primaryKey"`
	Description string    `gorm:"type:varchar(200)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FilingTypeModel) TableName() string {
	return "business_filing_types"
}

// ToDomain converts the persistence model to a domain FilingType.
func (m *FilingTypeModel) ToDomain() business.FilingType {
	return business.FilingType{
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain FilingType.
func (m *FilingTypeModel) FromDomain(t *business.FilingType) {
	m.Name = t.Name
	m.Description = t.Description
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
