package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/taxpractice/backend/internal/domain/income"
)

// IncomeModel is the persistence model for the Income domain entity.
// IncomeType references income_types.name, enforced at the service
// layer rather than as a database foreign key.
type IncomeModel struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	ClientID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	TaxPayer    string           `gorm:"type:varchar(200)"`
	Payer       string           `gorm:"type:varchar(200)"`
	IncomeType  string           `gorm:"type:varchar(100);not null;index"`
	Amount      *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Year        *int             `gorm:"index"`
	IsExtracted bool             `gorm:"not null;default:false"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null"`
	AuditModel
	SoftDeleteModel
}

// TableName returns the table name for GORM
func (IncomeModel) TableName() string {
	return "client_incomes"
}

// ToDomain converts the persistence model to a domain Income entity.
func (m *IncomeModel) ToDomain() *income.Income {
	return &income.Income{
		ID:          m.ID,
		ClientID:    m.ClientID,
		TaxPayer:    m.TaxPayer,
		Payer:       m.Payer,
		Type:        m.IncomeType,
		Amount:      m.Amount,
		Year:        m.Year,
		IsExtracted: m.IsExtracted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		AuditInfo:   m.AuditModel.ToDomain(),
		SoftDelete:  m.SoftDeleteModel.ToDomain(),
	}
}

// FromDomain populates the persistence model from a domain Income entity.
func (m *IncomeModel) FromDomain(rec *income.Income) {
	m.ID = rec.ID
	m.ClientID = rec.ClientID
	m.TaxPayer = rec.TaxPayer
	m.Payer = rec.Payer
	m.IncomeType = rec.Type
	m.Amount = rec.Amount
	m.Year = rec.Year
	m.IsExtracted = rec.IsExtracted
	m.CreatedAt = rec.CreatedAt
	m.UpdatedAt = rec.UpdatedAt
	m.AuditModel.FromDomain(rec.AuditInfo)
	m.SoftDeleteModel.FromDomain(rec.SoftDelete)
}

// IncomeModelFromDomain creates a new persistence model from a domain Income.
func IncomeModelFromDomain(rec *income.Income) *IncomeModel {
	m := &IncomeModel{}
	m.FromDomain(rec)
	return m
}

// IncomeTypeModel is the persistence model for the income-type lookup.
type IncomeTypeModel struct {
	Name        string    `gorm:"type:varchar(100);primaryKey"`
	Description string    `gorm:"type:varchar(200)"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (IncomeTypeModel) TableName() string {
	return "client_income_types"
}

// ToDomain converts the persistence model to a domain IncomeType.
func (m *IncomeTypeModel) ToDomain() income.IncomeType {
	return income.IncomeType{
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain IncomeType.
func (m *IncomeTypeModel) FromDomain(t *income.IncomeType) {
	m.Name = t.Name
	m.Description = t.Description
	m.CreatedAt = t.CreatedAt
	m.UpdatedAt = t.UpdatedAt
}
