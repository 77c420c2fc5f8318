package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/taxpractice/backend/internal/domain/shared"
)

// SoftDeleteModel provides the soft-delete pair shared by all record
// models. gorm.DeletedAt makes the not-deleted predicate automatic on
// every query; Unscoped is the only way past it.
type SoftDeleteModel struct {
	DeletedAt gorm.DeletedAt `gorm:"index"`
	DeletedBy string         `gorm:"type:varchar(100)"`
}

// ToDomain converts the soft-delete columns to the domain type
func (m *SoftDeleteModel) ToDomain() shared.SoftDelete {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		deletedAt = &t
	}
	return shared.SoftDelete{DeletedAt: deletedAt, DeletedBy: m.DeletedBy}
}

// FromDomain populates the soft-delete columns from the domain type
func (m *SoftDeleteModel) FromDomain(sd shared.SoftDelete) {
	if sd.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *sd.DeletedAt, Valid: true}
	} else {
		m.DeletedAt = gorm.DeletedAt{}
	}
	m.DeletedBy = sd.DeletedBy
}

// AuditModel provides the actor audit columns
type AuditModel struct {
	CreatedBy string `gorm:"type:varchar(100)"`
	UpdatedBy string `gorm:"type:varchar(100)"`
}

// ToDomain converts the audit columns to the domain type
func (m *AuditModel) ToDomain() shared.AuditInfo {
	return shared.AuditInfo{CreatedBy: m.CreatedBy, UpdatedBy: m.UpdatedBy}
}

// FromDomain populates the audit columns from the domain type
func (m *AuditModel) FromDomain(a shared.AuditInfo) {
	m.CreatedBy = a.CreatedBy
	m.UpdatedBy = a.UpdatedBy
}

// AllModels lists every persisted model in dependency order, for
// AutoMigrate on sqlite development databases.
func AllModels() []any {
	return []any{
		&ClientModel{},
		&IncomeTypeModel{},
		&IncomeModel{},
		&FilingTypeModel{},
		&BusinessModel{},
	}
}
