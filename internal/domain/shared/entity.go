package shared

import (
	"time"

	"github.com/google/uuid"
)

// AuditInfo carries the who-changed-it fields shared by all records.
// CreatedBy/UpdatedBy/DeletedBy are free-form actor labels ("system",
// a user id, an import job name) rather than strict foreign keys.
type AuditInfo struct {
	CreatedBy string
	UpdatedBy string
}

// SoftDelete marks a record as logically removed. A nil DeletedAt means
// the record is live; every list and aggregate query excludes records
// with DeletedAt set, while direct unscoped lookups can still reach them.
type SoftDelete struct {
	DeletedAt *time.Time
	DeletedBy string
}

// IsDeleted reports whether the record has been soft-deleted.
func (s SoftDelete) IsDeleted() bool {
	return s.DeletedAt != nil
}

// MarkDeleted stamps the soft-delete fields.
func (s *SoftDelete) MarkDeleted(deletedBy string) {
	now := time.Now()
	s.DeletedAt = &now
	s.DeletedBy = deletedBy
}

// BaseEntity provides common fields for uuid-keyed entities
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the update timestamp.
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}
