package business

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// Filter narrows business list queries beyond the shared paging options.
// Industry matches as a case-insensitive substring; the rest are exact.
type Filter struct {
	shared.Filter
	ClientID   *uuid.UUID
	FilingType string
	Industry   string
	Year       *int
}

// Stats aggregates business records, optionally scoped to one client.
type Stats struct {
	TotalBusinesses  int64
	ByFilingType     map[string]int64
	ByYear           map[int]int64
	TotalRevenue     decimal.Decimal
	AverageEmployees float64
}

// Repository defines persistence operations for business records.
// Reads exclude soft-deleted records unless stated otherwise.
type Repository interface {
	Save(ctx context.Context, record *Business) error
	FindByID(ctx context.Context, id int64) (*Business, error)
	FindByIDIncludingDeleted(ctx context.Context, id int64) (*Business, error)
	FindAll(ctx context.Context, filter Filter) ([]Business, int64, error)
	// FindByClient returns every live business for a client, optionally
	// scoped to a tax year. Used by the scenario aggregation, so it does
	// not paginate.
	FindByClient(ctx context.Context, clientID uuid.UUID, year *int) ([]Business, error)
	SearchByName(ctx context.Context, name string) ([]Business, error)
	Stats(ctx context.Context, clientID *uuid.UUID) (*Stats, error)
	SoftDelete(ctx context.Context, id int64, deletedBy string) error
}

// FilingTypeRepository provides access to the filing-type lookup table.
type FilingTypeRepository interface {
	FindAll(ctx context.Context) ([]FilingType, error)
	Exists(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, filingType *FilingType) error
}
