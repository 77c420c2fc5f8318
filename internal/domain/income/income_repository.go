package income

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// Filter narrows income list queries beyond the shared paging options.
type Filter struct {
	shared.Filter
	ClientID *uuid.UUID
	Year     *int
	Type     string
}

// TypeStat is one GROUP BY income_type row from the statistics query.
type TypeStat struct {
	Type    string
	Count   int64
	Total   decimal.Decimal
	Average decimal.Decimal
}

// Stats aggregates income records, optionally scoped to a single year.
type Stats struct {
	TotalRecords int64
	TotalAmount  decimal.Decimal
	ByType       []TypeStat
}

// Repository defines persistence operations for income records.
// Reads exclude soft-deleted records unless stated otherwise.
type Repository interface {
	Save(ctx context.Context, record *Income) error
	FindByID(ctx context.Context, id int64) (*Income, error)
	FindByIDIncludingDeleted(ctx context.Context, id int64) (*Income, error)
	FindAll(ctx context.Context, filter Filter) ([]Income, int64, error)
	// FindByClient returns every live income record for a client, optionally
	// scoped to a tax year. Used by the scenario aggregation, so it does not
	// paginate.
	FindByClient(ctx context.Context, clientID uuid.UUID, year *int) ([]Income, error)
	TotalByClientYear(ctx context.Context, clientID uuid.UUID, year int) (decimal.Decimal, error)
	StatsByType(ctx context.Context, year *int) (*Stats, error)
	SoftDelete(ctx context.Context, id int64, deletedBy string) error
}

// TypeRepository provides access to the income-type lookup table.
type TypeRepository interface {
	FindAll(ctx context.Context) ([]IncomeType, error)
	Exists(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, incomeType *IncomeType) error
}
