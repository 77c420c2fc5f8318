package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/taxpractice/backend/internal/domain/income"
	"github.com/taxpractice/backend/internal/domain/shared"
	"github.com/taxpractice/backend/internal/infrastructure/persistence/models"
)

// GormIncomeRepository implements income.Repository using GORM
type GormIncomeRepository struct {
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GormIncomeRepository
func NewGormIncomeRepository(db *gorm.DB) *GormIncomeRepository {
	return &GormIncomeRepository{db: db}
}

// Save inserts or updates an income record
func (r *GormIncomeRepository) Save(ctx context.Context, record *income.Income) error {
	model := models.IncomeModelFromDomain(record)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	// Surface the generated ID on inserts
	record.ID = model.ID
	return nil
}

// FindByID finds a live income record by ID
func (r *GormIncomeRepository) FindByID(ctx context.Context, id int64) (*income.Income, error) {
	var model models.IncomeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDIncludingDeleted finds an income record by ID even when soft-deleted
func (r *GormIncomeRepository) FindByIDIncludingDeleted(ctx context.Context, id int64) (*income.Income, error) {
	var model models.IncomeModel
	if err := r.db.WithContext(ctx).Unscoped().First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds income records matching the filter along with the filtered total
func (r *GormIncomeRepository) FindAll(ctx context.Context, filter income.Filter) ([]income.Income, int64, error) {
	var total int64
	if err := r.applyFilterWithoutPagination(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.SortBy, IncomeSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.SortDir)

	var incomeModels []models.IncomeModel
	if err := r.applyFilterWithoutPagination(ctx, filter).
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&incomeModels).Error; err != nil {
		return nil, 0, err
	}

	result := make([]income.Income, len(incomeModels))
	for i := range incomeModels {
		result[i] = *incomeModels[i].ToDomain()
	}
	return result, total, nil
}

func (r *GormIncomeRepository) applyFilterWithoutPagination(ctx context.Context, filter income.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.IncomeModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(tax_payer) LIKE LOWER(?) OR LOWER(payer) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.Type != "" {
		query = query.Where("income_type = ?", filter.Type)
	}
	return query
}

// FindByClient returns every live income record for a client, optionally scoped to a year
func (r *GormIncomeRepository) FindByClient(ctx context.Context, clientID uuid.UUID, year *int) ([]income.Income, error) {
	query := r.db.WithContext(ctx).Where("client_id = ?", clientID)
	if year != nil {
		query = query.Where("year = ?", *year)
	}

	var incomeModels []models.IncomeModel
	if err := query.Order("created_at DESC").Find(&incomeModels).Error; err != nil {
		return nil, err
	}

	result := make([]income.Income, len(incomeModels))
	for i := range incomeModels {
		result[i] = *incomeModels[i].ToDomain()
	}
	return result, nil
}

// TotalByClientYear sums income amounts for a client in a tax year
func (r *GormIncomeRepository) TotalByClientYear(ctx context.Context, clientID uuid.UUID, year int) (decimal.Decimal, error) {
	var row struct {
		Total decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).Model(&models.IncomeModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("client_id = ? AND year = ?", clientID, year).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !row.Total.Valid {
		return decimal.Zero, nil
	}
	return row.Total.Decimal, nil
}

// StatsByType aggregates income records grouped by type, optionally for one year
func (r *GormIncomeRepository) StatsByType(ctx context.Context, year *int) (*income.Stats, error) {
	type statRow struct {
		IncomeType string
		Count      int64
		Total      decimal.NullDecimal
		Average    decimal.NullDecimal
	}

	query := r.db.WithContext(ctx).Model(&models.IncomeModel{}).
		Select("income_type, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total, COALESCE(AVG(amount), 0) AS average").
		Group("income_type").
		Order("income_type ASC")
	if year != nil {
		query = query.Where("year = ?", *year)
	}

	var rows []statRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &income.Stats{
		TotalAmount: decimal.Zero,
		ByType:      make([]income.TypeStat, 0, len(rows)),
	}
	for _, row := range rows {
		stat := income.TypeStat{
			Type:    row.IncomeType,
			Count:   row.Count,
			Total:   decimal.Zero,
			Average: decimal.Zero,
		}
		if row.Total.Valid {
			stat.Total = row.Total.Decimal
		}
		if row.Average.Valid {
			stat.Average = row.Average.Decimal
		}
		stats.TotalRecords += row.Count
		stats.TotalAmount = stats.TotalAmount.Add(stat.Total)
		stats.ByType = append(stats.ByType, stat)
	}
	return stats, nil
}

// SoftDelete marks an income record as deleted and records the actor
func (r *GormIncomeRepository) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	result := r.db.WithContext(ctx).Model(&models.IncomeModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": time.Now(),
			"deleted_by": deletedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormIncomeRepository implements income.Repository
var _ income.Repository = (*GormIncomeRepository)(nil)
