package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/taxpractice/backend/internal/domain/business"
	"github.com/taxpractice/backend/internal/domain/shared"
	"github.com/taxpractice/backend/internal/infrastructure/persistence/models"
)

// GormBusinessRepository implements business.Repository using GORM
type GormBusinessRepository struct {
	db *gorm.DB
}

// NewGormBusinessRepository creates a new GormBusinessRepository
func NewGormBusinessRepository(db *gorm.DB) *GormBusinessRepository {
	return &GormBusinessRepository{db: db}
}

// Save inserts or updates a business record
func (r *GormBusinessRepository) Save(ctx context.Context, record *business.Business) error {
	model := models.BusinessModelFromDomain(record)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return err
	}
	// Surface the generated ID on inserts
	record.ID = model.ID
	return nil
}

// FindByID finds a live business record by ID
func (r *GormBusinessRepository) FindByID(ctx context.Context, id int64) (*business.Business, error) {
	var model models.BusinessModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDIncludingDeleted finds a business record by ID even when soft-deleted
func (r *GormBusinessRepository) FindByIDIncludingDeleted(ctx context.Context, id int64) (*business.Business, error) {
	var model models.BusinessModel
	if err := r.db.WithContext(ctx).Unscoped().First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds business records matching the filter along with the filtered total
func (r *GormBusinessRepository) FindAll(ctx context.Context, filter business.Filter) ([]business.Business, int64, error) {
	sortField := ValidateSortField(filter.SortBy, BusinessSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.SortDir)

	// Searching and the clientName sort both reach into the clients table.
	joinClients := filter.Search != "" || strings.Contains(sortField, ".")
	if joinClients && !strings.Contains(sortField, ".") {
		sortField = "client_businesses." + sortField
	}

	var total int64
	if err := r.applyFilterWithoutPagination(ctx, filter, joinClients).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var businessModels []models.BusinessModel
	if err := r.applyFilterWithoutPagination(ctx, filter, joinClients).
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&businessModels).Error; err != nil {
		return nil, 0, err
	}

	result := make([]business.Business, len(businessModels))
	for i := range businessModels {
		result[i] = *businessModels[i].ToDomain()
	}
	return result, total, nil
}

func (r *GormBusinessRepository) applyFilterWithoutPagination(ctx context.Context, filter business.Filter, joinClients bool) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.BusinessModel{})
	if joinClients {
		query = query.Joins("LEFT JOIN clients ON clients.id = client_businesses.client_id")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(client_businesses.name) LIKE LOWER(?) OR LOWER(client_businesses.industry) LIKE LOWER(?) OR LOWER(clients.first_name) LIKE LOWER(?) OR LOWER(clients.last_name) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern)
	}
	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.FilingType != "" {
		query = query.Where("filing_type = ?", filter.FilingType)
	}
	if filter.Industry != "" {
		query = query.Where("LOWER(industry) LIKE LOWER(?)", "%"+filter.Industry+"%")
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	return query
}

// FindByClient returns every live business for a client, optionally scoped to a year
func (r *GormBusinessRepository) FindByClient(ctx context.Context, clientID uuid.UUID, year *int) ([]business.Business, error) {
	query := r.db.WithContext(ctx).Where("client_id = ?", clientID)
	if year != nil {
		query = query.Where("year = ?", *year)
	}

	var businessModels []models.BusinessModel
	if err := query.Order("created_at DESC").Find(&businessModels).Error; err != nil {
		return nil, err
	}

	result := make([]business.Business, len(businessModels))
	for i := range businessModels {
		result[i] = *businessModels[i].ToDomain()
	}
	return result, nil
}

// SearchByName finds businesses whose name contains the query
func (r *GormBusinessRepository) SearchByName(ctx context.Context, name string) ([]business.Business, error) {
	var businessModels []models.BusinessModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%").
		Order("name ASC").
		Find(&businessModels).Error; err != nil {
		return nil, err
	}

	result := make([]business.Business, len(businessModels))
	for i := range businessModels {
		result[i] = *businessModels[i].ToDomain()
	}
	return result, nil
}

// Stats aggregates business records, optionally scoped to one client
func (r *GormBusinessRepository) Stats(ctx context.Context, clientID *uuid.UUID) (*business.Stats, error) {
	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.BusinessModel{})
		if clientID != nil {
			query = query.Where("client_id = ?", *clientID)
		}
		return query
	}

	var summary struct {
		Count            int64
		TotalRevenue     decimal.NullDecimal
		AverageEmployees *float64
	}
	if err := scoped().
		Select("COUNT(*) AS count, COALESCE(SUM(gross_sales), 0) AS total_revenue, AVG(employees) AS average_employees").
		Scan(&summary).Error; err != nil {
		return nil, err
	}

	type typeRow struct {
		FilingType string
		Count      int64
	}
	var typeRows []typeRow
	if err := scoped().
		Select("filing_type, COUNT(*) AS count").
		Group("filing_type").
		Scan(&typeRows).Error; err != nil {
		return nil, err
	}

	type yearRow struct {
		Year  *int
		Count int64
	}
	var yearRows []yearRow
	if err := scoped().
		Select("year, COUNT(*) AS count").
		Group("year").
		Scan(&yearRows).Error; err != nil {
		return nil, err
	}

	stats := &business.Stats{
		TotalBusinesses: summary.Count,
		ByFilingType:    make(map[string]int64, len(typeRows)),
		ByYear:          make(map[int]int64, len(yearRows)),
		TotalRevenue:    decimal.Zero,
	}
	if summary.TotalRevenue.Valid {
		stats.TotalRevenue = summary.TotalRevenue.Decimal
	}
	if summary.AverageEmployees != nil {
		stats.AverageEmployees = *summary.AverageEmployees
	}
	for _, row := range typeRows {
		if row.FilingType != "" {
			stats.ByFilingType[row.FilingType] = row.Count
		}
	}
	for _, row := range yearRows {
		if row.Year != nil {
			stats.ByYear[*row.Year] = row.Count
		}
	}
	return stats, nil
}

// SoftDelete marks a business record as deleted and records the actor
func (r *GormBusinessRepository) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	result := r.db.WithContext(ctx).Model(&models.BusinessModel{}).
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

// Ensure GormBusinessRepository implements business.Repository
var _ business.Repository = (*GormBusinessRepository)(nil)
