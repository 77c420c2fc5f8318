package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taxpractice/backend/internal/domain/clients"
	"github.com/taxpractice/backend/internal/domain/shared"
	"github.com/taxpractice/backend/internal/infrastructure/persistence/models"
)

// GormClientRepository implements clients.Repository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// Save inserts or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *clients.Client) error {
	model := models.ClientModelFromDomain(client)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a live client by ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*clients.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDIncludingDeleted finds a client by ID even when soft-deleted
func (r *GormClientRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*clients.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).Unscoped().First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a live client by exact email
func (r *GormClientRepository) FindByEmail(ctx context.Context, email string) (*clients.Client, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	var model models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds clients matching the filter along with the filtered total
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]clients.Client, int64, error) {
	var total int64
	if err := r.applyFilterWithoutPagination(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.SortBy, ClientSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.SortDir)

	var clientModels []models.ClientModel
	if err := r.applyFilterWithoutPagination(ctx, filter).
		Order(sortField + " " + sortOrder).
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&clientModels).Error; err != nil {
		return nil, 0, err
	}

	result := make([]clients.Client, len(clientModels))
	for i := range clientModels {
		result[i] = *clientModels[i].ToDomain()
	}
	return result, total, nil
}

func (r *GormClientRepository) applyFilterWithoutPagination(ctx context.Context, filter shared.Filter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern)
	}
	return query
}

// Search finds clients whose first or last name contains the query
func (r *GormClientRepository) Search(ctx context.Context, query string) ([]clients.Client, error) {
	pattern := "%" + query + "%"
	var clientModels []models.ClientModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)", pattern, pattern).
		Order("first_name ASC").
		Find(&clientModels).Error; err != nil {
		return nil, err
	}

	result := make([]clients.Client, len(clientModels))
	for i := range clientModels {
		result[i] = *clientModels[i].ToDomain()
	}
	return result, nil
}

// SoftDelete marks a client as deleted and records the actor
func (r *GormClientRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).
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

// Count returns the number of live clients
func (r *GormClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ClientModel{}).Count(&count).Error
	return count, err
}

// Ensure GormClientRepository implements clients.Repository
var _ clients.Repository = (*GormClientRepository)(nil)
