package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/taxpractice/backend/internal/domain/business"
	"github.com/taxpractice/backend/internal/domain/income"
	"github.com/taxpractice/backend/internal/infrastructure/persistence/models"
)

// GormIncomeTypeRepository implements income.TypeRepository using GORM
type GormIncomeTypeRepository struct {
	db *gorm.DB
}

// NewGormIncomeTypeRepository creates a new GormIncomeTypeRepository
func NewGormIncomeTypeRepository(db *gorm.DB) *GormIncomeTypeRepository {
	return &GormIncomeTypeRepository{db: db}
}

func (r *GormIncomeTypeRepository) FindAll(ctx context.Context) ([]income.IncomeType, error) {
	var typeModels []models.IncomeTypeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&typeModels).Error; err != nil {
		return nil, err
	}
	result := make([]income.IncomeType, len(typeModels))
	for i := range typeModels {
		result[i] = typeModels[i].ToDomain()
	}
	return result, nil
}

func (r *GormIncomeTypeRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.IncomeTypeModel{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *GormIncomeTypeRepository) Save(ctx context.Context, incomeType *income.IncomeType) error {
	var model models.IncomeTypeModel
	model.FromDomain(incomeType)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormFilingTypeRepository implements business.FilingTypeRepository using GORM
type GormFilingTypeRepository struct {
	db *gorm.DB
}

// NewGormFilingTypeRepository creates a new GormFilingTypeRepository
func NewGormFilingTypeRepository(db *gorm.DB) *GormFilingTypeRepository {
	return &GormFilingTypeRepository{db: db}
}

func (r *GormFilingTypeRepository) FindAll(ctx context.Context) ([]business.FilingType, error) {
	var typeModels []models.FilingTypeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&typeModels).Error; err != nil {
		return nil, err
	}
	result := make([]business.FilingType, len(typeModels))
	for i := range typeModels {
		result[i] = typeModels[i].ToDomain()
	}
	return result, nil
}

func (r *GormFilingTypeRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FilingTypeModel{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *GormFilingTypeRepository) Save(ctx context.Context, filingType *business.FilingType) error {
	var model models.FilingTypeModel
	model.FromDomain(filingType)
	return r.db.WithContext(ctx).Save(&model).Error
}

var _ income.TypeRepository = (*GormIncomeTypeRepository)(nil)
var _ business.FilingTypeRepository = (*GormFilingTypeRepository)(nil)
