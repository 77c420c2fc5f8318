package income

import (
	"context"

	"github.com/google/uuid"
	"github.com/taxpractice/backend/internal/domain/income"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// Service handles income-record business operations
type Service struct {
	repo     income.Repository
	typeRepo income.TypeRepository
}

// NewService creates a new income Service
func NewService(repo income.Repository, typeRepo income.TypeRepository) *Service {
	return &Service{repo: repo, typeRepo: typeRepo}
}

// checkType rejects income types not present in the lookup table.
func (s *Service) checkType(ctx context.Context, name string) error {
	exists, err := s.typeRepo.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError("UNKNOWN_INCOME_TYPE", "Income type '"+name+"' is not a known type")
	}
	return nil
}

// Create creates a new income record
func (s *Service) Create(ctx context.Context, req CreateIncomeRequest) (*IncomeResponse, error) {
	if err := s.checkType(ctx, req.IncomeType); err != nil {
		return nil, err
	}

	rec, err := income.NewIncome(req.ClientID, req.IncomeType)
	if err != nil {
		return nil, err
	}
	rec.TaxPayer = req.TaxPayer
	rec.Payer = req.Payer
	rec.Amount = req.Amount
	rec.Year = req.Year
	rec.IsExtracted = req.IsExtracted
	rec.CreatedBy = req.CreatedBy

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	response := ToIncomeResponse(rec)
	return &response, nil
}

// GetByID retrieves an income record by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*IncomeResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToIncomeResponse(rec)
	return &response, nil
}

// List retrieves income records with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) (shared.Paginated[IncomeResponse], error) {
	domainFilter := income.Filter{Filter: shared.DefaultFilter()}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.Limit > 0 {
		domainFilter.Limit = filter.Limit
	}
	if filter.SortBy != "" {
		domainFilter.SortBy = filter.SortBy
	}
	if filter.SortDir != "" {
		domainFilter.SortDir = filter.SortDir
	}
	if filter.ClientID != "" {
		clientID, err := uuid.Parse(filter.ClientID)
		if err != nil {
			return shared.Paginated[IncomeResponse]{}, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID is not a valid UUID")
		}
		domainFilter.ClientID = &clientID
	}
	domainFilter.Year = filter.Year
	domainFilter.Type = filter.Type
	domainFilter.Normalize()

	list, total, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[IncomeResponse]{}, err
	}

	return shared.NewPaginated(ToIncomeResponses(list), total, domainFilter.Page, domainFilter.Limit), nil
}

// ListByClient retrieves every live income record for a client
func (s *Service) ListByClient(ctx context.Context, clientID uuid.UUID, year *int) ([]IncomeResponse, error) {
	list, err := s.repo.FindByClient(ctx, clientID, year)
	if err != nil {
		return nil, err
	}
	return ToIncomeResponses(list), nil
}

// TotalByClient sums a client's income for a year
func (s *Service) TotalByClient(ctx context.Context, clientID uuid.UUID, year int) (*ClientTotalResponse, error) {
	total, err := s.repo.TotalByClientYear(ctx, clientID, year)
	if err != nil {
		return nil, err
	}
	return &ClientTotalResponse{ClientID: clientID, Total: total, Year: &year}, nil
}

// Types lists the income-type vocabulary
func (s *Service) Types(ctx context.Context) ([]IncomeTypeResponse, error) {
	types, err := s.typeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]IncomeTypeResponse, len(types))
	for i, t := range types {
		responses[i] = IncomeTypeResponse{Name: t.Name, Description: t.Description}
	}
	return responses, nil
}

// Stats reports income statistics grouped by type, optionally for one year
func (s *Service) Stats(ctx context.Context, year *int) (*StatsResponse, error) {
	stats, err := s.repo.StatsByType(ctx, year)
	if err != nil {
		return nil, err
	}

	byType := make([]TypeStatResponse, len(stats.ByType))
	for i, g := range stats.ByType {
		byType[i] = TypeStatResponse{
			IncomeType: g.Type,
			Count:      g.Count,
			Total:      g.Total,
			Average:    g.Average,
		}
	}
	return &StatsResponse{
		TotalRecords: stats.TotalRecords,
		TotalAmount:  stats.TotalAmount,
		ByType:       byType,
		Year:         year,
	}, nil
}

// Update merges the provided fields into an existing income record
func (s *Service) Update(ctx context.Context, id int64, req UpdateIncomeRequest) (*IncomeResponse, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IncomeType != nil {
		if err := s.checkType(ctx, *req.IncomeType); err != nil {
			return nil, err
		}
		rec.Type = *req.IncomeType
	}
	if req.TaxPayer != nil {
		rec.TaxPayer = *req.TaxPayer
	}
	if req.Payer != nil {
		rec.Payer = *req.Payer
	}
	if req.Amount != nil {
		rec.Amount = req.Amount
	}
	if req.Year != nil {
		rec.Year = req.Year
	}
	if req.IsExtracted != nil {
		rec.IsExtracted = *req.IsExtracted
	}
	if req.UpdatedBy != "" {
		rec.UpdatedBy = req.UpdatedBy
	}
	rec.Touch()

	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	response := ToIncomeResponse(rec)
	return &response, nil
}

// Delete soft-deletes an income record
func (s *Service) Delete(ctx context.Context, id int64, deletedBy string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id, deletedBy)
}
