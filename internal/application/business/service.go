package business

import (
	"context"

	"github.com/google/uuid"
	"github.com/taxpractice/backend/internal/domain/business"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// Service handles business-record operations
type Service struct {
	repo       business.Repository
	filingRepo business.FilingTypeRepository
}

// NewService creates a new business Service
func NewService(repo business.Repository, filingRepo business.FilingTypeRepository) *Service {
	return &Service{repo: repo, filingRepo: filingRepo}
}

// checkFilingType rejects filing types not present in the lookup table.
func (s *Service) checkFilingType(ctx context.Context, name string) error {
	exists, err := s.filingRepo.Exists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewDomainError("UNKNOWN_FILING_TYPE", "Filing type '"+name+"' is not a known type")
	}
	return nil
}

// Create creates a new business record
func (s *Service) Create(ctx context.Context, req CreateBusinessRequest) (*BusinessResponse, error) {
	if err := s.checkFilingType(ctx, req.FilingType); err != nil {
		return nil, err
	}

	biz, err := business.NewBusiness(req.ClientID, req.Name)
	if err != nil {
		return nil, err
	}
	biz.FilingType = req.FilingType
	biz.Ownership = req.Ownership
	biz.Employees = req.Employees
	biz.GrossSales = req.GrossSales
	biz.NetSales = req.NetSales
	biz.ProjectedSales = req.ProjectedSales
	biz.K1 = req.K1
	biz.W2 = req.W2
	biz.Industry = req.Industry
	biz.Year = req.Year
	biz.CreatedBy = req.CreatedBy
	if req.Benefits != nil {
		biz.Benefits = fromChecklistDTOs(req.Benefits)
	}
	if req.Entities != nil {
		biz.Entities = fromChecklistDTOs(req.Entities)
	}

	if err := s.repo.Save(ctx, biz); err != nil {
		return nil, err
	}

	response := ToBusinessResponse(biz)
	return &response, nil
}

// GetByID retrieves a business record by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*BusinessResponse, error) {
	biz, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToBusinessResponse(biz)
	return &response, nil
}

// List retrieves business records with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) (shared.Paginated[BusinessResponse], error) {
	domainFilter := business.Filter{Filter: shared.DefaultFilter()}
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
	domainFilter.Search = filter.Search
	if filter.ClientID != "" {
		clientID, err := uuid.Parse(filter.ClientID)
		if err != nil {
			return shared.Paginated[BusinessResponse]{}, shared.NewDomainError("INVALID_CLIENT_ID", "Client ID is not a valid UUID")
		}
		domainFilter.ClientID = &clientID
	}
	domainFilter.FilingType = filter.FilingType
	domainFilter.Industry = filter.Industry
	domainFilter.Year = filter.Year
	domainFilter.Normalize()

	list, total, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[BusinessResponse]{}, err
	}

	return shared.NewPaginated(ToBusinessResponses(list), total, domainFilter.Page, domainFilter.Limit), nil
}

// ListByClient retrieves every live business for a client
func (s *Service) ListByClient(ctx context.Context, clientID uuid.UUID, year *int) ([]BusinessResponse, error) {
	list, err := s.repo.FindByClient(ctx, clientID, year)
	if err != nil {
		return nil, err
	}
	return ToBusinessResponses(list), nil
}

// SearchByName finds businesses whose name contains the query
func (s *Service) SearchByName(ctx context.Context, name string) ([]BusinessResponse, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Search name cannot be empty")
	}

	list, err := s.repo.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return ToBusinessResponses(list), nil
}

// FilingTypes lists the filing-type vocabulary
func (s *Service) FilingTypes(ctx context.Context) ([]FilingTypeResponse, error) {
	types, err := s.filingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]FilingTypeResponse, len(types))
	for i, t := range types {
		responses[i] = FilingTypeResponse{Name: t.Name, Description: t.Description}
	}
	return responses, nil
}

// Stats reports business statistics, optionally scoped to one client
func (s *Service) Stats(ctx context.Context, clientID *uuid.UUID) (*StatsResponse, error) {
	stats, err := s.repo.Stats(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalBusinesses:  stats.TotalBusinesses,
		BusinessesByType: stats.ByFilingType,
		BusinessesByYear: stats.ByYear,
		TotalRevenue:     stats.TotalRevenue,
		AverageEmployees: stats.AverageEmployees,
	}, nil
}

// Update merges the provided fields into an existing business record
func (s *Service) Update(ctx context.Context, id int64, req UpdateBusinessRequest) (*BusinessResponse, error) {
	biz, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FilingType != nil {
		if err := s.checkFilingType(ctx, *req.FilingType); err != nil {
			return nil, err
		}
		biz.FilingType = *req.FilingType
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot be empty")
		}
		biz.Name = *req.Name
	}
	if req.Ownership != nil {
		biz.Ownership = req.Ownership
	}
	if req.Employees != nil {
		biz.Employees = req.Employees
	}
	if req.GrossSales != nil {
		biz.GrossSales = req.GrossSales
	}
	if req.NetSales != nil {
		biz.NetSales = req.NetSales
	}
	if req.ProjectedSales != nil {
		biz.ProjectedSales = req.ProjectedSales
	}
	if req.K1 != nil {
		biz.K1 = req.K1
	}
	if req.W2 != nil {
		biz.W2 = req.W2
	}
	if req.Industry != nil {
		biz.Industry = *req.Industry
	}
	if req.Year != nil {
		biz.Year = req.Year
	}
	if req.Benefits != nil {
		biz.Benefits = fromChecklistDTOs(req.Benefits)
	}
	if req.Entities != nil {
		biz.Entities = fromChecklistDTOs(req.Entities)
	}
	if req.UpdatedBy != "" {
		biz.UpdatedBy = req.UpdatedBy
	}
	biz.Touch()

	if err := s.repo.Save(ctx, biz); err != nil {
		return nil, err
	}

	response := ToBusinessResponse(biz)
	return &response, nil
}

// Delete soft-deletes a business record
func (s *Service) Delete(ctx context.Context, id int64, deletedBy string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id, deletedBy)
}
