package clients

import (
	"context"

	"github.com/google/uuid"
	"github.com/taxpractice/backend/internal/domain/clients"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// Service handles client-related business operations
type Service struct {
	repo clients.Repository
}

// NewService creates a new client Service
func NewService(repo clients.Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new client
func (s *Service) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := clients.NewClient(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	if req.Email != "" || req.Phone != "" || req.Address != "" {
		if err := client.SetContact(req.Email, req.Phone, req.Address); err != nil {
			return nil, err
		}
	}
	client.CreatedBy = req.CreatedBy

	if err := s.repo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByEmail retrieves a client by email
func (s *Service) GetByEmail(ctx context.Context, email string) (*ClientResponse, error) {
	client, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *Service) List(ctx context.Context, filter ListFilter) (shared.Paginated[ClientResponse], error) {
	domainFilter := shared.DefaultFilter()
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
	domainFilter.Normalize()

	list, total, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ClientResponse]{}, err
	}

	return shared.NewPaginated(ToClientResponses(list), total, domainFilter.Page, domainFilter.Limit), nil
}

// Search finds clients whose first or last name contains the query
func (s *Service) Search(ctx context.Context, query string) ([]ClientResponse, error) {
	if query == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Search query cannot be empty")
	}

	list, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return ToClientResponses(list), nil
}

// Update merges the provided fields into an existing client
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil || req.LastName != nil {
		firstName := client.FirstName
		lastName := client.LastName
		if req.FirstName != nil {
			firstName = *req.FirstName
		}
		if req.LastName != nil {
			lastName = *req.LastName
		}
		if err := client.Rename(firstName, lastName); err != nil {
			return nil, err
		}
	}

	if req.Email != nil || req.Phone != nil || req.Address != nil {
		email := client.Email
		phone := client.Phone
		address := client.Address
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}
		if err := client.SetContact(email, phone, address); err != nil {
			return nil, err
		}
	}

	if req.UpdatedBy != "" {
		client.UpdatedBy = req.UpdatedBy
	}
	client.Touch()

	if err := s.repo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete soft-deletes a client
func (s *Service) Delete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	// FindByID only sees live records, so a deleted client surfaces as
	// not found rather than being deleted twice.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, id, deletedBy)
}
