package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxpractice/backend/internal/domain/business"
)

// ChecklistItemDTO mirrors business.ChecklistItem on the wire
type ChecklistItemDTO struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Value bool   `json:"value"`
}

// CreateBusinessRequest represents a request to create a business record
type CreateBusinessRequest struct {
	ClientID       uuid.UUID          `json:"clientId" binding:"required"`
	Name           string             `json:"name" binding:"required,min=1,max=200"`
	FilingType     string             `json:"filingType" binding:"required,max=100"`
	Ownership      *int64             `json:"ownership" binding:"omitempty,min=0,max=100"`
	Employees      *int64             `json:"employees" binding:"omitempty,min=0"`
	GrossSales     *decimal.Decimal   `json:"grossSales"`
	NetSales       *decimal.Decimal   `json:"netSales"`
	ProjectedSales *decimal.Decimal   `json:"projectedSales"`
	K1             *decimal.Decimal   `json:"k1"`
	W2             *decimal.Decimal   `json:"w2"`
	Industry       string             `json:"industry" binding:"max=200"`
	Year           *int               `json:"year" binding:"omitempty,min=1900,max=2200"`
	Benefits       []ChecklistItemDTO `json:"benefits"`
	Entities       []ChecklistItemDTO `json:"entities"`
	CreatedBy      string             `json:"createdBy" binding:"max=100"`
}

// UpdateBusinessRequest represents a partial update to a business record
type UpdateBusinessRequest struct {
	Name           *string            `json:"name" binding:"omitempty,min=1,max=200"`
	FilingType     *string            `json:"filingType" binding:"omitempty,max=100"`
	Ownership      *int64             `json:"ownership" binding:"omitempty,min=0,max=100"`
	Employees      *int64             `json:"employees" binding:"omitempty,min=0"`
	GrossSales     *decimal.Decimal   `json:"grossSales"`
	NetSales       *decimal.Decimal   `json:"netSales"`
	ProjectedSales *decimal.Decimal   `json:"projectedSales"`
	K1             *decimal.Decimal   `json:"k1"`
	W2             *decimal.Decimal   `json:"w2"`
	Industry       *string            `json:"industry" binding:"omitempty,max=200"`
	Year           *int               `json:"year" binding:"omitempty,min=1900,max=2200"`
	Benefits       []ChecklistItemDTO `json:"benefits"`
	Entities       []ChecklistItemDTO `json:"entities"`
	UpdatedBy      string             `json:"updatedBy" binding:"max=100"`
}

// DeleteRequest carries the optional actor label for a soft delete.
type DeleteRequest struct {
	DeletedBy string `json:"deletedBy" binding:"max=100"`
}

// BusinessResponse represents a business record in API responses
type BusinessResponse struct {
	ID             int64              `json:"id"`
	ClientID       uuid.UUID          `json:"clientId"`
	Name           string             `json:"name"`
	FilingType     string             `json:"filingType"`
	Ownership      *int64             `json:"ownership"`
	Employees      *int64             `json:"employees"`
	GrossSales     *decimal.Decimal   `json:"grossSales"`
	NetSales       *decimal.Decimal   `json:"netSales"`
	ProjectedSales *decimal.Decimal   `json:"projectedSales"`
	K1             *decimal.Decimal   `json:"k1"`
	W2             *decimal.Decimal   `json:"w2"`
	Industry       string             `json:"industry,omitempty"`
	Year           *int               `json:"year"`
	Benefits       []ChecklistItemDTO `json:"benefits"`
	Entities       []ChecklistItemDTO `json:"entities"`
	CreatedBy      string             `json:"createdBy,omitempty"`
	UpdatedBy      string             `json:"updatedBy,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// FilingTypeResponse represents a filing-type lookup entry
type FilingTypeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListFilter represents query options for the business list. ClientID
// stays a string through binding and is parsed in the service.
type ListFilter struct {
	ClientID   string `form:"clientId"`
	FilingType string `form:"filingType"`
	Industry   string `form:"industry"`
	Year       *int   `form:"year"`
	Search     string `form:"search"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy     string `form:"sortBy"`
	SortDir    string `form:"sortDir" binding:"omitempty,oneof=asc desc"`
}

// StatsResponse is the business statistics report
type StatsResponse struct {
	TotalBusinesses  int64            `json:"totalBusinesses"`
	BusinessesByType map[string]int64 `json:"businessesByType"`
	BusinessesByYear map[int]int64    `json:"businessesByYear"`
	TotalRevenue     decimal.Decimal  `json:"totalRevenue"`
	AverageEmployees float64          `json:"averageEmployees"`
}

func toChecklistDTOs(items []business.ChecklistItem) []ChecklistItemDTO {
	dtos := make([]ChecklistItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ChecklistItemDTO{ID: item.ID, Name: item.Name, Value: item.Value}
	}
	return dtos
}

func fromChecklistDTOs(dtos []ChecklistItemDTO) []business.ChecklistItem {
	items := make([]business.ChecklistItem, len(dtos))
	for i, dto := range dtos {
		items[i] = business.ChecklistItem{ID: dto.ID, Name: dto.Name, Value: dto.Value}
	}
	return items
}

// ToBusinessResponse converts a domain Business to BusinessResponse
func ToBusinessResponse(b *business.Business) BusinessResponse {
	return BusinessResponse{
		ID:             b.ID,
		ClientID:       b.ClientID,
		Name:           b.Name,
		FilingType:     b.FilingType,
		Ownership:      b.Ownership,
		Employees:      b.Employees,
		GrossSales:     b.GrossSales,
		NetSales:       b.NetSales,
		ProjectedSales: b.ProjectedSales,
		K1:             b.K1,
		W2:             b.W2,
		Industry:       b.Industry,
		Year:           b.Year,
		Benefits:       toChecklistDTOs(b.Benefits),
		Entities:       toChecklistDTOs(b.Entities),
		CreatedBy:      b.CreatedBy,
		UpdatedBy:      b.UpdatedBy,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ToBusinessResponses converts a slice of domain Business records
func ToBusinessResponses(list []business.Business) []BusinessResponse {
	responses := make([]BusinessResponse, len(list))
	for i := range list {
		responses[i] = ToBusinessResponse(&list[i])
	}
	return responses
}
