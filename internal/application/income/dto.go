package income

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxpractice/backend/internal/domain/income"
)

// CreateIncomeRequest represents a request to create an income record
type CreateIncomeRequest struct {
	ClientID    uuid.UUID        `json:"clientId" binding:"required"`
	TaxPayer    string           `json:"taxPayer" binding:"max=200"`
	Payer       string           `json:"payer" binding:"max=200"`
	IncomeType  string           `json:"incomeType" binding:"required,max=100"`
	Amount      *decimal.Decimal `json:"amount"`
	Year        *int             `json:"year" binding:"omitempty,min=1900,max=2200"`
	IsExtracted bool             `json:"isExtracted"`
	CreatedBy   string           `json:"createdBy" binding:"max=100"`
}

// UpdateIncomeRequest represents a partial update to an income record
type UpdateIncomeRequest struct {
	TaxPayer    *string          `json:"taxPayer" binding:"omitempty,max=200"`
	Payer       *string          `json:"payer" binding:"omitempty,max=200"`
	IncomeType  *string          `json:"incomeType" binding:"omitempty,max=100"`
	Amount      *decimal.Decimal `json:"amount"`
	Year        *int             `json:"year" binding:"omitempty,min=1900,max=2200"`
	IsExtracted *bool            `json:"isExtracted"`
	UpdatedBy   string           `json:"updatedBy" binding:"max=100"`
}

// DeleteRequest carries the optional actor label for a soft delete.
type DeleteRequest struct {
	DeletedBy string `json:"deletedBy" binding:"max=100"`
}

// IncomeResponse represents an income record in API responses
type IncomeResponse struct {
	ID          int64            `json:"id"`
	ClientID    uuid.UUID        `json:"clientId"`
	TaxPayer    string           `json:"taxPayer,omitempty"`
	Payer       string           `json:"payer,omitempty"`
	IncomeType  string           `json:"incomeType"`
	Amount      *decimal.Decimal `json:"amount"`
	Year        *int             `json:"year"`
	IsExtracted bool             `json:"isExtracted"`
	CreatedBy   string           `json:"createdBy,omitempty"`
	UpdatedBy   string           `json:"updatedBy,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// IncomeTypeResponse represents an income-type lookup entry
type IncomeTypeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListFilter represents query options for the income list. ClientID
// stays a string through binding and is parsed in the service.
type ListFilter struct {
	ClientID string `form:"clientId"`
	Year     *int   `form:"year"`
	Type     string `form:"incomeType"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	SortBy   string `form:"sortBy"`
	SortDir  string `form:"sortDir" binding:"omitempty,oneof=asc desc"`
}

// TypeStatResponse is one income-type group in the statistics report
type TypeStatResponse struct {
	IncomeType string          `json:"incomeType"`
	Count      int64           `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Average    decimal.Decimal `json:"average"`
}

// StatsResponse is the income statistics report
type StatsResponse struct {
	TotalRecords int64              `json:"totalRecords"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	ByType       []TypeStatResponse `json:"byType"`
	Year         *int               `json:"year,omitempty"`
}

// ClientTotalResponse is the summed income for one client
type ClientTotalResponse struct {
	ClientID uuid.UUID       `json:"clientId"`
	Total    decimal.Decimal `json:"total"`
	Year     *int            `json:"year,omitempty"`
}

// ToIncomeResponse converts a domain Income to IncomeResponse
func ToIncomeResponse(rec *income.Income) IncomeResponse {
	return IncomeResponse{
		ID:          rec.ID,
		ClientID:    rec.ClientID,
		TaxPayer:    rec.TaxPayer,
		Payer:       rec.Payer,
		IncomeType:  rec.Type,
		Amount:      rec.Amount,
		Year:        rec.Year,
		IsExtracted: rec.IsExtracted,
		CreatedBy:   rec.CreatedBy,
		UpdatedBy:   rec.UpdatedBy,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

// ToIncomeResponses converts a slice of domain Income records
func ToIncomeResponses(list []income.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(list))
	for i := range list {
		responses[i] = ToIncomeResponse(&list[i])
	}
	return responses
}
