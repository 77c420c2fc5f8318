package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// ChecklistItem is one entry in a business's benefits or entities
// checklist. Stored as jsonb alongside the record.
type ChecklistItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// DefaultBenefits returns the benefits checklist a new business starts with.
func DefaultBenefits() []ChecklistItem {
	return []ChecklistItem{
		{ID: "401K", Name: "401K"},
		{ID: "life_insurance", Name: "Life Insurance"},
		{ID: "health_insurance", Name: "Health Insurance"},
		{ID: "sep_ira", Name: "SEP IRA"},
	}
}

// DefaultEntities returns the entity-structure checklist a new business
// starts with.
func DefaultEntities() []ChecklistItem {
	return []ChecklistItem{
		{ID: "articles_incorporation", Name: "Articles of Incorporation"},
		{ID: "operating_agreement", Name: "Operating Agreement"},
		{ID: "ein", Name: "EIN"},
		{ID: "annual_board_meetings", Name: "Annual Board Meetings"},
		{ID: "separate_bank_accounts", Name: "Separate Bank Accounts"},
		{ID: "gl_insurance", Name: "GL Insurance"},
		{ID: "business_asset", Name: "Business Asset"},
	}
}

// Business represents a business attached to a client for a tax year.
// Monetary fields are nullable; aggregation folds nil to zero. K1 and W2
// hold owner compensation flowing out of the business.
type Business struct {
	ID             int64
	ClientID       uuid.UUID
	Name           string
	FilingType     string
	Ownership      *int64
	Employees      *int64
	GrossSales     *decimal.Decimal
	NetSales       *decimal.Decimal
	ProjectedSales *decimal.Decimal
	K1             *decimal.Decimal
	W2             *decimal.Decimal
	Industry       string
	Year           *int
	Benefits       []ChecklistItem
	Entities       []ChecklistItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
	shared.AuditInfo
	shared.SoftDelete
}

// NewBusiness creates a new business record for a client
func NewBusiness(clientID uuid.UUID, name string) (*Business, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Business record requires a client")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot be empty")
	}

	now := time.Now()
	return &Business{
		ClientID:  clientID,
		Name:      name,
		Benefits:  DefaultBenefits(),
		Entities:  DefaultEntities(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CompensationTotal returns the W2 + K1 owner compensation, treating
// nil amounts as zero.
func (b *Business) CompensationTotal() decimal.Decimal {
	total := decimal.Zero
	if b.W2 != nil {
		total = total.Add(*b.W2)
	}
	if b.K1 != nil {
		total = total.Add(*b.K1)
	}
	return total
}

// InYear reports whether the record belongs to the given tax year.
func (b *Business) InYear(year int) bool {
	return b.Year != nil && *b.Year == year
}

// Touch refreshes the update timestamp.
func (b *Business) Touch() {
	b.UpdatedAt = time.Now()
}
