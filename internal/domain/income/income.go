package income

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// Income represents a single income event for a client in a tax year.
// Amount may be nil (an extracted record whose amount was unreadable);
// aggregation treats nil as zero.
type Income struct {
	ID        int64
	ClientID  uuid.UUID
	TaxPayer  string
	Payer     string
	Type      string
	Amount    *decimal.Decimal
	Year      *int
	// IsExtracted marks records derived from document extraction rather
	// than manual entry.
	IsExtracted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	shared.AuditInfo
	shared.SoftDelete
}

// NewIncome creates a new income record for a client
func NewIncome(clientID uuid.UUID, incomeType string) (*Income, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT_ID", "Income record requires a client")
	}
	if incomeType == "" {
		return nil, shared.NewDomainError("INVALID_INCOME_TYPE", "Income type cannot be empty")
	}

	now := time.Now()
	return &Income{
		ClientID:  clientID,
		Type:      incomeType,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AmountOrZero returns the amount, folding nil to zero.
func (i *Income) AmountOrZero() decimal.Decimal {
	if i.Amount == nil {
		return decimal.Zero
	}
	return *i.Amount
}

// InYear reports whether the record belongs to the given tax year.
func (i *Income) InYear(year int) bool {
	return i.Year != nil && *i.Year == year
}

// Touch refreshes the update timestamp.
func (i *Income) Touch() {
	i.UpdatedAt = time.Now()
}
