package income

import "time"

// IncomeType is a lookup-table entry naming an income category.
// Income records reference it by name, not surrogate id; a name is
// immutable once referenced.
type IncomeType struct {
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KnownTypes is the seeded income-type vocabulary.
var KnownTypes = []IncomeType{
	{Name: "capital_gains", Description: "Capital Gains"},
	{Name: "capital_gains_long_term", Description: "Capital Gains (Long Term)"},
	{Name: "dividends", Description: "Dividends"},
	{Name: "interest", Description: "Interest"},
	{Name: "patient", Description: "Patient"},
	{Name: "rental_income", Description: "Rental Income"},
	{Name: "retirement", Description: "Retirement"},
	{Name: "social_security", Description: "Social Security"},
	{Name: "w2", Description: "W2"},
}
