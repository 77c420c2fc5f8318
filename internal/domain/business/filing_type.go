package business

import "time"

// FilingType is a lookup-table entry naming a business filing structure.
// Businesses reference it by name.
type FilingType struct {
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// KnownFilingTypes is the seeded filing-type vocabulary.
var KnownFilingTypes = []FilingType{
	{Name: "c_corp", Description: "C Corporation"},
	{Name: "llc", Description: "Limited Liability Company"},
	{Name: "partnership", Description: "Partnership"},
	{Name: "schedule_c", Description: "Schedule C"},
	{Name: "s_corp", Description: "S Corporation"},
	{Name: "sole_proprietorships", Description: "Sole Proprietorship"},
}
