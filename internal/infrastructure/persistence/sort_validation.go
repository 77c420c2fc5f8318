package persistence

import "strings"

// ValidateSortOrder normalizes the sort direction to ASC or DESC,
// defaulting to DESC for anything unrecognized.
func ValidateSortOrder(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField checks the requested sort field against an
// allow-list and falls back to defaultField for anything else. Sort
// fields reach ORDER BY clauses, so only listed values pass through.
func ValidateSortField(field string, allowed map[string]string, defaultField string) string {
	if column, ok := allowed[strings.TrimSpace(field)]; ok {
		return column
	}
	return defaultField
}

// ClientSortFields maps accepted client sort keys to columns.
var ClientSortFields = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
	"firstName":  "first_name",
	"first_name": "first_name",
	"lastName":   "last_name",
	"last_name":  "last_name",
	"email":      "email",
}

// IncomeSortFields maps accepted income sort keys to columns.
var IncomeSortFields = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
	"amount":     "amount",
	"year":       "year",
	"incomeType": "income_type",
	"payer":      "payer",
}

// BusinessSortFields maps accepted business sort keys to columns.
// "clientName" is synthetic: it sorts by the joined client's first name.
var BusinessSortFields = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
	"name":       "name",
	"filingType": "filing_type",
	"industry":   "industry",
	"year":       "year",
	"grossSales": "gross_sales",
	"clientName": "clients.first_name",
}
