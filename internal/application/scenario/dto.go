package scenario

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	appclients "github.com/taxpractice/backend/internal/application/clients"
)

// ClientScenario is the derived per-client summary consumed by the
// dashboard. It is recomputed from live records on demand and never
// persisted.
type ClientScenario struct {
	Client               appclients.ClientResponse `json:"client"`
	TotalIncome          decimal.Decimal           `json:"totalIncome"`
	TotalBusinessRevenue decimal.Decimal           `json:"totalBusinessRevenue"`
	W2Total              decimal.Decimal           `json:"w2Total"`
	K1Total              decimal.Decimal           `json:"k1Total"`
	OtherTotal           decimal.Decimal           `json:"otherTotal"`
	IncomeCount          int                       `json:"incomeCount"`
	BusinessCount        int                       `json:"businessCount"`
	Year                 *int                      `json:"year,omitempty"`
	// UnknownIncomeTypes lists income-type labels that did not match the
	// known vocabulary. Their amounts are folded into OtherTotal.
	UnknownIncomeTypes []string `json:"unknownIncomeTypes,omitempty"`
}

// ScenarioFilter scopes scenario computation
type ScenarioFilter struct {
	Year  *int `form:"year"`
	Page  int  `form:"page" binding:"omitempty,min=1"`
	Limit int  `form:"limit" binding:"omitempty,min=1,max=100"`
}

// cacheKey distinguishes per-client, year-scoped entries.
func cacheKey(clientID uuid.UUID, year *int) string {
	key := "scenario:" + clientID.String()
	if year != nil {
		key += ":" + strconv.Itoa(*year)
	}
	return key
}
