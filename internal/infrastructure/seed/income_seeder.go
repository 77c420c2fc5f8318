package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taxpractice/backend/internal/domain/clients"
	"github.com/taxpractice/backend/internal/domain/income"
)

var brokeragePayers = []string{"Fidelity", "Charles Schwab", "TD Ameritrade", "E*Trade", "Vanguard"}
var dividendPayers = []string{"Apple Inc.", "Microsoft Corp.", "Johnson & Johnson", "Coca-Cola", "Procter & Gamble"}
var bankPayers = []string{"Chase Bank", "Bank of America", "Wells Fargo", "Citibank", "Capital One"}
var retirementPayers = []string{"401(k) Plan", "IRA Distribution", "Pension Fund", "TSP"}
var patientPayers = []string{"Insurance Reimbursement", "Patient Payment", "Medicare", "Medicaid"}

// SeedIncomes creates between one and six income records per client per
// year, spread over the configured number of trailing years.
func (s *Seeder) SeedIncomes(ctx context.Context, seeded []clients.Client) error {
	currentYear := time.Now().Year()
	years := make([]int, 0, s.cfg.Years)
	for y := currentYear - s.cfg.Years + 1; y <= currentYear; y++ {
		years = append(years, y)
	}

	s.logger.Info("seeding income records",
		zap.Int("clients", len(seeded)), zap.Int("years", len(years)))

	total := 0
	for _, client := range seeded {
		for _, year := range years {
			for _, incomeType := range s.pickIncomeTypes() {
				record, err := s.buildIncome(client.ID, incomeType, year)
				if err != nil {
					s.logger.Warn("skipping income record", zap.Error(err))
					continue
				}
				if err := s.incomeRepo.Save(ctx, record); err != nil {
					s.logger.Warn("failed to save income record",
						zap.String("client", client.FullName()),
						zap.String("type", incomeType),
						zap.Error(err))
					continue
				}
				total++
			}
		}
	}

	s.logger.Info("seeded income records", zap.Int("count", total))
	return nil
}

// pickIncomeTypes selects 1-6 distinct types from the known vocabulary.
func (s *Seeder) pickIncomeTypes() []string {
	names := make([]string, len(income.KnownTypes))
	for i, t := range income.KnownTypes {
		names[i] = t.Name
	}
	s.faker.ShuffleStrings(names)
	n := s.faker.Number(1, 6)
	if n > len(names) {
		n = len(names)
	}
	return names[:n]
}

func (s *Seeder) buildIncome(clientID uuid.UUID, incomeType string, year int) (*income.Income, error) {
	record, err := income.NewIncome(clientID, incomeType)
	if err != nil {
		return nil, err
	}

	record.TaxPayer = s.faker.Name()
	record.Year = &year
	record.IsExtracted = s.faker.Number(1, 100) <= s.cfg.ExtractedPercent
	record.UpdatedBy = seededBy

	payer, min, max := s.incomeProfile(incomeType)
	record.Payer = payer
	amount := decimal.NewFromFloat(s.faker.Float64Range(min, max)).Round(2)
	record.Amount = &amount

	return record, nil
}

// incomeProfile returns a plausible payer and amount range per type.
func (s *Seeder) incomeProfile(incomeType string) (string, float64, float64) {
	switch incomeType {
	case "w2":
		return s.faker.Company(), 30000, 150000
	case "capital_gains":
		return s.faker.RandomString(brokeragePayers), 500, 25000
	case "capital_gains_long_term":
		return s.faker.RandomString(brokeragePayers), 1000, 50000
	case "dividends":
		return s.faker.RandomString(dividendPayers), 100, 8000
	case "interest":
		return s.faker.RandomString(bankPayers), 10, 2500
	case "rental_income":
		return fmt.Sprintf("%s, %s", s.faker.Street(), s.faker.City()), 12000, 60000
	case "retirement":
		return s.faker.RandomString(retirementPayers), 5000, 80000
	case "social_security":
		return "Social Security Administration", 8000, 35000
	case "patient":
		return s.faker.RandomString(patientPayers), 500, 15000
	default:
		return s.faker.Company(), 100, 10000
	}
}
