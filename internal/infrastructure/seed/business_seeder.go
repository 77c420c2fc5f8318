package seed

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/taxpractice/backend/internal/domain/business"
	"github.com/taxpractice/backend/internal/domain/clients"
)

var industries = []string{
	"Technology", "Healthcare", "Finance", "Real Estate", "Manufacturing",
	"Retail", "Consulting", "Marketing", "Construction", "Food & Beverage",
	"Education", "Transportation", "Legal Services", "Agriculture", "Entertainment",
}

// SeedBusinesses creates the configured number of business records,
// each attached to a random seeded client.
func (s *Seeder) SeedBusinesses(ctx context.Context, seeded []clients.Client) error {
	s.logger.Info("seeding business records", zap.Int("count", s.cfg.BusinessRecords))

	total := 0
	for i := 0; i < s.cfg.BusinessRecords; i++ {
		client := seeded[s.faker.Number(0, len(seeded)-1)]

		record, err := s.buildBusiness(client)
		if err != nil {
			s.logger.Warn("skipping business record", zap.Error(err))
			continue
		}
		if err := s.businessRepo.Save(ctx, record); err != nil {
			s.logger.Warn("failed to save business record",
				zap.String("client", client.FullName()),
				zap.String("name", record.Name),
				zap.Error(err))
			continue
		}
		total++
	}

	s.logger.Info("seeded business records", zap.Int("count", total))
	return nil
}

func (s *Seeder) buildBusiness(client clients.Client) (*business.Business, error) {
	record, err := business.NewBusiness(client.ID, s.faker.Company())
	if err != nil {
		return nil, err
	}

	record.FilingType = business.KnownFilingTypes[s.faker.Number(0, len(business.KnownFilingTypes)-1)].Name
	record.Industry = industries[s.faker.Number(0, len(industries)-1)]

	ownership := int64(s.faker.Number(1, 100))
	employees := int64(s.faker.Number(1, 500))
	record.Ownership = &ownership
	record.Employees = &employees

	gross := s.faker.Float64Range(50000, 5000000)
	record.GrossSales = s.money(gross)
	record.NetSales = s.money(gross * s.faker.Float64Range(0.6, 0.9))
	record.ProjectedSales = s.money(gross * s.faker.Float64Range(1.1, 1.5))

	// K1 and W2 compensation are each present on about half the records
	if s.faker.Bool() {
		record.K1 = s.money(s.faker.Float64Range(10000, 500000))
	}
	if s.faker.Bool() {
		record.W2 = s.money(s.faker.Float64Range(30000, 150000))
	}

	year := s.faker.Number(2020, 2025)
	record.Year = &year

	record.Benefits = s.randomizeChecklist(business.DefaultBenefits())
	record.Entities = s.randomizeChecklist(business.DefaultEntities())
	record.CreatedBy = seededBy

	return record, nil
}

func (s *Seeder) money(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v).Round(2)
	return &d
}

func (s *Seeder) randomizeChecklist(items []business.ChecklistItem) []business.ChecklistItem {
	for i := range items {
		items[i].Value = s.faker.Bool()
	}
	return items
}
