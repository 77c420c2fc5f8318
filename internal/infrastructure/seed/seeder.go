// Package seed fills an empty database with realistic sample data for
// local development and demos. Seeding is idempotent: tables that
// already hold records are left alone.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"

	"github.com/taxpractice/backend/internal/domain/business"
	"github.com/taxpractice/backend/internal/domain/clients"
	"github.com/taxpractice/backend/internal/domain/income"
	"github.com/taxpractice/backend/internal/infrastructure/config"
)

const seededBy = "system"

// Seeder populates lookup tables, clients, income and business records.
type Seeder struct {
	clientRepo     clients.Repository
	incomeRepo     income.Repository
	typeRepo       income.TypeRepository
	businessRepo   business.Repository
	filingTypeRepo business.FilingTypeRepository
	cfg            config.SeedConfig
	faker          *gofakeit.Faker
	logger         *zap.Logger
}

// New creates a Seeder. Pass seed 0 for random output; any other value
// makes runs reproducible.
func New(
	clientRepo clients.Repository,
	incomeRepo income.Repository,
	typeRepo income.TypeRepository,
	businessRepo business.Repository,
	filingTypeRepo business.FilingTypeRepository,
	cfg config.SeedConfig,
	logger *zap.Logger,
	seed uint64,
) *Seeder {
	return &Seeder{
		clientRepo:     clientRepo,
		incomeRepo:     incomeRepo,
		typeRepo:       typeRepo,
		businessRepo:   businessRepo,
		filingTypeRepo: filingTypeRepo,
		cfg:            cfg,
		faker:          gofakeit.New(seed),
		logger:         logger,
	}
}

// Run seeds lookups first, then clients, then the records that hang off
// them. Individual record failures are logged and skipped so one bad
// row never aborts the whole run.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.SeedLookups(ctx); err != nil {
		return fmt.Errorf("seeding lookups: %w", err)
	}

	seeded, err := s.SeedClients(ctx)
	if err != nil {
		return fmt.Errorf("seeding clients: %w", err)
	}
	if len(seeded) == 0 {
		s.logger.Info("no new clients seeded, skipping dependent records")
		return nil
	}

	if err := s.SeedIncomes(ctx, seeded); err != nil {
		return fmt.Errorf("seeding incomes: %w", err)
	}
	if err := s.SeedBusinesses(ctx, seeded); err != nil {
		return fmt.Errorf("seeding businesses: %w", err)
	}
	return nil
}

// SeedLookups inserts any missing income-type and filing-type entries.
func (s *Seeder) SeedLookups(ctx context.Context) error {
	for _, t := range income.KnownTypes {
		exists, err := s.typeRepo.Exists(ctx, t.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		entry := t
		if err := s.typeRepo.Save(ctx, &entry); err != nil {
			return err
		}
		s.logger.Info("seeded income type", zap.String("name", t.Name))
	}

	for _, t := range business.KnownFilingTypes {
		exists, err := s.filingTypeRepo.Exists(ctx, t.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		entry := t
		if err := s.filingTypeRepo.Save(ctx, &entry); err != nil {
			return err
		}
		s.logger.Info("seeded filing type", zap.String("name", t.Name))
	}
	return nil
}

// SeedClients creates the configured number of sample clients. Returns
// nil without creating anything when clients already exist.
func (s *Seeder) SeedClients(ctx context.Context) ([]clients.Client, error) {
	count, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		s.logger.Info("clients already seeded", zap.Int64("existing", count))
		return nil, nil
	}

	s.logger.Info("seeding clients", zap.Int("count", s.cfg.Clients))

	seeded := make([]clients.Client, 0, s.cfg.Clients)
	for i := 0; i < s.cfg.Clients; i++ {
		firstName := s.faker.FirstName()
		lastName := s.faker.LastName()

		client, err := clients.NewClient(firstName, lastName)
		if err != nil {
			s.logger.Warn("skipping invalid client", zap.Error(err))
			continue
		}

		email := strings.ToLower(fmt.Sprintf("%s.%s@%s",
			firstName, lastName, s.faker.DomainName()))
		address := fmt.Sprintf("%s, %s, %s %s",
			s.faker.Street(), s.faker.City(), s.faker.StateAbr(), s.faker.Zip())
		if err := client.SetContact(email, s.faker.Phone(), address); err != nil {
			s.logger.Warn("skipping client contact", zap.String("email", email), zap.Error(err))
		}
		client.CreatedBy = seededBy

		if err := s.clientRepo.Save(ctx, client); err != nil {
			s.logger.Warn("failed to save client",
				zap.String("name", client.FullName()), zap.Error(err))
			continue
		}
		seeded = append(seeded, *client)
	}

	s.logger.Info("seeded clients", zap.Int("count", len(seeded)))
	return seeded, nil
}
