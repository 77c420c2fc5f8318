package scenario

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appclients "github.com/taxpractice/backend/internal/application/clients"
	"github.com/taxpractice/backend/internal/domain/business"
	"github.com/taxpractice/backend/internal/domain/clients"
	"github.com/taxpractice/backend/internal/domain/income"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// Cache stores serialized scenario summaries under string keys. A miss
// is reported as ok=false, never as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	DeleteByPrefix(ctx context.Context, prefix string)
}

const cacheTTL = 30 * time.Second

// Service computes per-client scenario summaries. It is the single
// source of truth for income bucketing; API consumers render its output
// instead of re-deriving totals from raw records.
type Service struct {
	clientRepo   clients.Repository
	incomeRepo   income.Repository
	businessRepo business.Repository
	cache        Cache
	logger       *zap.Logger
}

// NewService creates a new scenario Service
func NewService(
	clientRepo clients.Repository,
	incomeRepo income.Repository,
	businessRepo business.Repository,
	cache Cache,
	logger *zap.Logger,
) *Service {
	return &Service{
		clientRepo:   clientRepo,
		incomeRepo:   incomeRepo,
		businessRepo: businessRepo,
		cache:        cache,
		logger:       logger,
	}
}

// ForClient computes the scenario summary for one client
func (s *Service) ForClient(ctx context.Context, clientID uuid.UUID, year *int) (*ClientScenario, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, cacheKey(clientID, year)); ok {
			var cached ClientScenario
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	result, err := s.compute(ctx, client, year)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			s.cache.Set(ctx, cacheKey(clientID, year), raw, cacheTTL)
		}
	}
	return result, nil
}

// ForAllClients computes scenario summaries for a page of clients
func (s *Service) ForAllClients(ctx context.Context, filter ScenarioFilter) (shared.Paginated[ClientScenario], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.Limit > 0 {
		domainFilter.Limit = filter.Limit
	}
	domainFilter.Normalize()

	list, total, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[ClientScenario]{}, err
	}

	scenarios := make([]ClientScenario, 0, len(list))
	for i := range list {
		scenario, err := s.compute(ctx, &list[i], filter.Year)
		if err != nil {
			// A client whose records cannot be read still appears, with
			// zero totals, rather than dropping out of the page.
			s.logger.Warn("scenario computation failed",
				zap.String("client_id", list[i].ID.String()),
				zap.Error(err))
			scenario = emptyScenario(&list[i], filter.Year)
		}
		scenarios = append(scenarios, *scenario)
	}

	return shared.NewPaginated(scenarios, total, domainFilter.Page, domainFilter.Limit), nil
}

// Invalidate drops cached scenarios for a client after a mutation.
func (s *Service) Invalidate(ctx context.Context, clientID uuid.UUID) {
	if s.cache != nil {
		s.cache.DeleteByPrefix(ctx, "scenario:"+clientID.String())
	}
}

func (s *Service) compute(ctx context.Context, client *clients.Client, year *int) (*ClientScenario, error) {
	incomes, err := s.incomeRepo.FindByClient(ctx, client.ID, year)
	if err != nil {
		return nil, err
	}
	businesses, err := s.businessRepo.FindByClient(ctx, client.ID, year)
	if err != nil {
		return nil, err
	}

	w2Total := decimal.Zero
	k1Total := decimal.Zero
	otherTotal := decimal.Zero
	var unknown []string

	for i := range incomes {
		rec := &incomes[i]
		category, known := income.Classify(rec.Type)
		if !known {
			s.logger.Warn("unknown income type in aggregation",
				zap.String("income_type", rec.Type),
				zap.Int64("income_id", rec.ID),
				zap.String("client_id", client.ID.String()))
			unknown = appendUnique(unknown, rec.Type)
		}
		switch category {
		case income.CategoryW2:
			w2Total = w2Total.Add(rec.AmountOrZero())
		case income.CategoryK1:
			k1Total = k1Total.Add(rec.AmountOrZero())
		default:
			otherTotal = otherTotal.Add(rec.AmountOrZero())
		}
	}

	// Business W2/K1 compensation counts as additional income of the
	// same bucket. Gross sales never enter these totals.
	for i := range businesses {
		biz := &businesses[i]
		if biz.W2 != nil {
			w2Total = w2Total.Add(*biz.W2)
		}
		if biz.K1 != nil {
			k1Total = k1Total.Add(*biz.K1)
		}
	}

	return &ClientScenario{
		Client:               appclients.ToClientResponse(client),
		TotalIncome:          w2Total.Add(k1Total).Add(otherTotal),
		TotalBusinessRevenue: businessCompensation(businesses),
		W2Total:              w2Total,
		K1Total:              k1Total,
		OtherTotal:           otherTotal,
		IncomeCount:          len(incomes),
		BusinessCount:        len(businesses),
		Year:                 year,
		UnknownIncomeTypes:   unknown,
	}, nil
}

// businessCompensation sums W2+K1 flowing through business entities.
// This is what the dashboard reports as business revenue.
func businessCompensation(businesses []business.Business) decimal.Decimal {
	total := decimal.Zero
	for i := range businesses {
		total = total.Add(businesses[i].CompensationTotal())
	}
	return total
}

func emptyScenario(client *clients.Client, year *int) *ClientScenario {
	return &ClientScenario{
		Client: appclients.ToClientResponse(client),
		Year:   year,
	}
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
