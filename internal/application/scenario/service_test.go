package scenario

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taxpractice/backend/internal/domain/business"
	"github.com/taxpractice/backend/internal/domain/clients"
	"github.com/taxpractice/backend/internal/domain/income"
	"github.com/taxpractice/backend/internal/domain/shared"
)

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Save(ctx context.Context, client *clients.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*clients.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.Client), args.Error(1)
}

func (m *MockClientRepository) FindByIDIncludingDeleted(ctx context.Context, id uuid.UUID) (*clients.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.Client), args.Error(1)
}

func (m *MockClientRepository) FindByEmail(ctx context.Context, email string) (*clients.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.Client), args.Error(1)
}

func (m *MockClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]clients.Client, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]clients.Client), args.Get(1).(int64), args.Error(2)
}

func (m *MockClientRepository) Search(ctx context.Context, query string) ([]clients.Client, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]clients.Client), args.Error(1)
}

func (m *MockClientRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func (m *MockClientRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockIncomeRepository struct {
	mock.Mock
}

func (m *MockIncomeRepository) Save(ctx context.Context, rec *income.Income) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockIncomeRepository) FindByID(ctx context.Context, id int64) (*income.Income, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*income.Income), args.Error(1)
}

func (m *MockIncomeRepository) FindByIDIncludingDeleted(ctx context.Context, id int64) (*income.Income, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*income.Income), args.Error(1)
}

func (m *MockIncomeRepository) FindAll(ctx context.Context, filter income.Filter) ([]income.Income, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]income.Income), args.Get(1).(int64), args.Error(2)
}

func (m *MockIncomeRepository) FindByClient(ctx context.Context, clientID uuid.UUID, year *int) ([]income.Income, error) {
	args := m.Called(ctx, clientID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]income.Income), args.Error(1)
}

func (m *MockIncomeRepository) TotalByClientYear(ctx context.Context, clientID uuid.UUID, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, clientID, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockIncomeRepository) StatsByType(ctx context.Context, year *int) (*income.Stats, error) {
	args := m.Called(ctx, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*income.Stats), args.Error(1)
}

func (m *MockIncomeRepository) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Save(ctx context.Context, rec *business.Business) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id int64) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByIDIncludingDeleted(ctx context.Context, id int64) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindAll(ctx context.Context, filter business.Filter) ([]business.Business, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]business.Business), args.Get(1).(int64), args.Error(2)
}

func (m *MockBusinessRepository) FindByClient(ctx context.Context, clientID uuid.UUID, year *int) ([]business.Business, error) {
	args := m.Called(ctx, clientID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]business.Business), args.Error(1)
}

func (m *MockBusinessRepository) SearchByName(ctx context.Context, name string) ([]business.Business, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]business.Business), args.Error(1)
}

func (m *MockBusinessRepository) Stats(ctx context.Context, clientID *uuid.UUID) (*business.Stats, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Stats), args.Error(1)
}

func (m *MockBusinessRepository) SoftDelete(ctx context.Context, id int64, deletedBy string) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func newTestClient(t *testing.T) *clients.Client {
	t.Helper()
	client, err := clients.NewClient("Jane", "Doe")
	require.NoError(t, err)
	return client
}

func incomeRecord(t *testing.T, clientID uuid.UUID, incomeType string, amount float64, year int) income.Income {
	t.Helper()
	rec, err := income.NewIncome(clientID, incomeType)
	require.NoError(t, err)
	a := decimal.NewFromFloat(amount)
	rec.Amount = &a
	rec.Year = &year
	return *rec
}

func TestScenarioService_ForClient(t *testing.T) {
	logger := zap.NewNop()

	t.Run("single w2 record and no businesses", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		incomeRepo := new(MockIncomeRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewService(clientRepo, incomeRepo, businessRepo, nil, logger)

		client := newTestClient(t)
		year := 2024

		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		incomeRepo.On("FindByClient", mock.Anything, client.ID, &year).
			Return([]income.Income{incomeRecord(t, client.ID, "w2", 50000, 2024)}, nil)
		businessRepo.On("FindByClient", mock.Anything, client.ID, &year).
			Return([]business.Business{}, nil)

		result, err := svc.ForClient(context.Background(), client.ID, &year)
		require.NoError(t, err)
		assert.True(t, result.TotalIncome.Equal(decimal.NewFromInt(50000)))
		assert.True(t, result.TotalBusinessRevenue.IsZero())
		assert.Equal(t, 1, result.IncomeCount)
		assert.Equal(t, 0, result.BusinessCount)
		assert.Empty(t, result.UnknownIncomeTypes)
	})

	t.Run("business compensation counts as income, gross sales excluded", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		incomeRepo := new(MockIncomeRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewService(clientRepo, incomeRepo, businessRepo, nil, logger)

		client := newTestClient(t)

		biz, err := business.NewBusiness(client.ID, "Acme")
		require.NoError(t, err)
		w2 := decimal.NewFromInt(10000)
		k1 := decimal.NewFromInt(5000)
		gross := decimal.NewFromInt(200000)
		biz.W2 = &w2
		biz.K1 = &k1
		biz.GrossSales = &gross

		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		incomeRepo.On("FindByClient", mock.Anything, client.ID, (*int)(nil)).
			Return([]income.Income{incomeRecord(t, client.ID, "w2", 40000, 2024)}, nil)
		businessRepo.On("FindByClient", mock.Anything, client.ID, (*int)(nil)).
			Return([]business.Business{*biz}, nil)

		result, err := svc.ForClient(context.Background(), client.ID, nil)
		require.NoError(t, err)
		assert.True(t, result.TotalIncome.Equal(decimal.NewFromInt(55000)),
			"totalIncome should be 55000, got %s", result.TotalIncome)
		assert.True(t, result.TotalBusinessRevenue.Equal(decimal.NewFromInt(15000)),
			"totalBusinessRevenue should exclude gross sales, got %s", result.TotalBusinessRevenue)
		assert.True(t, result.W2Total.Equal(decimal.NewFromInt(50000)))
		assert.True(t, result.K1Total.Equal(decimal.NewFromInt(5000)))
	})

	t.Run("buckets by income category", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		incomeRepo := new(MockIncomeRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewService(clientRepo, incomeRepo, businessRepo, nil, logger)

		client := newTestClient(t)

		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		incomeRepo.On("FindByClient", mock.Anything, client.ID, (*int)(nil)).
			Return([]income.Income{
				incomeRecord(t, client.ID, "w2", 30000, 2024),
				incomeRecord(t, client.ID, "k1", 12000, 2024),
				incomeRecord(t, client.ID, "interest", 500, 2024),
				incomeRecord(t, client.ID, "dividends", 1500, 2024),
			}, nil)
		businessRepo.On("FindByClient", mock.Anything, client.ID, (*int)(nil)).
			Return([]business.Business{}, nil)

		result, err := svc.ForClient(context.Background(), client.ID, nil)
		require.NoError(t, err)
		assert.True(t, result.W2Total.Equal(decimal.NewFromInt(30000)))
		assert.True(t, result.K1Total.Equal(decimal.NewFromInt(12000)))
		assert.True(t, result.OtherTotal.Equal(decimal.NewFromInt(2000)))
		assert.True(t, result.TotalIncome.Equal(decimal.NewFromInt(44000)))
		assert.True(t, result.TotalBusinessRevenue.IsZero())
	})

	t.Run("unknown income types reported and folded into other", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		incomeRepo := new(MockIncomeRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewService(clientRepo, incomeRepo, businessRepo, nil, logger)

		client := newTestClient(t)

		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		incomeRepo.On("FindByClient", mock.Anything, client.ID, (*int)(nil)).
			Return([]income.Income{
				incomeRecord(t, client.ID, "k1_distribution_2024", 7000, 2024),
				incomeRecord(t, client.ID, "k1_distribution_2024", 3000, 2024),
			}, nil)
		businessRepo.On("FindByClient", mock.Anything, client.ID, (*int)(nil)).
			Return([]business.Business{}, nil)

		result, err := svc.ForClient(context.Background(), client.ID, nil)
		require.NoError(t, err)
		// no substring matching: the label does not silently land in K1
		assert.True(t, result.K1Total.IsZero())
		assert.True(t, result.OtherTotal.Equal(decimal.NewFromInt(10000)))
		assert.Equal(t, []string{"k1_distribution_2024"}, result.UnknownIncomeTypes)
	})

	t.Run("nil amounts fold to zero", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		incomeRepo := new(MockIncomeRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewService(clientRepo, incomeRepo, businessRepo, nil, logger)

		client := newTestClient(t)

		rec, err := income.NewIncome(client.ID, "w2")
		require.NoError(t, err)

		clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
		incomeRepo.On("FindByClient", mock.Anything, client.ID, (*int)(nil)).
			Return([]income.Income{*rec}, nil)
		businessRepo.On("FindByClient", mock.Anything, client.ID, (*int)(nil)).
			Return([]business.Business{}, nil)

		result, err := svc.ForClient(context.Background(), client.ID, nil)
		require.NoError(t, err)
		assert.True(t, result.TotalIncome.IsZero())
		assert.Equal(t, 1, result.IncomeCount)
	})

	t.Run("missing client reports not found", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		incomeRepo := new(MockIncomeRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewService(clientRepo, incomeRepo, businessRepo, nil, logger)

		id := uuid.New()
		clientRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.ForClient(context.Background(), id, nil)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestScenarioService_YearScoping(t *testing.T) {
	// The year filter is pushed down to the repositories; the service
	// must pass it through on both fetches.
	clientRepo := new(MockClientRepository)
	incomeRepo := new(MockIncomeRepository)
	businessRepo := new(MockBusinessRepository)
	svc := NewService(clientRepo, incomeRepo, businessRepo, nil, zap.NewNop())

	client := newTestClient(t)
	year := 2023

	clientRepo.On("FindByID", mock.Anything, client.ID).Return(client, nil)
	incomeRepo.On("FindByClient", mock.Anything, client.ID, &year).
		Return([]income.Income{incomeRecord(t, client.ID, "w2", 20000, 2023)}, nil)
	businessRepo.On("FindByClient", mock.Anything, client.ID, &year).
		Return([]business.Business{}, nil)

	result, err := svc.ForClient(context.Background(), client.ID, &year)
	require.NoError(t, err)
	assert.True(t, result.TotalIncome.Equal(decimal.NewFromInt(20000)))
	require.NotNil(t, result.Year)
	assert.Equal(t, 2023, *result.Year)
	incomeRepo.AssertExpectations(t)
	businessRepo.AssertExpectations(t)
}

func TestScenarioService_ForAllClients(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns a page of scenarios", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		incomeRepo := new(MockIncomeRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewService(clientRepo, incomeRepo, businessRepo, nil, logger)

		a := newTestClient(t)
		b := newTestClient(t)

		clientRepo.On("FindAll", mock.Anything, mock.Anything).
			Return([]clients.Client{*a, *b}, int64(2), nil)
		incomeRepo.On("FindByClient", mock.Anything, a.ID, (*int)(nil)).
			Return([]income.Income{incomeRecord(t, a.ID, "w2", 10000, 2024)}, nil)
		incomeRepo.On("FindByClient", mock.Anything, b.ID, (*int)(nil)).
			Return([]income.Income{}, nil)
		businessRepo.On("FindByClient", mock.Anything, mock.Anything, (*int)(nil)).
			Return([]business.Business{}, nil)

		result, err := svc.ForAllClients(context.Background(), ScenarioFilter{})
		require.NoError(t, err)
		require.Len(t, result.Items, 2)
		assert.True(t, result.Items[0].TotalIncome.Equal(decimal.NewFromInt(10000)))
		assert.True(t, result.Items[1].TotalIncome.IsZero())
	})

	t.Run("failed client renders with zero totals", func(t *testing.T) {
		clientRepo := new(MockClientRepository)
		incomeRepo := new(MockIncomeRepository)
		businessRepo := new(MockBusinessRepository)
		svc := NewService(clientRepo, incomeRepo, businessRepo, nil, logger)

		a := newTestClient(t)

		clientRepo.On("FindAll", mock.Anything, mock.Anything).
			Return([]clients.Client{*a}, int64(1), nil)
		incomeRepo.On("FindByClient", mock.Anything, a.ID, (*int)(nil)).
			Return(nil, errors.New("db down"))

		result, err := svc.ForAllClients(context.Background(), ScenarioFilter{})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.True(t, result.Items[0].TotalIncome.IsZero())
		assert.Equal(t, a.ID, result.Items[0].Client.ID)
	})
}
