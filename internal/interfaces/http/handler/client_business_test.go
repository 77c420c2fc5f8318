package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	businessapp "github.com/taxpractice/backend/internal/application/business"
	scenarioapp "github.com/taxpractice/backend/internal/application/scenario"
	"github.com/taxpractice/backend/internal/domain/business"
	"github.com/taxpractice/backend/internal/domain/shared"
)

// MockBusinessRepository is a mock implementation of business.Repository
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) Save(ctx context.Context, record *business.Business) error {
	args := m.Called(ctx, record)
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
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

// MockFilingTypeRepository is a mock implementation of business.FilingTypeRepository
type MockFilingTypeRepository struct {
	mock.Mock
}

func (m *MockFilingTypeRepository) FindAll(ctx context.Context) ([]business.FilingType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]business.FilingType), args.Error(1)
}

func (m *MockFilingTypeRepository) Exists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilingTypeRepository) Save(ctx context.Context, filingType *business.FilingType) error {
	args := m.Called(ctx, filingType)
	return args.Error(0)
}

type businessHandlerFixture struct {
	repo       *MockBusinessRepository
	filingRepo *MockFilingTypeRepository
	engine     *gin.Engine
}

func newBusinessHandlerFixture() *businessHandlerFixture {
	f := &businessHandlerFixture{
		repo:       new(MockBusinessRepository),
		filingRepo: new(MockFilingTypeRepository),
	}

	businessService := businessapp.NewService(f.repo, f.filingRepo)
	scenarioService := scenarioapp.NewService(new(MockClientRepository), new(MockIncomeRepository), f.repo, nil, zap.NewNop())

	f.engine = gin.New()
	NewClientBusinessHandler(businessService, scenarioService).RegisterRoutes(f.engine.Group(""))
	return f
}

func testBusiness(id int64, clientID uuid.UUID) *business.Business {
	biz, _ := business.NewBusiness(clientID, "Lovelace Analytics")
	biz.ID = id
	biz.FilingType = "s_corp"
	biz.Industry = "Technology"
	return biz
}

func TestClientBusinessHandler_Create(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	f.filingRepo.On("Exists", mock.Anything, "s_corp").Return(true, nil)
	f.repo.On("Save", mock.Anything, mock.AnythingOfType("*business.Business")).Return(nil)

	w := performRequest(f.engine, http.MethodPost, "/client-businesses", gin.H{
		"clientId":   clientID.String(),
		"name":       "Lovelace Analytics",
		"filingType": "s_corp",
		"grossSales": "250000",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]any)
	assert.Equal(t, "Lovelace Analytics", data["name"])
	assert.Equal(t, "s_corp", data["filingType"])
	f.repo.AssertExpectations(t)
}

func TestClientBusinessHandler_Create_UnknownFilingType(t *testing.T) {
	f := newBusinessHandlerFixture()
	f.filingRepo.On("Exists", mock.Anything, "d_corp").Return(false, nil)

	w := performRequest(f.engine, http.MethodPost, "/client-businesses", gin.H{
		"clientId":   uuid.New().String(),
		"name":       "Lovelace Analytics",
		"filingType": "d_corp",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestClientBusinessHandler_List(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	list := []business.Business{*testBusiness(1, clientID), *testBusiness(2, clientID)}
	f.repo.On("FindAll", mock.Anything, mock.AnythingOfType("business.Filter")).Return(list, int64(2), nil)

	w := performRequest(f.engine, http.MethodGet, "/client-businesses?page=1&limit=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeResponse(t, w)
	assert.Len(t, body["data"], 2)
	assert.Equal(t, float64(2), body["meta"].(map[string]any)["total"])
}

func TestClientBusinessHandler_List_ByClientID(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	f.repo.On("FindAll", mock.Anything, mock.MatchedBy(func(filter business.Filter) bool {
		return filter.ClientID != nil && *filter.ClientID == clientID
	})).Return([]business.Business{*testBusiness(1, clientID)}, int64(1), nil)

	w := performRequest(f.engine, http.MethodGet, "/client-businesses?clientId="+clientID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 1)
	f.repo.AssertExpectations(t)
}

func TestClientBusinessHandler_List_InvalidClientID(t *testing.T) {
	f := newBusinessHandlerFixture()

	w := performRequest(f.engine, http.MethodGet, "/client-businesses?clientId=nope", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errInfo := decodeResponse(t, w)["error"].(map[string]any)
	assert.Equal(t, "INVALID_CLIENT_ID", errInfo["code"])
	f.repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

func TestClientBusinessHandler_ByFilingType(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	f.repo.On("FindAll", mock.Anything, mock.MatchedBy(func(filter business.Filter) bool {
		return filter.FilingType == "s_corp"
	})).Return([]business.Business{*testBusiness(1, clientID)}, int64(1), nil)

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/filter/by-filing-type/s_corp", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 1)
}

func TestClientBusinessHandler_ByYear(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	f.repo.On("FindAll", mock.Anything, mock.MatchedBy(func(filter business.Filter) bool {
		return filter.Year != nil && *filter.Year == 2024
	})).Return([]business.Business{*testBusiness(1, clientID)}, int64(1), nil)

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/filter/by-year/2024", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientBusinessHandler_ByYear_Invalid(t *testing.T) {
	f := newBusinessHandlerFixture()

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/filter/by-year/later", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientBusinessHandler_SearchByName(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	f.repo.On("SearchByName", mock.Anything, "Lovelace").Return([]business.Business{*testBusiness(1, clientID)}, nil)

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/search/by-name?name=Lovelace", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 1)
}

func TestClientBusinessHandler_SearchByName_MissingName(t *testing.T) {
	f := newBusinessHandlerFixture()

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/search/by-name", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.repo.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
}

func TestClientBusinessHandler_Stats(t *testing.T) {
	f := newBusinessHandlerFixture()
	f.repo.On("Stats", mock.Anything, (*uuid.UUID)(nil)).Return(&business.Stats{
		TotalBusinesses:  4,
		ByFilingType:     map[string]int64{"s_corp": 3, "llc": 1},
		ByYear:           map[int]int64{2024: 4},
		TotalRevenue:     decimal.NewFromInt(1250000),
		AverageEmployees: 12.5,
	}, nil)

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]any)
	assert.Equal(t, float64(4), data["totalBusinesses"])
	assert.Equal(t, 12.5, data["averageEmployees"])
}

func TestClientBusinessHandler_Stats_InvalidClientID(t *testing.T) {
	f := newBusinessHandlerFixture()

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/stats?clientId=nope", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientBusinessHandler_FilingTypes(t *testing.T) {
	f := newBusinessHandlerFixture()
	f.filingRepo.On("FindAll", mock.Anything).Return([]business.FilingType{
		{Name: "s_corp", Description: "S corporation"},
		{Name: "llc", Description: "Limited liability company"},
	}, nil)

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/filing-types", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 2)
}

func TestClientBusinessHandler_ByClient(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	year := 2024
	f.repo.On("FindByClient", mock.Anything, clientID, &year).Return([]business.Business{*testBusiness(1, clientID)}, nil)

	w := performRequest(f.engine, http.MethodGet, "/client-businesses/client/"+clientID.String()+"?year=2024", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w)["data"], 1)
}

func TestClientBusinessHandler_Update(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	f.repo.On("FindByID", mock.Anything, int64(3)).Return(testBusiness(3, clientID), nil)
	f.filingRepo.On("Exists", mock.Anything, "llc").Return(true, nil)
	f.repo.On("Save", mock.Anything, mock.AnythingOfType("*business.Business")).Return(nil)

	w := performRequest(f.engine, http.MethodPatch, "/client-businesses/3", gin.H{
		"filingType": "llc",
		"updatedBy":  "admin",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]any)
	assert.Equal(t, "llc", data["filingType"])
	assert.Equal(t, "Lovelace Analytics", data["name"])
}

func TestClientBusinessHandler_Delete(t *testing.T) {
	f := newBusinessHandlerFixture()
	clientID := uuid.New()
	f.repo.On("FindByID", mock.Anything, int64(3)).Return(testBusiness(3, clientID), nil)
	f.repo.On("SoftDelete", mock.Anything, int64(3), "admin").Return(nil)

	w := performRequest(f.engine, http.MethodDelete, "/client-businesses/3", gin.H{"deletedBy": "admin"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Business record deleted successfully", decodeResponse(t, w)["message"])
	f.repo.AssertExpectations(t)
}

func TestClientBusinessHandler_Delete_NotFound(t *testing.T) {
	f := newBusinessHandlerFixture()
	f.repo.On("FindByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

	w := performRequest(f.engine, http.MethodDelete, "/client-businesses/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	f.repo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
}
