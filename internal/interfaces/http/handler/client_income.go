package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appincome "github.com/taxpractice/backend/internal/application/income"
	"github.com/taxpractice/backend/internal/application/scenario"
)

// ClientIncomeHandler handles income-record API endpoints
type ClientIncomeHandler struct {
	BaseHandler
	incomeService   *appincome.Service
	scenarioService *scenario.Service
}

// NewClientIncomeHandler creates a new ClientIncomeHandler
func NewClientIncomeHandler(incomeService *appincome.Service, scenarioService *scenario.Service) *ClientIncomeHandler {
	return &ClientIncomeHandler{
		incomeService:   incomeService,
		scenarioService: scenarioService,
	}
}

// RegisterRoutes registers income routes on the given group
func (h *ClientIncomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	incomes := rg.Group("/client-income")
	incomes.POST("", h.Create)
	incomes.GET("", h.List)
	incomes.GET("/types", h.Types)
	incomes.GET("/stats", h.Stats)
	incomes.GET("/client/:clientId", h.ByClient)
	incomes.GET("/client/:clientId/total", h.TotalByClient)
	incomes.GET("/:id", h.GetByID)
	incomes.PATCH("/:id", h.Update)
	incomes.DELETE("/:id", h.Delete)
}

// Create creates a new income record
func (h *ClientIncomeHandler) Create(c *gin.Context) {
	var req appincome.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.incomeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.scenarioService.Invalidate(c.Request.Context(), req.ClientID)
	h.Created(c, record)
}

// List returns a paginated income-record list
func (h *ClientIncomeHandler) List(c *gin.Context) {
	var filter appincome.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.incomeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.Limit)
}

// Types returns the income-type vocabulary
func (h *ClientIncomeHandler) Types(c *gin.Context) {
	types, err := h.incomeService.Types(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, types)
}

// Stats returns aggregate income statistics, optionally for one year
func (h *ClientIncomeHandler) Stats(c *gin.Context) {
	year, err := optionalYear(c)
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}

	stats, err := h.incomeService.Stats(c.Request.Context(), year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// ByClient lists one client's income records
func (h *ClientIncomeHandler) ByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	year, err := optionalYear(c)
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}

	records, err := h.incomeService.ListByClient(c.Request.Context(), clientID, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// TotalByClient sums one client's income for a tax year
func (h *ClientIncomeHandler) TotalByClient(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	year, err := optionalYear(c)
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}
	if year == nil {
		h.BadRequest(c, "Year is required")
		return
	}

	total, err := h.incomeService.TotalByClient(c.Request.Context(), clientID, *year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, total)
}

// GetByID returns one income record
func (h *ClientIncomeHandler) GetByID(c *gin.Context) {
	id, err := parseRecordID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid record ID format")
		return
	}

	record, err := h.incomeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// Update applies a partial update to an income record
func (h *ClientIncomeHandler) Update(c *gin.Context) {
	id, err := parseRecordID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid record ID format")
		return
	}

	var req appincome.UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.incomeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.scenarioService.Invalidate(c.Request.Context(), record.ClientID)
	h.Success(c, record)
}

// Delete soft-deletes an income record
func (h *ClientIncomeHandler) Delete(c *gin.Context) {
	id, err := parseRecordID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid record ID format")
		return
	}

	var req appincome.DeleteRequest
	_ = c.ShouldBindJSON(&req)

	record, err := h.incomeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.incomeService.Delete(c.Request.Context(), id, req.DeletedBy); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.scenarioService.Invalidate(c.Request.Context(), record.ClientID)
	h.SuccessMessage(c, "Income record deleted successfully")
}
