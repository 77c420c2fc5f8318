package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appbusiness "github.com/taxpractice/backend/internal/application/business"
	"github.com/taxpractice/backend/internal/application/scenario"
)

// ClientBusinessHandler handles business-record API endpoints
type ClientBusinessHandler struct {
	BaseHandler
	businessService *appbusiness.Service
	scenarioService *scenario.Service
}

// NewClientBusinessHandler creates a new ClientBusinessHandler
func NewClientBusinessHandler(businessService *appbusiness.Service, scenarioService *scenario.Service) *ClientBusinessHandler {
	return &ClientBusinessHandler{
		businessService: businessService,
		scenarioService: scenarioService,
	}
}

// RegisterRoutes registers business routes on the given group
func (h *ClientBusinessHandler) RegisterRoutes(rg *gin.RouterGroup) {
	businesses := rg.Group("/client-businesses")
	businesses.POST("", h.Create)
	businesses.GET("", h.List)
	businesses.GET("/stats", h.Stats)
	businesses.GET("/filing-types", h.FilingTypes)
	businesses.GET("/search/by-name", h.SearchByName)
	businesses.GET("/filter/by-filing-type/:filingType", h.ByFilingType)
	businesses.GET("/filter/by-industry/:industry", h.ByIndustry)
	businesses.GET("/filter/by-year/:year", h.ByYear)
	businesses.GET("/client/:clientId", h.ByClient)
	businesses.GET("/:id", h.GetByID)
	businesses.PATCH("/:id", h.Update)
	businesses.DELETE("/:id", h.Delete)
}

// Create creates a new business record
func (h *ClientBusinessHandler) Create(c *gin.Context) {
	var req appbusiness.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.businessService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.scenarioService.Invalidate(c.Request.Context(), req.ClientID)
	h.Created(c, record)
}

// List returns a paginated business-record list
func (h *ClientBusinessHandler) List(c *gin.Context) {
	var filter appbusiness.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	h.list(c, filter)
}

func (h *ClientBusinessHandler) list(c *gin.Context, filter appbusiness.ListFilter) {
	page, err := h.businessService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.Limit)
}

// Stats returns aggregate business statistics, optionally for one client
func (h *ClientBusinessHandler) Stats(c *gin.Context) {
	var clientID *uuid.UUID
	if raw := c.Query("clientId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid client ID format")
			return
		}
		clientID = &id
	}

	stats, err := h.businessService.Stats(c.Request.Context(), clientID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// FilingTypes returns the filing-type vocabulary
func (h *ClientBusinessHandler) FilingTypes(c *gin.Context) {
	types, err := h.businessService.FilingTypes(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, types)
}

// SearchByName searches business records by name
func (h *ClientBusinessHandler) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		h.BadRequest(c, "Name query parameter is required")
		return
	}

	records, err := h.businessService.SearchByName(c.Request.Context(), name)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// ByFilingType lists business records with the given filing type
func (h *ClientBusinessHandler) ByFilingType(c *gin.Context) {
	var filter appbusiness.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}
	filter.FilingType = c.Param("filingType")

	h.list(c, filter)
}

// ByIndustry lists business records matching the given industry
func (h *ClientBusinessHandler) ByIndustry(c *gin.Context) {
	var filter appbusiness.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}
	filter.Industry = c.Param("industry")

	h.list(c, filter)
}

// ByYear lists business records for the given tax year
func (h *ClientBusinessHandler) ByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}

	var filter appbusiness.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}
	filter.Year = &year

	h.list(c, filter)
}

// ByClient lists one client's business records
func (h *ClientBusinessHandler) ByClient(c *gin.Context) {
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

	records, err := h.businessService.ListByClient(c.Request.Context(), clientID, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, records)
}

// GetByID returns one business record
func (h *ClientBusinessHandler) GetByID(c *gin.Context) {
	id, err := parseRecordID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid record ID format")
		return
	}

	record, err := h.businessService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, record)
}

// Update applies a partial update to a business record
func (h *ClientBusinessHandler) Update(c *gin.Context) {
	id, err := parseRecordID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid record ID format")
		return
	}

	var req appbusiness.UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	record, err := h.businessService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.scenarioService.Invalidate(c.Request.Context(), record.ClientID)
	h.Success(c, record)
}

// Delete soft-deletes a business record
func (h *ClientBusinessHandler) Delete(c *gin.Context) {
	id, err := parseRecordID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid record ID format")
		return
	}

	var req appbusiness.DeleteRequest
	_ = c.ShouldBindJSON(&req)

	record, err := h.businessService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if err := h.businessService.Delete(c.Request.Context(), id, req.DeletedBy); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.scenarioService.Invalidate(c.Request.Context(), record.ClientID)
	h.SuccessMessage(c, "Business record deleted successfully")
}
