package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appclients "github.com/taxpractice/backend/internal/application/clients"
	appincome "github.com/taxpractice/backend/internal/application/income"
	"github.com/taxpractice/backend/internal/application/scenario"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService   *appclients.Service
	incomeService   *appincome.Service
	scenarioService *scenario.Service
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(
	clientService *appclients.Service,
	incomeService *appincome.Service,
	scenarioService *scenario.Service,
) *ClientHandler {
	return &ClientHandler{
		clientService:   clientService,
		incomeService:   incomeService,
		scenarioService: scenarioService,
	}
}

// RegisterRoutes registers client routes on the given group
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	clients.POST("", h.Create)
	clients.GET("", h.List)
	clients.GET("/search", h.Search)
	clients.GET("/scenarios", h.Scenarios)
	clients.GET("/email/:email", h.GetByEmail)
	clients.GET("/:id", h.GetByID)
	clients.PATCH("/:id", h.Update)
	clients.DELETE("/:id", h.Delete)
	clients.GET("/:id/incomes", h.Incomes)
	clients.GET("/:id/scenario", h.Scenario)
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req appclients.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, client)
}

// List returns a paginated client list
func (h *ClientHandler) List(c *gin.Context) {
	var filter appclients.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.Limit)
}

// Search finds clients by name fragment
func (h *ClientHandler) Search(c *gin.Context) {
	results, err := h.clientService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, results)
}

// GetByID returns one client
func (h *ClientHandler) GetByID(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	client, err := h.clientService.GetByID(c.Request.Context(), clientID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// GetByEmail returns one client by exact email
func (h *ClientHandler) GetByEmail(c *gin.Context) {
	client, err := h.clientService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, client)
}

// Update applies a partial update to a client
func (h *ClientHandler) Update(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	var req appclients.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), clientID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.scenarioService.Invalidate(c.Request.Context(), clientID)
	h.Success(c, client)
}

// Delete soft-deletes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	// The actor label is optional; an absent or malformed body means anonymous
	var req appclients.DeleteRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.clientService.Delete(c.Request.Context(), clientID, req.DeletedBy); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.scenarioService.Invalidate(c.Request.Context(), clientID)
	h.SuccessMessage(c, "Client deleted successfully")
}

// Incomes lists a client's income records, optionally scoped to a year
func (h *ClientHandler) Incomes(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
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

// Scenario returns the aggregated scenario for one client
func (h *ClientHandler) Scenario(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid client ID format")
		return
	}

	year, err := optionalYear(c)
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}

	result, err := h.scenarioService.ForClient(c.Request.Context(), clientID, year)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Scenarios returns aggregated scenarios for a page of clients
func (h *ClientHandler) Scenarios(c *gin.Context) {
	var filter scenario.ScenarioFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.scenarioService.ForAllClients(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.Limit)
}
