package handlers

import (
	"net/http"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CIHandler handles HTTP requests for configuration item operations
type CIHandler struct {
	ciService service.CIServiceInterface
}

// NewCIHandler creates a new configuration item handler
func NewCIHandler(ciService service.CIServiceInterface) *CIHandler {
	return &CIHandler{ciService: ciService}
}

// Create handles POST /cis
// @Summary Create a configuration item
// @Description Create a configuration item, stamping the caller as owner
// @Tags configuration-items
// @Accept json
// @Produce json
// @Param ci body service.CreateCIRequest true "Configuration item to create"
// @Success 201 {object} service.CIResponse "Configuration item created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Security BearerAuth
// @Router /cis [post]
func (h *CIHandler) Create(c *gin.Context) {
	var req service.CreateCIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ci, err := h.ciService.Create(&req, auth.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ci)
}

// GetAll handles GET /cis
// @Summary List configuration items
// @Description Get all configuration items ordered by name
// @Tags configuration-items
// @Produce json
// @Success 200 {array} service.CIResponse "Configuration items"
// @Router /cis [get]
func (h *CIHandler) GetAll(c *gin.Context) {
	cis, err := h.ciService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cis)
}

// GetByID handles GET /cis/:id
// @Summary Get a configuration item
// @Tags configuration-items
// @Produce json
// @Param id path string true "Configuration item ID"
// @Success 200 {object} service.CIResponse "Configuration item"
// @Failure 404 {object} map[string]interface{} "Configuration item not found"
// @Router /cis/{id} [get]
func (h *CIHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ci, err := h.ciService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ci)
}

// Update handles PATCH /cis/:id
// @Summary Update a configuration item
// @Description Apply a partial update to a configuration item
// @Tags configuration-items
// @Accept json
// @Produce json
// @Param id path string true "Configuration item ID"
// @Param ci body service.UpdateCIRequest true "Fields to update"
// @Success 200 {object} service.CIResponse "Updated configuration item"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Configuration item not found"
// @Security BearerAuth
// @Router /cis/{id} [patch]
func (h *CIHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateCIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ci, err := h.ciService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ci)
}

// Delete handles DELETE /cis/:id
// @Summary Delete a configuration item
// @Description Delete a configuration item; ticket and change links cascade
// @Tags configuration-items
// @Produce json
// @Param id path string true "Configuration item ID"
// @Success 204 "Configuration item deleted"
// @Failure 404 {object} map[string]interface{} "Configuration item not found"
// @Security BearerAuth
// @Router /cis/{id} [delete]
func (h *CIHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ciService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
