package handlers

import (
	"net/http"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChangeHandler handles HTTP requests for change-management operations
type ChangeHandler struct {
	changeService service.ChangeServiceInterface
}

// NewChangeHandler creates a new change handler
func NewChangeHandler(changeService service.ChangeServiceInterface) *ChangeHandler {
	return &ChangeHandler{changeService: changeService}
}

// Create handles POST /changes
// @Summary Create a change
// @Description Create a change request. The change always enters the workflow as requested with the caller recorded as requester.
// @Tags changes
// @Accept json
// @Produce json
// @Param change body service.CreateChangeRequest true "Change to create"
// @Success 201 {object} service.ChangeResponse "Change created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Security BearerAuth
// @Router /changes [post]
func (h *ChangeHandler) Create(c *gin.Context) {
	var req service.CreateChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	change, err := h.changeService.Create(&req, auth.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, change)
}

// GetAll handles GET /changes
// @Summary List changes
// @Description Get all changes newest-first
// @Tags changes
// @Produce json
// @Success 200 {array} service.ChangeResponse "Changes"
// @Router /changes [get]
func (h *ChangeHandler) GetAll(c *gin.Context) {
	changes, err := h.changeService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, changes)
}

// GetByID handles GET /changes/:id
// @Summary Get a change
// @Description Get a change with its linked configuration items and problems
// @Tags changes
// @Produce json
// @Param id path string true "Change ID"
// @Success 200 {object} service.ChangeResponse "Change"
// @Failure 404 {object} map[string]interface{} "Change not found"
// @Router /changes/{id} [get]
func (h *ChangeHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	change, err := h.changeService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

// Update handles PATCH /changes/:id
// @Summary Update a change
// @Description Apply a partial update. A status change must be a legal workflow transition.
// @Tags changes
// @Accept json
// @Produce json
// @Param id path string true "Change ID"
// @Param change body service.UpdateChangeRequest true "Fields to update"
// @Success 200 {object} service.ChangeResponse "Updated change"
// @Failure 400 {object} map[string]interface{} "Validation failed or illegal transition"
// @Failure 404 {object} map[string]interface{} "Change not found"
// @Security BearerAuth
// @Router /changes/{id} [patch]
func (h *ChangeHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	change, err := h.changeService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

// Approve handles POST /changes/:id/approve
// @Summary Approve a change
// @Description Move a change to approved and record the caller as approver in one step
// @Tags changes
// @Produce json
// @Param id path string true "Change ID"
// @Success 200 {object} service.ChangeResponse "Approved change"
// @Failure 400 {object} map[string]interface{} "Change not approvable from its current status"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Change not found"
// @Security BearerAuth
// @Router /changes/{id}/approve [post]
func (h *ChangeHandler) Approve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	change, err := h.changeService.Approve(id, auth.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, change)
}

// Delete handles DELETE /changes/:id
// @Summary Delete a change
// @Description Delete a change; CI and problem links cascade
// @Tags changes
// @Produce json
// @Param id path string true "Change ID"
// @Success 204 "Change deleted"
// @Failure 404 {object} map[string]interface{} "Change not found"
// @Security BearerAuth
// @Router /changes/{id} [delete]
func (h *ChangeHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.changeService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LinkCI handles POST /changes/:id/cis/:ciId
// @Summary Link a configuration item
// @Description Link a configuration item to a change. Linking twice is a no-op.
// @Tags changes
// @Produce json
// @Param id path string true "Change ID"
// @Param ciId path string true "Configuration item ID"
// @Success 204 "Linked"
// @Failure 404 {object} map[string]interface{} "Change not found"
// @Security BearerAuth
// @Router /changes/{id}/cis/{ciId} [post]
func (h *ChangeHandler) LinkCI(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ciID, ok := parseUUIDParam(c, "ciId")
	if !ok {
		return
	}

	if err := h.changeService.LinkCI(id, ciID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnlinkCI handles DELETE /changes/:id/cis/:ciId
// @Summary Unlink a configuration item
// @Description Remove a change's link to a configuration item
// @Tags changes
// @Produce json
// @Param id path string true "Change ID"
// @Param ciId path string true "Configuration item ID"
// @Success 204 "Unlinked"
// @Security BearerAuth
// @Router /changes/{id}/cis/{ciId} [delete]
func (h *ChangeHandler) UnlinkCI(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ciID, ok := parseUUIDParam(c, "ciId")
	if !ok {
		return
	}

	if err := h.changeService.UnlinkCI(id, ciID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LinkProblem handles POST /changes/:id/problems/:problemId
// @Summary Link a problem
// @Description Link a problem to a change. Linking twice is a no-op.
// @Tags changes
// @Produce json
// @Param id path string true "Change ID"
// @Param problemId path string true "Problem ID"
// @Success 204 "Linked"
// @Failure 404 {object} map[string]interface{} "Change not found"
// @Security BearerAuth
// @Router /changes/{id}/problems/{problemId} [post]
func (h *ChangeHandler) LinkProblem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	problemID, ok := parseUUIDParam(c, "problemId")
	if !ok {
		return
	}

	if err := h.changeService.LinkProblem(id, problemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnlinkProblem handles DELETE /changes/:id/problems/:problemId
// @Summary Unlink a problem
// @Description Remove a change's link to a problem
// @Tags changes
// @Produce json
// @Param id path string true "Change ID"
// @Param problemId path string true "Problem ID"
// @Success 204 "Unlinked"
// @Security BearerAuth
// @Router /changes/{id}/problems/{problemId} [delete]
func (h *ChangeHandler) UnlinkProblem(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	problemID, ok := parseUUIDParam(c, "problemId")
	if !ok {
		return
	}

	if err := h.changeService.UnlinkProblem(id, problemID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
