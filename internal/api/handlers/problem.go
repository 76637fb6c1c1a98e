package handlers

import (
	"net/http"

	"servicedesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProblemHandler handles HTTP requests for problem operations
type ProblemHandler struct {
	problemService service.ProblemServiceInterface
}

// NewProblemHandler creates a new problem handler
func NewProblemHandler(problemService service.ProblemServiceInterface) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

// Create handles POST /problems
// @Summary Create a problem
// @Description Create a new problem record in the open state
// @Tags problems
// @Accept json
// @Produce json
// @Param problem body service.CreateProblemRequest true "Problem to create"
// @Success 201 {object} service.ProblemResponse "Problem created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Security BearerAuth
// @Router /problems [post]
func (h *ProblemHandler) Create(c *gin.Context) {
	var req service.CreateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problem, err := h.problemService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, problem)
}

// GetAll handles GET /problems
// @Summary List problems
// @Description Get all problems with their linked-ticket counts
// @Tags problems
// @Produce json
// @Success 200 {array} service.ProblemResponse "Problems"
// @Router /problems [get]
func (h *ProblemHandler) GetAll(c *gin.Context) {
	problems, err := h.problemService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, problems)
}

// GetByID handles GET /problems/:id
// @Summary Get a problem
// @Description Get a problem with its linked tickets
// @Tags problems
// @Produce json
// @Param id path string true "Problem ID"
// @Success 200 {object} service.ProblemResponse "Problem"
// @Failure 404 {object} map[string]interface{} "Problem not found"
// @Router /problems/{id} [get]
func (h *ProblemHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	problem, err := h.problemService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// Update handles PATCH /problems/:id
// @Summary Update a problem
// @Description Apply a partial update to a problem
// @Tags problems
// @Accept json
// @Produce json
// @Param id path string true "Problem ID"
// @Param problem body service.UpdateProblemRequest true "Fields to update"
// @Success 200 {object} service.ProblemResponse "Updated problem"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Problem not found"
// @Security BearerAuth
// @Router /problems/{id} [patch]
func (h *ProblemHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	problem, err := h.problemService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// Delete handles DELETE /problems/:id
// @Summary Delete a problem
// @Description Delete a problem regardless of linked tickets; links cascade
// @Tags problems
// @Produce json
// @Param id path string true "Problem ID"
// @Success 204 "Problem deleted"
// @Failure 404 {object} map[string]interface{} "Problem not found"
// @Security BearerAuth
// @Router /problems/{id} [delete]
func (h *ProblemHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.problemService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Resolve handles POST /problems/:id/resolve
// @Summary Resolve a problem
// @Description Mark a problem resolved and cascade resolution to every linked ticket not already closed, atomically
// @Tags problems
// @Accept json
// @Produce json
// @Param id path string true "Problem ID"
// @Param resolution body service.ResolveProblemRequest false "Optional resolution text"
// @Success 200 {object} service.ProblemResponse "Resolved problem"
// @Failure 404 {object} map[string]interface{} "Problem not found"
// @Failure 500 {object} map[string]interface{} "Cascade failed and was rolled back"
// @Security BearerAuth
// @Router /problems/{id}/resolve [post]
func (h *ProblemHandler) Resolve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.ResolveProblemRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	problem, err := h.problemService.Resolve(id, req.Resolution)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, problem)
}

// LinkTicket handles POST /problems/:id/tickets/:ticketId
// @Summary Link a ticket
// @Description Link a ticket to a problem. Linking twice is a no-op.
// @Tags problems
// @Produce json
// @Param id path string true "Problem ID"
// @Param ticketId path string true "Ticket ID"
// @Success 204 "Linked"
// @Failure 404 {object} map[string]interface{} "Problem not found"
// @Security BearerAuth
// @Router /problems/{id}/tickets/{ticketId} [post]
func (h *ProblemHandler) LinkTicket(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ticketID, ok := parseUUIDParam(c, "ticketId")
	if !ok {
		return
	}

	if err := h.problemService.LinkTicket(id, ticketID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnlinkTicket handles DELETE /problems/:id/tickets/:ticketId
// @Summary Unlink a ticket
// @Description Remove a problem's link to a ticket. Unlinking an absent link is a no-op.
// @Tags problems
// @Produce json
// @Param id path string true "Problem ID"
// @Param ticketId path string true "Ticket ID"
// @Success 204 "Unlinked"
// @Security BearerAuth
// @Router /problems/{id}/tickets/{ticketId} [delete]
func (h *ProblemHandler) UnlinkTicket(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ticketID, ok := parseUUIDParam(c, "ticketId")
	if !ok {
		return
	}

	if err := h.problemService.UnlinkTicket(id, ticketID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
