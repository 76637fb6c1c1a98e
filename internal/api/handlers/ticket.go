package handlers

import (
	"net/http"
	"strconv"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles HTTP requests for ticket operations
type TicketHandler struct {
	ticketService service.TicketServiceInterface
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketService service.TicketServiceInterface) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// Create handles POST /tickets
// @Summary Create a ticket
// @Description Create a new ticket. Anonymous submissions are accepted; the submitter is resolved from the caller, a contact email, or the fallback account.
// @Tags tickets
// @Accept json
// @Produce json
// @Param ticket body service.CreateTicketRequest true "Ticket to create"
// @Success 201 {object} service.TicketResponse "Ticket created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	var req service.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.Create(&req, auth.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GetAll handles GET /tickets
// @Summary List tickets
// @Description Get tickets newest-first with pagination
// @Tags tickets
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.TicketListResponse "Tickets"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tickets [get]
func (h *TicketHandler) GetAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	tickets, err := h.ticketService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// GetByID handles GET /tickets/:id
// @Summary Get a ticket
// @Description Get a ticket with its linked configuration items, linked problem and live SLA state
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} service.TicketResponse "Ticket"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Update handles PATCH /tickets/:id
// @Summary Update a ticket
// @Description Apply a partial update to a ticket. The SLA due date is never recomputed.
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param ticket body service.UpdateTicketRequest true "Fields to update"
// @Success 200 {object} service.TicketResponse "Updated ticket"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Security BearerAuth
// @Router /tickets/{id} [patch]
func (h *TicketHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.ticketService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Delete handles DELETE /tickets/:id
// @Summary Delete a ticket
// @Description Delete a ticket and all its comments atomically
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 204 "Ticket deleted"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Security BearerAuth
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ticketService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetComments handles GET /tickets/:id/comments
// @Summary List ticket comments
// @Description Get a ticket's comments oldest-first
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {array} service.CommentResponse "Comments"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Router /tickets/{id}/comments [get]
func (h *TicketHandler) GetComments(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.ticketService.GetComments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddCommentRequest represents the request to add a comment
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment handles POST /tickets/:id/comments
// @Summary Add a comment
// @Description Add a comment to a ticket as the authenticated caller
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket ID"
// @Param comment body AddCommentRequest true "Comment to add"
// @Success 201 {object} service.CommentResponse "Comment created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Security BearerAuth
// @Router /tickets/{id}/comments [post]
func (h *TicketHandler) AddComment(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.ticketService.AddComment(id, auth.GetPrincipal(c), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// LinkCI handles POST /tickets/:id/cis/:ciId
// @Summary Link a configuration item
// @Description Link a configuration item to a ticket. Linking twice is a no-op.
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Param ciId path string true "Configuration item ID"
// @Success 204 "Linked"
// @Failure 404 {object} map[string]interface{} "Ticket not found"
// @Security BearerAuth
// @Router /tickets/{id}/cis/{ciId} [post]
func (h *TicketHandler) LinkCI(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ciID, ok := parseUUIDParam(c, "ciId")
	if !ok {
		return
	}

	if err := h.ticketService.LinkCI(id, ciID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnlinkCI handles DELETE /tickets/:id/cis/:ciId
// @Summary Unlink a configuration item
// @Description Remove a ticket's link to a configuration item. Unlinking an absent link is a no-op.
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket ID"
// @Param ciId path string true "Configuration item ID"
// @Success 204 "Unlinked"
// @Security BearerAuth
// @Router /tickets/{id}/cis/{ciId} [delete]
func (h *TicketHandler) UnlinkCI(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	ciID, ok := parseUUIDParam(c, "ciId")
	if !ok {
		return
	}

	if err := h.ticketService.UnlinkCI(id, ciID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
