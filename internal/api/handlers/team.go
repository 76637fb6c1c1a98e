package handlers

import (
	"net/http"

	"servicedesk-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for teams and team memberships
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Create handles POST /teams
// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team to create"
// @Success 201 {object} service.TeamResponse "Team created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) Create(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetAll handles GET /teams
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Router /teams [get]
func (h *TeamHandler) GetAll(c *gin.Context) {
	teams, err := h.teamService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetByID handles GET /teams/:id
// @Summary Get a team
// @Description Get a team with its members
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetByID(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Update handles PATCH /teams/:id
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [patch]
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Delete handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team; membership rows cascade
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 204 "Team deleted"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAllMembers handles GET /team-members
// @Summary List all team memberships
// @Tags team-members
// @Produce json
// @Success 200 {array} service.TeamMemberResponse "Memberships"
// @Security BearerAuth
// @Router /team-members [get]
func (h *TeamHandler) GetAllMembers(c *gin.Context) {
	members, err := h.teamService.GetAllMembers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// AddMember handles POST /team-members
// @Summary Add a team member
// @Description Add a user to a team; both must exist
// @Tags team-members
// @Accept json
// @Produce json
// @Param member body service.AddMemberRequest true "Membership to create"
// @Success 201 {object} service.TeamMemberResponse "Membership created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 404 {object} map[string]interface{} "Team or user not found"
// @Security BearerAuth
// @Router /team-members [post]
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamService.AddMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateMemberRole handles PATCH /team-members/:teamId/:userId
// @Summary Update a member's role
// @Tags team-members
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Param userId path string true "User ID"
// @Param role body UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.TeamMemberResponse "Updated membership"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Security BearerAuth
// @Router /team-members/{teamId}/{userId} [patch]
func (h *TeamHandler) UpdateMemberRole(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	var req UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamService.UpdateMemberRole(teamID, userID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /team-members/:teamId/:userId
// @Summary Remove a team member
// @Tags team-members
// @Produce json
// @Param teamId path string true "Team ID"
// @Param userId path string true "User ID"
// @Success 204 "Membership removed"
// @Failure 404 {object} map[string]interface{} "Membership not found"
// @Security BearerAuth
// @Router /team-members/{teamId}/{userId} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "teamId")
	if !ok {
		return
	}
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}

	if err := h.teamService.RemoveMember(teamID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
