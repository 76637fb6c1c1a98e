package service

import (
	"errors"
	"fmt"
	"time"

	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and their memberships
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{repo: repo, userRepo: userRepo, validator: validator}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Category string `json:"category"`
}

// UpdateTeamRequest is a typed partial update for a team
type UpdateTeamRequest struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
}

// AddMemberRequest represents the request to add a user to a team
type AddMemberRequest struct {
	TeamID string `json:"team_id" validate:"required,uuid"`
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role"`
}

// TeamMemberResponse represents a single team membership
type TeamMemberResponse struct {
	TeamID      uuid.UUID `json:"team_id"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name,omitempty"`
	Email       string    `json:"email,omitempty"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Category  string               `json:"category"`
	Members   []TeamMemberResponse `json:"members,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team := &models.Team{
		Name:     req.Name,
		Category: req.Category,
	}
	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return s.toResponse(team), nil
}

// GetByID retrieves a team with its members
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team), nil
}

// GetAll retrieves all teams
func (s *TeamService) GetAll() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

// Update applies a partial update to a team
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Category != nil {
		team.Category = *req.Category
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.toResponse(team), nil
}

// Delete removes a team; membership rows cascade
func (s *TeamService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// GetAllMembers retrieves every membership row across all teams
func (s *TeamService) GetAllMembers() ([]TeamMemberResponse, error) {
	members, err := s.repo.GetAllMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = *s.toMemberResponse(&members[i])
	}
	return responses, nil
}

// AddMember adds a user to a team; both sides must exist
func (s *TeamService) AddMember(req *AddMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	teamID, _ := uuid.Parse(req.TeamID)
	userID, _ := uuid.Parse(req.UserID)

	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to verify team: %w", err)
	}
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	role := req.Role
	if role == "" {
		role = "member"
	}

	member := &models.TeamMember{
		TeamID: teamID,
		UserID: userID,
		Role:   role,
	}
	if err := s.repo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}
	return s.toMemberResponse(member), nil
}

// RemoveMember removes a user from a team
func (s *TeamService) RemoveMember(teamID, userID uuid.UUID) error {
	if err := s.repo.RemoveMember(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

// UpdateMemberRole changes a user's role within a team
func (s *TeamService) UpdateMemberRole(teamID, userID uuid.UUID, role string) (*TeamMemberResponse, error) {
	if role == "" {
		return nil, apperrors.NewValidationError("role", "role is required")
	}

	member, err := s.repo.UpdateMemberRole(teamID, userID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to update team member role: %w", err)
	}
	return s.toMemberResponse(member), nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	resp := &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Category:  team.Category,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	}
	for i := range team.Members {
		resp.Members = append(resp.Members, *s.toMemberResponse(&team.Members[i]))
	}
	return resp
}

func (s *TeamService) toMemberResponse(member *models.TeamMember) *TeamMemberResponse {
	resp := &TeamMemberResponse{
		TeamID: member.TeamID,
		UserID: member.UserID,
		Role:   member.Role,
	}
	if member.User != nil {
		resp.DisplayName = member.User.DisplayName
		resp.Email = member.User.Email
	}
	return resp
}
