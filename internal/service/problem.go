package service

import (
	"errors"
	"fmt"
	"time"

	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/logger"
	"servicedesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCascadeResolution is stored when a problem is resolved without
// caller-supplied resolution text.
const DefaultCascadeResolution = "Resolved via cascade"

// ProblemService handles business logic for problem records
type ProblemService struct {
	repo      repository.ProblemRepositoryInterface
	validator *validator.Validate
}

// NewProblemService creates a new problem service
func NewProblemService(repo repository.ProblemRepositoryInterface, validator *validator.Validate) *ProblemService {
	return &ProblemService{repo: repo, validator: validator}
}

// CreateProblemRequest represents the request to create a problem
type CreateProblemRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

// UpdateProblemRequest is a typed partial update for a problem
type UpdateProblemRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	RootCause   *string `json:"root_cause,omitempty"`
	Resolution  *string `json:"resolution,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ResolveProblemRequest carries optional resolution text for the cascade
type ResolveProblemRequest struct {
	Resolution string `json:"resolution,omitempty"`
}

// ProblemResponse represents the response for problem operations
type ProblemResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	RootCause   string               `json:"root_cause"`
	Resolution  string               `json:"resolution"`
	Status      models.ProblemStatus `json:"status"`
	TicketCount int64                `json:"ticket_count"`
	Tickets     []models.Ticket      `json:"tickets,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// Create creates a new problem record in the open state
func (s *ProblemService) Create(req *CreateProblemRequest) (*ProblemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	problem := &models.Problem{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.ProblemStatusOpen,
	}
	if err := s.repo.Create(problem); err != nil {
		return nil, fmt.Errorf("failed to create problem: %w", err)
	}

	return s.toResponse(problem, 0), nil
}

// GetByID retrieves a problem with its linked tickets
func (s *ProblemService) GetByID(id uuid.UUID) (*ProblemResponse, error) {
	problem, err := s.repo.GetWithTickets(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProblemNotFound
		}
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	resp := s.toResponse(problem, int64(len(problem.Tickets)))
	resp.Tickets = problem.Tickets
	return resp, nil
}

// GetAll retrieves all problems with linked-ticket counts
func (s *ProblemService) GetAll() ([]ProblemResponse, error) {
	problems, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get problems: %w", err)
	}

	responses := make([]ProblemResponse, len(problems))
	for i := range problems {
		responses[i] = *s.toResponse(&problems[i].Problem, problems[i].TicketCount)
	}
	return responses, nil
}

// Update applies a partial update to a problem
func (s *ProblemService) Update(id uuid.UUID, req *UpdateProblemRequest) (*ProblemResponse, error) {
	problem, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProblemNotFound
		}
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	if req.Title != nil {
		problem.Title = *req.Title
	}
	if req.Description != nil {
		problem.Description = *req.Description
	}
	if req.RootCause != nil {
		problem.RootCause = *req.RootCause
	}
	if req.Resolution != nil {
		problem.Resolution = *req.Resolution
	}
	if req.Status != nil {
		status := models.ProblemStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown problem status")
		}
		problem.Status = status
	}

	if err := s.repo.Update(problem); err != nil {
		return nil, fmt.Errorf("failed to update problem: %w", err)
	}
	return s.toResponse(problem, 0), nil
}

// Delete removes a problem unconditionally; linked-ticket join rows cascade
func (s *ProblemService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProblemNotFound
		}
		return fmt.Errorf("failed to delete problem: %w", err)
	}
	return nil
}

// LinkTicket links a ticket to a problem; duplicate links no-op
func (s *ProblemService) LinkTicket(problemID, ticketID uuid.UUID) error {
	if _, err := s.repo.GetByID(problemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProblemNotFound
		}
		return fmt.Errorf("failed to verify problem: %w", err)
	}
	if err := s.repo.LinkTicket(problemID, ticketID); err != nil {
		return fmt.Errorf("failed to link ticket: %w", err)
	}
	return nil
}

// UnlinkTicket removes a problem-ticket link; absent links no-op
func (s *ProblemService) UnlinkTicket(problemID, ticketID uuid.UUID) error {
	if err := s.repo.UnlinkTicket(problemID, ticketID); err != nil {
		return fmt.Errorf("failed to unlink ticket: %w", err)
	}
	return nil
}

// Resolve marks a problem resolved and cascades resolution to every linked
// ticket not already closed, all in one transaction. A partial failure
// rolls back everything, including the problem's own status change.
func (s *ProblemService) Resolve(id uuid.UUID, resolution string) (*ProblemResponse, error) {
	if resolution == "" {
		resolution = DefaultCascadeResolution
	}

	problem, err := s.repo.ResolveCascade(id, resolution)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProblemNotFound
		}
		return nil, apperrors.NewTransactionError("resolve problem", err)
	}

	logger.New().WithField("problem_id", id).Info("problem resolved, linked tickets cascaded")
	return s.toResponse(problem, 0), nil
}

func (s *ProblemService) toResponse(problem *models.Problem, ticketCount int64) *ProblemResponse {
	return &ProblemResponse{
		ID:          problem.ID,
		Title:       problem.Title,
		Description: problem.Description,
		RootCause:   problem.RootCause,
		Resolution:  problem.Resolution,
		Status:      problem.Status,
		TicketCount: ticketCount,
		CreatedAt:   problem.CreatedAt,
		UpdatedAt:   problem.UpdatedAt,
	}
}
