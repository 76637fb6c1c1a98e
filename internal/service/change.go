package service

import (
	"errors"
	"fmt"
	"time"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/logger"
	"servicedesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChangeService handles business logic for the change-management workflow
type ChangeService struct {
	repo      repository.ChangeRepositoryInterface
	validator *validator.Validate
}

// NewChangeService creates a new change service
func NewChangeService(repo repository.ChangeRepositoryInterface, validator *validator.Validate) *ChangeService {
	return &ChangeService{repo: repo, validator: validator}
}

// CreateChangeRequest represents the request to create a change. Any status
// supplied here is ignored: changes always enter the workflow as requested.
type CreateChangeRequest struct {
	Title              string     `json:"title" validate:"required,max=255"`
	Description        string     `json:"description" validate:"required"`
	Type               string     `json:"type" validate:"required,oneof=standard normal emergency"`
	Priority           string     `json:"priority"`
	Risk               string     `json:"risk"`
	Impact             string     `json:"impact"`
	BackoutPlan        string     `json:"backout_plan"`
	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time `json:"scheduled_end,omitempty"`
	AssignedApproverID *uuid.UUID `json:"assigned_approver_id,omitempty"`
}

// UpdateChangeRequest is a typed partial update for a change. Status
// transitions are checked against the workflow ordering.
type UpdateChangeRequest struct {
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Type               *string    `json:"type,omitempty"`
	Status             *string    `json:"status,omitempty"`
	Priority           *string    `json:"priority,omitempty"`
	Risk               *string    `json:"risk,omitempty"`
	Impact             *string    `json:"impact,omitempty"`
	BackoutPlan        *string    `json:"backout_plan,omitempty"`
	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time `json:"scheduled_end,omitempty"`
	ApprovedBy         *uuid.UUID `json:"approved_by,omitempty"`
	AssignedApproverID *uuid.UUID `json:"assigned_approver_id,omitempty"`
}

// ChangeResponse represents the response for change operations
type ChangeResponse struct {
	ID                   uuid.UUID                  `json:"id"`
	Title                string                     `json:"title"`
	Description          string                     `json:"description"`
	Type                 models.ChangeType          `json:"type"`
	Status               models.ChangeStatus        `json:"status"`
	Priority             models.TicketPriority      `json:"priority"`
	Risk                 models.ChangeRisk          `json:"risk"`
	Impact               string                     `json:"impact"`
	BackoutPlan          string                     `json:"backout_plan"`
	ScheduledStart       *time.Time                 `json:"scheduled_start,omitempty"`
	ScheduledEnd         *time.Time                 `json:"scheduled_end,omitempty"`
	RequestedBy          *uuid.UUID                 `json:"requested_by,omitempty"`
	RequestorName        string                     `json:"requestor_name,omitempty"`
	ApprovedBy           *uuid.UUID                 `json:"approved_by,omitempty"`
	ApproverName         string                     `json:"approver_name,omitempty"`
	AssignedApproverID   *uuid.UUID                 `json:"assigned_approver_id,omitempty"`
	AssignedApproverName string                     `json:"assigned_approver_name,omitempty"`
	CIs                  []models.ConfigurationItem `json:"cis,omitempty"`
	Problems             []models.Problem           `json:"problems,omitempty"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

// Create creates a change on behalf of an authenticated requester. The
// change always starts in the requested state with requested_by stamped
// from the caller.
func (s *ChangeService) Create(req *CreateChangeRequest, principal *auth.Principal) (*ChangeResponse, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	priority := models.TicketPriority(req.Priority)
	if priority == "" {
		priority = models.TicketPriorityLow
	}
	risk := models.ChangeRisk(req.Risk)
	if risk == "" {
		risk = models.ChangeRiskLow
	}

	requestedBy := principal.UserID
	change := &models.Change{
		Title:              req.Title,
		Description:        req.Description,
		Type:               models.ChangeType(req.Type),
		Status:             models.ChangeStatusRequested,
		Priority:           priority,
		Risk:               risk,
		Impact:             req.Impact,
		BackoutPlan:        req.BackoutPlan,
		ScheduledStart:     req.ScheduledStart,
		ScheduledEnd:       req.ScheduledEnd,
		RequestedBy:        &requestedBy,
		AssignedApproverID: req.AssignedApproverID,
	}

	if err := s.repo.Create(change); err != nil {
		return nil, fmt.Errorf("failed to create change: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"change_id":    change.ID,
		"requested_by": requestedBy,
	}).Info("change requested")

	return s.toResponse(change), nil
}

// GetByID retrieves a change with its linked CIs and problems
func (s *ChangeService) GetByID(id uuid.UUID) (*ChangeResponse, error) {
	change, err := s.repo.GetWithLinks(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChangeNotFound
		}
		return nil, fmt.Errorf("failed to get change: %w", err)
	}
	return s.toResponse(change), nil
}

// GetAll retrieves all changes newest-first
func (s *ChangeService) GetAll() ([]ChangeResponse, error) {
	changes, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get changes: %w", err)
	}

	responses := make([]ChangeResponse, len(changes))
	for i := range changes {
		responses[i] = *s.toResponse(&changes[i])
	}
	return responses, nil
}

// Update applies a partial update to a change. A status change must be a
// legal workflow step; status and approved_by supplied together are
// written in the same update.
func (s *ChangeService) Update(id uuid.UUID, req *UpdateChangeRequest) (*ChangeResponse, error) {
	change, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChangeNotFound
		}
		return nil, fmt.Errorf("failed to get change: %w", err)
	}

	if req.Status != nil {
		target := models.ChangeStatus(*req.Status)
		if !target.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown change status")
		}
		if !change.Status.CanTransitionTo(target) {
			return nil, apperrors.NewValidationError("status",
				fmt.Sprintf("cannot transition from %s to %s", change.Status, target))
		}
		change.Status = target
	}
	if req.Title != nil {
		change.Title = *req.Title
	}
	if req.Description != nil {
		change.Description = *req.Description
	}
	if req.Type != nil {
		t := models.ChangeType(*req.Type)
		if !t.IsValid() {
			return nil, apperrors.NewValidationError("type", "unknown change type")
		}
		change.Type = t
	}
	if req.Priority != nil {
		change.Priority = models.TicketPriority(*req.Priority)
	}
	if req.Risk != nil {
		r := models.ChangeRisk(*req.Risk)
		if !r.IsValid() {
			return nil, apperrors.NewValidationError("risk", "unknown change risk")
		}
		change.Risk = r
	}
	if req.Impact != nil {
		change.Impact = *req.Impact
	}
	if req.BackoutPlan != nil {
		change.BackoutPlan = *req.BackoutPlan
	}
	if req.ScheduledStart != nil {
		change.ScheduledStart = req.ScheduledStart
	}
	if req.ScheduledEnd != nil {
		change.ScheduledEnd = req.ScheduledEnd
	}
	if req.ApprovedBy != nil {
		change.ApprovedBy = req.ApprovedBy
	}
	if req.AssignedApproverID != nil {
		change.AssignedApproverID = req.AssignedApproverID
	}

	if err := s.repo.Update(change); err != nil {
		return nil, fmt.Errorf("failed to update change: %w", err)
	}
	return s.toResponse(change), nil
}

// Approve moves a change to approved and records the approver in the same
// update. The pair changes together or not at all.
func (s *ChangeService) Approve(id uuid.UUID, principal *auth.Principal) (*ChangeResponse, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}

	change, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChangeNotFound
		}
		return nil, fmt.Errorf("failed to get change: %w", err)
	}

	if !change.Status.CanTransitionTo(models.ChangeStatusApproved) {
		return nil, apperrors.NewValidationError("status",
			fmt.Sprintf("cannot approve a change in status %s", change.Status))
	}

	approvedBy := principal.UserID
	change.Status = models.ChangeStatusApproved
	change.ApprovedBy = &approvedBy

	if err := s.repo.Update(change); err != nil {
		return nil, fmt.Errorf("failed to approve change: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"change_id":   change.ID,
		"approved_by": approvedBy,
	}).Info("change approved")

	return s.toResponse(change), nil
}

// Delete removes a change; join rows cascade at the database level
func (s *ChangeService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChangeNotFound
		}
		return fmt.Errorf("failed to delete change: %w", err)
	}
	return nil
}

// LinkCI links a configuration item to a change; duplicate links no-op
func (s *ChangeService) LinkCI(changeID, ciID uuid.UUID) error {
	if _, err := s.repo.GetByID(changeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChangeNotFound
		}
		return fmt.Errorf("failed to verify change: %w", err)
	}
	if err := s.repo.LinkCI(changeID, ciID); err != nil {
		return fmt.Errorf("failed to link configuration item: %w", err)
	}
	return nil
}

// UnlinkCI removes a change-CI link; absent links no-op
func (s *ChangeService) UnlinkCI(changeID, ciID uuid.UUID) error {
	if err := s.repo.UnlinkCI(changeID, ciID); err != nil {
		return fmt.Errorf("failed to unlink configuration item: %w", err)
	}
	return nil
}

// LinkProblem links a problem to a change; duplicate links no-op
func (s *ChangeService) LinkProblem(changeID, problemID uuid.UUID) error {
	if _, err := s.repo.GetByID(changeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrChangeNotFound
		}
		return fmt.Errorf("failed to verify change: %w", err)
	}
	if err := s.repo.LinkProblem(changeID, problemID); err != nil {
		return fmt.Errorf("failed to link problem: %w", err)
	}
	return nil
}

// UnlinkProblem removes a change-problem link; absent links no-op
func (s *ChangeService) UnlinkProblem(changeID, problemID uuid.UUID) error {
	if err := s.repo.UnlinkProblem(changeID, problemID); err != nil {
		return fmt.Errorf("failed to unlink problem: %w", err)
	}
	return nil
}

func (s *ChangeService) toResponse(change *models.Change) *ChangeResponse {
	resp := &ChangeResponse{
		ID:                 change.ID,
		Title:              change.Title,
		Description:        change.Description,
		Type:               change.Type,
		Status:             change.Status,
		Priority:           change.Priority,
		Risk:               change.Risk,
		Impact:             change.Impact,
		BackoutPlan:        change.BackoutPlan,
		ScheduledStart:     change.ScheduledStart,
		ScheduledEnd:       change.ScheduledEnd,
		RequestedBy:        change.RequestedBy,
		ApprovedBy:         change.ApprovedBy,
		AssignedApproverID: change.AssignedApproverID,
		CIs:                change.CIs,
		Problems:           change.Problems,
		CreatedAt:          change.CreatedAt,
		UpdatedAt:          change.UpdatedAt,
	}
	if change.Requestor != nil {
		resp.RequestorName = change.Requestor.DisplayName
	}
	if change.Approver != nil {
		resp.ApproverName = change.Approver.DisplayName
	}
	if change.AssignedApprover != nil {
		resp.AssignedApproverName = change.AssignedApprover.DisplayName
	}
	return resp
}
