package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/logger"
	"servicedesk-backend/internal/repository"
	"servicedesk-backend/internal/sla"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TicketService handles business logic for tickets and their comments
type TicketService struct {
	repo        repository.TicketRepositoryInterface
	commentRepo repository.CommentRepositoryInterface
	userRepo    repository.UserRepositoryInterface
	validator   *validator.Validate
	// fallbackEmail identifies the account that owns anonymous submissions
	// arriving without a contact email.
	fallbackEmail string
}

// NewTicketService creates a new ticket service
func NewTicketService(repo repository.TicketRepositoryInterface, commentRepo repository.CommentRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate, fallbackEmail string) *TicketService {
	return &TicketService{
		repo:          repo,
		commentRepo:   commentRepo,
		userRepo:      userRepo,
		validator:     validator,
		fallbackEmail: fallbackEmail,
	}
}

// CreateTicketRequest represents the request to create a ticket
type CreateTicketRequest struct {
	Title            string                 `json:"title" validate:"required,max=255"`
	Description      string                 `json:"description" validate:"required"`
	Status           string                 `json:"status"`
	Priority         string                 `json:"priority"`
	Category         string                 `json:"category"`
	TeamID           *uuid.UUID             `json:"team_id,omitempty"`
	AdditionalFields map[string]interface{} `json:"additional_fields,omitempty"`
}

// UpdateTicketRequest is a typed partial update: only non-nil fields are
// applied, and unknown JSON keys are dropped at binding time.
type UpdateTicketRequest struct {
	Title            *string                `json:"title,omitempty"`
	Description      *string                `json:"description,omitempty"`
	Status           *string                `json:"status,omitempty"`
	Priority         *string                `json:"priority,omitempty"`
	Category         *string                `json:"category,omitempty"`
	AssignedTo       *uuid.UUID             `json:"assigned_to,omitempty"`
	DueDate          *time.Time             `json:"due_date,omitempty"`
	TeamID           *uuid.UUID             `json:"team_id,omitempty"`
	AdditionalFields map[string]interface{} `json:"additional_fields,omitempty"`
}

// TicketResponse represents the response for ticket operations
type TicketResponse struct {
	ID               uuid.UUID                  `json:"id"`
	Title            string                     `json:"title"`
	Description      string                     `json:"description"`
	Status           models.TicketStatus        `json:"status"`
	Priority         models.TicketPriority      `json:"priority"`
	Category         string                     `json:"category"`
	AssignedTo       *uuid.UUID                 `json:"assigned_to,omitempty"`
	AssignedToEmail  string                     `json:"assigned_to_email,omitempty"`
	SubmittedBy      uuid.UUID                  `json:"submitted_by"`
	SubmittedByEmail string                     `json:"submitted_by_email,omitempty"`
	TeamID           *uuid.UUID                 `json:"team_id,omitempty"`
	DueDate          *time.Time                 `json:"due_date,omitempty"`
	AdditionalFields map[string]interface{}     `json:"additional_fields,omitempty"`
	SLADueAt         *time.Time                 `json:"sla_due_at,omitempty"`
	SLA              *sla.Remaining             `json:"sla,omitempty"`
	CIs              []models.ConfigurationItem `json:"cis"`
	LinkedProblem    *LinkedProblemResponse     `json:"linked_problem,omitempty"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// LinkedProblemResponse is the summary of a problem linked to a ticket
type LinkedProblemResponse struct {
	ID     uuid.UUID            `json:"id"`
	Title  string               `json:"title"`
	Status models.ProblemStatus `json:"status"`
}

// TicketListResponse represents a paginated list of tickets
type TicketListResponse struct {
	Tickets  []TicketResponse `json:"tickets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// CommentResponse represents the response for comment operations
type CommentResponse struct {
	ID        uuid.UUID `json:"id"`
	TicketID  uuid.UUID `json:"ticket_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Create creates a ticket, resolving the submitter and stamping the SLA
// due date. Submitter resolution order: the authenticated caller, then a
// user created-or-found from additional_fields.contact_email, then the
// configured fallback account.
func (s *TicketService) Create(req *CreateTicketRequest, principal *auth.Principal) (*TicketResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	submittedBy, err := s.resolveSubmitter(req, principal)
	if err != nil {
		return nil, err
	}

	priority := models.TicketPriority(strings.ToLower(req.Priority))
	if priority == "" {
		priority = models.TicketPriorityMedium
	}
	status := models.TicketStatus(req.Status)
	if status == "" {
		status = models.TicketStatusNew
	}

	now := time.Now()
	dueAt := sla.DueAt(priority, now)

	ticket := &models.Ticket{
		Title:            req.Title,
		Description:      req.Description,
		Status:           status,
		Priority:         priority,
		Category:         req.Category,
		SubmittedBy:      submittedBy,
		TeamID:           req.TeamID,
		AdditionalFields: datatypes.JSONMap(req.AdditionalFields),
		SLADueAt:         &dueAt,
	}

	if err := s.repo.Create(ticket); err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"ticket_id": ticket.ID,
		"priority":  ticket.Priority,
		"sla_due":   dueAt,
	}).Info("ticket created")

	return s.toResponse(ticket, nil), nil
}

func (s *TicketService) resolveSubmitter(req *CreateTicketRequest, principal *auth.Principal) (uuid.UUID, error) {
	if principal != nil {
		return principal.UserID, nil
	}

	if contactEmail, ok := req.AdditionalFields["contact_email"].(string); ok && contactEmail != "" {
		user, err := s.userRepo.GetByEmail(contactEmail)
		if err == nil {
			return user.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("failed to look up contact email: %w", err)
		}

		user = &models.User{
			Email:       contactEmail,
			DisplayName: strings.SplitN(contactEmail, "@", 2)[0],
		}
		if err := s.userRepo.Create(user); err != nil {
			return uuid.Nil, fmt.Errorf("failed to create submitter: %w", err)
		}
		if err := s.userRepo.UpsertRole(user.ID, models.RoleUser); err != nil {
			return uuid.Nil, fmt.Errorf("failed to assign submitter role: %w", err)
		}
		return user.ID, nil
	}

	fallback, err := s.userRepo.GetByEmail(s.fallbackEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, apperrors.NewValidationError("contact_email", "no contact email supplied and no fallback account configured")
		}
		return uuid.Nil, fmt.Errorf("failed to look up fallback account: %w", err)
	}
	return fallback.ID, nil
}

// GetByID retrieves a ticket with its linked CIs and problem
func (s *TicketService) GetByID(id uuid.UUID) (*TicketResponse, error) {
	ticket, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	var linked *LinkedProblemResponse
	problem, err := s.repo.LinkedProblem(id)
	if err == nil {
		linked = &LinkedProblemResponse{ID: problem.ID, Title: problem.Title, Status: problem.Status}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get linked problem: %w", err)
	}

	return s.toResponse(ticket, linked), nil
}

// GetAll retrieves tickets with pagination
func (s *TicketService) GetAll(page, pageSize int) (*TicketListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	tickets, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}

	responses := make([]TicketResponse, len(tickets))
	for i := range tickets {
		responses[i] = *s.toResponse(&tickets[i], nil)
	}

	return &TicketListResponse{
		Tickets:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update. The SLA due date is stamped at creation
// and is never touched here, even when priority changes.
func (s *TicketService) Update(id uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error) {
	ticket, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if req.Title != nil {
		ticket.Title = *req.Title
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.Status != nil {
		ticket.Status = models.TicketStatus(*req.Status)
	}
	if req.Priority != nil {
		ticket.Priority = models.TicketPriority(strings.ToLower(*req.Priority))
	}
	if req.Category != nil {
		ticket.Category = *req.Category
	}
	if req.AssignedTo != nil {
		ticket.AssignedTo = req.AssignedTo
	}
	if req.DueDate != nil {
		ticket.DueDate = req.DueDate
	}
	if req.TeamID != nil {
		ticket.TeamID = req.TeamID
	}
	if req.AdditionalFields != nil {
		ticket.AdditionalFields = datatypes.JSONMap(req.AdditionalFields)
	}

	if err := s.repo.Update(ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	return s.toResponse(ticket, nil), nil
}

// Delete removes a ticket and all its comments as one atomic unit
func (s *TicketService) Delete(id uuid.UUID) error {
	if err := s.repo.DeleteWithComments(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTicketNotFound
		}
		return apperrors.NewTransactionError("delete ticket", err)
	}
	return nil
}

// LinkCI links a configuration item to a ticket; duplicate links no-op
func (s *TicketService) LinkCI(ticketID, ciID uuid.UUID) error {
	if _, err := s.repo.GetByID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTicketNotFound
		}
		return fmt.Errorf("failed to verify ticket: %w", err)
	}
	if err := s.repo.LinkCI(ticketID, ciID); err != nil {
		return fmt.Errorf("failed to link configuration item: %w", err)
	}
	return nil
}

// UnlinkCI removes a ticket-CI link; absent links no-op
func (s *TicketService) UnlinkCI(ticketID, ciID uuid.UUID) error {
	if err := s.repo.UnlinkCI(ticketID, ciID); err != nil {
		return fmt.Errorf("failed to unlink configuration item: %w", err)
	}
	return nil
}

// GetComments retrieves a ticket's comments oldest-first
func (s *TicketService) GetComments(ticketID uuid.UUID) ([]CommentResponse, error) {
	comments, err := s.commentRepo.GetByTicketID(ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	responses := make([]CommentResponse, len(comments))
	for i, c := range comments {
		responses[i] = CommentResponse{
			ID:        c.ID,
			TicketID:  c.TicketID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		}
		if c.Author != nil {
			responses[i].UserEmail = c.Author.Email
		}
	}
	return responses, nil
}

// AddComment adds a comment by the authenticated caller
func (s *TicketService) AddComment(ticketID uuid.UUID, principal *auth.Principal, content string) (*CommentResponse, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if content == "" {
		return nil, apperrors.NewValidationError("content", "content is required")
	}

	comment := &models.Comment{
		TicketID: ticketID,
		UserID:   principal.UserID,
		Content:  content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &CommentResponse{
		ID:        comment.ID,
		TicketID:  comment.TicketID,
		UserID:    comment.UserID,
		UserEmail: principal.Email,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (s *TicketService) toResponse(ticket *models.Ticket, linked *LinkedProblemResponse) *TicketResponse {
	resp := &TicketResponse{
		ID:               ticket.ID,
		Title:            ticket.Title,
		Description:      ticket.Description,
		Status:           ticket.Status,
		Priority:         ticket.Priority,
		Category:         ticket.Category,
		AssignedTo:       ticket.AssignedTo,
		SubmittedBy:      ticket.SubmittedBy,
		TeamID:           ticket.TeamID,
		DueDate:          ticket.DueDate,
		AdditionalFields: ticket.AdditionalFields,
		SLADueAt:         ticket.SLADueAt,
		CIs:              ticket.CIs,
		LinkedProblem:    linked,
		CreatedAt:        ticket.CreatedAt,
		UpdatedAt:        ticket.UpdatedAt,
	}
	if resp.CIs == nil {
		resp.CIs = []models.ConfigurationItem{}
	}
	if ticket.SLADueAt != nil {
		remaining := sla.ComputeRemaining(*ticket.SLADueAt, time.Now())
		resp.SLA = &remaining
	}
	if ticket.Submitter != nil {
		resp.SubmittedByEmail = ticket.Submitter.Email
	}
	if ticket.Assignee != nil {
		resp.AssignedToEmail = ticket.Assignee.Email
	}
	return resp
}
