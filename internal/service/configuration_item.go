package service

import (
	"errors"
	"fmt"
	"time"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CIService handles business logic for configuration items
type CIService struct {
	repo      repository.CIRepositoryInterface
	validator *validator.Validate
}

// NewCIService creates a new configuration item service
func NewCIService(repo repository.CIRepositoryInterface, validator *validator.Validate) *CIService {
	return &CIService{repo: repo, validator: validator}
}

// CreateCIRequest represents the request to create a configuration item
type CreateCIRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Type        string `json:"type" validate:"required,max=50"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// UpdateCIRequest is a typed partial update for a configuration item
type UpdateCIRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// CIResponse represents the response for configuration item operations
type CIResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Status      models.CIStatus `json:"status"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	OwnerID     *uuid.UUID      `json:"owner_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Create creates a configuration item, stamping the caller as owner when
// authenticated
func (s *CIService) Create(req *CreateCIRequest, principal *auth.Principal) (*CIResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	status := models.CIStatus(req.Status)
	if status == "" {
		status = models.CIStatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown configuration item status")
	}

	ci := &models.ConfigurationItem{
		Name:        req.Name,
		Type:        req.Type,
		Status:      status,
		Description: req.Description,
		Location:    req.Location,
	}
	if principal != nil {
		ownerID := principal.UserID
		ci.OwnerID = &ownerID
	}

	if err := s.repo.Create(ci); err != nil {
		return nil, fmt.Errorf("failed to create configuration item: %w", err)
	}
	return s.toResponse(ci), nil
}

// GetByID retrieves a configuration item by ID
func (s *CIService) GetByID(id uuid.UUID) (*CIResponse, error) {
	ci, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCINotFound
		}
		return nil, fmt.Errorf("failed to get configuration item: %w", err)
	}
	return s.toResponse(ci), nil
}

// GetAll retrieves all configuration items ordered by name
func (s *CIService) GetAll() ([]CIResponse, error) {
	cis, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration items: %w", err)
	}

	responses := make([]CIResponse, len(cis))
	for i := range cis {
		responses[i] = *s.toResponse(&cis[i])
	}
	return responses, nil
}

// Update applies a partial update to a configuration item
func (s *CIService) Update(id uuid.UUID, req *UpdateCIRequest) (*CIResponse, error) {
	ci, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCINotFound
		}
		return nil, fmt.Errorf("failed to get configuration item: %w", err)
	}

	if req.Name != nil {
		ci.Name = *req.Name
	}
	if req.Type != nil {
		ci.Type = *req.Type
	}
	if req.Status != nil {
		status := models.CIStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown configuration item status")
		}
		ci.Status = status
	}
	if req.Description != nil {
		ci.Description = *req.Description
	}
	if req.Location != nil {
		ci.Location = *req.Location
	}

	if err := s.repo.Update(ci); err != nil {
		return nil, fmt.Errorf("failed to update configuration item: %w", err)
	}
	return s.toResponse(ci), nil
}

// Delete removes a configuration item; ticket and change links cascade
func (s *CIService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCINotFound
		}
		return fmt.Errorf("failed to delete configuration item: %w", err)
	}
	return nil
}

func (s *CIService) toResponse(ci *models.ConfigurationItem) *CIResponse {
	return &CIResponse{
		ID:          ci.ID,
		Name:        ci.Name,
		Type:        ci.Type,
		Status:      ci.Status,
		Description: ci.Description,
		Location:    ci.Location,
		OwnerID:     ci.OwnerID,
		CreatedAt:   ci.CreatedAt,
		UpdatedAt:   ci.UpdatedAt,
	}
}
