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

// UserService handles business logic for user administration
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// UpdateUserRequest is a typed partial update for a user. Role updates go
// to the one-to-one side record.
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Role        *string `json:"role,omitempty"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID          uuid.UUID           `json:"id"`
	Email       string              `json:"email"`
	DisplayName string              `json:"display_name"`
	Role        models.UserRoleName `json:"role"`
	CreatedAt   time.Time           `json:"created_at"`
}

// GetAll retrieves all users with their roles
func (s *UserService) GetAll() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *s.toResponse(&users[i])
	}
	return responses, nil
}

// GetByID retrieves a user with their role
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// Update applies a partial update, upserting the role side record when a
// role is supplied
func (s *UserService) Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Role != nil {
		role := models.UserRoleName(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.NewValidationError("role", "unknown role")
		}
		if err := s.repo.UpsertRole(id, role); err != nil {
			return nil, fmt.Errorf("failed to update role: %w", err)
		}
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.DisplayName != nil || req.Email != nil {
		if err := s.repo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	// Re-read so the response reflects the current role record
	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return s.toResponse(updated), nil
}

// Delete removes a user and cascades in one transaction: their comments,
// team memberships, role record, submitted tickets (and those tickets'
// comments), and assignment on other tickets. All-or-nothing.
func (s *UserService) Delete(id uuid.UUID) error {
	if err := s.repo.DeleteCascade(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.NewTransactionError("delete user", err)
	}

	logger.New().WithField("user_id", id).Info("user deleted with cascade")
	return nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	role := models.RoleUser
	if user.Role != nil {
		role = user.Role.Role
	}
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        role,
		CreatedAt:   user.CreatedAt,
	}
}
