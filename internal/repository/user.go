package repository

import (
	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users and their roles
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID with their role record
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email with their role record
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Role").First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAll retrieves all users with their role records
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Role").Find(&users).Error
	return users, err
}

// Update persists all fields of a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SetPassword stores a new password hash for a user
func (r *UserRepository) SetPassword(id uuid.UUID, hash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).
		Update("password", hash).Error
}

// GetRole returns a user's role, defaulting to RoleUser when no side
// record exists.
func (r *UserRepository) GetRole(userID uuid.UUID) (models.UserRoleName, error) {
	var role models.UserRole
	err := r.db.First(&role, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.RoleUser, nil
		}
		return "", err
	}
	return role.Role, nil
}

// UpsertRole creates or updates a user's role side record
func (r *UserRepository) UpsertRole(userID uuid.UUID, role models.UserRoleName) error {
	var existing models.UserRole
	err := r.db.First(&existing, "user_id = ?", userID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return r.db.Create(&models.UserRole{UserID: userID, Role: role}).Error
		}
		return err
	}
	return r.db.Model(&models.UserRole{}).Where("user_id = ?", userID).
		Update("role", role).Error
}

// DeleteCascade removes a user and everything hanging off them in one
// transaction: their comments, team memberships, role record, comments on
// tickets they submitted, the submitted tickets themselves, assignment on
// other tickets (nulled, not deleted), and finally the user row. Any
// failure rolls back every step. Returns gorm.ErrRecordNotFound when the
// user does not exist.
func (r *UserRepository) DeleteCascade(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}

		submitted := tx.Model(&models.Ticket{}).
			Select("id").
			Where("submitted_by = ?", id)
		if err := tx.Where("ticket_id IN (?)", submitted).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("submitted_by = ?", id).Delete(&models.Ticket{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Ticket{}).
			Where("assigned_to = ?", id).
			Update("assigned_to", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
