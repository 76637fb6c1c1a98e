package repository

import (
	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CIRepository handles database operations for configuration items
type CIRepository struct {
	db *gorm.DB
}

// NewCIRepository creates a new configuration item repository
func NewCIRepository(db *gorm.DB) *CIRepository {
	return &CIRepository{db: db}
}

// Create creates a new configuration item
func (r *CIRepository) Create(ci *models.ConfigurationItem) error {
	return r.db.Create(ci).Error
}

// GetByID retrieves a configuration item by ID
func (r *CIRepository) GetByID(id uuid.UUID) (*models.ConfigurationItem, error) {
	var ci models.ConfigurationItem
	err := r.db.First(&ci, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

// GetAll retrieves all configuration items ordered by name
func (r *CIRepository) GetAll() ([]models.ConfigurationItem, error) {
	var cis []models.ConfigurationItem
	err := r.db.Order("name ASC").Find(&cis).Error
	return cis, err
}

// Update persists all fields of a configuration item
func (r *CIRepository) Update(ci *models.ConfigurationItem) error {
	return r.db.Save(ci).Error
}

// Delete removes a configuration item. Join rows cascade at the database
// level. Returns gorm.ErrRecordNotFound when the item does not exist.
func (r *CIRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.ConfigurationItem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
