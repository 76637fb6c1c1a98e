package repository

import (
	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KBRepository handles database operations for knowledge-base articles
type KBRepository struct {
	db *gorm.DB
}

// NewKBRepository creates a new knowledge-base repository
func NewKBRepository(db *gorm.DB) *KBRepository {
	return &KBRepository{db: db}
}

// Create creates a new article
func (r *KBRepository) Create(article *models.KBArticle) error {
	return r.db.Create(article).Error
}

// GetByID retrieves an article by ID with its author
func (r *KBRepository) GetByID(id uuid.UUID) (*models.KBArticle, error) {
	var article models.KBArticle
	err := r.db.Preload("Author").First(&article, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// Search retrieves articles newest-first, optionally filtered by a
// case-insensitive title/content match.
func (r *KBRepository) Search(query string) ([]models.KBArticle, error) {
	var articles []models.KBArticle
	q := r.db.Preload("Author").Order("created_at DESC")
	if query != "" {
		q = q.Where("title ILIKE ? OR content ILIKE ?", "%"+query+"%", "%"+query+"%")
	}
	err := q.Find(&articles).Error
	return articles, err
}

// Update persists all fields of an article
func (r *KBRepository) Update(article *models.KBArticle) error {
	return r.db.Save(article).Error
}

// Delete removes an article. Returns gorm.ErrRecordNotFound when absent.
func (r *KBRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.KBArticle{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
