package repository

import (
	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChangeRepository handles database operations for change requests
type ChangeRepository struct {
	db *gorm.DB
}

// NewChangeRepository creates a new change repository
func NewChangeRepository(db *gorm.DB) *ChangeRepository {
	return &ChangeRepository{db: db}
}

// Create creates a new change
func (r *ChangeRepository) Create(change *models.Change) error {
	return r.db.Create(change).Error
}

// GetByID retrieves a change with requestor and approver details
func (r *ChangeRepository) GetByID(id uuid.UUID) (*models.Change, error) {
	var change models.Change
	err := r.db.
		Preload("Requestor").
		Preload("Approver").
		Preload("AssignedApprover").
		First(&change, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &change, nil
}

// GetWithLinks retrieves a change with its linked CIs and problems
func (r *ChangeRepository) GetWithLinks(id uuid.UUID) (*models.Change, error) {
	var change models.Change
	err := r.db.
		Preload("Requestor").
		Preload("Approver").
		Preload("AssignedApprover").
		Preload("CIs").
		Preload("Problems").
		First(&change, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &change, nil
}

// GetAll retrieves all changes newest-first with requestor and approver details
func (r *ChangeRepository) GetAll() ([]models.Change, error) {
	var changes []models.Change
	err := r.db.
		Preload("Requestor").
		Preload("Approver").
		Preload("AssignedApprover").
		Order("created_at DESC").
		Find(&changes).Error
	return changes, err
}

// Update persists all fields of a change
func (r *ChangeRepository) Update(change *models.Change) error {
	return r.db.Save(change).Error
}

// Delete removes a change; join rows cascade at the database level.
// Returns gorm.ErrRecordNotFound when the change does not exist.
func (r *ChangeRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Change{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LinkCI links a configuration item to a change. Duplicate links no-op.
func (r *ChangeRepository) LinkCI(changeID, ciID uuid.UUID) error {
	link := models.ChangeCI{ChangeID: changeID, CIID: ciID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// UnlinkCI removes a change-CI link; absent links no-op
func (r *ChangeRepository) UnlinkCI(changeID, ciID uuid.UUID) error {
	return r.db.Where("change_id = ? AND ci_id = ?", changeID, ciID).
		Delete(&models.ChangeCI{}).Error
}

// LinkProblem links a problem to a change. Duplicate links no-op.
func (r *ChangeRepository) LinkProblem(changeID, problemID uuid.UUID) error {
	link := models.ChangeProblem{ChangeID: changeID, ProblemID: problemID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// UnlinkProblem removes a change-problem link; absent links no-op
func (r *ChangeRepository) UnlinkProblem(changeID, problemID uuid.UUID) error {
	return r.db.Where("change_id = ? AND problem_id = ?", changeID, problemID).
		Delete(&models.ChangeProblem{}).Error
}
