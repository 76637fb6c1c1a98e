package repository

import (
	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProblemRepository handles database operations for problem records
type ProblemRepository struct {
	db *gorm.DB
}

// NewProblemRepository creates a new problem repository
func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

// ProblemWithTicketCount pairs a problem with its linked-incident count
type ProblemWithTicketCount struct {
	models.Problem
	TicketCount int64 `json:"ticket_count"`
}

// Create creates a new problem
func (r *ProblemRepository) Create(problem *models.Problem) error {
	return r.db.Create(problem).Error
}

// GetByID retrieves a problem by ID
func (r *ProblemRepository) GetByID(id uuid.UUID) (*models.Problem, error) {
	var problem models.Problem
	err := r.db.First(&problem, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// GetWithTickets retrieves a problem with its linked tickets
func (r *ProblemRepository) GetWithTickets(id uuid.UUID) (*models.Problem, error) {
	var problem models.Problem
	err := r.db.Preload("Tickets").First(&problem, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

// GetAll retrieves all problems newest-first with linked-ticket counts
func (r *ProblemRepository) GetAll() ([]ProblemWithTicketCount, error) {
	var results []ProblemWithTicketCount
	err := r.db.Model(&models.Problem{}).
		Select("problems.*, COUNT(pt.ticket_id) AS ticket_count").
		Joins("LEFT JOIN problem_tickets pt ON pt.problem_id = problems.id").
		Group("problems.id").
		Order("problems.created_at DESC").
		Find(&results).Error
	return results, err
}

// Update persists all fields of a problem
func (r *ProblemRepository) Update(problem *models.Problem) error {
	return r.db.Save(problem).Error
}

// Delete removes a problem unconditionally; linked-ticket join rows cascade.
// Returns gorm.ErrRecordNotFound when the problem does not exist.
func (r *ProblemRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Problem{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LinkTicket links a ticket to a problem. Duplicate links no-op.
func (r *ProblemRepository) LinkTicket(problemID, ticketID uuid.UUID) error {
	link := models.ProblemTicket{ProblemID: problemID, TicketID: ticketID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// UnlinkTicket removes a problem-ticket link; absent links no-op
func (r *ProblemRepository) UnlinkTicket(problemID, ticketID uuid.UUID) error {
	return r.db.Where("problem_id = ? AND ticket_id = ?", problemID, ticketID).
		Delete(&models.ProblemTicket{}).Error
}

// ResolveCascade marks a problem resolved and transitions every linked
// ticket to resolved, skipping tickets already closed. The whole operation
// runs in one transaction: any failure rolls back the problem status too.
func (r *ProblemRepository) ResolveCascade(id uuid.UUID, resolution string) (*models.Problem, error) {
	var problem models.Problem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&problem, "id = ?", id).Error; err != nil {
			return err
		}

		problem.Status = models.ProblemStatusResolved
		problem.Resolution = resolution
		if err := tx.Save(&problem).Error; err != nil {
			return err
		}

		linked := tx.Model(&models.ProblemTicket{}).
			Select("ticket_id").
			Where("problem_id = ?", id)

		return tx.Model(&models.Ticket{}).
			Where("id IN (?) AND status <> ?", linked, models.TicketStatusClosed).
			Update("status", models.TicketStatusResolved).Error
	})
	if err != nil {
		return nil, err
	}
	return &problem, nil
}
