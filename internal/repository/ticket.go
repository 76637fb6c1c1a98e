package repository

import (
	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TicketRepository handles database operations for tickets
type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ticket *models.Ticket) error {
	return r.db.Create(ticket).Error
}

// GetByID retrieves a ticket by ID with its linked CIs
func (r *TicketRepository) GetByID(id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Preload("CIs").First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// GetAll retrieves tickets newest-first with submitter and assignee details
func (r *TicketRepository) GetAll(limit, offset int) ([]models.Ticket, int64, error) {
	var tickets []models.Ticket
	var total int64

	if err := r.db.Model(&models.Ticket{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Submitter").
		Preload("Assignee").
		Preload("CIs").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

// Update persists all fields of a ticket
func (r *TicketRepository) Update(ticket *models.Ticket) error {
	return r.db.Save(ticket).Error
}

// DeleteWithComments removes a ticket and all its comments as one atomic
// unit. Returns gorm.ErrRecordNotFound when the ticket does not exist.
func (r *TicketRepository) DeleteWithComments(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Ticket{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// LinkCI links a configuration item to a ticket. Duplicate links no-op.
func (r *TicketRepository) LinkCI(ticketID, ciID uuid.UUID) error {
	link := models.TicketCI{TicketID: ticketID, CIID: ciID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error
}

// UnlinkCI removes a ticket-CI link; absent links no-op
func (r *TicketRepository) UnlinkCI(ticketID, ciID uuid.UUID) error {
	return r.db.Where("ticket_id = ? AND ci_id = ?", ticketID, ciID).
		Delete(&models.TicketCI{}).Error
}

// LinkedProblem returns the problem linked to a ticket, or
// gorm.ErrRecordNotFound when no link exists.
func (r *TicketRepository) LinkedProblem(ticketID uuid.UUID) (*models.Problem, error) {
	var problem models.Problem
	err := r.db.
		Joins("JOIN problem_tickets pt ON pt.problem_id = problems.id").
		Where("pt.ticket_id = ?", ticketID).
		First(&problem).Error
	if err != nil {
		return nil, err
	}
	return &problem, nil
}
