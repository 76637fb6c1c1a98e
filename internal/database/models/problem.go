package models

import "github.com/google/uuid"

// Problem is a root-cause record explaining one or more incident tickets
type Problem struct {
	BaseModel
	Title       string        `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	Description string        `json:"description" gorm:"type:text;not null" validate:"required"`
	RootCause   string        `json:"root_cause" gorm:"type:text"`
	Resolution  string        `json:"resolution" gorm:"type:text"`
	Status      ProblemStatus `json:"status" gorm:"type:varchar(50);not null;default:'open'"`

	Tickets []Ticket `json:"tickets,omitempty" gorm:"many2many:problem_tickets;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Problem
func (Problem) TableName() string {
	return "problems"
}

// ProblemTicket is the problem<->ticket join row
type ProblemTicket struct {
	ProblemID uuid.UUID `json:"problem_id" gorm:"type:uuid;primary_key"`
	TicketID  uuid.UUID `json:"ticket_id" gorm:"type:uuid;primary_key"`
}

// TableName returns the table name for ProblemTicket
func (ProblemTicket) TableName() string {
	return "problem_tickets"
}
