package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Ticket represents an incident or service request
type Ticket struct {
	BaseModel
	Title            string            `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	Description      string            `json:"description" gorm:"type:text;not null" validate:"required"`
	Status           TicketStatus      `json:"status" gorm:"type:varchar(50);not null;default:'new';index"`
	Priority         TicketPriority    `json:"priority" gorm:"type:varchar(50);not null;default:'medium'"`
	Category         string            `json:"category" gorm:"size:100"`
	AssignedTo       *uuid.UUID        `json:"assigned_to,omitempty" gorm:"type:uuid;index"`
	SubmittedBy      uuid.UUID         `json:"submitted_by" gorm:"type:uuid;not null;index"`
	TeamID           *uuid.UUID        `json:"team_id,omitempty" gorm:"type:uuid;index"`
	DueDate          *time.Time        `json:"due_date,omitempty"`
	AdditionalFields datatypes.JSONMap `json:"additional_fields,omitempty" gorm:"type:jsonb"`

	// SLADueAt is computed from priority at creation and never updated.
	SLADueAt *time.Time `json:"sla_due_at,omitempty" gorm:"column:sla_due_at"`

	// Relationships
	Submitter *User               `json:"submitter,omitempty" gorm:"foreignKey:SubmittedBy"`
	Assignee  *User               `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
	Comments  []Comment           `json:"comments,omitempty" gorm:"foreignKey:TicketID"`
	CIs       []ConfigurationItem `json:"cis,omitempty" gorm:"many2many:ticket_cis;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// Comment is strictly owned by its ticket and removed with it
type Comment struct {
	BaseModel
	TicketID uuid.UUID `json:"ticket_id" gorm:"type:uuid;not null;index" validate:"required"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null" validate:"required"`
	Content  string    `json:"content" gorm:"type:text;not null" validate:"required"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "ticket_comments"
}
