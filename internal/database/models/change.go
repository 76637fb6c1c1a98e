package models

import (
	"time"

	"github.com/google/uuid"
)

// Change is a planned, approvable modification to infrastructure, distinct
// from reactive incident tickets. RequestedBy is stamped from the caller at
// creation; ApprovedBy records who actually approved, while
// AssignedApproverID only designates who should.
type Change struct {
	BaseModel
	Title              string         `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	Description        string         `json:"description" gorm:"type:text;not null" validate:"required"`
	Type               ChangeType     `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Status             ChangeStatus   `json:"status" gorm:"type:varchar(50);not null;default:'draft';index"`
	Priority           TicketPriority `json:"priority" gorm:"type:varchar(50);not null;default:'low'"`
	Risk               ChangeRisk     `json:"risk" gorm:"type:varchar(50);not null;default:'low'"`
	Impact             string         `json:"impact" gorm:"type:text"`
	BackoutPlan        string         `json:"backout_plan" gorm:"type:text"`
	ScheduledStart     *time.Time     `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time     `json:"scheduled_end,omitempty"`
	RequestedBy        *uuid.UUID     `json:"requested_by,omitempty" gorm:"type:uuid"`
	ApprovedBy         *uuid.UUID     `json:"approved_by,omitempty" gorm:"type:uuid"`
	AssignedApproverID *uuid.UUID     `json:"assigned_approver_id,omitempty" gorm:"type:uuid"`

	Requestor        *User               `json:"requestor,omitempty" gorm:"foreignKey:RequestedBy"`
	Approver         *User               `json:"approver,omitempty" gorm:"foreignKey:ApprovedBy"`
	AssignedApprover *User               `json:"assigned_approver,omitempty" gorm:"foreignKey:AssignedApproverID"`
	CIs              []ConfigurationItem `json:"cis,omitempty" gorm:"many2many:change_cis;constraint:OnDelete:CASCADE"`
	Problems         []Problem           `json:"problems,omitempty" gorm:"many2many:change_problems;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Change
func (Change) TableName() string {
	return "changes"
}

// ChangeCI is the change<->CI join row
type ChangeCI struct {
	ChangeID uuid.UUID `json:"change_id" gorm:"type:uuid;primary_key"`
	CIID     uuid.UUID `json:"ci_id" gorm:"type:uuid;primary_key;column:ci_id"`
}

// TableName returns the table name for ChangeCI
func (ChangeCI) TableName() string {
	return "change_cis"
}

// ChangeProblem is the change<->problem join row
type ChangeProblem struct {
	ChangeID  uuid.UUID `json:"change_id" gorm:"type:uuid;primary_key"`
	ProblemID uuid.UUID `json:"problem_id" gorm:"type:uuid;primary_key"`
}

// TableName returns the table name for ChangeProblem
func (ChangeProblem) TableName() string {
	return "change_problems"
}
