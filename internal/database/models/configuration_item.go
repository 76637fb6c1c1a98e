package models

import "github.com/google/uuid"

// ConfigurationItem is a tracked infrastructure asset (server, application,
// network device) linkable to tickets and changes.
type ConfigurationItem struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Type        string     `json:"type" gorm:"not null;size:50" validate:"required,max=50"`
	Status      CIStatus   `json:"status" gorm:"type:varchar(50);not null;default:'active'"`
	Description string     `json:"description" gorm:"type:text"`
	Location    string     `json:"location" gorm:"size:100"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty" gorm:"type:uuid"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// TableName returns the table name for ConfigurationItem
func (ConfigurationItem) TableName() string {
	return "configuration_items"
}

// TicketCI is the ticket<->CI join row; cascade-deleted from either side
type TicketCI struct {
	TicketID uuid.UUID `json:"ticket_id" gorm:"type:uuid;primary_key"`
	CIID     uuid.UUID `json:"ci_id" gorm:"type:uuid;primary_key;column:ci_id"`
}

// TableName returns the table name for TicketCI
func (TicketCI) TableName() string {
	return "ticket_cis"
}
