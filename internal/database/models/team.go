package models

import "github.com/google/uuid"

// Team groups technicians working a shared queue
type Team struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Category string `json:"category" gorm:"size:100"`

	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember links a user to a team with a team-scoped role
type TeamMember struct {
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;primary_key"`
	Role   string    `json:"role" gorm:"size:50"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
