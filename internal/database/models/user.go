package models

import "github.com/google/uuid"

// User represents an account that can submit, work or approve records.
// Password is nullable: accounts created from anonymous ticket intake have
// no password until their first login sets one.
type User struct {
	BaseModel
	Email       string  `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	DisplayName string  `json:"display_name" gorm:"size:100"`
	Password    *string `json:"-" gorm:"size:100"`

	// Relationships
	Role *UserRole `json:"role_record,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// UserRole is the one-to-one side record holding a user's role
type UserRole struct {
	UserID uuid.UUID    `json:"user_id" gorm:"type:uuid;primary_key"`
	Role   UserRoleName `json:"role" gorm:"type:varchar(50);not null;default:'user'"`
}

// TableName returns the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}
