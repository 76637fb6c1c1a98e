package models

import "github.com/google/uuid"

// KBArticle is a knowledge-base entry. Content is stored as markdown and
// rendered to sanitized HTML on read.
type KBArticle struct {
	BaseModel
	Title    string     `json:"title" gorm:"not null;size:255" validate:"required,max=255"`
	Content  string     `json:"content" gorm:"type:text;not null" validate:"required"`
	Category string     `json:"category" gorm:"size:100"`
	AuthorID *uuid.UUID `json:"author_id,omitempty" gorm:"type:uuid"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for KBArticle
func (KBArticle) TableName() string {
	return "kb_articles"
}
