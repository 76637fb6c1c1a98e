package repository

import (
	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TicketRepositoryInterface defines the interface for ticket repository operations
type TicketRepositoryInterface interface {
	Create(ticket *models.Ticket) error
	GetByID(id uuid.UUID) (*models.Ticket, error)
	GetAll(limit, offset int) ([]models.Ticket, int64, error)
	Update(ticket *models.Ticket) error
	DeleteWithComments(id uuid.UUID) error
	LinkCI(ticketID, ciID uuid.UUID) error
	UnlinkCI(ticketID, ciID uuid.UUID) error
	LinkedProblem(ticketID uuid.UUID) (*models.Problem, error)
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByTicketID(ticketID uuid.UUID) ([]models.Comment, error)
}

// CIRepositoryInterface defines the interface for configuration item repository operations
type CIRepositoryInterface interface {
	Create(ci *models.ConfigurationItem) error
	GetByID(id uuid.UUID) (*models.ConfigurationItem, error)
	GetAll() ([]models.ConfigurationItem, error)
	Update(ci *models.ConfigurationItem) error
	Delete(id uuid.UUID) error
}

// ProblemRepositoryInterface defines the interface for problem repository operations
type ProblemRepositoryInterface interface {
	Create(problem *models.Problem) error
	GetByID(id uuid.UUID) (*models.Problem, error)
	GetWithTickets(id uuid.UUID) (*models.Problem, error)
	GetAll() ([]ProblemWithTicketCount, error)
	Update(problem *models.Problem) error
	Delete(id uuid.UUID) error
	LinkTicket(problemID, ticketID uuid.UUID) error
	UnlinkTicket(problemID, ticketID uuid.UUID) error
	ResolveCascade(id uuid.UUID, resolution string) (*models.Problem, error)
}

// ChangeRepositoryInterface defines the interface for change repository operations
type ChangeRepositoryInterface interface {
	Create(change *models.Change) error
	GetByID(id uuid.UUID) (*models.Change, error)
	GetWithLinks(id uuid.UUID) (*models.Change, error)
	GetAll() ([]models.Change, error)
	Update(change *models.Change) error
	Delete(id uuid.UUID) error
	LinkCI(changeID, ciID uuid.UUID) error
	UnlinkCI(changeID, ciID uuid.UUID) error
	LinkProblem(changeID, problemID uuid.UUID) error
	UnlinkProblem(changeID, problemID uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	SetPassword(id uuid.UUID, hash string) error
	GetRole(userID uuid.UUID) (models.UserRoleName, error)
	UpsertRole(userID uuid.UUID, role models.UserRoleName) error
	DeleteCascade(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetAllMembers() ([]models.TeamMember, error)
	AddMember(member *models.TeamMember) error
	RemoveMember(teamID, userID uuid.UUID) error
	UpdateMemberRole(teamID, userID uuid.UUID, role string) (*models.TeamMember, error)
}

// KBRepositoryInterface defines the interface for knowledge-base repository operations
type KBRepositoryInterface interface {
	Create(article *models.KBArticle) error
	GetByID(id uuid.UUID) (*models.KBArticle, error)
	Search(query string) ([]models.KBArticle, error)
	Update(article *models.KBArticle) error
	Delete(id uuid.UUID) error
}
