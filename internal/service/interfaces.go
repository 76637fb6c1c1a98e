package service

import (
	"servicedesk-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TicketServiceInterface defines the interface for ticket service operations
type TicketServiceInterface interface {
	Create(req *CreateTicketRequest, principal *auth.Principal) (*TicketResponse, error)
	GetByID(id uuid.UUID) (*TicketResponse, error)
	GetAll(page, pageSize int) (*TicketListResponse, error)
	Update(id uuid.UUID, req *UpdateTicketRequest) (*TicketResponse, error)
	Delete(id uuid.UUID) error
	LinkCI(ticketID, ciID uuid.UUID) error
	UnlinkCI(ticketID, ciID uuid.UUID) error
	GetComments(ticketID uuid.UUID) ([]CommentResponse, error)
	AddComment(ticketID uuid.UUID, principal *auth.Principal, content string) (*CommentResponse, error)
}

// CIServiceInterface defines the interface for configuration item service operations
type CIServiceInterface interface {
	Create(req *CreateCIRequest, principal *auth.Principal) (*CIResponse, error)
	GetByID(id uuid.UUID) (*CIResponse, error)
	GetAll() ([]CIResponse, error)
	Update(id uuid.UUID, req *UpdateCIRequest) (*CIResponse, error)
	Delete(id uuid.UUID) error
}

// ProblemServiceInterface defines the interface for problem service operations
type ProblemServiceInterface interface {
	Create(req *CreateProblemRequest) (*ProblemResponse, error)
	GetByID(id uuid.UUID) (*ProblemResponse, error)
	GetAll() ([]ProblemResponse, error)
	Update(id uuid.UUID, req *UpdateProblemRequest) (*ProblemResponse, error)
	Delete(id uuid.UUID) error
	LinkTicket(problemID, ticketID uuid.UUID) error
	UnlinkTicket(problemID, ticketID uuid.UUID) error
	Resolve(id uuid.UUID, resolution string) (*ProblemResponse, error)
}

// ChangeServiceInterface defines the interface for change service operations
type ChangeServiceInterface interface {
	Create(req *CreateChangeRequest, principal *auth.Principal) (*ChangeResponse, error)
	GetByID(id uuid.UUID) (*ChangeResponse, error)
	GetAll() ([]ChangeResponse, error)
	Update(id uuid.UUID, req *UpdateChangeRequest) (*ChangeResponse, error)
	Approve(id uuid.UUID, principal *auth.Principal) (*ChangeResponse, error)
	Delete(id uuid.UUID) error
	LinkCI(changeID, ciID uuid.UUID) error
	UnlinkCI(changeID, ciID uuid.UUID) error
	LinkProblem(changeID, problemID uuid.UUID) error
	UnlinkProblem(changeID, problemID uuid.UUID) error
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	GetAll() ([]UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service operations
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetAll() ([]TeamResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id uuid.UUID) error
	GetAllMembers() ([]TeamMemberResponse, error)
	AddMember(req *AddMemberRequest) (*TeamMemberResponse, error)
	RemoveMember(teamID, userID uuid.UUID) error
	UpdateMemberRole(teamID, userID uuid.UUID, role string) (*TeamMemberResponse, error)
}

// KBServiceInterface defines the interface for knowledge-base service operations
type KBServiceInterface interface {
	Create(req *CreateArticleRequest, principal *auth.Principal) (*ArticleResponse, error)
	GetByID(id uuid.UUID) (*ArticleResponse, error)
	Search(query string) ([]ArticleResponse, error)
	Update(id uuid.UUID, req *UpdateArticleRequest) (*ArticleResponse, error)
	Delete(id uuid.UUID) error
}
