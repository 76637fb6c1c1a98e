package testutils

import (
	"time"

	"servicedesk-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Each user gets a unique
// email so the uniqueIndex never trips across tests.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:       "user-" + id.String()[:8] + "@example.com",
		DisplayName: "Test User",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TicketFactory provides methods to create test Ticket data
type TicketFactory struct{}

// NewTicketFactory creates a new TicketFactory
func NewTicketFactory() *TicketFactory {
	return &TicketFactory{}
}

// Create creates a test Ticket submitted by the given user
func (f *TicketFactory) Create(submittedBy uuid.UUID) *models.Ticket {
	due := time.Now().Add(24 * time.Hour)
	return &models.Ticket{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Printer on floor 3 jams",
		Description: "Paper jam on every duplex job",
		Status:      models.TicketStatusNew,
		Priority:    models.TicketPriorityMedium,
		Category:    "hardware",
		SubmittedBy: submittedBy,
		SLADueAt:    &due,
	}
}

// WithPriority sets a custom priority for the ticket
func (f *TicketFactory) WithPriority(submittedBy uuid.UUID, priority models.TicketPriority) *models.Ticket {
	ticket := f.Create(submittedBy)
	ticket.Priority = priority
	return ticket
}

// WithStatus sets a custom status for the ticket
func (f *TicketFactory) WithStatus(submittedBy uuid.UUID, status models.TicketStatus) *models.Ticket {
	ticket := f.Create(submittedBy)
	ticket.Status = status
	return ticket
}

// ProblemFactory provides methods to create test Problem data
type ProblemFactory struct{}

// NewProblemFactory creates a new ProblemFactory
func NewProblemFactory() *ProblemFactory {
	return &ProblemFactory{}
}

// Create creates a test Problem with default values
func (f *ProblemFactory) Create() *models.Problem {
	return &models.Problem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Recurring VPN drops",
		Description: "Multiple users lose VPN every morning around 09:00",
		Status:      models.ProblemStatusOpen,
	}
}

// CIFactory provides methods to create test ConfigurationItem data
type CIFactory struct{}

// NewCIFactory creates a new CIFactory
func NewCIFactory() *CIFactory {
	return &CIFactory{}
}

// Create creates a test ConfigurationItem with default values
func (f *CIFactory) Create() *models.ConfigurationItem {
	return &models.ConfigurationItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "prod-db-01",
		Type:   "server",
		Status: models.CIStatusActive,
	}
}

// WithName sets a custom name for the configuration item
func (f *CIFactory) WithName(name string) *models.ConfigurationItem {
	ci := f.Create()
	ci.Name = name
	return ci
}

// ChangeFactory provides methods to create test Change data
type ChangeFactory struct{}

// NewChangeFactory creates a new ChangeFactory
func NewChangeFactory() *ChangeFactory {
	return &ChangeFactory{}
}

// Create creates a test Change with default values
func (f *ChangeFactory) Create() *models.Change {
	return &models.Change{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Patch mail gateway",
		Description: "Apply vendor security patch",
		Type:        models.ChangeTypeNormal,
		Status:      models.ChangeStatusRequested,
		Priority:    models.TicketPriorityMedium,
		Risk:        models.ChangeRiskLow,
	}
}

// WithStatus sets a custom status for the change
func (f *ChangeFactory) WithStatus(status models.ChangeStatus) *models.Change {
	change := f.Create()
	change.Status = status
	return change
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Service Desk L1",
		Category: "support",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// KBArticleFactory provides methods to create test KBArticle data
type KBArticleFactory struct{}

// NewKBArticleFactory creates a new KBArticleFactory
func NewKBArticleFactory() *KBArticleFactory {
	return &KBArticleFactory{}
}

// Create creates a test KBArticle with default values
func (f *KBArticleFactory) Create() *models.KBArticle {
	return &models.KBArticle{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:    "How to reset your VPN profile",
		Content:  "# Reset steps\n\n1. Remove the old profile\n2. Re-import from the portal",
		Category: "network",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User      *UserFactory
	Ticket    *TicketFactory
	Problem   *ProblemFactory
	CI        *CIFactory
	Change    *ChangeFactory
	Team      *TeamFactory
	KBArticle *KBArticleFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:      NewUserFactory(),
		Ticket:    NewTicketFactory(),
		Problem:   NewProblemFactory(),
		CI:        NewCIFactory(),
		Change:    NewChangeFactory(),
		Team:      NewTeamFactory(),
		KBArticle: NewKBArticleFactory(),
	}
}
