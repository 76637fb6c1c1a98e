package service_test

import (
	"testing"
	"time"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/mocks"
	"servicedesk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const fallbackEmail = "admin@example.com"

// TicketServiceTestSuite defines the test suite for TicketService
type TicketServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTicketRepo  *mocks.MockTicketRepositoryInterface
	mockCommentRepo *mocks.MockCommentRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	ticketService   *service.TicketService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *TicketServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTicketRepo = mocks.NewMockTicketRepositoryInterface(suite.ctrl)
	suite.mockCommentRepo = mocks.NewMockCommentRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.ticketService = service.NewTicketService(
		suite.mockTicketRepo, suite.mockCommentRepo, suite.mockUserRepo, suite.validator, fallbackEmail)
}

// TearDownTest cleans up after each test
func (suite *TicketServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTicketStampsSLA tests that creation computes the SLA due date
// from the priority
func (suite *TicketServiceTestSuite) TestCreateTicketStampsSLA() {
	principal := &auth.Principal{UserID: uuid.New(), Email: "agent@example.com", Role: models.RoleTechnician}
	req := &service.CreateTicketRequest{
		Title:       "Database down",
		Description: "Production database is unreachable",
		Priority:    "critical",
	}

	var created *models.Ticket
	suite.mockTicketRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(t *models.Ticket) error {
			created = t
			return nil
		}).
		Times(1)

	before := time.Now()
	response, err := suite.ticketService.Create(req, principal)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.TicketPriorityCritical, response.Priority)
	assert.Equal(suite.T(), models.TicketStatusNew, response.Status)
	assert.Equal(suite.T(), principal.UserID, created.SubmittedBy)

	// critical tickets are due one hour after creation
	assert.NotNil(suite.T(), created.SLADueAt)
	assert.WithinDuration(suite.T(), before.Add(time.Hour), *created.SLADueAt, 5*time.Second)
}

// TestCreateTicketDefaultsPriority tests that a missing priority becomes medium
func (suite *TicketServiceTestSuite) TestCreateTicketDefaultsPriority() {
	principal := &auth.Principal{UserID: uuid.New()}
	req := &service.CreateTicketRequest{
		Title:       "Printer jam",
		Description: "Third floor printer is jammed",
	}

	var created *models.Ticket
	suite.mockTicketRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(t *models.Ticket) error {
			created = t
			return nil
		}).
		Times(1)

	before := time.Now()
	response, err := suite.ticketService.Create(req, principal)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TicketPriorityMedium, response.Priority)
	assert.WithinDuration(suite.T(), before.Add(24*time.Hour), *created.SLADueAt, 5*time.Second)
}

// TestCreateTicketValidationError tests that a missing title is rejected
func (suite *TicketServiceTestSuite) TestCreateTicketValidationError() {
	req := &service.CreateTicketRequest{Description: "no title"}

	response, err := suite.ticketService.Create(req, nil)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateTicketAnonymousContactEmail tests the create-or-find submitter
// path for anonymous submissions carrying a contact email
func (suite *TicketServiceTestSuite) TestCreateTicketAnonymousContactEmail() {
	req := &service.CreateTicketRequest{
		Title:       "VPN broken",
		Description: "Cannot connect to VPN",
		AdditionalFields: map[string]interface{}{
			"contact_email": "newperson@example.com",
		},
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("newperson@example.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	var createdUser *models.User
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			u.ID = uuid.New()
			createdUser = u
			return nil
		}).
		Times(1)

	suite.mockUserRepo.EXPECT().
		UpsertRole(gomock.Any(), models.RoleUser).
		Return(nil).
		Times(1)

	suite.mockTicketRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(t *models.Ticket) error {
			assert.Equal(suite.T(), createdUser.ID, t.SubmittedBy)
			return nil
		}).
		Times(1)

	response, err := suite.ticketService.Create(req, nil)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "newperson@example.com", createdUser.Email)
	assert.Equal(suite.T(), "newperson", createdUser.DisplayName)
}

// TestCreateTicketAnonymousFallback tests that anonymous submissions without
// a contact email land on the fallback account
func (suite *TicketServiceTestSuite) TestCreateTicketAnonymousFallback() {
	fallbackID := uuid.New()
	req := &service.CreateTicketRequest{
		Title:       "Broken chair",
		Description: "My chair collapsed",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(fallbackEmail).
		Return(&models.User{BaseModel: models.BaseModel{ID: fallbackID}, Email: fallbackEmail}, nil).
		Times(1)

	suite.mockTicketRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(t *models.Ticket) error {
			assert.Equal(suite.T(), fallbackID, t.SubmittedBy)
			return nil
		}).
		Times(1)

	_, err := suite.ticketService.Create(req, nil)
	assert.NoError(suite.T(), err)
}

// TestUpdateTicketDoesNotTouchSLA tests that a priority change never
// recomputes the SLA due date
func (suite *TicketServiceTestSuite) TestUpdateTicketDoesNotTouchSLA() {
	ticketID := uuid.New()
	originalDue := time.Now().Add(24 * time.Hour)
	existing := &models.Ticket{
		BaseModel:   models.BaseModel{ID: ticketID},
		Title:       "Slow laptop",
		Description: "Laptop takes ten minutes to boot",
		Status:      models.TicketStatusNew,
		Priority:    models.TicketPriorityMedium,
		SLADueAt:    &originalDue,
	}

	suite.mockTicketRepo.EXPECT().GetByID(ticketID).Return(existing, nil).Times(1)
	suite.mockTicketRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(t *models.Ticket) error {
			assert.Equal(suite.T(), models.TicketPriorityCritical, t.Priority)
			assert.Equal(suite.T(), originalDue, *t.SLADueAt)
			return nil
		}).
		Times(1)

	priority := "critical"
	response, err := suite.ticketService.Update(ticketID, &service.UpdateTicketRequest{Priority: &priority})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), originalDue.Unix(), response.SLADueAt.Unix())
}

// TestUpdateTicketNotFound tests updating a missing ticket
func (suite *TicketServiceTestSuite) TestUpdateTicketNotFound() {
	ticketID := uuid.New()
	suite.mockTicketRepo.EXPECT().GetByID(ticketID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	title := "new title"
	response, err := suite.ticketService.Update(ticketID, &service.UpdateTicketRequest{Title: &title})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketNotFound)
}

// TestDeleteTicketWrapsTransactionFailure tests that a cascade failure is
// surfaced as a transaction error
func (suite *TicketServiceTestSuite) TestDeleteTicketWrapsTransactionFailure() {
	ticketID := uuid.New()
	suite.mockTicketRepo.EXPECT().DeleteWithComments(ticketID).Return(assert.AnError).Times(1)

	err := suite.ticketService.Delete(ticketID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsTransaction(err))
}

// TestDeleteTicketNotFound tests deleting a missing ticket
func (suite *TicketServiceTestSuite) TestDeleteTicketNotFound() {
	ticketID := uuid.New()
	suite.mockTicketRepo.EXPECT().DeleteWithComments(ticketID).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.ticketService.Delete(ticketID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketNotFound)
}

// TestGetByIDComputesSLARemaining tests that reads report live SLA state
func (suite *TicketServiceTestSuite) TestGetByIDComputesSLARemaining() {
	ticketID := uuid.New()
	dueAt := time.Now().Add(-2 * time.Hour)
	ticket := &models.Ticket{
		BaseModel: models.BaseModel{ID: ticketID},
		Title:     "Overdue",
		Status:    models.TicketStatusNew,
		Priority:  models.TicketPriorityHigh,
		SLADueAt:  &dueAt,
	}

	suite.mockTicketRepo.EXPECT().GetByID(ticketID).Return(ticket, nil).Times(1)
	suite.mockTicketRepo.EXPECT().LinkedProblem(ticketID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	response, err := suite.ticketService.GetByID(ticketID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.SLA)
	assert.True(suite.T(), response.SLA.Breached)
}

// TestGetByIDIncludesLinkedProblem tests the linked-problem summary on reads
func (suite *TicketServiceTestSuite) TestGetByIDIncludesLinkedProblem() {
	ticketID := uuid.New()
	problemID := uuid.New()
	ticket := &models.Ticket{BaseModel: models.BaseModel{ID: ticketID}, Title: "Linked"}
	problem := &models.Problem{
		BaseModel: models.BaseModel{ID: problemID},
		Title:     "Recurring outage",
		Status:    models.ProblemStatusOpen,
	}

	suite.mockTicketRepo.EXPECT().GetByID(ticketID).Return(ticket, nil).Times(1)
	suite.mockTicketRepo.EXPECT().LinkedProblem(ticketID).Return(problem, nil).Times(1)

	response, err := suite.ticketService.GetByID(ticketID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.LinkedProblem)
	assert.Equal(suite.T(), problemID, response.LinkedProblem.ID)
}

// TestAddCommentRequiresAuth tests that anonymous callers cannot comment
func (suite *TicketServiceTestSuite) TestAddCommentRequiresAuth() {
	comment, err := suite.ticketService.AddComment(uuid.New(), nil, "hello")

	assert.Nil(suite.T(), comment)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestAddCommentEmptyContent tests that empty comment bodies are rejected
func (suite *TicketServiceTestSuite) TestAddCommentEmptyContent() {
	principal := &auth.Principal{UserID: uuid.New()}

	comment, err := suite.ticketService.AddComment(uuid.New(), principal, "")

	assert.Nil(suite.T(), comment)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestLinkCIVerifiesTicket tests that linking checks the ticket exists
func (suite *TicketServiceTestSuite) TestLinkCIVerifiesTicket() {
	ticketID := uuid.New()
	ciID := uuid.New()
	suite.mockTicketRepo.EXPECT().GetByID(ticketID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.ticketService.LinkCI(ticketID, ciID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTicketNotFound)
}

// TestTicketServiceTestSuite runs the test suite
func TestTicketServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TicketServiceTestSuite))
}
