package service_test

import (
	"testing"

	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/mocks"
	"servicedesk-backend/internal/repository"
	"servicedesk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProblemServiceTestSuite defines the test suite for ProblemService
type ProblemServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProblemRepo *mocks.MockProblemRepositoryInterface
	problemService  *service.ProblemService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ProblemServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProblemRepo = mocks.NewMockProblemRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.problemService = service.NewProblemService(suite.mockProblemRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ProblemServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateProblem tests that new problems open in the open state
func (suite *ProblemServiceTestSuite) TestCreateProblem() {
	req := &service.CreateProblemRequest{
		Title:       "Recurring email outage",
		Description: "Mail server drops connections every morning",
	}

	suite.mockProblemRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(p *models.Problem) error {
			assert.Equal(suite.T(), models.ProblemStatusOpen, p.Status)
			return nil
		}).
		Times(1)

	response, err := suite.problemService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ProblemStatusOpen, response.Status)
}

// TestCreateProblemValidationError tests required-field validation
func (suite *ProblemServiceTestSuite) TestCreateProblemValidationError() {
	response, err := suite.problemService.Create(&service.CreateProblemRequest{Title: "no description"})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetAllIncludesTicketCounts tests the list view carries link counts
func (suite *ProblemServiceTestSuite) TestGetAllIncludesTicketCounts() {
	rows := []repository.ProblemWithTicketCount{
		{Problem: models.Problem{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "A", Status: models.ProblemStatusOpen}, TicketCount: 3},
		{Problem: models.Problem{BaseModel: models.BaseModel{ID: uuid.New()}, Title: "B", Status: models.ProblemStatusResolved}, TicketCount: 0},
	}
	suite.mockProblemRepo.EXPECT().GetAll().Return(rows, nil).Times(1)

	responses, err := suite.problemService.GetAll()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
	assert.Equal(suite.T(), int64(3), responses[0].TicketCount)
	assert.Equal(suite.T(), int64(0), responses[1].TicketCount)
}

// TestUpdateProblemInvalidStatus tests that unknown statuses are rejected
func (suite *ProblemServiceTestSuite) TestUpdateProblemInvalidStatus() {
	problemID := uuid.New()
	suite.mockProblemRepo.EXPECT().
		GetByID(problemID).
		Return(&models.Problem{BaseModel: models.BaseModel{ID: problemID}, Status: models.ProblemStatusOpen}, nil).
		Times(1)

	status := "bogus"
	response, err := suite.problemService.Update(problemID, &service.UpdateProblemRequest{Status: &status})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestResolveUsesDefaultResolution tests that empty resolution text falls
// back to the cascade default
func (suite *ProblemServiceTestSuite) TestResolveUsesDefaultResolution() {
	problemID := uuid.New()
	resolved := &models.Problem{
		BaseModel:  models.BaseModel{ID: problemID},
		Title:      "Recurring outage",
		Status:     models.ProblemStatusResolved,
		Resolution: service.DefaultCascadeResolution,
	}

	suite.mockProblemRepo.EXPECT().
		ResolveCascade(problemID, service.DefaultCascadeResolution).
		Return(resolved, nil).
		Times(1)

	response, err := suite.problemService.Resolve(problemID, "")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ProblemStatusResolved, response.Status)
	assert.Equal(suite.T(), service.DefaultCascadeResolution, response.Resolution)
}

// TestResolvePassesCallerResolution tests that supplied text is kept
func (suite *ProblemServiceTestSuite) TestResolvePassesCallerResolution() {
	problemID := uuid.New()
	suite.mockProblemRepo.EXPECT().
		ResolveCascade(problemID, "Replaced faulty switch").
		Return(&models.Problem{BaseModel: models.BaseModel{ID: problemID}, Status: models.ProblemStatusResolved, Resolution: "Replaced faulty switch"}, nil).
		Times(1)

	response, err := suite.problemService.Resolve(problemID, "Replaced faulty switch")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Replaced faulty switch", response.Resolution)
}

// TestResolveNotFound tests resolving a missing problem
func (suite *ProblemServiceTestSuite) TestResolveNotFound() {
	problemID := uuid.New()
	suite.mockProblemRepo.EXPECT().
		ResolveCascade(problemID, service.DefaultCascadeResolution).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.problemService.Resolve(problemID, "")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProblemNotFound)
}

// TestResolveWrapsCascadeFailure tests that a partial cascade failure is
// surfaced as a transaction error after rollback
func (suite *ProblemServiceTestSuite) TestResolveWrapsCascadeFailure() {
	problemID := uuid.New()
	suite.mockProblemRepo.EXPECT().
		ResolveCascade(problemID, service.DefaultCascadeResolution).
		Return(nil, assert.AnError).
		Times(1)

	response, err := suite.problemService.Resolve(problemID, "")

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsTransaction(err))
}

// TestLinkTicketVerifiesProblem tests that linking checks the problem exists
func (suite *ProblemServiceTestSuite) TestLinkTicketVerifiesProblem() {
	problemID := uuid.New()
	suite.mockProblemRepo.EXPECT().GetByID(problemID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.problemService.LinkTicket(problemID, uuid.New())
	assert.ErrorIs(suite.T(), err, apperrors.ErrProblemNotFound)
}

// TestDeleteProblemUnconditional tests that delete succeeds with links in place
func (suite *ProblemServiceTestSuite) TestDeleteProblemUnconditional() {
	problemID := uuid.New()
	suite.mockProblemRepo.EXPECT().Delete(problemID).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.problemService.Delete(problemID))
}

// TestProblemServiceTestSuite runs the test suite
func TestProblemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProblemServiceTestSuite))
}
