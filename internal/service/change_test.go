package service_test

import (
	"testing"

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

// ChangeServiceTestSuite defines the test suite for ChangeService
type ChangeServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockChangeRepo *mocks.MockChangeRepositoryInterface
	changeService  *service.ChangeService
	validator      *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ChangeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockChangeRepo = mocks.NewMockChangeRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.changeService = service.NewChangeService(suite.mockChangeRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ChangeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateChangeRequiresAuth tests that anonymous callers cannot create
// changes
func (suite *ChangeServiceTestSuite) TestCreateChangeRequiresAuth() {
	req := &service.CreateChangeRequest{
		Title:       "Upgrade database",
		Description: "Move to postgres 16",
		Type:        "normal",
	}

	response, err := suite.changeService.Create(req, nil)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthentication(err))
}

// TestCreateChangeForcesRequestedStatus tests that creation always enters
// the workflow as requested with the caller stamped as requester
func (suite *ChangeServiceTestSuite) TestCreateChangeForcesRequestedStatus() {
	principal := &auth.Principal{UserID: uuid.New(), Role: models.RoleTechnician}
	req := &service.CreateChangeRequest{
		Title:       "Upgrade database",
		Description: "Move to postgres 16",
		Type:        "normal",
	}

	suite.mockChangeRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.Change) error {
			assert.Equal(suite.T(), models.ChangeStatusRequested, c.Status)
			assert.NotNil(suite.T(), c.RequestedBy)
			assert.Equal(suite.T(), principal.UserID, *c.RequestedBy)
			return nil
		}).
		Times(1)

	response, err := suite.changeService.Create(req, principal)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChangeStatusRequested, response.Status)
}

// TestCreateChangeInvalidType tests type validation at creation
func (suite *ChangeServiceTestSuite) TestCreateChangeInvalidType() {
	principal := &auth.Principal{UserID: uuid.New()}
	req := &service.CreateChangeRequest{
		Title:       "Upgrade database",
		Description: "Move to postgres 16",
		Type:        "urgent",
	}

	response, err := suite.changeService.Create(req, principal)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateChangeLegalTransition tests that a forward workflow step is
// accepted
func (suite *ChangeServiceTestSuite) TestUpdateChangeLegalTransition() {
	changeID := uuid.New()
	existing := &models.Change{
		BaseModel: models.BaseModel{ID: changeID},
		Title:     "Upgrade database",
		Type:      models.ChangeTypeNormal,
		Status:    models.ChangeStatusApproved,
	}

	suite.mockChangeRepo.EXPECT().GetByID(changeID).Return(existing, nil).Times(1)
	suite.mockChangeRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	status := "in-progress"
	response, err := suite.changeService.Update(changeID, &service.UpdateChangeRequest{Status: &status})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChangeStatusInProgress, response.Status)
}

// TestUpdateChangeIllegalTransition tests that skipping workflow states is
// rejected
func (suite *ChangeServiceTestSuite) TestUpdateChangeIllegalTransition() {
	changeID := uuid.New()
	existing := &models.Change{
		BaseModel: models.BaseModel{ID: changeID},
		Status:    models.ChangeStatusRequested,
	}

	suite.mockChangeRepo.EXPECT().GetByID(changeID).Return(existing, nil).Times(1)

	status := "completed"
	response, err := suite.changeService.Update(changeID, &service.UpdateChangeRequest{Status: &status})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateChangeTerminalState tests that terminal changes cannot move
func (suite *ChangeServiceTestSuite) TestUpdateChangeTerminalState() {
	changeID := uuid.New()
	existing := &models.Change{
		BaseModel: models.BaseModel{ID: changeID},
		Status:    models.ChangeStatusCancelled,
	}

	suite.mockChangeRepo.EXPECT().GetByID(changeID).Return(existing, nil).Times(1)

	status := "requested"
	_, err := suite.changeService.Update(changeID, &service.UpdateChangeRequest{Status: &status})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateChangeCancelFromAnywhere tests the escape hatch to cancelled
func (suite *ChangeServiceTestSuite) TestUpdateChangeCancelFromAnywhere() {
	changeID := uuid.New()
	existing := &models.Change{
		BaseModel: models.BaseModel{ID: changeID},
		Status:    models.ChangeStatusInProgress,
	}

	suite.mockChangeRepo.EXPECT().GetByID(changeID).Return(existing, nil).Times(1)
	suite.mockChangeRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	status := "cancelled"
	response, err := suite.changeService.Update(changeID, &service.UpdateChangeRequest{Status: &status})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChangeStatusCancelled, response.Status)
}

// TestApproveSetsStatusAndApproverTogether tests that approval writes the
// status and approver in a single update
func (suite *ChangeServiceTestSuite) TestApproveSetsStatusAndApproverTogether() {
	changeID := uuid.New()
	principal := &auth.Principal{UserID: uuid.New(), Role: models.RoleAdmin}
	existing := &models.Change{
		BaseModel: models.BaseModel{ID: changeID},
		Status:    models.ChangeStatusRequested,
	}

	suite.mockChangeRepo.EXPECT().GetByID(changeID).Return(existing, nil).Times(1)
	suite.mockChangeRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(c *models.Change) error {
			assert.Equal(suite.T(), models.ChangeStatusApproved, c.Status)
			assert.NotNil(suite.T(), c.ApprovedBy)
			assert.Equal(suite.T(), principal.UserID, *c.ApprovedBy)
			return nil
		}).
		Times(1)

	response, err := suite.changeService.Approve(changeID, principal)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ChangeStatusApproved, response.Status)
}

// TestApproveRejectsWrongState tests approval from a non-approvable state
func (suite *ChangeServiceTestSuite) TestApproveRejectsWrongState() {
	changeID := uuid.New()
	principal := &auth.Principal{UserID: uuid.New()}
	existing := &models.Change{
		BaseModel: models.BaseModel{ID: changeID},
		Status:    models.ChangeStatusCompleted,
	}

	suite.mockChangeRepo.EXPECT().GetByID(changeID).Return(existing, nil).Times(1)

	response, err := suite.changeService.Approve(changeID, principal)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestApproveNotFound tests approving a missing change
func (suite *ChangeServiceTestSuite) TestApproveNotFound() {
	changeID := uuid.New()
	suite.mockChangeRepo.EXPECT().GetByID(changeID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.changeService.Approve(changeID, &auth.Principal{UserID: uuid.New()})
	assert.ErrorIs(suite.T(), err, apperrors.ErrChangeNotFound)
}

// TestChangeServiceTestSuite runs the test suite
func TestChangeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChangeServiceTestSuite))
}
