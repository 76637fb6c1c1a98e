package service_test

import (
	"testing"

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

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	userService  *service.UserService
	validator    *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetByIDDefaultsRole tests that a user without a role record reports
// the base user role
func (suite *UserServiceTestSuite) TestGetByIDDefaultsRole() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}, Email: "someone@example.com"}, nil).
		Times(1)

	response, err := suite.userService.GetByID(userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleUser, response.Role)
}

// TestUpdateUserRoleUpsert tests that a role change goes through the role
// side table
func (suite *UserServiceTestSuite) TestUpdateUserRoleUpsert() {
	userID := uuid.New()
	user := &models.User{BaseModel: models.BaseModel{ID: userID}, Email: "tech@example.com"}

	suite.mockUserRepo.EXPECT().GetByID(userID).Return(user, nil).Times(1)
	suite.mockUserRepo.EXPECT().UpsertRole(userID, models.RoleTechnician).Return(nil).Times(1)
	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{
			BaseModel: models.BaseModel{ID: userID},
			Email:     "tech@example.com",
			Role:      &models.UserRole{UserID: userID, Role: models.RoleTechnician},
		}, nil).
		Times(1)

	role := "technician"
	response, err := suite.userService.Update(userID, &service.UpdateUserRequest{Role: &role})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleTechnician, response.Role)
}

// TestUpdateUserUnknownRole tests that bogus roles are rejected before any
// write
func (suite *UserServiceTestSuite) TestUpdateUserUnknownRole() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(&models.User{BaseModel: models.BaseModel{ID: userID}}, nil).
		Times(1)

	role := "superuser"
	response, err := suite.userService.Update(userID, &service.UpdateUserRequest{Role: &role})

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteUserCascade tests the happy path of the cascading delete
func (suite *UserServiceTestSuite) TestDeleteUserCascade() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().DeleteCascade(userID).Return(nil).Times(1)

	assert.NoError(suite.T(), suite.userService.Delete(userID))
}

// TestDeleteUserNotFound tests deleting a missing user
func (suite *UserServiceTestSuite) TestDeleteUserNotFound() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().DeleteCascade(userID).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.userService.Delete(userID)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestDeleteUserWrapsCascadeFailure tests that a mid-cascade failure is
// surfaced as a transaction error
func (suite *UserServiceTestSuite) TestDeleteUserWrapsCascadeFailure() {
	userID := uuid.New()
	suite.mockUserRepo.EXPECT().DeleteCascade(userID).Return(assert.AnError).Times(1)

	err := suite.userService.Delete(userID)
	assert.True(suite.T(), apperrors.IsTransaction(err))
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
