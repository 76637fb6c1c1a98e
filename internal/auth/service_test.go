package auth_test

import (
	"testing"

	"servicedesk-backend/internal/auth"
	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// AuthServiceTestSuite defines the test suite for the auth Service
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	authService  *auth.Service
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewService(suite.mockUserRepo, testSecret, 60)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func hashOf(password string) *string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s := string(hash)
	return &s
}

// TestLoginSuccess tests login with a correct password
func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	userID := uuid.New()
	user := &models.User{
		BaseModel:   models.BaseModel{ID: userID},
		Email:       "agent@example.com",
		DisplayName: "Agent",
		Password:    hashOf("s3cret"),
	}

	suite.mockUserRepo.EXPECT().GetByEmail("agent@example.com").Return(user, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetRole(userID).Return(models.RoleTechnician, nil).Times(1)

	resp, err := suite.authService.Login(&auth.LoginRequest{Email: "agent@example.com", Password: "s3cret"})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.Token)
	assert.Equal(suite.T(), models.RoleTechnician, resp.Role)

	// the issued token resolves back to the same identity
	principal, err := suite.authService.ValidateToken(resp.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), userID, principal.UserID)
	assert.Equal(suite.T(), "agent@example.com", principal.Email)
}

// TestLoginWrongPassword tests login with an incorrect password
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "agent@example.com",
		Password:  hashOf("s3cret"),
	}
	suite.mockUserRepo.EXPECT().GetByEmail("agent@example.com").Return(user, nil).Times(1)

	resp, err := suite.authService.Login(&auth.LoginRequest{Email: "agent@example.com", Password: "wrong"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginMigratesNullPassword tests that a legacy account without a hash
// stores the supplied password on first login
func (suite *AuthServiceTestSuite) TestLoginMigratesNullPassword() {
	userID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     "legacy@example.com",
	}

	suite.mockUserRepo.EXPECT().GetByEmail("legacy@example.com").Return(user, nil).Times(1)
	suite.mockUserRepo.EXPECT().
		SetPassword(userID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, hash string) error {
			assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(hash), []byte("first-password")))
			return nil
		}).
		Times(1)
	suite.mockUserRepo.EXPECT().GetRole(userID).Return(models.RoleUser, nil).Times(1)

	resp, err := suite.authService.Login(&auth.LoginRequest{Email: "legacy@example.com", Password: "first-password"})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.Token)
}

// TestLoginSignsUpUnknownEmail tests the integrated sign-up path
func (suite *AuthServiceTestSuite) TestLoginSignsUpUnknownEmail() {
	suite.mockUserRepo.EXPECT().GetByEmail("new@example.com").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			u.ID = uuid.New()
			assert.Equal(suite.T(), "new@example.com", u.Email)
			assert.Equal(suite.T(), "new", u.DisplayName)
			assert.NotNil(suite.T(), u.Password)
			return nil
		}).
		Times(1)
	suite.mockUserRepo.EXPECT().UpsertRole(gomock.Any(), models.RoleUser).Return(nil).Times(1)

	resp, err := suite.authService.Login(&auth.LoginRequest{Email: "New@Example.com", Password: "welcome"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleUser, resp.Role)
	assert.Equal(suite.T(), "new@example.com", resp.Email)
}

// TestValidateTokenRejectsGarbage tests that malformed tokens fail
func (suite *AuthServiceTestSuite) TestValidateTokenRejectsGarbage() {
	principal, err := suite.authService.ValidateToken("not-a-token")

	assert.Nil(suite.T(), principal)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

// TestValidateTokenRejectsWrongSecret tests that tokens signed elsewhere fail
func (suite *AuthServiceTestSuite) TestValidateTokenRejectsWrongSecret() {
	other := auth.NewService(suite.mockUserRepo, "other-secret", 60)
	userID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     "agent@example.com",
		Password:  hashOf("s3cret"),
	}
	suite.mockUserRepo.EXPECT().GetByEmail("agent@example.com").Return(user, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetRole(userID).Return(models.RoleUser, nil).Times(1)

	resp, err := other.Login(&auth.LoginRequest{Email: "agent@example.com", Password: "s3cret"})
	assert.NoError(suite.T(), err)

	principal, err := suite.authService.ValidateToken(resp.Token)
	assert.Nil(suite.T(), principal)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

// TestResolvePrincipalRefreshesRole tests that the role comes from the
// database, not the token
func (suite *AuthServiceTestSuite) TestResolvePrincipalRefreshesRole() {
	userID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Email:     "agent@example.com",
		Password:  hashOf("s3cret"),
	}

	suite.mockUserRepo.EXPECT().GetByEmail("agent@example.com").Return(user, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetRole(userID).Return(models.RoleUser, nil).Times(1)

	resp, err := suite.authService.Login(&auth.LoginRequest{Email: "agent@example.com", Password: "s3cret"})
	assert.NoError(suite.T(), err)

	// role was promoted after the token was issued
	suite.mockUserRepo.EXPECT().GetByID(userID).Return(user, nil).Times(1)
	suite.mockUserRepo.EXPECT().GetRole(userID).Return(models.RoleAdmin, nil).Times(1)

	principal, err := suite.authService.ResolvePrincipal(resp.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleAdmin, principal.Role)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
