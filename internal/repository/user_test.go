package repository

import (
	"testing"

	"servicedesk-backend/internal/database/models"
	"servicedesk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *UserRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

// TestGetRoleDefaultsToUser tests that a missing role record reads as user
func (suite *UserRepositoryTestSuite) TestGetRoleDefaultsToUser() {
	user := suite.createUser()

	role, err := suite.repo.GetRole(user.ID)

	suite.NoError(err)
	suite.Equal(models.RoleUser, role)
}

// TestUpsertRoleCreatesThenUpdates tests both halves of the upsert
func (suite *UserRepositoryTestSuite) TestUpsertRoleCreatesThenUpdates() {
	user := suite.createUser()

	suite.NoError(suite.repo.UpsertRole(user.ID, models.RoleTechnician))
	role, err := suite.repo.GetRole(user.ID)
	suite.NoError(err)
	suite.Equal(models.RoleTechnician, role)

	suite.NoError(suite.repo.UpsertRole(user.ID, models.RoleAdmin))
	role, err = suite.repo.GetRole(user.ID)
	suite.NoError(err)
	suite.Equal(models.RoleAdmin, role)

	var count int64
	suite.baseTestSuite.DB.Model(&models.UserRole{}).
		Where("user_id = ?", user.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestSetPassword tests storing a hash for an existing user
func (suite *UserRepositoryTestSuite) TestSetPassword() {
	user := suite.createUser()

	suite.NoError(suite.repo.SetPassword(user.ID, "$2a$10$fakehash"))

	reloaded, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.NotNil(reloaded.Password)
	suite.Equal("$2a$10$fakehash", *reloaded.Password)
}

// TestDeleteCascade tests that a user takes their footprint with them while
// tickets merely assigned to them survive unassigned
func (suite *UserRepositoryTestSuite) TestDeleteCascade() {
	user := suite.createUser()
	other := suite.createUser()

	suite.NoError(suite.repo.UpsertRole(user.ID, models.RoleTechnician))

	team := suite.factories.Team.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(&models.TeamMember{
		TeamID: team.ID,
		UserID: user.ID,
		Role:   "member",
	}).Error)

	submitted := suite.factories.Ticket.Create(user.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(submitted).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(&models.Comment{
		TicketID: submitted.ID,
		UserID:   other.ID,
		Content:  "looking into it",
	}).Error)

	assigned := suite.factories.Ticket.Create(other.ID)
	assigned.AssignedTo = &user.ID
	suite.NoError(suite.baseTestSuite.DB.Create(assigned).Error)

	suite.NoError(suite.repo.DeleteCascade(user.ID))

	var count int64
	suite.baseTestSuite.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	suite.Equal(int64(0), count)
	suite.baseTestSuite.DB.Model(&models.Ticket{}).Where("id = ?", submitted.ID).Count(&count)
	suite.Equal(int64(0), count)
	suite.baseTestSuite.DB.Model(&models.Comment{}).Where("ticket_id = ?", submitted.ID).Count(&count)
	suite.Equal(int64(0), count)
	suite.baseTestSuite.DB.Model(&models.TeamMember{}).Where("user_id = ?", user.ID).Count(&count)
	suite.Equal(int64(0), count)
	suite.baseTestSuite.DB.Model(&models.UserRole{}).Where("user_id = ?", user.ID).Count(&count)
	suite.Equal(int64(0), count)

	var reloaded models.Ticket
	suite.NoError(suite.baseTestSuite.DB.First(&reloaded, "id = ?", assigned.ID).Error)
	suite.Nil(reloaded.AssignedTo)
}

// TestDeleteCascadeNotFound tests deleting a missing user
func (suite *UserRepositoryTestSuite) TestDeleteCascadeNotFound() {
	err := suite.repo.DeleteCascade(uuid.New())
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByEmail tests lookup by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("findme@example.com")
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)

	retrieved, err := suite.repo.GetByEmail("findme@example.com")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
