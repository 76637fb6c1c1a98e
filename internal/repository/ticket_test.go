package repository

import (
	"testing"
	"time"

	"servicedesk-backend/internal/database/models"
	"servicedesk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TicketRepositoryTestSuite tests the TicketRepository
type TicketRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TicketRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TicketRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTicketRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TicketRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TicketRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TicketRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TicketRepositoryTestSuite) createUser() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user
}

func (suite *TicketRepositoryTestSuite) createTicket(submittedBy uuid.UUID) *models.Ticket {
	ticket := suite.factories.Ticket.Create(submittedBy)
	suite.NoError(suite.baseTestSuite.DB.Create(ticket).Error)
	return ticket
}

func (suite *TicketRepositoryTestSuite) createCI() *models.ConfigurationItem {
	ci := suite.factories.CI.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(ci).Error)
	return ci
}

// TestGetByID tests retrieving a ticket by ID
func (suite *TicketRepositoryTestSuite) TestGetByID() {
	user := suite.createUser()
	ticket := suite.createTicket(user.ID)

	retrieved, err := suite.repo.GetByID(ticket.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(ticket.ID, retrieved.ID)
	suite.Equal(ticket.Title, retrieved.Title)
	suite.Equal(models.TicketStatusNew, retrieved.Status)
	suite.NotNil(retrieved.SLADueAt)
}

// TestGetByIDNotFound tests retrieving a non-existent ticket
func (suite *TicketRepositoryTestSuite) TestGetByIDNotFound() {
	ticket, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(ticket)
}

// TestGetAllNewestFirst tests ordering and total count
func (suite *TicketRepositoryTestSuite) TestGetAllNewestFirst() {
	user := suite.createUser()
	first := suite.createTicket(user.ID)
	second := suite.factories.Ticket.Create(user.ID)
	second.Title = "Second ticket"
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	suite.NoError(suite.baseTestSuite.DB.Create(second).Error)

	tickets, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(tickets, 2)
	suite.Equal("Second ticket", tickets[0].Title)
}

// TestGetAllPagination tests that the total counts beyond the page
func (suite *TicketRepositoryTestSuite) TestGetAllPagination() {
	user := suite.createUser()
	for i := 0; i < 5; i++ {
		suite.createTicket(user.ID)
	}

	tickets, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(5), total)
	suite.Len(tickets, 2)
}

// TestLinkCIIdempotent tests that linking the same CI twice leaves one row
func (suite *TicketRepositoryTestSuite) TestLinkCIIdempotent() {
	user := suite.createUser()
	ticket := suite.createTicket(user.ID)
	ci := suite.createCI()

	suite.NoError(suite.repo.LinkCI(ticket.ID, ci.ID))
	suite.NoError(suite.repo.LinkCI(ticket.ID, ci.ID))

	var count int64
	suite.baseTestSuite.DB.Model(&models.TicketCI{}).
		Where("ticket_id = ?", ticket.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestUnlinkCI tests removing a link and that absent links no-op
func (suite *TicketRepositoryTestSuite) TestUnlinkCI() {
	user := suite.createUser()
	ticket := suite.createTicket(user.ID)
	ci := suite.createCI()
	suite.NoError(suite.repo.LinkCI(ticket.ID, ci.ID))

	suite.NoError(suite.repo.UnlinkCI(ticket.ID, ci.ID))
	suite.NoError(suite.repo.UnlinkCI(ticket.ID, ci.ID))

	var count int64
	suite.baseTestSuite.DB.Model(&models.TicketCI{}).
		Where("ticket_id = ?", ticket.ID).Count(&count)
	suite.Equal(int64(0), count)
}

// TestDeleteWithComments tests that comments go down with their ticket
func (suite *TicketRepositoryTestSuite) TestDeleteWithComments() {
	user := suite.createUser()
	ticket := suite.createTicket(user.ID)
	comment := &models.Comment{
		TicketID: ticket.ID,
		UserID:   user.ID,
		Content:  "restarted the spooler",
	}
	suite.NoError(suite.baseTestSuite.DB.Create(comment).Error)

	suite.NoError(suite.repo.DeleteWithComments(ticket.ID))

	var ticketCount, commentCount int64
	suite.baseTestSuite.DB.Model(&models.Ticket{}).Where("id = ?", ticket.ID).Count(&ticketCount)
	suite.baseTestSuite.DB.Model(&models.Comment{}).Where("ticket_id = ?", ticket.ID).Count(&commentCount)
	suite.Equal(int64(0), ticketCount)
	suite.Equal(int64(0), commentCount)
}

// TestDeleteWithCommentsNotFound tests deleting a missing ticket
func (suite *TicketRepositoryTestSuite) TestDeleteWithCommentsNotFound() {
	err := suite.repo.DeleteWithComments(uuid.New())
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestLinkedProblem tests resolving the problem a ticket hangs off
func (suite *TicketRepositoryTestSuite) TestLinkedProblem() {
	user := suite.createUser()
	ticket := suite.createTicket(user.ID)
	problem := suite.factories.Problem.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(problem).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(&models.ProblemTicket{
		ProblemID: problem.ID,
		TicketID:  ticket.ID,
	}).Error)

	linked, err := suite.repo.LinkedProblem(ticket.ID)

	suite.NoError(err)
	suite.Equal(problem.ID, linked.ID)
}

// TestLinkedProblemNone tests a ticket with no problem link
func (suite *TicketRepositoryTestSuite) TestLinkedProblemNone() {
	user := suite.createUser()
	ticket := suite.createTicket(user.ID)

	linked, err := suite.repo.LinkedProblem(ticket.ID)

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(linked)
}

// TestTicketRepositoryTestSuite runs the test suite
func TestTicketRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TicketRepositoryTestSuite))
}
