package repository

import (
	"testing"

	"servicedesk-backend/internal/database/models"
	"servicedesk-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProblemRepositoryTestSuite tests the ProblemRepository
type ProblemRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProblemRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProblemRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProblemRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProblemRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProblemRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProblemRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProblemRepositoryTestSuite) createProblem() *models.Problem {
	problem := suite.factories.Problem.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(problem).Error)
	return problem
}

func (suite *ProblemRepositoryTestSuite) createTicketWithStatus(status models.TicketStatus) *models.Ticket {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	ticket := suite.factories.Ticket.WithStatus(user.ID, status)
	suite.NoError(suite.baseTestSuite.DB.Create(ticket).Error)
	return ticket
}

// TestGetAllTicketCounts tests that list rows carry linked-ticket counts
func (suite *ProblemRepositoryTestSuite) TestGetAllTicketCounts() {
	problem := suite.createProblem()
	other := suite.createProblem()
	t1 := suite.createTicketWithStatus(models.TicketStatusNew)
	t2 := suite.createTicketWithStatus(models.TicketStatusInProgress)
	suite.NoError(suite.repo.LinkTicket(problem.ID, t1.ID))
	suite.NoError(suite.repo.LinkTicket(problem.ID, t2.ID))

	rows, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(rows, 2)
	counts := map[uuid.UUID]int64{}
	for _, row := range rows {
		counts[row.ID] = row.TicketCount
	}
	suite.Equal(int64(2), counts[problem.ID])
	suite.Equal(int64(0), counts[other.ID])
}

// TestLinkTicketIdempotent tests that double-linking leaves one join row
func (suite *ProblemRepositoryTestSuite) TestLinkTicketIdempotent() {
	problem := suite.createProblem()
	ticket := suite.createTicketWithStatus(models.TicketStatusNew)

	suite.NoError(suite.repo.LinkTicket(problem.ID, ticket.ID))
	suite.NoError(suite.repo.LinkTicket(problem.ID, ticket.ID))

	var count int64
	suite.baseTestSuite.DB.Model(&models.ProblemTicket{}).
		Where("problem_id = ?", problem.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestResolveCascade tests that resolution flows to open linked tickets while
// closed tickets stay closed
func (suite *ProblemRepositoryTestSuite) TestResolveCascade() {
	problem := suite.createProblem()
	open := suite.createTicketWithStatus(models.TicketStatusInProgress)
	closed := suite.createTicketWithStatus(models.TicketStatusClosed)
	unrelated := suite.createTicketWithStatus(models.TicketStatusNew)
	suite.NoError(suite.repo.LinkTicket(problem.ID, open.ID))
	suite.NoError(suite.repo.LinkTicket(problem.ID, closed.ID))

	resolved, err := suite.repo.ResolveCascade(problem.ID, "Replaced the core switch")

	suite.NoError(err)
	suite.Equal(models.ProblemStatusResolved, resolved.Status)
	suite.Equal("Replaced the core switch", resolved.Resolution)

	var reloaded models.Ticket
	suite.NoError(suite.baseTestSuite.DB.First(&reloaded, "id = ?", open.ID).Error)
	suite.Equal(models.TicketStatusResolved, reloaded.Status)

	suite.NoError(suite.baseTestSuite.DB.First(&reloaded, "id = ?", closed.ID).Error)
	suite.Equal(models.TicketStatusClosed, reloaded.Status)

	suite.NoError(suite.baseTestSuite.DB.First(&reloaded, "id = ?", unrelated.ID).Error)
	suite.Equal(models.TicketStatusNew, reloaded.Status)
}

// TestResolveCascadeNotFound tests resolving a missing problem
func (suite *ProblemRepositoryTestSuite) TestResolveCascadeNotFound() {
	resolved, err := suite.repo.ResolveCascade(uuid.New(), "whatever")

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(resolved)
}

// TestDeleteRemovesLinks tests that deleting a problem leaves tickets intact
func (suite *ProblemRepositoryTestSuite) TestDeleteRemovesLinks() {
	problem := suite.createProblem()
	ticket := suite.createTicketWithStatus(models.TicketStatusNew)
	suite.NoError(suite.repo.LinkTicket(problem.ID, ticket.ID))
	suite.NoError(suite.repo.UnlinkTicket(problem.ID, ticket.ID))

	suite.NoError(suite.repo.Delete(problem.ID))

	var ticketCount int64
	suite.baseTestSuite.DB.Model(&models.Ticket{}).Where("id = ?", ticket.ID).Count(&ticketCount)
	suite.Equal(int64(1), ticketCount)
}

// TestProblemRepositoryTestSuite runs the test suite
func TestProblemRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProblemRepositoryTestSuite))
}
