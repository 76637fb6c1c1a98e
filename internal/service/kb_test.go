package service_test

import (
	"testing"

	"servicedesk-backend/internal/database/models"
	"servicedesk-backend/internal/mocks"
	"servicedesk-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// KBServiceTestSuite defines the test suite for KBService
type KBServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockKBRepo *mocks.MockKBRepositoryInterface
	kbService  *service.KBService
}

// SetupTest sets up the test suite
func (suite *KBServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockKBRepo = mocks.NewMockKBRepositoryInterface(suite.ctrl)
	suite.kbService = service.NewKBService(suite.mockKBRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *KBServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetByIDRendersMarkdown tests that reads return rendered HTML alongside
// the markdown source
func (suite *KBServiceTestSuite) TestGetByIDRendersMarkdown() {
	articleID := uuid.New()
	suite.mockKBRepo.EXPECT().
		GetByID(articleID).
		Return(&models.KBArticle{
			BaseModel: models.BaseModel{ID: articleID},
			Title:     "Reset your VPN",
			Content:   "# Steps\n\nRun **the client** again.",
		}, nil).
		Times(1)

	response, err := suite.kbService.GetByID(articleID)

	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), response.HTML, "<h1")
	assert.Contains(suite.T(), response.HTML, "<strong>the client</strong>")
	assert.Equal(suite.T(), "# Steps\n\nRun **the client** again.", response.Content)
}

// TestGetByIDSanitizesHTML tests that script injection in article content is
// stripped from the rendered output
func (suite *KBServiceTestSuite) TestGetByIDSanitizesHTML() {
	articleID := uuid.New()
	suite.mockKBRepo.EXPECT().
		GetByID(articleID).
		Return(&models.KBArticle{
			BaseModel: models.BaseModel{ID: articleID},
			Title:     "Malicious",
			Content:   "hello <script>alert(1)</script> world",
		}, nil).
		Times(1)

	response, err := suite.kbService.GetByID(articleID)

	assert.NoError(suite.T(), err)
	assert.NotContains(suite.T(), response.HTML, "<script>")
	assert.Contains(suite.T(), response.HTML, "hello")
}

// TestKBServiceTestSuite runs the test suite
func TestKBServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KBServiceTestSuite))
}
