package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicedesk-backend/internal/api/handlers"
	"servicedesk-backend/internal/database/models"
	apperrors "servicedesk-backend/internal/errors"
	"servicedesk-backend/internal/mocks"
	"servicedesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TicketHandlerTestSuite defines the test suite for TicketHandler
type TicketHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTicketSvc *mocks.MockTicketServiceInterface
	handler       *handlers.TicketHandler
	router        *gin.Engine
}

func (suite *TicketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTicketSvc = mocks.NewMockTicketServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTicketHandler(suite.mockTicketSvc)

	suite.router = gin.New()
	suite.router.POST("/tickets", suite.handler.Create)
	suite.router.GET("/tickets", suite.handler.GetAll)
	suite.router.GET("/tickets/:id", suite.handler.GetByID)
	suite.router.DELETE("/tickets/:id", suite.handler.Delete)
	suite.router.POST("/tickets/:id/comments", suite.handler.AddComment)
	suite.router.POST("/tickets/:id/cis/:ciId", suite.handler.LinkCI)
}

func (suite *TicketHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TicketHandlerTestSuite) TestCreateTicket_Success() {
	ticketID := uuid.New()
	suite.mockTicketSvc.EXPECT().
		Create(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(req *service.CreateTicketRequest, _ interface{}) (*service.TicketResponse, error) {
			assert.Equal(suite.T(), "Printer jams", req.Title)
			return &service.TicketResponse{
				ID:       ticketID,
				Title:    req.Title,
				Status:   models.TicketStatusNew,
				Priority: models.TicketPriorityMedium,
			}, nil
		})

	body := `{"title":"Printer jams","description":"Jams on duplex jobs"}`
	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.TicketResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), ticketID, got.ID)
	assert.Equal(suite.T(), models.TicketStatusNew, got.Status)
}

func (suite *TicketHandlerTestSuite) TestCreateTicket_ValidationError() {
	suite.mockTicketSvc.EXPECT().
		Create(gomock.Any(), gomock.Nil()).
		Return(nil, apperrors.NewValidationError("description", "required"))

	body := `{"title":"no description"}`
	req := httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *TicketHandlerTestSuite) TestGetAll_DefaultPagination() {
	resp := &service.TicketListResponse{
		Tickets:  []service.TicketResponse{{ID: uuid.New(), Title: "One"}},
		Total:    1,
		Page:     1,
		PageSize: 50,
	}
	suite.mockTicketSvc.EXPECT().GetAll(1, 50).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.TicketListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Tickets, 1)
}

func (suite *TicketHandlerTestSuite) TestGetByID_NotFound() {
	ticketID := uuid.New()
	suite.mockTicketSvc.EXPECT().GetByID(ticketID).Return(nil, apperrors.ErrTicketNotFound)

	req := httptest.NewRequest(http.MethodGet, "/tickets/"+ticketID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *TicketHandlerTestSuite) TestGetByID_InvalidUUID() {
	req := httptest.NewRequest(http.MethodGet, "/tickets/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid id")
}

func (suite *TicketHandlerTestSuite) TestDelete_Success() {
	ticketID := uuid.New()
	suite.mockTicketSvc.EXPECT().Delete(ticketID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/tickets/"+ticketID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *TicketHandlerTestSuite) TestAddComment_Unauthenticated() {
	ticketID := uuid.New()
	suite.mockTicketSvc.EXPECT().
		AddComment(ticketID, gomock.Nil(), "first look").
		Return(nil, apperrors.NewAuthenticationError("authentication required"))

	body := `{"content":"first look"}`
	req := httptest.NewRequest(http.MethodPost, "/tickets/"+ticketID.String()+"/comments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *TicketHandlerTestSuite) TestLinkCI_Success() {
	ticketID := uuid.New()
	ciID := uuid.New()
	suite.mockTicketSvc.EXPECT().LinkCI(ticketID, ciID).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/tickets/"+ticketID.String()+"/cis/"+ciID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestTicketHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TicketHandlerTestSuite))
}
