package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamecenter-backend/internal/api/handlers"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/mocks"
	"gamecenter-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GameMasterHandlerTestSuite defines the test suite for GameMasterHandler
type GameMasterHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockGMSv *mocks.MockGameMasterServiceInterface
	handler  *handlers.GameMasterHandler
	router   *gin.Engine
}

func (suite *GameMasterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGMSv = mocks.NewMockGameMasterServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGameMasterHandler(suite.mockGMSv)

	suite.router = gin.New()
	suite.router.POST("/game-masters", suite.handler.CreateGameMaster)
	suite.router.GET("/game-masters", suite.handler.ListGameMasters)
	suite.router.GET("/game-masters/:id", suite.handler.GetGameMaster)
	suite.router.PUT("/game-masters/:id", suite.handler.UpdateGameMaster)
	suite.router.DELETE("/game-masters/:id", suite.handler.DeactivateGameMaster)
}

func (suite *GameMasterHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GameMasterHandlerTestSuite) TestCreateGameMaster_Success() {
	suite.mockGMSv.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateGameMasterRequest) (*service.GameMasterResponse, error) {
			assert.Equal(suite.T(), "lea.fontaine@gamecenter.local", req.Email)
			return &service.GameMasterResponse{
				ID:       uuid.New(),
				FullName: "Lea Fontaine",
				Email:    req.Email,
				IsActive: true,
			}, nil
		})

	payload, _ := json.Marshal(map[string]interface{}{
		"first_name": "Lea",
		"last_name":  "Fontaine",
		"email":      "lea.fontaine@gamecenter.local",
		"password":   "s3cret-enough",
	})
	req := httptest.NewRequest(http.MethodPost, "/game-masters", jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.GameMasterResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "Lea Fontaine", got.FullName)
}

func (suite *GameMasterHandlerTestSuite) TestCreateGameMaster_DuplicateEmail() {
	suite.mockGMSv.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrGameMasterExists)

	payload, _ := json.Marshal(map[string]interface{}{
		"first_name": "Lea",
		"last_name":  "Fontaine",
		"email":      "lea.fontaine@gamecenter.local",
		"password":   "s3cret-enough",
	})
	req := httptest.NewRequest(http.MethodPost, "/game-masters", jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *GameMasterHandlerTestSuite) TestGetGameMaster_NotFound() {
	gmID := uuid.New()
	suite.mockGMSv.EXPECT().GetByID(gmID).Return(nil, apperrors.ErrGameMasterNotFound)

	req := httptest.NewRequest(http.MethodGet, "/game-masters/"+gmID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *GameMasterHandlerTestSuite) TestListGameMasters_ActiveFilter() {
	suite.mockGMSv.EXPECT().
		List(true, 1, 50).
		Return(&service.GameMasterListResponse{
			GameMasters: []service.GameMasterResponse{},
			Page:        1,
			PageSize:    50,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/game-masters?active=true", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *GameMasterHandlerTestSuite) TestListGameMasters_Default() {
	suite.mockGMSv.EXPECT().
		List(false, 1, 50).
		Return(&service.GameMasterListResponse{
			GameMasters: []service.GameMasterResponse{},
			Page:        1,
			PageSize:    50,
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/game-masters", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *GameMasterHandlerTestSuite) TestUpdateGameMaster_NotFound() {
	gmID := uuid.New()
	suite.mockGMSv.EXPECT().
		Update(gmID, gomock.Any()).
		Return(nil, apperrors.ErrGameMasterNotFound)

	payload, _ := json.Marshal(map[string]interface{}{"first_name": "Renamed"})
	req := httptest.NewRequest(http.MethodPut, "/game-masters/"+gmID.String(), jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *GameMasterHandlerTestSuite) TestDeactivate_Success() {
	gmID := uuid.New()
	suite.mockGMSv.EXPECT().Deactivate(gmID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/game-masters/"+gmID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *GameMasterHandlerTestSuite) TestDeactivate_InvalidID() {
	req := httptest.NewRequest(http.MethodDelete, "/game-masters/not-a-uuid", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestGameMasterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GameMasterHandlerTestSuite))
}
