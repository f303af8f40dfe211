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

// CompetencyHandlerTestSuite defines the test suite for CompetencyHandler
type CompetencyHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCompetencySv *mocks.MockCompetencyServiceInterface
	handler          *handlers.CompetencyHandler
	router           *gin.Engine
}

func (suite *CompetencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompetencySv = mocks.NewMockCompetencyServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCompetencyHandler(suite.mockCompetencySv)

	suite.router = gin.New()
	suite.router.POST("/competencies", suite.handler.CreateCompetency)
	suite.router.PUT("/competencies/:id", suite.handler.UpdateCompetency)
	suite.router.DELETE("/competencies/:id", suite.handler.DeleteCompetency)
	suite.router.GET("/game-masters/:id/competencies", suite.handler.GetGMCompetencies)
}

func (suite *CompetencyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompetencyHandlerTestSuite) TestCreateCompetency_Success() {
	gmID := uuid.New()
	gameID := uuid.New()
	suite.mockCompetencySv.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateCompetencyRequest) (*service.CompetencyResponse, error) {
			assert.Equal(suite.T(), gmID, req.GMID)
			assert.Equal(suite.T(), 4, req.CompetencyLevel)
			return &service.CompetencyResponse{
				ID:              uuid.New(),
				GMID:            gmID,
				GameID:          gameID,
				CompetencyLevel: 4,
			}, nil
		})

	payload, _ := json.Marshal(map[string]interface{}{
		"gm_id":            gmID.String(),
		"game_id":          gameID.String(),
		"competency_level": 4,
	})
	req := httptest.NewRequest(http.MethodPost, "/competencies", jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *CompetencyHandlerTestSuite) TestCreateCompetency_Duplicate() {
	suite.mockCompetencySv.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrCompetencyExists)

	payload, _ := json.Marshal(map[string]interface{}{
		"gm_id":            uuid.New().String(),
		"game_id":          uuid.New().String(),
		"competency_level": 2,
	})
	req := httptest.NewRequest(http.MethodPost, "/competencies", jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *CompetencyHandlerTestSuite) TestCreateCompetency_UnknownGame() {
	suite.mockCompetencySv.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrGameNotFound)

	payload, _ := json.Marshal(map[string]interface{}{
		"gm_id":            uuid.New().String(),
		"game_id":          uuid.New().String(),
		"competency_level": 2,
	})
	req := httptest.NewRequest(http.MethodPost, "/competencies", jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CompetencyHandlerTestSuite) TestGetGMCompetencies_Success() {
	gmID := uuid.New()
	suite.mockCompetencySv.EXPECT().
		GetByGM(gmID).
		Return([]service.CompetencyResponse{
			{ID: uuid.New(), GMID: gmID, GameName: "Arena Blast", CompetencyLevel: 3},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/game-masters/"+gmID.String()+"/competencies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []service.CompetencyResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "Arena Blast", got[0].GameName)
}

func (suite *CompetencyHandlerTestSuite) TestUpdateCompetency_NotFound() {
	competencyID := uuid.New()
	suite.mockCompetencySv.EXPECT().
		Update(competencyID, gomock.Any()).
		Return(nil, apperrors.ErrCompetencyNotFound)

	payload, _ := json.Marshal(map[string]interface{}{"competency_level": 5})
	req := httptest.NewRequest(http.MethodPut, "/competencies/"+competencyID.String(), jsonBody(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CompetencyHandlerTestSuite) TestDeleteCompetency_Success() {
	competencyID := uuid.New()
	suite.mockCompetencySv.EXPECT().Delete(competencyID).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/competencies/"+competencyID.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestCompetencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompetencyHandlerTestSuite))
}
