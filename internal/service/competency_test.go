package service_test

import (
	"testing"
	"time"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/mocks"
	"gamecenter-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CompetencyServiceTestSuite defines the test suite for CompetencyService
type CompetencyServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockCompetencyRepo *mocks.MockCompetencyRepositoryInterface
	mockGMRepo         *mocks.MockGameMasterRepositoryInterface
	mockGameRepo       *mocks.MockGameRepositoryInterface
	competencyService  *service.CompetencyService
}

// SetupTest sets up the test suite
func (suite *CompetencyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompetencyRepo = mocks.NewMockCompetencyRepositoryInterface(suite.ctrl)
	suite.mockGMRepo = mocks.NewMockGameMasterRepositoryInterface(suite.ctrl)
	suite.mockGameRepo = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.competencyService = service.NewCompetencyService(
		suite.mockCompetencyRepo,
		suite.mockGMRepo,
		suite.mockGameRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *CompetencyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateCompetency tests declaring a competency for a gm/game pair
func (suite *CompetencyServiceTestSuite) TestCreateCompetency() {
	gm := activeGM("Lea", "Fontaine")
	game := catalogGame("Arena Blast")
	trained := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	req := &service.CreateCompetencyRequest{
		GMID:            gm.ID,
		GameID:          game.ID,
		CompetencyLevel: 4,
		TrainingDate:    &trained,
		Notes:           "shadowed two sessions",
	}

	suite.mockGMRepo.EXPECT().GetByID(gm.ID).Return(gm, nil).Times(1)
	suite.mockGameRepo.EXPECT().GetByID(game.ID).Return(game, nil).Times(1)
	suite.mockCompetencyRepo.EXPECT().GetByGMAndGame(gm.ID, game.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockCompetencyRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(c *models.GMCompetency) error {
			assert.Equal(suite.T(), 4, c.CompetencyLevel)
			assert.Equal(suite.T(), "shadowed two sessions", c.Notes)
			c.ID = uuid.New()
			return nil
		}).
		Times(1)

	resp, err := suite.competencyService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, resp.CompetencyLevel)
	assert.Equal(suite.T(), gm.ID, resp.GMID)
	assert.Equal(suite.T(), &trained, resp.TrainingDate)
}

// TestCreateCompetencyDuplicatePair tests that a second record for the
// same pair is rejected
func (suite *CompetencyServiceTestSuite) TestCreateCompetencyDuplicatePair() {
	gm := activeGM("Lea", "Fontaine")
	game := catalogGame("Arena Blast")
	existing := &models.GMCompetency{
		BaseModel: models.BaseModel{ID: uuid.New()},
		GMID:      gm.ID,
		GameID:    game.ID,
	}

	suite.mockGMRepo.EXPECT().GetByID(gm.ID).Return(gm, nil).Times(1)
	suite.mockGameRepo.EXPECT().GetByID(game.ID).Return(game, nil).Times(1)
	suite.mockCompetencyRepo.EXPECT().GetByGMAndGame(gm.ID, game.ID).Return(existing, nil).Times(1)

	resp, err := suite.competencyService.Create(&service.CreateCompetencyRequest{
		GMID:            gm.ID,
		GameID:          game.ID,
		CompetencyLevel: 2,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompetencyExists)
	assert.Nil(suite.T(), resp)
}

// TestCreateCompetencyUnknownGM tests that the GM must exist
func (suite *CompetencyServiceTestSuite) TestCreateCompetencyUnknownGM() {
	gmID := uuid.New()

	suite.mockGMRepo.EXPECT().GetByID(gmID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.competencyService.Create(&service.CreateCompetencyRequest{
		GMID:   gmID,
		GameID: uuid.New(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrGameMasterNotFound)
	assert.Nil(suite.T(), resp)
}

// TestCreateCompetencyUnknownGame tests that the game must exist
func (suite *CompetencyServiceTestSuite) TestCreateCompetencyUnknownGame() {
	gm := activeGM("Lea", "Fontaine")
	gameID := uuid.New()

	suite.mockGMRepo.EXPECT().GetByID(gm.ID).Return(gm, nil).Times(1)
	suite.mockGameRepo.EXPECT().GetByID(gameID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.competencyService.Create(&service.CreateCompetencyRequest{
		GMID:   gm.ID,
		GameID: gameID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrGameNotFound)
	assert.Nil(suite.T(), resp)
}

// TestCreateCompetencyLevelOutOfRange tests the 0-5 level bounds
func (suite *CompetencyServiceTestSuite) TestCreateCompetencyLevelOutOfRange() {
	resp, err := suite.competencyService.Create(&service.CreateCompetencyRequest{
		GMID:            uuid.New(),
		GameID:          uuid.New(),
		CompetencyLevel: 6,
	})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
	assert.Nil(suite.T(), resp)
}

// TestGetByGM tests listing a GM's competencies with preloaded game names
func (suite *CompetencyServiceTestSuite) TestGetByGM() {
	gm := activeGM("Lea", "Fontaine")
	game := catalogGame("Arena Blast")
	rows := []models.GMCompetency{
		{
			BaseModel:       models.BaseModel{ID: uuid.New()},
			GMID:            gm.ID,
			GameID:          game.ID,
			Game:            *game,
			CompetencyLevel: 3,
		},
	}

	suite.mockCompetencyRepo.EXPECT().GetByGM(gm.ID).Return(rows, nil).Times(1)

	resp, err := suite.competencyService.GetByGM(gm.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
	assert.Equal(suite.T(), "Arena Blast", resp[0].GameName)
	assert.Equal(suite.T(), 3, resp[0].CompetencyLevel)
}

// TestUpdateCompetency tests partial updates to a competency record
func (suite *CompetencyServiceTestSuite) TestUpdateCompetency() {
	competency := &models.GMCompetency{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		GMID:            uuid.New(),
		GameID:          uuid.New(),
		CompetencyLevel: 2,
		Notes:           "needs supervision",
	}
	newLevel := 5

	suite.mockCompetencyRepo.EXPECT().GetByID(competency.ID).Return(competency, nil).Times(1)
	suite.mockCompetencyRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.GMCompetency) error {
			assert.Equal(suite.T(), 5, updated.CompetencyLevel)
			assert.Equal(suite.T(), "needs supervision", updated.Notes)
			return nil
		}).
		Times(1)

	resp, err := suite.competencyService.Update(competency.ID, &service.UpdateCompetencyRequest{CompetencyLevel: &newLevel})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, resp.CompetencyLevel)
}

// TestUpdateCompetencyNotFound tests updating a missing record
func (suite *CompetencyServiceTestSuite) TestUpdateCompetencyNotFound() {
	competencyID := uuid.New()

	suite.mockCompetencyRepo.EXPECT().GetByID(competencyID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.competencyService.Update(competencyID, &service.UpdateCompetencyRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompetencyNotFound)
	assert.Nil(suite.T(), resp)
}

// TestDeleteCompetency tests removing a competency record
func (suite *CompetencyServiceTestSuite) TestDeleteCompetency() {
	competencyID := uuid.New()

	suite.mockCompetencyRepo.EXPECT().Delete(competencyID).Return(nil).Times(1)

	err := suite.competencyService.Delete(competencyID)

	assert.NoError(suite.T(), err)
}

// TestDeleteCompetencyNotFound tests removing a missing record
func (suite *CompetencyServiceTestSuite) TestDeleteCompetencyNotFound() {
	competencyID := uuid.New()

	suite.mockCompetencyRepo.EXPECT().Delete(competencyID).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.competencyService.Delete(competencyID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompetencyNotFound)
}

// TestCompetencyServiceTestSuite runs the test suite
func TestCompetencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompetencyServiceTestSuite))
}
