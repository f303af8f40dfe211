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

// AvailabilityServiceTestSuite defines the test suite for AvailabilityService
type AvailabilityServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRepo            *mocks.MockAvailabilityRepositoryInterface
	mockGMRepo          *mocks.MockGameMasterRepositoryInterface
	availabilityService *service.AvailabilityService
	validator           *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AvailabilityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAvailabilityRepositoryInterface(suite.ctrl)
	suite.mockGMRepo = mocks.NewMockGameMasterRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.availabilityService = service.NewAvailabilityService(
		suite.mockRepo,
		suite.mockGMRepo,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *AvailabilityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AvailabilityServiceTestSuite) declareRequest(slots ...string) *service.DeclareAvailabilityRequest {
	return &service.DeclareAvailabilityRequest{
		GMID:      uuid.New(),
		Date:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		TimeSlots: slots,
	}
}

// TestDeclareAvailability tests declaring time slots for a date
func (suite *AvailabilityServiceTestSuite) TestDeclareAvailability() {
	req := suite.declareRequest("10:00-14:00", "16:00-20:00")

	suite.mockGMRepo.EXPECT().
		GetByID(req.GMID).
		Return(&models.GameMaster{BaseModel: models.BaseModel{ID: req.GMID}, IsActive: true}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(a *models.GMAvailability) error {
			a.ID = uuid.New()
			assert.Equal(suite.T(), req.GMID, a.GMID)
			assert.Equal(suite.T(), []string{"10:00-14:00", "16:00-20:00"}, a.Slots())
			return nil
		}).
		Times(1)

	resp, err := suite.availabilityService.Declare(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2026-09-05", resp.Date)
	assert.Equal(suite.T(), []string{"10:00-14:00", "16:00-20:00"}, resp.TimeSlots)
}

// TestDeclareAvailabilityFixedTokens tests that the fixed day-level tokens
// pass slot validation
func (suite *AvailabilityServiceTestSuite) TestDeclareAvailabilityFixedTokens() {
	for _, token := range []string{models.SlotFullDay, models.SlotUnavailableDay, models.SlotUnavailableTag} {
		req := suite.declareRequest(token)

		suite.mockGMRepo.EXPECT().
			GetByID(req.GMID).
			Return(&models.GameMaster{BaseModel: models.BaseModel{ID: req.GMID}, IsActive: true}, nil).
			Times(1)
		suite.mockRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(1)

		_, err := suite.availabilityService.Declare(req)
		assert.NoError(suite.T(), err, "token %q should be accepted", token)
	}
}

// TestDeclareAvailabilityInvalidSlot tests that a malformed slot token is
// rejected with the offending token in the error
func (suite *AvailabilityServiceTestSuite) TestDeclareAvailabilityInvalidSlot() {
	req := suite.declareRequest("10:00-14:00", "afternoonish")

	suite.mockGMRepo.EXPECT().
		GetByID(req.GMID).
		Return(&models.GameMaster{BaseModel: models.BaseModel{ID: req.GMID}, IsActive: true}, nil).
		Times(1)

	resp, err := suite.availabilityService.Declare(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeFormat)
	assert.Contains(suite.T(), err.Error(), "afternoonish")
	assert.Nil(suite.T(), resp)
}

// TestDeclareAvailabilityUnknownGM tests declaring for a missing GM
func (suite *AvailabilityServiceTestSuite) TestDeclareAvailabilityUnknownGM() {
	req := suite.declareRequest(models.SlotFullDay)

	suite.mockGMRepo.EXPECT().GetByID(req.GMID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.availabilityService.Declare(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrGameMasterNotFound)
	assert.Nil(suite.T(), resp)
}

// TestDeclareAvailabilityEmptySlots tests that at least one slot is required
func (suite *AvailabilityServiceTestSuite) TestDeclareAvailabilityEmptySlots() {
	req := suite.declareRequest()

	resp, err := suite.availabilityService.Declare(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetByGM tests the range listing
func (suite *AvailabilityServiceTestSuite) TestGetByGM() {
	gmID := uuid.New()
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	row := models.GMAvailability{
		BaseModel: models.BaseModel{ID: uuid.New()},
		GMID:      gmID,
		Date:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	}
	suite.Require().NoError(row.SetSlots([]string{models.SlotFullDay}))

	suite.mockRepo.EXPECT().GetByGM(gmID, from, to).Return([]models.GMAvailability{row}, nil).Times(1)

	responses, err := suite.availabilityService.GetByGM(gmID, from, to)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), "2026-09-05", responses[0].Date)
	assert.Equal(suite.T(), []string{models.SlotFullDay}, responses[0].TimeSlots)
}

// TestDeleteNotFound tests deleting a missing declaration
func (suite *AvailabilityServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().Delete(id).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.availabilityService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAvailabilityNotFound)
}

// TestAvailabilityServiceTestSuite runs the test suite
func TestAvailabilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}
