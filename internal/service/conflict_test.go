package service_test

import (
	"testing"
	"time"

	"gamecenter-backend/internal/database/models"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/mocks"
	"gamecenter-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ConflictServiceTestSuite defines the test suite for ConflictService
type ConflictServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockAvailabilityRepo *mocks.MockAvailabilityRepositoryInterface
	mockActivityRepo     *mocks.MockActivityRepositoryInterface
	mockGameRepo         *mocks.MockGameRepositoryInterface
	conflictService      *service.ConflictService

	gmID uuid.UUID
	date time.Time
}

// SetupTest sets up the test suite
func (suite *ConflictServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAvailabilityRepo = mocks.NewMockAvailabilityRepositoryInterface(suite.ctrl)
	suite.mockActivityRepo = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.mockGameRepo = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.conflictService = service.NewConflictService(
		suite.mockAvailabilityRepo,
		suite.mockActivityRepo,
		suite.mockGameRepo,
	)
	suite.gmID = uuid.New()
	suite.date = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
}

// TearDownTest cleans up after each test
func (suite *ConflictServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConflictServiceTestSuite) availability(slots ...string) *models.GMAvailability {
	av := &models.GMAvailability{
		BaseModel: models.BaseModel{ID: uuid.New()},
		GMID:      suite.gmID,
		Date:      suite.date,
	}
	suite.Require().NoError(av.SetSlots(slots))
	return av
}

func (suite *ConflictServiceTestSuite) assignedActivity(title, start, end string) models.Activity {
	return models.Activity{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		Title:      title,
		Date:       suite.date,
		StartTime:  start,
		EndTime:    end,
		IsAssigned: true,
		Status:     models.ActivityStatusAssigned,
	}
}

// TestCheckNoConflicts tests a clean slate: full-day availability, no other
// assignments
func (suite *ConflictServiceTestSuite) TestCheckNoConflicts() {
	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(suite.availability(models.SlotFullDay), nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", nil, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.AvailabilityStatusFull, report.AvailabilityStatus)
	assert.False(suite.T(), report.HasConflict)
	assert.Empty(suite.T(), report.Conflicts)
	assert.Empty(suite.T(), report.MinimumBreakViolations)
}

// TestCheckNoAvailabilityDeclared tests that a missing declaration is
// reported as status "none" but never flips HasConflict
func (suite *ConflictServiceTestSuite) TestCheckNoAvailabilityDeclared() {
	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", nil, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.AvailabilityStatusNone, report.AvailabilityStatus)
	assert.False(suite.T(), report.HasConflict)
}

// TestCheckUnavailableStatusIsAdvisory tests that a declared-unavailable day
// is surfaced as a status without blocking
func (suite *ConflictServiceTestSuite) TestCheckUnavailableStatusIsAdvisory() {
	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(suite.availability(models.SlotUnavailableDay), nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", nil, nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.AvailabilityStatusUnavailable, report.AvailabilityStatus)
	assert.False(suite.T(), report.HasConflict)
}

// TestCheckOverlapConflict tests that overlapping assigned activities set
// HasConflict
func (suite *ConflictServiceTestSuite) TestCheckOverlapConflict() {
	other := suite.assignedActivity("Zombie Survival", "14:30", "15:30")

	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(suite.availability(models.SlotFullDay), nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{other}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", nil, nil)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), report.HasConflict)
	assert.Len(suite.T(), report.Conflicts, 1)
	assert.Equal(suite.T(), other.ID, report.Conflicts[0].ActivityID)
	assert.Equal(suite.T(), "Zombie Survival", report.Conflicts[0].Title)
	assert.Empty(suite.T(), report.MinimumBreakViolations)
}

// TestCheckBackToBackIsNotOverlap tests the half-open window rule: an
// activity ending exactly when the next starts does not overlap
func (suite *ConflictServiceTestSuite) TestCheckBackToBackIsNotOverlap() {
	other := suite.assignedActivity("Morning Arena", "13:00", "14:00")

	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(suite.availability(models.SlotFullDay), nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{other}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", nil, nil)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), report.HasConflict)
	assert.Empty(suite.T(), report.Conflicts)
}

// TestCheckMinimumBreakViolation tests that a too-short gap before a
// non-overlapping activity is flagged when the game requires a break
func (suite *ConflictServiceTestSuite) TestCheckMinimumBreakViolation() {
	gameID := uuid.New()
	other := suite.assignedActivity("Morning Arena", "13:00", "13:50")

	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(suite.availability(models.SlotFullDay), nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{other}, nil).
		Times(1)
	suite.mockGameRepo.EXPECT().
		GetByID(gameID).
		Return(&models.Game{
			BaseModel:           models.BaseModel{ID: gameID},
			Name:                "Arena Blast",
			MinimumBreakMinutes: 15,
		}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", &gameID, nil)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), report.HasConflict)
	assert.Empty(suite.T(), report.Conflicts)
	assert.Len(suite.T(), report.MinimumBreakViolations, 1)
	assert.Equal(suite.T(), 10, report.MinimumBreakViolations[0].GapMinutes)
	assert.Equal(suite.T(), 15, report.MinimumBreakViolations[0].RequiredMinutes)
}

// TestCheckMinimumBreakAfterEvent tests the break rule for an activity
// starting shortly after the candidate window
func (suite *ConflictServiceTestSuite) TestCheckMinimumBreakAfterEvent() {
	gameID := uuid.New()
	other := suite.assignedActivity("Evening Arena", "15:05", "16:00")

	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(suite.availability(models.SlotFullDay), nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{other}, nil).
		Times(1)
	suite.mockGameRepo.EXPECT().
		GetByID(gameID).
		Return(&models.Game{
			BaseModel:           models.BaseModel{ID: gameID},
			MinimumBreakMinutes: 15,
		}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", &gameID, nil)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), report.MinimumBreakViolations, 1)
	assert.Equal(suite.T(), 5, report.MinimumBreakViolations[0].GapMinutes)
}

// TestCheckOverlapSkipsBreakCheck tests that an overlapping activity is
// reported as an overlap only, never double-counted as a break violation
func (suite *ConflictServiceTestSuite) TestCheckOverlapSkipsBreakCheck() {
	gameID := uuid.New()
	other := suite.assignedActivity("Overlapping Arena", "14:30", "15:30")

	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(suite.availability(models.SlotFullDay), nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{other}, nil).
		Times(1)
	suite.mockGameRepo.EXPECT().
		GetByID(gameID).
		Return(&models.Game{
			BaseModel:           models.BaseModel{ID: gameID},
			MinimumBreakMinutes: 15,
		}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", &gameID, nil)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), report.Conflicts, 1)
	assert.Empty(suite.T(), report.MinimumBreakViolations)
}

// TestCheckExcludesActivityUnderEdit tests that the excluded activity ID is
// passed through to the assignment query
func (suite *ConflictServiceTestSuite) TestCheckExcludesActivityUnderEdit() {
	excludeID := uuid.New()

	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, &excludeID).
		Return([]models.Activity{}, nil).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", nil, &excludeID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), report.HasConflict)
}

// TestCheckUnknownGameSkipsBreakRule tests that a dangling game reference
// disables the break rule instead of failing the check
func (suite *ConflictServiceTestSuite) TestCheckUnknownGameSkipsBreakRule() {
	gameID := uuid.New()
	other := suite.assignedActivity("Morning Arena", "13:00", "13:55")

	suite.mockAvailabilityRepo.EXPECT().
		GetByGMAndDate(suite.gmID, suite.date).
		Return(suite.availability(models.SlotFullDay), nil).
		Times(1)
	suite.mockActivityRepo.EXPECT().
		GetAssignedByGMAndDate(suite.gmID, suite.date, nil).
		Return([]models.Activity{other}, nil).
		Times(1)
	suite.mockGameRepo.EXPECT().
		GetByID(gameID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "14:00", "15:00", &gameID, nil)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), report.HasConflict)
	assert.Empty(suite.T(), report.MinimumBreakViolations)
}

// TestCheckInvalidWindow tests that a malformed candidate window is rejected
func (suite *ConflictServiceTestSuite) TestCheckInvalidWindow() {
	report, err := suite.conflictService.CheckGMAvailabilityConflicts(
		suite.gmID, suite.date, "15:00", "14:00", nil, nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
	assert.Nil(suite.T(), report)
}

// TestConflictServiceTestSuite runs the test suite
func TestConflictServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConflictServiceTestSuite))
}
