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

// ActivityServiceTestSuite defines the test suite for ActivityService
type ActivityServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockActivityRepositoryInterface
	mockAssignmentRepo *mocks.MockAssignmentRepositoryInterface
	mockGMRepo         *mocks.MockGameMasterRepositoryInterface
	mockMatcher        *mocks.MockMatcherServiceInterface
	mockNotifier       *mocks.MockNotificationDispatcherInterface
	activityService    *service.ActivityService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockGMRepo = mocks.NewMockGameMasterRepositoryInterface(suite.ctrl)
	suite.mockMatcher = mocks.NewMockMatcherServiceInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotificationDispatcherInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.activityService = service.NewActivityService(
		suite.mockRepo,
		suite.mockAssignmentRepo,
		suite.mockGMRepo,
		suite.mockMatcher,
		suite.mockNotifier,
		nil, // caching disabled in unit tests
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *ActivityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ActivityServiceTestSuite) createRequest() *service.CreateActivityRequest {
	return &service.CreateActivityRequest{
		Title:     "Arena Blast Tournament",
		Date:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "15:30",
	}
}

// TestCreateActivityMatchesGame tests that creation without an explicit game
// runs the matcher and adopts the matched game's average duration
func (suite *ActivityServiceTestSuite) TestCreateActivityMatchesGame() {
	req := suite.createRequest()
	gameID := uuid.New()

	suite.mockMatcher.EXPECT().
		FindMatchingGame(req.Title).
		Return(&service.GameMatch{
			GameID:          &gameID,
			GameName:        "Arena Blast",
			AverageDuration: 60,
			Confidence:      55,
		}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.Activity) error {
			a.ID = uuid.New()
			assert.Equal(suite.T(), gameID, *a.GameID)
			assert.Equal(suite.T(), 60, a.DurationMinutes)
			assert.Equal(suite.T(), models.ActivityTypeGaming, a.ActivityType)
			assert.Equal(suite.T(), models.ActivityStatusPending, a.Status)
			assert.Equal(suite.T(), models.ActivitySourceManual, a.Source)
			return nil
		}).
		Times(1)

	resp, err := suite.activityService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2026-09-05", resp.Date)
	assert.Equal(suite.T(), gameID, *resp.GameID)
	assert.Equal(suite.T(), 60, resp.DurationMinutes)
}

// TestCreateActivityNoMatchFallsBackToWindow tests that without a match the
// duration falls back to the time window length
func (suite *ActivityServiceTestSuite) TestCreateActivityNoMatchFallsBackToWindow() {
	req := suite.createRequest()
	req.Title = "Private birthday party"

	suite.mockMatcher.EXPECT().
		FindMatchingGame(req.Title).
		Return(&service.GameMatch{}, nil).
		Times(1)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.Activity) error {
			assert.Nil(suite.T(), a.GameID)
			assert.Equal(suite.T(), 90, a.DurationMinutes)
			return nil
		}).
		Times(1)

	resp, err := suite.activityService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.GameID)
	assert.Equal(suite.T(), 90, resp.DurationMinutes)
}

// TestCreateActivityExplicitGameSkipsMatcher tests that a caller-provided
// game bypasses the matcher entirely
func (suite *ActivityServiceTestSuite) TestCreateActivityExplicitGameSkipsMatcher() {
	req := suite.createRequest()
	gameID := uuid.New()
	req.GameID = &gameID
	req.DurationMinutes = 45

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(a *models.Activity) error {
			assert.Equal(suite.T(), gameID, *a.GameID)
			assert.Equal(suite.T(), 45, a.DurationMinutes)
			return nil
		}).
		Times(1)

	_, err := suite.activityService.Create(req)

	assert.NoError(suite.T(), err)
}

// TestCreateActivityMatcherFailureIsNonFatal tests that a matcher error is
// logged and the activity is still created
func (suite *ActivityServiceTestSuite) TestCreateActivityMatcherFailureIsNonFatal() {
	req := suite.createRequest()

	suite.mockMatcher.EXPECT().
		FindMatchingGame(req.Title).
		Return(nil, gorm.ErrInvalidDB).
		Times(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	resp, err := suite.activityService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.GameID)
}

// TestCreateActivityValidation tests required-field validation
func (suite *ActivityServiceTestSuite) TestCreateActivityValidation() {
	req := suite.createRequest()
	req.Title = ""

	resp, err := suite.activityService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateActivityInvalidWindow tests that an inverted time window is rejected
func (suite *ActivityServiceTestSuite) TestCreateActivityInvalidWindow() {
	req := suite.createRequest()
	req.StartTime = "16:00"
	req.EndTime = "14:00"

	resp, err := suite.activityService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
	assert.Nil(suite.T(), resp)
}

// TestCreateActivityInvalidType tests rejection of an unknown activity type
func (suite *ActivityServiceTestSuite) TestCreateActivityInvalidType() {
	req := suite.createRequest()
	req.ActivityType = models.ActivityType("karaoke")

	resp, err := suite.activityService.Create(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
	assert.Nil(suite.T(), resp)
}

// TestUpdateActivityNotifiesAssignedGMs tests that edits fan out a
// modification notice to every assigned GM
func (suite *ActivityServiceTestSuite) TestUpdateActivityNotifiesAssignedGMs() {
	activity := pendingActivity()
	gm := activeGM("Lea", "Fontaine")
	newTitle := "Arena Blast (rescheduled)"

	suite.mockRepo.EXPECT().GetByID(activity.ID).Return(activity, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockAssignmentRepo.EXPECT().
		GetByActivityID(activity.ID).
		Return([]models.EventAssignment{{ActivityID: activity.ID, GMID: gm.ID, AssignmentOrder: 1}}, nil).
		Times(1)
	suite.mockGMRepo.EXPECT().GetByID(gm.ID).Return(gm, nil).Times(1)
	suite.mockNotifier.EXPECT().Dispatch(gm, models.NotificationTypeModified, gomock.Any()).Times(1)

	resp, err := suite.activityService.Update(activity.ID, &service.UpdateActivityRequest{Title: &newTitle})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newTitle, resp.Title)
}

// TestUpdateActivityRevalidatesWindow tests that a partial time edit is
// validated against the merged window
func (suite *ActivityServiceTestSuite) TestUpdateActivityRevalidatesWindow() {
	activity := pendingActivity() // 14:00-15:00
	badStart := "16:00"

	suite.mockRepo.EXPECT().GetByID(activity.ID).Return(activity, nil).Times(1)

	resp, err := suite.activityService.Update(activity.ID, &service.UpdateActivityRequest{StartTime: &badStart})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeRange)
	assert.Nil(suite.T(), resp)
}

// TestUpdateStatusCancelledNotifies tests that cancelling notifies assigned GMs
func (suite *ActivityServiceTestSuite) TestUpdateStatusCancelledNotifies() {
	activity := pendingActivity()
	gm := activeGM("Marc", "Dubois")
	activity.IsAssigned = true
	activity.AssignedGMID = &gm.ID

	suite.mockRepo.EXPECT().GetByID(activity.ID).Return(activity, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)
	suite.mockAssignmentRepo.EXPECT().
		GetByActivityID(activity.ID).
		Return([]models.EventAssignment{{ActivityID: activity.ID, GMID: gm.ID, AssignmentOrder: 1}}, nil).
		Times(1)
	suite.mockGMRepo.EXPECT().GetByID(gm.ID).Return(gm, nil).Times(1)
	suite.mockNotifier.EXPECT().Dispatch(gm, models.NotificationTypeCancelled, gomock.Any()).Times(1)

	resp, err := suite.activityService.UpdateStatus(activity.ID, models.ActivityStatusCancelled)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ActivityStatusCancelled, resp.Status)
}

// TestUpdateStatusPlainTransitionDoesNotNotify tests that a non-cancel
// transition stays silent
func (suite *ActivityServiceTestSuite) TestUpdateStatusPlainTransitionDoesNotNotify() {
	activity := pendingActivity()

	suite.mockRepo.EXPECT().GetByID(activity.ID).Return(activity, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	resp, err := suite.activityService.UpdateStatus(activity.ID, models.ActivityStatusConfirmed)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ActivityStatusConfirmed, resp.Status)
}

// TestUpdateStatusInvalid tests rejection of an unknown status
func (suite *ActivityServiceTestSuite) TestUpdateStatusInvalid() {
	resp, err := suite.activityService.UpdateStatus(uuid.New(), models.ActivityStatus("archived"))

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
	assert.Nil(suite.T(), resp)
}

// TestDeleteActivity tests the soft-delete path: notify, drop assignments,
// mark deleted
func (suite *ActivityServiceTestSuite) TestDeleteActivity() {
	activity := pendingActivity()
	gm := activeGM("Lea", "Fontaine")
	activity.IsAssigned = true
	activity.AssignedGMID = &gm.ID

	suite.mockRepo.EXPECT().GetByID(activity.ID).Return(activity, nil).Times(1)
	suite.mockAssignmentRepo.EXPECT().
		GetByActivityID(activity.ID).
		Return([]models.EventAssignment{{ActivityID: activity.ID, GMID: gm.ID, AssignmentOrder: 1}}, nil).
		Times(1)
	suite.mockGMRepo.EXPECT().GetByID(gm.ID).Return(gm, nil).Times(1)
	suite.mockNotifier.EXPECT().Dispatch(gm, models.NotificationTypeCancelled, gomock.Any()).Times(1)
	suite.mockAssignmentRepo.EXPECT().DeleteByActivityID(activity.ID).Return(nil).Times(1)
	suite.mockRepo.EXPECT().
		UpdateFields(activity.ID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, updates map[string]interface{}) error {
			assert.Equal(suite.T(), models.ActivityStatusDeleted, updates["status"])
			assert.Equal(suite.T(), false, updates["is_assigned"])
			return nil
		}).
		Times(1)

	err := suite.activityService.Delete(activity.ID)

	assert.NoError(suite.T(), err)
}

// TestGetByIDNotFound tests the missing-activity path
func (suite *ActivityServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	resp, err := suite.activityService.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrActivityNotFound)
	assert.Nil(suite.T(), resp)
}

// TestListByDateRange tests that a bounded list goes through the range query
func (suite *ActivityServiceTestSuite) TestListByDateRange() {
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.EXPECT().
		GetByDateRange(from, to, 50, 0).
		Return([]models.Activity{*pendingActivity()}, int64(1), nil).
		Times(1)

	resp, err := suite.activityService.List(&from, &to, 1, 50)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Activities, 1)
	assert.Equal(suite.T(), int64(1), resp.Total)
	assert.Equal(suite.T(), 1, resp.Page)
}

// TestListUnassigned tests the unassigned listing
func (suite *ActivityServiceTestSuite) TestListUnassigned() {
	suite.mockRepo.EXPECT().
		GetUnassigned(50, 0).
		Return([]models.Activity{*pendingActivity(), *pendingActivity()}, int64(2), nil).
		Times(1)

	resp, err := suite.activityService.ListUnassigned(1, 50)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Activities, 2)
	assert.Equal(suite.T(), int64(2), resp.Total)
}

// TestActivityServiceTestSuite runs the test suite
func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}
