package service_test

import (
	"encoding/json"
	"testing"

	"gamecenter-backend/internal/database/models"
	"gamecenter-backend/internal/mocks"
	"gamecenter-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// NotificationServiceTestSuite defines the test suite for
// NotificationService. The email channel is disabled so the suite
// exercises the persisted side of Dispatch.
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockNotificationRepo *mocks.MockNotificationRepositoryInterface
	notificationService  *service.NotificationService
}

// SetupTest sets up the test suite
func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNotificationRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.notificationService = service.NewNotificationService(suite.mockNotificationRepo, nil)
}

// TearDownTest cleans up after each test
func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestDispatchAssignment tests that an assignment notification stores the
// activity snapshot alongside the message
func (suite *NotificationServiceTestSuite) TestDispatchAssignment() {
	gm := activeGM("Lea", "Fontaine")
	activity := pendingActivity()

	suite.mockNotificationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(n *models.Notification) error {
			assert.Equal(suite.T(), gm.ID, n.GMID)
			assert.Equal(suite.T(), models.NotificationTypeAssignment, n.Type)
			assert.Equal(suite.T(), "New assignment", n.Title)
			assert.Contains(suite.T(), n.Message, activity.Title)
			assert.Contains(suite.T(), n.Message, "2026-09-05")

			var snapshot map[string]interface{}
			assert.NoError(suite.T(), json.Unmarshal(n.EventData, &snapshot))
			assert.Equal(suite.T(), activity.ID.String(), snapshot["activity_id"])
			assert.Equal(suite.T(), "14:00", snapshot["start_time"])
			return nil
		}).
		Times(1)

	suite.notificationService.Dispatch(gm, models.NotificationTypeAssignment, activity)
}

// TestDispatchTitlesPerType tests the per-type titles
func (suite *NotificationServiceTestSuite) TestDispatchTitlesPerType() {
	gm := activeGM("Marc", "Dubois")
	activity := pendingActivity()

	expected := map[models.NotificationType]string{
		models.NotificationTypeAssignment: "New assignment",
		models.NotificationTypeUnassigned: "Assignment removed",
		models.NotificationTypeCancelled:  "Event cancelled",
		models.NotificationTypeModified:   "Event updated",
	}

	for notifType, title := range expected {
		wantTitle := title
		suite.mockNotificationRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(n *models.Notification) error {
				assert.Equal(suite.T(), wantTitle, n.Title)
				return nil
			}).
			Times(1)

		suite.notificationService.Dispatch(gm, notifType, activity)
	}
}

// TestDispatchSwallowsRepositoryError tests that a failed insert does not
// panic or surface to the caller
func (suite *NotificationServiceTestSuite) TestDispatchSwallowsRepositoryError() {
	gm := activeGM("Lea", "Fontaine")
	activity := pendingActivity()

	suite.mockNotificationRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrInvalidDB).Times(1)

	suite.notificationService.Dispatch(gm, models.NotificationTypeCancelled, activity)
}

// TestList tests paginated listing
func (suite *NotificationServiceTestSuite) TestList() {
	gmID := uuid.New()
	notifications := []models.Notification{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			GMID:      gmID,
			Type:      models.NotificationTypeAssignment,
			Title:     "New assignment",
			Message:   "You have been assigned",
			IsRead:    false,
		},
	}

	suite.mockNotificationRepo.EXPECT().GetByGM(gmID, 50, 0).Return(notifications, int64(1), nil).Times(1)

	resp, err := suite.notificationService.List(gmID, 1, 50)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Notifications, 1)
	assert.Equal(suite.T(), "New assignment", resp.Notifications[0].Title)
	assert.False(suite.T(), resp.Notifications[0].IsRead)
}

// TestUnreadCount tests the unread badge counter
func (suite *NotificationServiceTestSuite) TestUnreadCount() {
	gmID := uuid.New()

	suite.mockNotificationRepo.EXPECT().CountUnread(gmID).Return(int64(7), nil).Times(1)

	count, err := suite.notificationService.UnreadCount(gmID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), count)
}

// TestMarkRead tests marking one notification as read for its owner
func (suite *NotificationServiceTestSuite) TestMarkRead() {
	notificationID := uuid.New()
	gmID := uuid.New()

	suite.mockNotificationRepo.EXPECT().MarkRead(notificationID, gmID).Return(nil).Times(1)

	err := suite.notificationService.MarkRead(notificationID, gmID)

	assert.NoError(suite.T(), err)
}

// TestMarkAllRead tests the bulk read marker
func (suite *NotificationServiceTestSuite) TestMarkAllRead() {
	gmID := uuid.New()

	suite.mockNotificationRepo.EXPECT().MarkAllRead(gmID).Return(nil).Times(1)

	err := suite.notificationService.MarkAllRead(gmID)

	assert.NoError(suite.T(), err)
}

// TestNotificationServiceTestSuite runs the test suite
func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
