package handlers_test

import (
	"net/http"
	"testing"

	"gamecenter-backend/internal/api/handlers"
	apperrors "gamecenter-backend/internal/errors"
	"gamecenter-backend/internal/mocks"
	"gamecenter-backend/internal/service"
	"gamecenter-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockReportSv *mocks.MockReportServiceInterface
	handler      *handlers.ReportHandler
	httpSuite    *testutils.HTTPTestSuite
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReportSv = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReportHandler(suite.mockReportSv)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/reports/monthly-hours", suite.handler.MonthlyHours)
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) TestMonthlyHours_Success() {
	suite.mockReportSv.EXPECT().
		MonthlyHours("2026-09").
		Return(&service.MonthlyHoursResponse{
			Period: "2026-09",
			GameMasters: []service.GMHoursResponse{
				{GMID: uuid.New(), GMName: "Lea Fontaine", TotalMinutes: 240, TotalHours: 4, ActivityCount: 3},
			},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/reports/monthly-hours?period=2026-09", nil)

	var got service.MonthlyHoursResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), "2026-09", got.Period)
	assert.Len(suite.T(), got.GameMasters, 1)
	assert.Equal(suite.T(), 4.0, got.GameMasters[0].TotalHours)
}

func (suite *ReportHandlerTestSuite) TestMonthlyHours_MissingPeriod() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/reports/monthly-hours", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "period")
}

func (suite *ReportHandlerTestSuite) TestMonthlyHours_InvalidPeriod() {
	suite.mockReportSv.EXPECT().
		MonthlyHours("september").
		Return(nil, apperrors.ErrInvalidPeriodFormat)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/reports/monthly-hours?period=september", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
