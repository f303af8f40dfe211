//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"gamecenter-backend/internal/database/models"
	"gamecenter-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AvailabilityRepositoryTestSuite tests the AvailabilityRepository
type AvailabilityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AvailabilityRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AvailabilityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAvailabilityRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AvailabilityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AvailabilityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AvailabilityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedGM persists a game master so availability foreign keys resolve
func (suite *AvailabilityRepositoryTestSuite) seedGM() *models.GameMaster {
	gm := suite.factories.GameMaster.Create()
	err := NewGameMasterRepository(suite.baseTestSuite.DB).Create(gm)
	suite.NoError(err)
	return gm
}

// TestUpsertCreates tests that the first declaration for a date inserts a row
func (suite *AvailabilityRepositoryTestSuite) TestUpsertCreates() {
	gm := suite.seedGM()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	availability := suite.factories.Availability.Create(gm.ID, date, "10:00-14:00")
	err := suite.repo.Upsert(availability)
	suite.NoError(err)

	stored, err := suite.repo.GetByGMAndDate(gm.ID, date)
	suite.NoError(err)
	suite.Equal([]string{"10:00-14:00"}, stored.Slots())
}

// TestUpsertOverwrites tests that re-declaring the same (gm_id, date)
// replaces the slots on the existing row instead of inserting a second one
func (suite *AvailabilityRepositoryTestSuite) TestUpsertOverwrites() {
	gm := suite.seedGM()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	first := suite.factories.Availability.Create(gm.ID, date, "10:00-14:00")
	suite.NoError(suite.repo.Upsert(first))

	second := suite.factories.Availability.Create(gm.ID, date, "16:00-20:00", "20:00-22:00")
	suite.NoError(suite.repo.Upsert(second))

	// The overwrite reuses the original row
	suite.Equal(first.ID, second.ID)

	var count int64
	err := suite.baseTestSuite.DB.Model(&models.GMAvailability{}).
		Where("gm_id = ?", gm.ID).Count(&count).Error
	suite.NoError(err)
	suite.Equal(int64(1), count)

	stored, err := suite.repo.GetByGMAndDate(gm.ID, date)
	suite.NoError(err)
	suite.Equal([]string{"16:00-20:00", "20:00-22:00"}, stored.Slots())
}

// TestUpsertSeparateDates tests that different dates get separate rows
func (suite *AvailabilityRepositoryTestSuite) TestUpsertSeparateDates() {
	gm := suite.seedGM()

	day1 := suite.factories.Availability.Create(gm.ID, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	day2 := suite.factories.Availability.Create(gm.ID, time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC))
	suite.NoError(suite.repo.Upsert(day1))
	suite.NoError(suite.repo.Upsert(day2))

	suite.NotEqual(day1.ID, day2.ID)
}

// TestGetByGM tests the date-range query and its ascending order
func (suite *AvailabilityRepositoryTestSuite) TestGetByGM() {
	gm := suite.seedGM()

	for _, day := range []int{10, 5, 20} {
		date := time.Date(2026, 9, day, 0, 0, 0, 0, time.UTC)
		suite.NoError(suite.repo.Upsert(suite.factories.Availability.Create(gm.ID, date)))
	}

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	availabilities, err := suite.repo.GetByGM(gm.ID, from, to)

	suite.NoError(err)
	suite.Len(availabilities, 2)
	suite.True(availabilities[0].Date.Before(availabilities[1].Date))
}

// TestGetByDate tests listing all declarations for one date
func (suite *AvailabilityRepositoryTestSuite) TestGetByDate() {
	gm1 := suite.seedGM()
	gm2 := suite.seedGM()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	suite.NoError(suite.repo.Upsert(suite.factories.Availability.Create(gm1.ID, date)))
	suite.NoError(suite.repo.Upsert(suite.factories.Availability.Create(gm2.ID, date)))
	suite.NoError(suite.repo.Upsert(suite.factories.Availability.Create(gm1.ID, date.AddDate(0, 0, 1))))

	availabilities, err := suite.repo.GetByDate(date)
	suite.NoError(err)
	suite.Len(availabilities, 2)
}

// TestDelete tests removing a declaration
func (suite *AvailabilityRepositoryTestSuite) TestDelete() {
	gm := suite.seedGM()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	availability := suite.factories.Availability.Create(gm.ID, date)
	suite.NoError(suite.repo.Upsert(availability))

	err := suite.repo.Delete(availability.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByGMAndDate(gm.ID, date)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// Run the test suite
func TestAvailabilityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityRepositoryTestSuite))
}
