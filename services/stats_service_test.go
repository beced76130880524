package services

import (
	"testing"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, svc *StatsService, goal int) uint {
	t.Helper()
	user := models.User{Email: "runner@example.com", Password: "x", DailyStepGoal: goal}
	require.NoError(t, svc.db.Create(&user).Error)
	return user.ID
}

func TestStatsService_TodaySummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	userID := seedUser(t, svc, 10000)
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.Local)

	activities := NewActivityService(db)
	require.NoError(t, activities.Create(userID, &models.Activity{
		Type: "Running", DurationMin: 30, Calories: 300, DistanceKm: 5,
		Steps: intPtr(4000), RecordedAt: now.Add(-2 * time.Hour),
	}))
	require.NoError(t, activities.Create(userID, &models.Activity{
		Type: "Walking", DurationMin: 30, Calories: 100, DistanceKm: 2,
		Steps: intPtr(1000), RecordedAt: now.Add(-5 * time.Hour),
	}))
	// outside both today and the rolling week
	require.NoError(t, activities.Create(userID, &models.Activity{
		Type: "Running", Steps: intPtr(9999), RecordedAt: now.AddDate(0, 0, -8),
	}))

	intakes := NewIntakeService(db)
	lunch := testIntake(165, 2, now.Add(-3*time.Hour))
	require.NoError(t, intakes.Log(userID, &lunch))

	sum, err := svc.TodaySummary(userID, now)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-18", sum.Date)
	assert.Equal(t, 5000, sum.Totals.Steps)
	assert.Equal(t, 400, sum.Totals.Calories)
	assert.Equal(t, 60, sum.Totals.DurationMin)
	assert.InDelta(t, 7.0, sum.Totals.DistanceKm, 1e-9)
	assert.InDelta(t, 7.0, sum.AverageSpeedKmh, 1e-9) // 7 km in 60 min
	assert.Equal(t, 10000, sum.StepGoal)
	assert.Equal(t, 50, sum.StepProgressPct)
	assert.Equal(t, 714, sum.WeeklyAvgSteps)
	require.Len(t, sum.StepHistory, 7)
	assert.Equal(t, 5000, sum.StepHistory[6])
	assert.Equal(t, 330, sum.IntakeCalories)
}

func TestStatsService_TodaySummaryUnknownUser(t *testing.T) {
	svc := NewStatsService(newTestDB(t))

	_, err := svc.TodaySummary(999, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatsService_WeeklyOverview(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	userID := seedUser(t, svc, 10000)
	// Wednesday 2025-06-18; week runs Mon 16th .. Sun 22nd
	now := time.Date(2025, 6, 18, 9, 0, 0, 0, time.Local)

	activities := NewActivityService(db)
	require.NoError(t, activities.Create(userID, &models.Activity{
		Type: "Running", DurationMin: 45, Steps: intPtr(6000),
		RecordedAt: time.Date(2025, 6, 16, 7, 0, 0, 0, time.Local),
	}))
	require.NoError(t, activities.Create(userID, &models.Activity{
		Type: "Walking", DurationMin: 20, Steps: intPtr(2000),
		RecordedAt: time.Date(2025, 6, 16, 19, 0, 0, 0, time.Local),
	}))
	// previous week, must not appear
	require.NoError(t, activities.Create(userID, &models.Activity{
		Type: "Cycling", DurationMin: 90,
		RecordedAt: time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local),
	}))

	week, err := svc.WeeklyOverview(userID, now, 0)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-16", week.WeekStart)
	assert.Len(t, week.Activities, 2)
	require.Len(t, week.Days, 7)

	monday := week.Days[0]
	assert.Equal(t, "2025-06-16", monday.Date)
	assert.Equal(t, 8000, monday.Totals.Steps)
	require.NotNil(t, monday.Longest)
	assert.Equal(t, "Running", monday.Longest.Type)

	tuesday := week.Days[1]
	assert.Zero(t, tuesday.Totals.Steps)
	assert.Nil(t, tuesday.Longest)
}

func TestStatsService_WeeklyOverviewPastOffset(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	userID := seedUser(t, svc, 10000)
	now := time.Date(2025, 6, 18, 9, 0, 0, 0, time.Local)

	require.NoError(t, NewActivityService(db).Create(userID, &models.Activity{
		Type: "Cycling", DurationMin: 90,
		RecordedAt: time.Date(2025, 6, 11, 10, 0, 0, 0, time.Local),
	}))

	week, err := svc.WeeklyOverview(userID, now, -1)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", week.WeekStart)
	assert.Len(t, week.Activities, 1)
}

func TestStatsService_WeeklyOverviewFutureOffset(t *testing.T) {
	svc := NewStatsService(newTestDB(t))

	_, err := svc.WeeklyOverview(1, time.Now(), 1)
	assert.ErrorIs(t, err, ErrFutureWeek)
}

func TestStatsService_DailyView(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)
	userID := seedUser(t, svc, 10000)
	day := time.Date(2025, 6, 18, 23, 0, 0, 0, time.Local)

	activities := NewActivityService(db)
	require.NoError(t, activities.Create(userID, &models.Activity{
		Type: "Running", DurationMin: 30, DistanceKm: 5, Steps: intPtr(4000),
		RecordedAt: time.Date(2025, 6, 18, 7, 0, 0, 0, time.Local),
	}))
	require.NoError(t, activities.Create(userID, &models.Activity{
		Type: "Walking", DurationMin: 60, DistanceKm: 3,
		RecordedAt: time.Date(2025, 6, 19, 7, 0, 0, 0, time.Local),
	}))

	view, err := svc.DailyView(userID, day)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-18", view.Date)
	assert.Len(t, view.Activities, 1)
	assert.Equal(t, 4000, view.Totals.Steps)
	require.NotNil(t, view.Longest)
	assert.Equal(t, "Running", view.Longest.Type)
	assert.InDelta(t, 10.0, view.AverageSpeedKmh, 1e-9)
}
