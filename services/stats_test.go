package services

import (
	"testing"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityAt(ts time.Time, steps int) models.Activity {
	return models.Activity{Steps: intPtr(steps), RecordedAt: ts}
}

func TestDaySums_CalendarDayOnly(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 30, 0, 0, time.Local)
	records := []models.Activity{
		activityAt(now.Add(-2*time.Hour), 4000),
		activityAt(now.Add(-5*time.Hour), 1000),
		activityAt(now.AddDate(0, 0, -8), 9999),
		// late yesterday: within 24h but a different calendar day
		activityAt(time.Date(2025, 6, 17, 23, 50, 0, 0, time.Local), 500),
	}

	totals := DaySums(records, now)
	assert.Equal(t, 5000, totals.Steps)
}

func TestDaySums_SumsAllFields(t *testing.T) {
	now := time.Date(2025, 6, 18, 12, 0, 0, 0, time.Local)
	records := []models.Activity{
		{RecordedAt: now, Steps: intPtr(3000), Calories: 250, DurationMin: 30, DistanceKm: 4.5},
		{RecordedAt: now.Add(-time.Hour), Calories: 100, DurationMin: 20, DistanceKm: 1.5}, // no steps
	}

	totals := DaySums(records, now)
	assert.Equal(t, 3000, totals.Steps)
	assert.Equal(t, 350, totals.Calories)
	assert.Equal(t, 50, totals.DurationMin)
	assert.InDelta(t, 6.0, totals.DistanceKm, 1e-9)
}

func TestWeeklyAverageSteps_RollingWindow(t *testing.T) {
	now := time.Date(2025, 6, 18, 15, 0, 0, 0, time.Local)
	records := []models.Activity{
		activityAt(now, 4000),
		activityAt(now, 1000),
		activityAt(now.AddDate(0, 0, -8), 9999), // outside the 168h window
	}

	// (4000+1000)/7 with integer division
	assert.Equal(t, 714, WeeklyAverageSteps(records, now))
}

func TestWeeklyAverageSteps_Empty(t *testing.T) {
	assert.Equal(t, 0, WeeklyAverageSteps(nil, time.Now()))
}

func TestStepHistory_AlwaysSevenEntries(t *testing.T) {
	now := time.Now()

	assert.Len(t, StepHistory(nil, now), 7)

	records := []models.Activity{
		activityAt(now, 100),
		activityAt(now.AddDate(0, 0, -3), 200),
		activityAt(now.AddDate(0, 0, -3), 50),
		activityAt(now.AddDate(0, 0, -10), 7777), // older than the window
	}
	hist := StepHistory(records, now)
	require.Len(t, hist, 7)
	assert.Equal(t, 100, hist[6]) // today is last
	assert.Equal(t, 250, hist[3])
	assert.Equal(t, []int{0, 0, 0, 250, 0, 0, 100}, hist)
}

func TestWeekWindow(t *testing.T) {
	// Wednesday 2025-06-18
	now := time.Date(2025, 6, 18, 9, 0, 0, 0, time.Local)

	start, end, err := WeekWindow(now, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, time.Date(2025, 6, 23, 0, 0, 0, 0, time.Local), end)

	start, _, err = WeekWindow(now, -2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local), start)

	_, _, err = WeekWindow(now, 1)
	assert.ErrorIs(t, err, ErrFutureWeek)
}

func TestWeekWindow_MondayAnchorsItself(t *testing.T) {
	monday := time.Date(2025, 6, 16, 23, 0, 0, 0, time.Local)
	start, _, err := WeekWindow(monday, 0)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local), start)
}

func TestActivitiesForWeek_Bounds(t *testing.T) {
	weekStart := time.Date(2025, 6, 16, 0, 0, 0, 0, time.Local)
	records := []models.Activity{
		activityAt(weekStart, 1),                                // inclusive lower bound
		activityAt(weekStart.AddDate(0, 0, 7), 2),               // exclusive upper bound
		activityAt(weekStart.AddDate(0, 0, 7).Add(-time.Nanosecond), 3),
		activityAt(weekStart.Add(-time.Nanosecond), 4),
	}

	got := ActivitiesForWeek(records, weekStart)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].StepCount())
	assert.Equal(t, 3, got[1].StepCount())
}

func TestActivitiesForDay(t *testing.T) {
	day := time.Date(2025, 6, 18, 14, 0, 0, 0, time.Local) // mid-day reference
	records := []models.Activity{
		activityAt(time.Date(2025, 6, 18, 0, 0, 0, 0, time.Local), 1),
		activityAt(time.Date(2025, 6, 18, 23, 59, 59, 0, time.Local), 2),
		activityAt(time.Date(2025, 6, 19, 0, 0, 0, 0, time.Local), 3),
	}

	got := ActivitiesForDay(records, day)
	assert.Len(t, got, 2)
}

func TestLongestActivity(t *testing.T) {
	assert.Nil(t, LongestActivity(nil))

	records := []models.Activity{
		{Type: "Walking", DurationMin: 30},
		{Type: "Running", DurationMin: 45},
		{Type: "Cycling", DurationMin: 45}, // tie broken by first occurrence
	}
	longest := LongestActivity(records)
	require.NotNil(t, longest)
	assert.Equal(t, "Running", longest.Type)
}

func TestAverageSpeed(t *testing.T) {
	assert.Zero(t, AverageSpeed(nil))

	// distance but no duration must stay display-safe
	zeroDuration := []models.Activity{{DistanceKm: 12.5}}
	assert.Zero(t, AverageSpeed(zeroDuration))

	records := []models.Activity{
		{DistanceKm: 5, DurationMin: 30},
		{DistanceKm: 5, DurationMin: 30},
	}
	assert.InDelta(t, 10.0, AverageSpeed(records), 1e-9)
}

func TestStepProgress(t *testing.T) {
	assert.Equal(t, 50, StepProgress(5000, 10000))
	assert.Equal(t, 120, StepProgress(12000, 10000)) // no clamp at 100
	assert.Equal(t, 0, StepProgress(5000, 0))
}
