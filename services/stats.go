package services

import (
	"errors"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/models"
)

// ErrFutureWeek is returned by WeekWindow when the requested offset points
// past the current week.
var ErrFutureWeek = errors.New("cannot navigate to a future week")

// DayTotals is the rolled-up view of one calendar day of activities.
type DayTotals struct {
	Steps       int     `json:"steps"`
	Calories    int     `json:"calories"`
	DurationMin int     `json:"duration_min"`
	DistanceKm  float64 `json:"distance_km"`
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameCalendarDay compares by year and day-of-year in ref's location, not by
// a rolling 24h window.
func sameCalendarDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	return t.Year() == ref.Year() && t.YearDay() == ref.YearDay()
}

// DaySums filters records to ref's calendar day and sums steps, calories,
// duration and distance. Absent step counts count as zero.
func DaySums(records []models.Activity, ref time.Time) DayTotals {
	var out DayTotals
	for i := range records {
		a := &records[i]
		if !sameCalendarDay(a.RecordedAt, ref) {
			continue
		}
		out.Steps += a.StepCount()
		out.Calories += a.Calories
		out.DurationMin += a.DurationMin
		out.DistanceKm += a.DistanceKm
	}
	return out
}

// WeeklyAverageSteps sums steps over a rolling 168h window ending at now and
// divides by 7 (integer division). Zero when no records fall in the window.
//
// Note the deliberate asymmetry with DaySums: "today" is calendar-aligned
// while the weekly average is a rolling window.
func WeeklyAverageSteps(records []models.Activity, now time.Time) int {
	cutoff := now.Add(-7 * 24 * time.Hour)
	sum := 0
	for i := range records {
		if !records[i].RecordedAt.Before(cutoff) {
			sum += records[i].StepCount()
		}
	}
	return sum / 7
}

// StepHistory returns exactly 7 per-day step sums, oldest to newest, for the
// 7 calendar days ending on now's day. Days without records are zero.
func StepHistory(records []models.Activity, now time.Time) []int {
	hist := make([]int, 7)
	today := dayStart(now)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		for j := range records {
			if sameCalendarDay(records[j].RecordedAt, day) {
				hist[i] += records[j].StepCount()
			}
		}
	}
	return hist
}

// WeekWindow returns the [start, end) bounds of the week `offset` weeks from
// the current one. Weeks start Monday 00:00 local. offset must be <= 0;
// a positive offset would place the window past now.
func WeekWindow(now time.Time, offset int) (time.Time, time.Time, error) {
	if offset > 0 {
		return time.Time{}, time.Time{}, ErrFutureWeek
	}
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	start := dayStart(now).AddDate(0, 0, -daysSinceMonday+7*offset)
	return start, start.AddDate(0, 0, 7), nil
}

// ActivitiesForWeek returns records with RecordedAt in [weekStart, weekStart+7d).
func ActivitiesForWeek(records []models.Activity, weekStart time.Time) []models.Activity {
	return filterBetween(records, weekStart, weekStart.AddDate(0, 0, 7))
}

// ActivitiesForDay returns records with RecordedAt in [dayStart, dayStart+1d)
// for the calendar day containing day.
func ActivitiesForDay(records []models.Activity, day time.Time) []models.Activity {
	start := dayStart(day)
	return filterBetween(records, start, start.AddDate(0, 0, 1))
}

func filterBetween(records []models.Activity, from, to time.Time) []models.Activity {
	out := make([]models.Activity, 0)
	for i := range records {
		if !records[i].RecordedAt.Before(from) && records[i].RecordedAt.Before(to) {
			out = append(out, records[i])
		}
	}
	return out
}

// LongestActivity returns the record with the greatest duration, preferring
// the earlier record on ties. Nil when records is empty.
func LongestActivity(records []models.Activity) *models.Activity {
	var best *models.Activity
	for i := range records {
		if best == nil || records[i].DurationMin > best.DurationMin {
			best = &records[i]
		}
	}
	return best
}

// AverageSpeed is total distance over total duration in km/h. Zero when the
// total duration is zero so the value is always display-safe.
func AverageSpeed(records []models.Activity) float64 {
	var km float64
	var minutes int
	for i := range records {
		km += records[i].DistanceKm
		minutes += records[i].DurationMin
	}
	if minutes == 0 {
		return 0
	}
	return km / (float64(minutes) / 60.0)
}

// StepProgress returns 100*current/goal. Not clamped: exceeding the goal
// yields more than 100. Zero when the goal is unset.
func StepProgress(current, goal int) int {
	if goal <= 0 {
		return 0
	}
	return 100 * current / goal
}
