package services

import (
	"errors"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// TodaySummary is the dashboard payload: today's totals, step goal progress,
// the rolling weekly step average and the 7-day chart series.
type TodaySummary struct {
	Date            string    `json:"date"`
	Totals          DayTotals `json:"totals"`
	AverageSpeedKmh float64   `json:"average_speed_kmh"`
	StepGoal        int       `json:"step_goal"`
	StepProgressPct int       `json:"step_progress_pct"`
	WeeklyAvgSteps  int       `json:"weekly_avg_steps"`
	StepHistory     []int     `json:"step_history"` // oldest → newest, always 7 entries
	IntakeCalories  int       `json:"intake_calories"`
}

type DayOverview struct {
	Date    string           `json:"date"`
	Totals  DayTotals        `json:"totals"`
	Longest *models.Activity `json:"longest_activity,omitempty"`
}

type WeeklyOverview struct {
	WeekStart  string            `json:"week_start"`
	Offset     int               `json:"offset"`
	Days       []DayOverview     `json:"days"`
	Activities []models.Activity `json:"activities"`
}

type DailyView struct {
	Date            string            `json:"date"`
	Totals          DayTotals         `json:"totals"`
	AverageSpeedKmh float64           `json:"average_speed_kmh"`
	Longest         *models.Activity  `json:"longest_activity,omitempty"`
	Activities      []models.Activity `json:"activities"`
}

func (s *StatsService) loadAll(userID uint) ([]models.Activity, error) {
	var records []models.Activity
	err := s.db.Where("user_id = ?", userID).Order("recorded_at DESC").Find(&records).Error
	return records, err
}

func (s *StatsService) TodaySummary(userID uint, now time.Time) (*TodaySummary, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	records, err := s.loadAll(userID)
	if err != nil {
		return nil, err
	}

	totals := DaySums(records, now)
	todays := ActivitiesForDay(records, now)

	intakeCals, err := NewIntakeService(s.db).TotalCaloriesForDay(userID, now)
	if err != nil {
		return nil, err
	}

	return &TodaySummary{
		Date:            dayStart(now).Format("2006-01-02"),
		Totals:          totals,
		AverageSpeedKmh: AverageSpeed(todays),
		StepGoal:        user.DailyStepGoal,
		StepProgressPct: StepProgress(totals.Steps, user.DailyStepGoal),
		WeeklyAvgSteps:  WeeklyAverageSteps(records, now),
		StepHistory:     StepHistory(records, now),
		IntakeCalories:  intakeCals,
	}, nil
}

// WeeklyOverview buckets a Monday-anchored week of activities per day.
// offset 0 is the current week, negative offsets go back; positive offsets
// fail with ErrFutureWeek.
func (s *StatsService) WeeklyOverview(userID uint, now time.Time, offset int) (*WeeklyOverview, error) {
	start, end, err := WeekWindow(now, offset)
	if err != nil {
		return nil, err
	}

	var records []models.Activity
	if err := s.db.
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, start, end).
		Order("recorded_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	out := &WeeklyOverview{
		WeekStart:  start.Format("2006-01-02"),
		Offset:     offset,
		Activities: records,
	}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		daily := ActivitiesForDay(records, day)
		out.Days = append(out.Days, DayOverview{
			Date:    day.Format("2006-01-02"),
			Totals:  DaySums(records, day),
			Longest: LongestActivity(daily),
		})
	}
	return out, nil
}

func (s *StatsService) DailyView(userID uint, day time.Time) (*DailyView, error) {
	start := dayStart(day)
	var records []models.Activity
	if err := s.db.
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, start, start.AddDate(0, 0, 1)).
		Order("recorded_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return &DailyView{
		Date:            start.Format("2006-01-02"),
		Totals:          DaySums(records, start),
		AverageSpeedKmh: AverageSpeed(records),
		Longest:         LongestActivity(records),
		Activities:      records,
	}, nil
}
