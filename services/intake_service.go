package services

import (
	"errors"
	"math"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/models"

	"gorm.io/gorm"
)

type IntakeService struct{ db *gorm.DB }

func NewIntakeService(db *gorm.DB) *IntakeService { return &IntakeService{db: db} }

// Log persists a food intake record for the user. Servings defaults to 1 and
// EatenAt to now.
func (s *IntakeService) Log(userID uint, in *models.FoodIntake) error {
	in.UserID = userID
	if in.Servings <= 0 {
		in.Servings = 1
	}
	if in.EatenAt.IsZero() {
		in.EatenAt = time.Now()
	}
	return s.db.Create(in).Error
}

// ListForDay returns the user's intake records with EatenAt in
// [local midnight, next local midnight) of day, newest first. The bucketing
// uses the same dayStart helper as the activity aggregator.
func (s *IntakeService) ListForDay(userID uint, day time.Time) ([]models.FoodIntake, error) {
	start := dayStart(day)
	var out []models.FoodIntake
	err := s.db.
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, start, start.AddDate(0, 0, 1)).
		Order("eaten_at DESC").
		Find(&out).Error
	return out, err
}

// TotalCaloriesForDay sums calories*servings over the day's records, rounded
// to the nearest integer. Zero when none match.
func (s *IntakeService) TotalCaloriesForDay(userID uint, day time.Time) (int, error) {
	rows, err := s.ListForDay(userID, day)
	if err != nil {
		return 0, err
	}
	var total float64
	for i := range rows {
		total += rows[i].Calories * rows[i].Servings
	}
	return int(math.Round(total)), nil
}

// Delete hard-deletes the record and returns the removed row so the caller
// can offer undo. The hard delete frees the primary key for Restore.
func (s *IntakeService) Delete(userID, id uint) (*models.FoodIntake, error) {
	var in models.FoodIntake
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&in).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.Unscoped().Delete(&models.FoodIntake{}, in.ID).Error; err != nil {
		return nil, err
	}
	return &in, nil
}

// Restore re-inserts a record previously returned by Delete with its original
// ID and values, so day totals return to their prior state exactly.
func (s *IntakeService) Restore(in *models.FoodIntake) error {
	return s.db.Create(in).Error
}
