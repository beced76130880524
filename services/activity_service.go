package services

import (
	"errors"
	"time"

	"github.com/KidKyzo/Smart-Fit-sub000/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an operation references a record that does not
// exist for the given user. Update and delete of unknown IDs fail with it
// explicitly rather than silently succeeding.
var ErrNotFound = errors.New("record not found")

type ActivityService struct{ db *gorm.DB }

func NewActivityService(db *gorm.DB) *ActivityService { return &ActivityService{db: db} }

// Create persists a new activity for the user and fills in its assigned ID.
// RecordedAt defaults to now when unset.
func (s *ActivityService) Create(userID uint, a *models.Activity) error {
	a.UserID = userID
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	return s.db.Create(a).Error
}

// List returns all of the user's activities, newest first.
func (s *ActivityService) List(userID uint) ([]models.Activity, error) {
	var out []models.Activity
	err := s.db.
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Find(&out).Error
	return out, err
}

func (s *ActivityService) GetByID(userID, id uint) (*models.Activity, error) {
	var a models.Activity
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *ActivityService) ListByType(userID uint, activityType string) ([]models.Activity, error) {
	var out []models.Activity
	err := s.db.
		Where("user_id = ? AND type = ?", userID, activityType).
		Order("recorded_at DESC").
		Find(&out).Error
	return out, err
}

// ListBetween returns activities with RecordedAt in [from, to), newest first.
func (s *ActivityService) ListBetween(userID uint, from, to time.Time) ([]models.Activity, error) {
	var out []models.Activity
	err := s.db.
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, from, to).
		Order("recorded_at DESC").
		Find(&out).Error
	return out, err
}

// Update replaces the mutable fields of the record with a.ID. RecordedAt is
// immutable once persisted and is never overwritten here.
func (s *ActivityService) Update(userID uint, a *models.Activity) error {
	res := s.db.Model(&models.Activity{}).
		Where("id = ? AND user_id = ?", a.ID, userID).
		Updates(map[string]interface{}{
			"type":         a.Type,
			"duration_min": a.DurationMin,
			"calories":     a.Calories,
			"distance_km":  a.DistanceKm,
			"steps":        a.Steps,
			"note":         a.Note,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ActivityService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
